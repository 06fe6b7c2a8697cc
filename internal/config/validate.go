package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "warning": {}, "error": {}, "fatal": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	parsed, err := url.Parse(c.Catalog.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("catalog.base_url must be an absolute URL, got %q", c.Catalog.BaseURL)
	}
	if c.Catalog.TimeoutSeconds < 0 {
		return errors.New("catalog.timeout_seconds must be >= 0")
	}
	if c.Catalog.RetryCount < 0 {
		return errors.New("catalog.retry_count must be >= 0")
	}
	return nil
}

func (c *Config) validateTools() error {
	if c.Tools.MergeTimeoutSeconds < 0 {
		return errors.New("tools.merge_timeout_seconds must be >= 0")
	}
	if c.Tools.TagTimeoutSeconds < 0 {
		return errors.New("tools.tag_timeout_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be one of debug, info, warning, error, fatal; got %q", c.Logging.Level)
	}
	if strings.TrimSpace(c.Logging.Format) == "" {
		return errors.New("logging.format must be set")
	}
	return nil
}
