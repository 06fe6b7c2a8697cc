package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeTools()
	if err := c.normalizeLibrary(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeCatalog() error {
	if value, ok := os.LookupEnv("AUDIOTAG_CATALOG_URL"); ok && strings.TrimSpace(value) != "" {
		c.Catalog.BaseURL = value
	}
	c.Catalog.BaseURL = strings.TrimRight(strings.TrimSpace(c.Catalog.BaseURL), "/")
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = defaultCatalogBaseURL
	}
	c.Catalog.Region = strings.ToLower(strings.TrimSpace(c.Catalog.Region))
	if c.Catalog.TimeoutSeconds == 0 {
		c.Catalog.TimeoutSeconds = defaultCatalogTimeoutSeconds
	}
	c.Catalog.UserAgent = strings.TrimSpace(c.Catalog.UserAgent)
	if c.Catalog.UserAgent == "" {
		c.Catalog.UserAgent = defaultCatalogUserAgent
	}
	return nil
}

func (c *Config) normalizeTools() {
	c.Tools.MergeBinary = strings.TrimSpace(c.Tools.MergeBinary)
	if c.Tools.MergeBinary == "" {
		c.Tools.MergeBinary = defaultMergeBinary
	}
	c.Tools.FFmpegBinary = strings.TrimSpace(c.Tools.FFmpegBinary)
	if c.Tools.FFmpegBinary == "" {
		c.Tools.FFmpegBinary = defaultFFmpegBinary
	}
}

func (c *Config) normalizeLibrary() error {
	var err error
	if c.Library.OutputRoot, err = expandPath(strings.TrimSpace(c.Library.OutputRoot)); err != nil {
		return fmt.Errorf("library.output_root: %w", err)
	}
	if strings.TrimSpace(c.Library.LockDir) == "" {
		c.Library.LockDir = os.TempDir()
	}
	if c.Library.LockDir, err = expandPath(c.Library.LockDir); err != nil {
		return fmt.Errorf("library.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
