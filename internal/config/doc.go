// Package config loads, normalizes, and validates audiotag configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// AUDIOTAG_CATALOG_URL. The Config type centralizes the catalog endpoint,
// external tool binaries, library location, and logging knobs so the CLI can
// build them once and hand them to the pipeline.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
