package config

const (
	defaultCatalogBaseURL        = "https://api.audnex.us"
	defaultCatalogTimeoutSeconds = 30
	defaultCatalogUserAgent      = "audiotag/dev"
	defaultMergeBinary           = "m4b-tool"
	defaultFFmpegBinary          = "ffmpeg"
	defaultLogFormat             = "console"
	defaultLogLevel              = "error"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{
			BaseURL:        defaultCatalogBaseURL,
			TimeoutSeconds: defaultCatalogTimeoutSeconds,
			UserAgent:      defaultCatalogUserAgent,
		},
		Tools: Tools{
			MergeBinary:  defaultMergeBinary,
			FFmpegBinary: defaultFFmpegBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
