package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration. Values are taken from environment
// variables with the prefix "LELEKA_". Example: LELEKA_API_URL=https://... .
type Config struct {
	APIURL       string        `envconfig:"API_URL"        default:"http://localhost:3000/api"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT"   default:"30s"`
	LogLevel     string        `envconfig:"LOG_LEVEL"      default:"info"`
	StaleAfter   time.Duration `envconfig:"STALE_AFTER"    default:"30s"`
	SessionStale time.Duration `envconfig:"SESSION_STALE"  default:"5m"`
	PageSize     int           `envconfig:"PAGE_SIZE"      default:"8"`
}

// Load populates Config from environment variables (prefix LELEKA_).
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("LELEKA", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Init initializes logging and reports the effective configuration.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(parseLevel(c.LogLevel))

	log.Info().
		Str("api_url", c.APIURL).
		Dur("http_timeout", c.HTTPTimeout).
		Dur("stale_after", c.StaleAfter).
		Str("log_level", c.LogLevel).
		Msg("Application configuration loaded")
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
