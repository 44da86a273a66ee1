package util

import (
	"net"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application settings read from the app.env file or the
// environment.
type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	RenderCacheTTL    time.Duration `mapstructure:"RENDER_CACHE_TTL"`

	// MaxEntryBytes caps the markdown payload accepted by the API. The
	// engine itself enforces no size limit; the caller is responsible.
	MaxEntryBytes int `mapstructure:"MAX_ENTRY_BYTES"`

	// SanitizeLossThreshold overrides the sanitizer's content-loss
	// fallback ratio. Zero keeps the built-in default.
	SanitizeLossThreshold float64 `mapstructure:"SANITIZE_LOSS_THRESHOLD"`
}

// LoadConfig reads configuration from app.env in path, with environment
// variables taking precedence.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// If no port is specified in the URL, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	hostPart := config.HTTPServerAddress

	// A scheme-less host:port address makes url.Parse fail outright ("first
	// path segment in URL cannot contain colon") or land in the opaque/path
	// parts; in both cases the raw address already is the host part.
	if urlStr, parseErr := url.Parse(config.HTTPServerAddress); parseErr == nil && urlStr.Host != "" {
		hostPart = urlStr.Host
	}

	host, port, err = net.SplitHostPort(hostPart)
	if err != nil {
		// If there's no port, SplitHostPort returns an error,
		// in which case the host itself is the hostname.
		host = hostPart
		err = nil
	}

	return
}
