package util

import (
	"errors"
	"time"

	"github.com/Drolfothesgnir/castparse/entity"
	"github.com/spf13/viper"
)

type Config struct {
	Environment        string        `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress  string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress       string        `mapstructure:"REDIS_ADDRESS"`
	CacheTTL           time.Duration `mapstructure:"CACHE_TTL"`
	MaxTextLength      int           `mapstructure:"MAX_TEXT_LENGTH"`
	AllowedOrigins     []string      `mapstructure:"ALLOWED_ORIGINS"`
	AllowDotInUsername bool          `mapstructure:"ALLOW_DOT_IN_USERNAME"`
	CustomSuffixes     []string      `mapstructure:"CUSTOM_SUFFIXES"`
}

var defaults = map[string]any{
	"ENVIRONMENT":           "production",
	"HTTP_SERVER_ADDRESS":   "0.0.0.0:8080",
	"REDIS_ADDRESS":         "",
	"CACHE_TTL":             10 * time.Minute,
	"MAX_TEXT_LENGTH":       10000,
	"ALLOWED_ORIGINS":       []string{"*"},
	"ALLOW_DOT_IN_USERNAME": false,
	"CUSTOM_SUFFIXES":       entity.DefaultSuffixes,
}

// LoadConfig reads app.env from the path, overridden by the environment variables.
// A missing app.env is not an error, the defaults and the environment are used then.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// every key must be known to viper, otherwise Unmarshal skips the environment
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

// ParserOptions converts the tokenizer settings into the options of [entity.NewParser].
func (config *Config) ParserOptions() []entity.Option {
	return []entity.Option{
		entity.WithDotInUsername(config.AllowDotInUsername),
		entity.WithCustomSuffixes(config.CustomSuffixes...),
	}
}
