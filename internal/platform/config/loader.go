package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadConfig reads app-config.yaml from the working directory and applies
// defaults for everything that can sensibly default.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("app-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.ttl_minutes", 10)
	viper.SetDefault("upstream.base_url", "https://ophim1.com")
	viper.SetDefault("upstream.timeout_seconds", 8)
	viper.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	viper.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p/w185")
	viper.SetDefault("tmdb.language", "vi-VN")
	viper.SetDefault("tmdb.timeout_seconds", 8)
	viper.SetDefault("reels.source", "local")
	viper.SetDefault("reels.dir", "videos")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &cfg, nil
}
