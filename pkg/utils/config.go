package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Token    TokenConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// TokenConfig holds the signing secret and validity window for session
// tokens. Loaded once at startup, immutable afterwards.
type TokenConfig struct {
	Secret  string
	TTLDays int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("TOKEN_TTL_DAYS", 7)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Token: TokenConfig{
			Secret:  viper.GetString("TOKEN_SECRET"),
			TTLDays: viper.GetInt("TOKEN_TTL_DAYS"),
		},
	}

	// Tokens are unverifiable without a secret, refuse to start
	if config.Token.Secret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET is required")
	}
	if config.Token.TTLDays < 1 {
		config.Token.TTLDays = 7
	}

	return config, nil
}
