package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Export  ExportConfig
	LogMode string
}

type ServerConfig struct {
	Port string
	Host string
}

type StorageConfig struct {
	// DBPath is the path of the local storage database file.
	DBPath string
}

type ExportConfig struct {
	// ChromePath overrides Chrome discovery for the PDF renderer.
	ChromePath string
	// RenderTimeout bounds one HTML-to-PDF print.
	RenderTimeout time.Duration
}

// Load reads configuration from environment variables and an optional
// .env file, applying defaults for everything unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("DB_PATH", "resume-builder.db")
	viper.SetDefault("LOG_MODE", "development")
	viper.SetDefault("RENDER_TIMEOUT_SECONDS", 60)

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Host: viper.GetString("HOST"),
		},
		Storage: StorageConfig{
			DBPath: viper.GetString("DB_PATH"),
		},
		Export: ExportConfig{
			ChromePath:    viper.GetString("CHROME_PATH"),
			RenderTimeout: time.Duration(viper.GetInt("RENDER_TIMEOUT_SECONDS")) * time.Second,
		},
		LogMode: viper.GetString("LOG_MODE"),
	}

	return cfg, nil
}
