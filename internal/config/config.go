package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

type StorageConfig struct {
	Endpoint string
	APIKey   string
	Bucket   string
}

type AnalysisConfig struct {
	MaxFileSizeBytes  int64
	MinExtractedChars int
}

// Load reads the environment into an immutable Config. It is called once at
// startup; components receive the relevant section explicitly instead of
// reading env vars themselves.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("APP_PORT", ":3000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "cv_analysis"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Gemini: GeminiConfig{
			APIKey:          os.Getenv("GEMINI_API_KEY"),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature:     0.2,
			MaxOutputTokens: 4096,
		},
		Storage: StorageConfig{
			Endpoint: getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			APIKey:   os.Getenv("STORAGE_API_KEY"),
			Bucket:   getEnv("STORAGE_BUCKET", "document-analysis-temp"),
		},
		Analysis: AnalysisConfig{
			MaxFileSizeBytes:  getEnvAsInt64("MAX_FILE_SIZE", 5*1024*1024),
			MinExtractedChars: 50,
		},
	}

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return value
	}
	return defaultValue
}
