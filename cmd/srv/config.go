package main

import (
	"os"
	"strconv"
	"time"

	"github.com/templetoayurveda/backend/config"
	"github.com/templetoayurveda/backend/pkg/storage"
)

func (s *srv) loadConfig() {
	s.configs = &config.Configs{
		Env: getEnv("ENV", "dev"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "root"),
			Password: getEnv("MYSQL_PASSWORD", "root"),
			Database: getEnv("MYSQL_DATABASE", "templetoayurveda"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("HOST", "localhost"),
			Port:         getEnv("PORT", "8080"),
			Cert:         getEnv("SERVER_CERT", ""),
			Key:          getEnv("SERVER_KEY", ""),
			DefaultLimit: getEnvAsInt("API_DEFAULT_LIMIT", 1),
			MaxLimit:     getEnvAsInt("API_MAX_LIMIT", 50),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvAsDuration("ACCESS_TOKEN_DURATION", time.Minute*5),
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: getEnvAsDuration("REFRESH_TOKEN_DURATION", time.Hour*24*30),
			},
		},
		Storage: storage.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", "access_key"),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", "secret_key"),
			Bucket:         getEnv("STORAGE_BUCKET", "templetoayurveda"),
			SSLDisabled:    getEnvAsBool("STORAGE_SSL_DISABLE", true),
		},
		File: config.FileConfigs{
			MaxSize: int64(getEnvAsInt("MAX_UPLOAD_SIZE", 2<<20)),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDRESS", "localhost:6379"),
		},
		Gemini: config.GeminiConfigs{
			Endpoint:   getEnv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com"),
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			TextModel:  getEnv("GEMINI_TEXT_MODEL", "gemini-1.5-flash"),
			ImageModel: getEnv("GEMINI_IMAGE_MODEL", "imagen-3.0-generate-001"),
			Timeout:    getEnvAsDuration("GEMINI_TIMEOUT", time.Second*30),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}
