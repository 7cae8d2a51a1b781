package config

import (
	"fmt"
	"time"

	"github.com/templetoayurveda/backend/pkg/storage"
)

type Configs struct {
	Env string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Auth      AuthConfigs
	Storage   storage.S3Configs
	File      FileConfigs
	Redis     RedisConfigs
	Gemini    GeminiConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string

	DefaultLimit int
	MaxLimit     int
}

type AuthConfigs struct {
	TokenSecret  string
	AccessToken  TokenConfigs
	RefreshToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type FileConfigs struct {
	MaxSize int64
}

type RedisConfigs struct {
	Addr string
}

type GeminiConfigs struct {
	Endpoint   string
	APIKey     string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
}
