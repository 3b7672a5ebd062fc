// Package config loads service configuration from the environment.
//
// A .env file is read first when present; real environment variables win.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")

type Config struct {
	HTTP      HTTPConfig
	AWS       AWSConfig
	Tables    TablesConfig
	Storage   StorageConfig
	Mail      MailConfig
	Redis     RedisConfig
	JWT       JWTConfig
	GenAI     GenAIConfig
	Messaging MessagingConfig
	Deposits  DepositsConfig
	Log       LogConfig

	AdminEmails []string
}

type HTTPConfig struct {
	Port            int
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// DynamoDBEndpoint points to DynamoDB Local when set.
	DynamoDBEndpoint string
}

type TablesConfig struct {
	Quotes     string
	Tracking   string
	Users      string
	Affiliates string
	Deposits   string
}

type StorageConfig struct {
	Bucket        string
	Endpoint      string
	PublicBaseURL string
}

type MailConfig struct {
	Sender       string
	ResetURLBase string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret   string
	TTL      time.Duration
	ResetTTL time.Duration
}

type GenAIConfig struct {
	APIKey string
	Model  string
}

type MessagingConfig struct {
	WhatsAppNumber string
}

type DepositsConfig struct {
	Percent     int
	AccessToken string
	MockGateway bool
}

type LogConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("QUOTES_TABLE", "quotes")
	v.SetDefault("TRACKING_TABLE", "quote_tracking")
	v.SetDefault("USERS_TABLE", "users")
	v.SetDefault("AFFILIATES_TABLE", "affiliates")
	v.SetDefault("DEPOSITS_TABLE", "deposits")
	v.SetDefault("MAIL_SENDER", "no-reply@example.com")
	v.SetDefault("RESET_URL_BASE", "http://localhost:3000/reset-password")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("PASSWORD_RESET_TTL", "30m")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("WHATSAPP_NUMBER", "573000000000")
	v.SetDefault("DEPOSIT_PERCENT", 30)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load reads configuration from .env and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Port:            v.GetInt("HTTP_PORT"),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Tables: TablesConfig{
			Quotes:     v.GetString("QUOTES_TABLE"),
			Tracking:   v.GetString("TRACKING_TABLE"),
			Users:      v.GetString("USERS_TABLE"),
			Affiliates: v.GetString("AFFILIATES_TABLE"),
			Deposits:   v.GetString("DEPOSITS_TABLE"),
		},
		Storage: StorageConfig{
			Bucket:        v.GetString("EXPORT_BUCKET"),
			Endpoint:      v.GetString("S3_ENDPOINT"),
			PublicBaseURL: v.GetString("EXPORT_PUBLIC_BASE_URL"),
		},
		Mail: MailConfig{
			Sender:       v.GetString("MAIL_SENDER"),
			ResetURLBase: v.GetString("RESET_URL_BASE"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:   v.GetString("JWT_SECRET"),
			TTL:      v.GetDuration("JWT_TTL"),
			ResetTTL: v.GetDuration("PASSWORD_RESET_TTL"),
		},
		GenAI: GenAIConfig{
			APIKey: v.GetString("GEMINI_API_KEY"),
			Model:  v.GetString("GEMINI_MODEL"),
		},
		Messaging: MessagingConfig{
			WhatsAppNumber: v.GetString("WHATSAPP_NUMBER"),
		},
		Deposits: DepositsConfig{
			Percent:     v.GetInt("DEPOSIT_PERCENT"),
			AccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			MockGateway: isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		AdminEmails: splitList(strings.ToLower(v.GetString("ADMIN_EMAILS"))),
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return cfg, nil
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
