package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Postgres  PostgresConfig  `json:"postgres"`
	Redis     RedisConfig     `json:"redis"`
	Storage   StorageConfig   `json:"storage"`
	Auth      AuthConfig      `json:"auth"`
	Webhook   WebhookConfig   `json:"webhook"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	// MaxUploadBytes bounds the multipart body of an incident submission.
	MaxUploadBytes int64 `json:"max_upload_bytes"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr      string        `json:"addr"`
	Password  string        `json:"password,omitempty"`
	DB        int           `json:"db"`
	LookupTTL time.Duration `json:"lookup_ttl"`
}

// StorageConfig points at the S3-compatible bucket (Cloudflare R2) holding
// incident photos.
type StorageConfig struct {
	Endpoint     string        `json:"endpoint"`
	Bucket       string        `json:"bucket"`
	AccessKeyID  string        `json:"access_key_id"`
	SecretKey    string        `json:"secret_key,omitempty"`
	Region       string        `json:"region"`
	SignedURLTTL time.Duration `json:"signed_url_ttl"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
}

type WebhookConfig struct {
	URL      string        `json:"url"`
	Disabled bool          `json:"disabled"`
	Queue    string        `json:"queue"`
	Workers  int           `json:"workers"`
	Timeout  time.Duration `json:"timeout"`
}

type RateLimitConfig struct {
	RPS   float64 `json:"rps"`
	Burst int     `json:"burst"`
}

func Load() (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxUploadBytes:  int64(getEnvInt("HTTP_MAX_UPLOAD_MB", 32)) << 20,
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "maps_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        int32(getEnvInt("POSTGRES_MAX_CONNS", 20)),
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			LookupTTL: getEnvDuration("REDIS_LOOKUP_TTL", 5*time.Minute),
		},
		Storage: StorageConfig{
			Endpoint:     getEnv("R2_ENDPOINT_URL", ""),
			Bucket:       getEnv("R2_BUCKET_NAME", ""),
			AccessKeyID:  getEnv("R2_ACCESS_KEY_ID", ""),
			SecretKey:    getEnv("R2_SECRET_ACCESS_KEY", ""),
			Region:       getEnv("R2_REGION", "auto"),
			SignedURLTTL: getEnvDuration("R2_SIGNED_URL_TTL", 300*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
			Queue:    getEnv("WEBHOOK_QUEUE", "incidents:events"),
			Workers:  getEnvInt("WEBHOOK_WORKERS", 2),
			Timeout:  getEnvDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 1),
			Burst: getEnvInt("RATE_LIMIT_BURST", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("bucket", cfg.Storage.Bucket),
		slog.Bool("webhook_disabled", cfg.Webhook.Disabled))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Storage.Endpoint == "" || c.Storage.Bucket == "" {
		return errors.New("R2_ENDPOINT_URL and R2_BUCKET_NAME required")
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET required")
	}

	if c.Storage.SignedURLTTL <= 0 {
		return errors.New("R2_SIGNED_URL_TTL must be positive")
	}

	if !c.Webhook.Disabled && c.Webhook.URL == "" {
		return errors.New("WEBHOOK_URL required unless WEBHOOK_DISABLED=true")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
