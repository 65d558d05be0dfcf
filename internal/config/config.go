package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env         string
	ServerPort  string
	LogLevel    string
	SwaggerHost string

	DBDriver    string
	DatabaseDSN string

	RedisAddr string
	RedisDB   int
	RedisPass string

	SessionStore          string
	SessionSecret         string
	SessionTTL            time.Duration
	CookieSecure          bool
	BcryptCost            int
	AutoApproveInstallers bool
	ResetTokenTTL         time.Duration

	KartverketURL  string
	NominatimURL   string
	GeocodeTimeout time.Duration
	GeocodeTTL     time.Duration

	AWSRegion          string
	S3Bucket           string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3PresignTTL       time.Duration
}

// Load builds Config from environment with sensible defaults.
// Variables from .env.<APP_ENV> and then .env are loaded first when present;
// values already set in the process environment win.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")
	_ = godotenv.Load(fmt.Sprintf(".env.%s", env))
	_ = godotenv.Load()

	cfg := &Config{
		Env:         env,
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DatabaseDSN: getEnv("DATABASE_DSN", "user:password@tcp(localhost:3306)/varmepumpe?charset=utf8mb4&parseTime=True&loc=Local"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		SessionStore:          strings.ToLower(getEnv("SESSION_STORE", "redis")),
		SessionSecret:         getEnv("SESSION_SECRET", "change-me"),
		SessionTTL:            getEnvDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:          getEnvBool("COOKIE_SECURE", env == "production"),
		BcryptCost:            getEnvInt("BCRYPT_COST", 10),
		AutoApproveInstallers: getEnvBool("INSTALLER_AUTO_APPROVE", true),
		ResetTokenTTL:         getEnvDuration("RESET_TOKEN_TTL", time.Hour),

		KartverketURL:  getEnv("KARTVERKET_URL", "https://ws.geonorge.no/adresser/v1/sok"),
		NominatimURL:   getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
		GeocodeTimeout: getEnvDuration("GEOCODE_TIMEOUT", 5*time.Second),
		GeocodeTTL:     getEnvDuration("GEOCODE_CACHE_TTL", 24*time.Hour),

		AWSRegion:          getEnv("AWS_REGION", "eu-north-1"),
		S3Bucket:           os.Getenv("AWS_S3_BUCKET"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3PresignTTL:       getEnvDuration("S3_PRESIGN_TTL", 15*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the combination of values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be mysql, postgres or sqlite, got %q", c.DBDriver)
	}
	switch c.SessionStore {
	case "redis", "memory":
	default:
		return fmt.Errorf("SESSION_STORE must be redis or memory, got %q", c.SessionStore)
	}
	if c.IsProduction() && c.SessionSecret == "change-me" {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
