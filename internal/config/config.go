package config

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

const defaultJWTSecret = "not-so-secret-now-is-it?"

type DBConfig struct {
	Driver       string
	URL          string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
}

type ProviderConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	Endpoint        string
}

// Enabled reports whether enough of R2 is configured to archive plans.
func (c R2Config) Enabled() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != "" &&
		(c.AccountID != "" || c.Endpoint != "")
}

// BaseEndpoint is the S3 endpoint, derived from the account id unless set explicitly.
func (c R2Config) BaseEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.AccountID)
}

type Config struct {
	Port        string
	Environment string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	DB          DBConfig
	Provider    ProviderConfig
	CorsConfig  cors.Options
	R2          R2Config
}

// Load reads the process environment, after loading ENV_FILE (default .env)
// when it exists.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found, using process environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() Config {
	return Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENV", "development"),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:    getDuration("TOKEN_TTL", 24*time.Hour),
		BcryptCost:  getInt("BCRYPT_COST", 10),
		DB: DBConfig{
			Driver:       getEnv("DB_DRIVER", "postgres"),
			URL:          getEnv("DB_URL", ""),
			Host:         getEnv("DB_HOST", "127.0.0.1"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "lesson_planner_db"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 10),
		},
		Provider: ProviderConfig{
			APIKey:    getEnv("OPENAI_API_KEY", ""),
			BaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:     getEnv("OPENAI_MODEL", "gpt-3.5-turbo-1106"),
			MaxTokens: getInt("OPENAI_MAX_TOKENS", 1500),
			Timeout:   getDuration("OPENAI_TIMEOUT", 60*time.Second),
		},
		CorsConfig: CorsConfig(getList("CORS_ALLOWED_ORIGINS", []string{"*"})),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
			Endpoint:        getEnv("R2_ENDPOINT", ""),
		},
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate rejects configurations that must not reach production.
func (c Config) Validate() error {
	var errs []error
	if c.DB.Driver != "postgres" && c.DB.Driver != "sqlite" {
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver))
	}
	if c.DB.MaxOpenConns < 1 {
		errs = append(errs, errors.New("DB_MAX_OPEN_CONNS must be positive"))
	}
	if c.Provider.MaxTokens < 1 {
		errs = append(errs, errors.New("OPENAI_MAX_TOKENS must be positive"))
	}
	if c.IsProduction() {
		if c.JWTSecret == defaultJWTSecret || c.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET must be set in production"))
		}
		if c.Provider.APIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY must be set in production"))
		}
	}
	return errors.Join(errs...)
}

// DSN is the connection string for the configured driver. DB_URL wins over
// the discrete DB_* settings.
func (c DBConfig) DSN() string {
	if c.Driver == "sqlite" {
		dsn := c.Name
		if c.URL != "" {
			dsn = c.URL
		}
		return withSQLiteForeignKeys(dsn)
	}
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// sqlite ignores foreign keys, and so ON DELETE CASCADE, unless the
// connection asks for them.
func withSQLiteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// Redacted is the DSN safe for logs.
func (c DBConfig) Redacted() string {
	if c.URL != "" {
		if u, err := url.Parse(c.URL); err == nil {
			return u.Redacted()
		}
		return "<unparseable DB_URL>"
	}
	if c.Driver == "sqlite" {
		return c.Name
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s", c.Host, c.Port, c.User, c.Name)
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func CorsConfig(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
