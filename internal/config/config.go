package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"gymmaster/internal/database"
	"gymmaster/internal/pkg/logger"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DBDriver          string        `envconfig:"DB_DRIVER" default:"mysql"`
	DBHost            string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string        `envconfig:"DB_PORT"`
	DBUser            string        `envconfig:"DB_USER"`
	DBPassword        string        `envconfig:"DB_PASSWORD"`
	DBName            string        `envconfig:"DB_NAME" default:"gym"`
	DBSSLMode         string        `envconfig:"DB_SSLMODE"`
	DatabaseURL       string        `envconfig:"DATABASE_URL"`
	DBAutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	DBSlowQuery       time.Duration `envconfig:"DB_SLOW_QUERY" default:"200ms"`

	// Staff auth is enabled only when a secret is configured.
	JWTSecret string        `envconfig:"JWT_SECRET"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"12h"`

	StaffUsername     string `envconfig:"STAFF_USERNAME" default:"staff"`
	StaffPasswordHash string `envconfig:"STAFF_PASSWORD_HASH"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// Load reads .env files (missing ones are skipped), then the environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("decode env: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case database.DriverMySQL, database.DriverPostgres, database.DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be one of: mysql, postgres, sqlite (got %q)", c.DBDriver)
	}
	if c.DatabaseURL == "" && strings.TrimSpace(c.DBName) == "" {
		return fmt.Errorf("DB_NAME must not be empty")
	}
	if c.DBMaxOpenConns <= 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be > 0")
	}
	if c.DBMaxIdleConns < 0 {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be >= 0")
	}
	if c.DBConnMaxLifetime <= 0 {
		return fmt.Errorf("DB_CONN_MAX_LIFETIME must be > 0")
	}
	if c.JWTSecret != "" && c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if c.StaffPasswordHash != "" && c.JWTSecret == "" {
		return fmt.Errorf("STAFF_PASSWORD_HASH requires JWT_SECRET")
	}
	if c.IsProdLike() && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("in prod/release JWT_SECRET must be set")
	}
	return nil
}

func (c *Config) AuthEnabled() bool {
	return strings.TrimSpace(c.JWTSecret) != ""
}

func (c *Config) DatabaseParams() database.Params {
	return database.Params{
		Driver:          c.DBDriver,
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSSLMode,
		DSN:             c.DatabaseURL,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
		SlowQuery:       c.DBSlowQuery,
	}
}

func (c *Config) IsProdLike() bool {
	return logger.IsProdLike(c.AppEnv)
}
