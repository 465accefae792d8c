package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is built once at startup and passed explicitly to every component.
// Nothing mutates it after Load returns.
type Config struct {
	ProjectName string `yaml:"project_name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`
	GinMode     string `yaml:"gin_mode"`
	Addr        string `yaml:"addr"`

	DBDriver     string `yaml:"db_driver"`
	DBHost       string `yaml:"db_host"`
	DBPort       string `yaml:"db_port"`
	DBUser       string `yaml:"db_user"`
	DBPassword   string `yaml:"db_password"`
	DBName       string `yaml:"db_name"`
	DBPath       string `yaml:"db_path"`
	DBLogLevel   string `yaml:"db_log_level"`
	DBMaxOpen    int    `yaml:"db_max_open"`
	DBMaxIdle    int    `yaml:"db_max_idle"`
	MigrationDir string `yaml:"migrations_path"`

	SecretKey          string        `yaml:"secret_key"`
	AccessTokenExpiry  time.Duration `yaml:"access_token_expiry"`
	RefreshTokenExpiry time.Duration `yaml:"refresh_token_expiry"`

	CORSOrigins []string `yaml:"cors_origins"`
}

// DefaultSecretKey is rejected in production
const DefaultSecretKey = "default-secret-key-change-me"

func defaults() Config {
	return Config{
		ProjectName:        "ViltrumFlow",
		Version:            "1.0.0",
		Environment:        "development",
		Debug:              true,
		GinMode:            "debug",
		Addr:               ":8000",
		DBDriver:           "postgres",
		DBHost:             "localhost",
		DBPort:             "5432",
		DBUser:             "taskuser",
		DBPassword:         "taskpassword",
		DBName:             "task_management",
		DBPath:             "viltrumflow.db",
		DBLogLevel:         "warn",
		DBMaxOpen:          30,
		DBMaxIdle:          10,
		MigrationDir:       "migrations",
		SecretKey:          DefaultSecretKey,
		AccessTokenExpiry:  30 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		CORSOrigins: []string{
			"http://localhost:4200",
			"http://localhost:80",
			"http://localhost",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in that order of precedence.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ProjectName = getEnv("PROJECT_NAME", c.ProjectName)
	c.Version = getEnv("VERSION", c.Version)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.Debug = getEnvBool("DEBUG", c.Debug)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.Addr = getEnv("ADDR", c.Addr)

	c.DBDriver = getEnv("DB_DRIVER", c.DBDriver)
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnv("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.DBLogLevel = getEnv("DB_LOG_LEVEL", c.DBLogLevel)
	c.DBMaxOpen = getEnvInt("DB_MAX_OPEN", c.DBMaxOpen)
	c.DBMaxIdle = getEnvInt("DB_MAX_IDLE", c.DBMaxIdle)
	c.MigrationDir = getEnv("MIGRATIONS_PATH", c.MigrationDir)

	c.SecretKey = getEnv("SECRET_KEY", c.SecretKey)
	if minutes := getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 0); minutes > 0 {
		c.AccessTokenExpiry = time.Duration(minutes) * time.Minute
	}
	if days := getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 0); days > 0 {
		c.RefreshTokenExpiry = time.Duration(days) * 24 * time.Hour
	}

	if origins := os.Getenv("BACKEND_CORS_ORIGINS"); origins != "" {
		c.CORSOrigins = splitList(origins)
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY must not be empty")
	}
	if c.IsProduction() && c.SecretKey == DefaultSecretKey {
		return fmt.Errorf("SECRET_KEY must be set in production")
	}
	if c.AccessTokenExpiry <= 0 || c.RefreshTokenExpiry <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// PostgresURL returns the DSN in URL form, as expected by golang-migrate.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
