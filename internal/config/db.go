package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	Driver          string
	URL             string // DATABASE_URL, overrides the host/port/... fields for postgres
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минут
}

func LoadDBConfig() (*DBConfig, error) {
	cfg := &DBConfig{
		Driver:          getEnv("DB_DRIVER", DriverPostgres),
		URL:             getEnv("DATABASE_URL", ""),
		Host:            getEnv("DB_HOST", "localhost"),
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", "password"),
		Name:            getEnv("DB_NAME", "regular_dicers_backend"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
		SQLitePath:      getEnv("DB_SQLITE_PATH", "dicers.sqlite"),
		Port:            getEnvInt("DB_PORT", 5432),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
	}

	// минимальная валидация
	switch cfg.Driver {
	case DriverPostgres:
		if cfg.URL == "" && (cfg.Host == "" || cfg.User == "" || cfg.Name == "") {
			return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("invalid DB config: sqlite path must not be empty")
		}
	default:
		return nil, fmt.Errorf("invalid DB config: unknown driver %q", cfg.Driver)
	}

	return cfg, nil
}

// DSN returns the postgres connection string.
func (c *DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		c.Host,
		c.User,
		c.Password,
		c.Name,
		c.Port,
		c.SSLMode,
		c.TimeZone,
	)
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
