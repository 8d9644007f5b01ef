package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoragePostgres = "postgres"
	StorageMySQL    = "mysql"
	StorageMemory   = "memory"
)

type Config struct {
	Port            string        `yaml:"port"`
	LogLevel        string        `yaml:"log_level"`
	Storage         string        `yaml:"storage"`
	DBURL           string        `yaml:"db_url"`
	DBMaxConns      int           `yaml:"db_max_conns"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MySQL           MySQLConfig   `yaml:"mysql"`
}

type MySQLConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	DBName          string        `yaml:"db_name"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogLevel        string        `yaml:"log_level"`
}

// DSN builds a go-sql-driver DSN. Times are parsed as UTC.
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
	)
}

func defaults() Config {
	return Config{
		Port:            "8080",
		LogLevel:        "info",
		Storage:         StoragePostgres,
		DBMaxConns:      8,
		ShutdownTimeout: 10 * time.Second,
		MySQL: MySQLConfig{
			Port:            3306,
			MaxOpenConns:    16,
			MaxIdleConns:    4,
			ConnMaxLifetime: time.Hour,
			LogLevel:        "error",
		},
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// named by CONFIG_FILE, and finally environment variables (config.env is
// loaded into the environment first).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load("config.env")

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	switch cfg.Storage {
	case StoragePostgres, StorageMySQL, StorageMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage)
	}
	if cfg.Storage == StoragePostgres && cfg.DBURL == "" {
		return nil, fmt.Errorf("postgres storage requires DATABASE_URL or DB_HOST")
	}
	return &cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "APP_PORT")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.Storage, "STORAGE_BACKEND")

	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DBURL = url
	} else if os.Getenv("DB_HOST") != "" {
		cfg.DBURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
		)
	}

	setString(&cfg.MySQL.Host, "MYSQL_HOST")
	setString(&cfg.MySQL.User, "MYSQL_USER")
	setString(&cfg.MySQL.Password, "MYSQL_PASSWORD")
	setString(&cfg.MySQL.DBName, "MYSQL_DATABASE")
	setString(&cfg.MySQL.LogLevel, "MYSQL_LOG_LEVEL")

	for _, v := range []struct {
		key string
		dst *int
	}{
		{"DB_MAX_CONNS", &cfg.DBMaxConns},
		{"MYSQL_PORT", &cfg.MySQL.Port},
		{"MYSQL_MAX_OPEN_CONNS", &cfg.MySQL.MaxOpenConns},
		{"MYSQL_MAX_IDLE_CONNS", &cfg.MySQL.MaxIdleConns},
	} {
		if err := setInt(v.dst, v.key); err != nil {
			return err
		}
	}
	if err := setDuration(&cfg.ShutdownTimeout, "SHUTDOWN_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.MySQL.ConnMaxLifetime, "MYSQL_CONN_MAX_LIFETIME"); err != nil {
		return err
	}
	if s := os.Getenv("DB_AUTO_MIGRATE"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("DB_AUTO_MIGRATE: %w", err)
		}
		cfg.AutoMigrate = v
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}
