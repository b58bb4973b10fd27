package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// MinAliasSize is the lower bound of generated aliases, so max_size may not go below it.
const MinAliasSize = 6

// maxGeneratedAliasSize is the longest alias the random source can produce.
const maxGeneratedAliasSize = 255

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	Storage    StorageConfig    `yaml:"storage"`
	Alias      AliasConfig      `yaml:"alias"`
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Cache      CacheConfig      `yaml:"cache"`
	CORS       CORSConfig       `yaml:"cors"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path   string `yaml:"path" env:"STORAGE_PATH" env-default:"./storage/storage.db"`
	DSN    string `yaml:"dsn" env:"STORAGE_DSN"`
}

type AliasConfig struct {
	MaxSize          int `yaml:"max_size" env:"ALIAS_MAX_SIZE" env-default:"10"`
	GenerateAttempts int `yaml:"generate_attempts" env:"ALIAS_GENERATE_ATTEMPTS" env-default:"10"`
}

type HTTPServerConfig struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type MetricsConfig struct {
	Address string `yaml:"address" env:"METRICS_ADDRESS"`
}

type CacheConfig struct {
	RedisAddr string        `yaml:"redis_addr" env:"CACHE_REDIS_ADDR"`
	TTL       time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"1h"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

type MigrationsConfig struct {
	MigrationsPath string `yaml:"path" env-default:"./migrations"`
	MigrationTable string `yaml:"table" env-default:"migrations"`
	Auto           bool   `yaml:"auto" env:"MIGRATIONS_AUTO"`
}

func MustLoad() *Config {
	// .env is a local convenience; its absence is not an error.
	_ = godotenv.Load()

	path := fetchConfigPath()
	if path == "" {
		panic("config file path is empty")
	}

	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := LoadByPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

// LoadByPath reads and validates the config file at configPath.
func LoadByPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("storage.path is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			errs = append(errs, errors.New("storage.dsn is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	if c.Alias.MaxSize < MinAliasSize {
		errs = append(errs, fmt.Errorf("alias.max_size must be at least %d, got %d", MinAliasSize, c.Alias.MaxSize))
	}
	if c.Alias.MaxSize > maxGeneratedAliasSize {
		errs = append(errs, fmt.Errorf("alias.max_size must be at most %d, got %d", maxGeneratedAliasSize, c.Alias.MaxSize))
	}
	if c.Alias.GenerateAttempts < 1 {
		errs = append(errs, fmt.Errorf("alias.generate_attempts must be positive, got %d", c.Alias.GenerateAttempts))
	}

	return errors.Join(errs...)
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
