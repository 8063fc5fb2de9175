// Package config loads service settings from defaults, an optional YAML file,
// a .env file and PRODUCTQA_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	domcategory "example.com/product-qa/internal/domain/category"
	"example.com/product-qa/internal/usecase/interpreter"
)

const (
	envPrefix         = "PRODUCTQA"
	configFileEnvName = "PRODUCTQA_CONFIG_FILE"
)

type Server struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Catalog struct {
	Source      string        `mapstructure:"source"` // file, mysql or postgres
	Path        string        `mapstructure:"path"`
	MySQLDSN    string        `mapstructure:"mysql_dsn"`
	PostgresDSN string        `mapstructure:"postgres_dsn"`
	LoadTimeout time.Duration `mapstructure:"load_timeout"`
}

type AI struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
}

type Cache struct {
	Driver        string        `mapstructure:"driver"` // memory, redis or none
	TTL           time.Duration `mapstructure:"ttl"`
	MaxEntries    int           `mapstructure:"max_entries"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

type Limits struct {
	Ask      int `mapstructure:"ask"`
	Products int `mapstructure:"products"`
	Search   int `mapstructure:"search"`
}

type Interpreter struct {
	Categories   []domcategory.Rule `mapstructure:"categories"`
	PriceMarkers []string           `mapstructure:"price_markers"`
}

type Config struct {
	Server      Server      `mapstructure:"server"`
	Log         Log         `mapstructure:"log"`
	Catalog     Catalog     `mapstructure:"catalog"`
	AI          AI          `mapstructure:"ai"`
	Cache       Cache       `mapstructure:"cache"`
	Limits      Limits      `mapstructure:"limits"`
	Interpreter Interpreter `mapstructure:"interpreter"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("catalog.source", "file")
	v.SetDefault("catalog.path", "data/products.json")
	v.SetDefault("catalog.mysql_dsn", "")
	v.SetDefault("catalog.postgres_dsn", "")
	v.SetDefault("catalog.load_timeout", 10*time.Second)

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("ai.timeout", 30*time.Second)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.max_tokens", 1024)

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.max_entries", 1000)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)

	v.SetDefault("limits.ask", 10)
	v.SetDefault("limits.products", 20)
	v.SetDefault("limits.search", 10)

	v.SetDefault("interpreter.price_markers", interpreter.DefaultPriceMarkers())
}

// Load reads configuration for the given command line arguments.
func Load(args []string) (Config, error) {
	flags := pflag.NewFlagSet("product-qa", pflag.ContinueOnError)
	configFile := flags.String("config", "", "path to a YAML config file")
	envFile := flags.String("env-file", ".env", "path to a .env file")
	flags.String("addr", "", "HTTP listen address")
	flags.String("catalog", "", "catalog JSON file")
	flags.String("log-level", "", "log level")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// GEMINI_API_KEY is accepted as the conventional name for the key.
	_ = v.BindEnv("ai.api_key", envPrefix+"_AI_API_KEY", "GEMINI_API_KEY")

	for key, flag := range map[string]string{
		"server.addr":  "addr",
		"catalog.path": "catalog",
		"log.level":    "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return Config{}, err
		}
	}

	path := *configFile
	if env, ok := os.LookupEnv(configFileEnvName); ok && path == "" {
		path = env
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Interpreter.Categories) == 0 {
		cfg.Interpreter.Categories = domcategory.DefaultRules()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Catalog.Source {
	case "file":
		if c.Catalog.Path == "" {
			return errors.New("catalog.path is required for the file source")
		}
	case "mysql":
		if c.Catalog.MySQLDSN == "" {
			return errors.New("catalog.mysql_dsn is required for the mysql source")
		}
	case "postgres":
		if c.Catalog.PostgresDSN == "" {
			return errors.New("catalog.postgres_dsn is required for the postgres source")
		}
	default:
		return fmt.Errorf("unknown catalog.source %q", c.Catalog.Source)
	}

	switch c.Cache.Driver {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("unknown cache.driver %q", c.Cache.Driver)
	}

	if c.AI.Timeout <= 0 {
		return errors.New("ai.timeout must be positive")
	}
	for name, v := range map[string]int{
		"limits.ask":      c.Limits.Ask,
		"limits.products": c.Limits.Products,
		"limits.search":   c.Limits.Search,
	} {
		if v < 1 || v > 100 {
			return fmt.Errorf("%s must be between 1 and 100", name)
		}
	}
	return nil
}
