package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"fulfillment/internal/adapters/out/carrier"
	"fulfillment/internal/core/domain/model/packing"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	HTTPPort string `mapstructure:"http_port"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSslMode  string `mapstructure:"db_sslmode"`

	// InventoryDSN points at the inventory ledger. Empty keeps stock in memory.
	InventoryDSN     string        `mapstructure:"inventory_dsn"`
	InventoryTimeout time.Duration `mapstructure:"inventory_timeout"`

	// CarrierEndpoints is a comma separated list of name=url pairs.
	CarrierEndpoints   string        `mapstructure:"carrier_endpoints"`
	CarrierTimeout     time.Duration `mapstructure:"carrier_timeout"`
	CarrierMaxRetries  uint64        `mapstructure:"carrier_max_retries"`
	CarrierBackoff     time.Duration `mapstructure:"carrier_backoff"`
	CarrierConcurrency int           `mapstructure:"carrier_concurrency"`

	RateCachePath string        `mapstructure:"rate_cache_path"`
	QuoteValidity time.Duration `mapstructure:"quote_validity"`

	AllocationTTL time.Duration `mapstructure:"allocation_ttl"`
	RenewTTL      time.Duration `mapstructure:"renew_ttl"`
	ReleaseBatch  int           `mapstructure:"release_batch"`

	ExpirySweepSchedule string `mapstructure:"expiry_sweep_schedule"`
	BackorderSchedule   string `mapstructure:"backorder_schedule"`

	WeightTolerance    string `mapstructure:"weight_tolerance"`
	DimensionTolerance string `mapstructure:"dimension_tolerance"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MetricsEnabled  bool          `mapstructure:"metrics_enabled"`
}

var defaults = map[string]any{
	"env":                   "prod",
	"log_level":             "",
	"http_port":             "8082",
	"db_host":               "localhost",
	"db_port":               "5432",
	"db_user":               "postgres",
	"db_password":           "",
	"db_name":               "fulfillment",
	"db_sslmode":            "disable",
	"inventory_dsn":         "",
	"inventory_timeout":     3 * time.Second,
	"carrier_endpoints":     "",
	"carrier_timeout":       5 * time.Second,
	"carrier_max_retries":   2,
	"carrier_backoff":       200 * time.Millisecond,
	"carrier_concurrency":   0,
	"rate_cache_path":       "",
	"quote_validity":        time.Hour,
	"allocation_ttl":        30 * time.Minute,
	"renew_ttl":             30 * time.Minute,
	"release_batch":         100,
	"expiry_sweep_schedule": "0 * * * * *",
	"backorder_schedule":    "0 */5 * * * *",
	"weight_tolerance":      "5",
	"dimension_tolerance":   "10",
	"shutdown_timeout":      10 * time.Second,
	"metrics_enabled":       true,
}

// LoadConfig reads .env when present, then the environment and the optional
// YAML file named by CONFIG_FILE. Environment wins over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var err error
	if c.HTTPPort == "" {
		err = errors.Join(err, errors.New("HTTP_PORT is required"))
	}
	if c.DBHost == "" || c.DBName == "" {
		err = errors.Join(err, errors.New("DB_HOST and DB_NAME are required"))
	}
	if c.AllocationTTL <= 0 {
		err = errors.Join(err, errors.New("ALLOCATION_TTL must be positive"))
	}
	if c.QuoteValidity <= 0 {
		err = errors.Join(err, errors.New("QUOTE_VALIDITY must be positive"))
	}
	if _, tolErr := c.Tolerances(); tolErr != nil {
		err = errors.Join(err, tolErr)
	}
	if _, epErr := c.Carriers(); epErr != nil {
		err = errors.Join(err, epErr)
	}
	return err
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// IsDev reports whether the service runs in the development environment.
func (c Config) IsDev() bool {
	return c.Env == "dev"
}

// Tolerances returns the default verification tolerances in percent.
func (c Config) Tolerances() (packing.Tolerances, error) {
	weight, err := decimal.NewFromString(c.WeightTolerance)
	if err != nil || weight.IsNegative() {
		return packing.Tolerances{}, fmt.Errorf("WEIGHT_TOLERANCE %q is not a non-negative decimal", c.WeightTolerance)
	}
	dimension, err := decimal.NewFromString(c.DimensionTolerance)
	if err != nil || dimension.IsNegative() {
		return packing.Tolerances{}, fmt.Errorf("DIMENSION_TOLERANCE %q is not a non-negative decimal", c.DimensionTolerance)
	}
	return packing.Tolerances{Weight: weight, Dimension: dimension}, nil
}

// Carriers parses CarrierEndpoints, e.g. "ups=http://ups:8080/quotes,dhl=http://dhl/quotes".
func (c Config) Carriers() ([]carrier.Endpoint, error) {
	var endpoints []carrier.Endpoint
	seen := make(map[string]struct{})
	for _, pair := range strings.Split(c.CarrierEndpoints, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, url, ok := strings.Cut(pair, "=")
		name, url = strings.TrimSpace(name), strings.TrimSpace(url)
		if !ok || name == "" || url == "" {
			return nil, fmt.Errorf("CARRIER_ENDPOINTS entry %q is not name=url", pair)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("CARRIER_ENDPOINTS names carrier %q twice", name)
		}
		seen[name] = struct{}{}
		endpoints = append(endpoints, carrier.Endpoint{Name: name, URL: url})
	}
	return endpoints, nil
}
