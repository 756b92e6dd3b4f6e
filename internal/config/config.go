package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// LedgerConfig holds ledger indexing API configuration
type LedgerConfig struct {
	APIURL      string        `mapstructure:"api_url"`
	ProjectID   string        `mapstructure:"project_id"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	PageSize    int           `mapstructure:"page_size"`
}

// SettlementConfig holds settlement submission endpoint configuration
type SettlementConfig struct {
	URL         string        `mapstructure:"url"`
	APIKey      string        `mapstructure:"api_key"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// EscrowConfig holds swap escrow sweep configuration
type EscrowConfig struct {
	WaitWindow         time.Duration `mapstructure:"wait_window"`
	SweepInterval      time.Duration `mapstructure:"sweep_interval"`
	ConfirmInterval    time.Duration `mapstructure:"confirm_interval"`
	ConfirmMaxAttempts int           `mapstructure:"confirm_max_attempts"`
	SettleLease        time.Duration `mapstructure:"settle_lease"`
	BatchSize          int           `mapstructure:"batch_size"`
}

// OwnershipConfig holds ownership resolution configuration
type OwnershipConfig struct {
	// MergeByStakeKey coalesces per-address holder rows of the same
	// stake key into one owner. Defaults to false: the portal UI
	// historically renders per-address rows.
	MergeByStakeKey bool `mapstructure:"merge_by_stake_key"`
}

// FungibleAssetRule configures entry weighting for one fungible asset
type FungibleAssetRule struct {
	AssetID       string `mapstructure:"asset_id"`
	UnitsPerEntry uint64 `mapstructure:"units_per_entry"`
}

// EntriesConfig holds entry snapshot configuration
type EntriesConfig struct {
	FungibleAssets []FungibleAssetRule `mapstructure:"fungible_assets"`
	Collections    []string            `mapstructure:"collections"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// RateLimitConfig holds per-provider rate limit configuration
type RateLimitConfig struct {
	// RequestsPerPeriod tokens are issued every Period
	RequestsPerPeriod int           `mapstructure:"requests_per_period"`
	Period            time.Duration `mapstructure:"period"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds shared rate limiter configuration
type RateLimiterConfig struct {
	RedisAddr               string                     `mapstructure:"redis_addr"`
	RedisPassword           string                     `mapstructure:"redis_password"`
	RedisDB                 int                        `mapstructure:"redis_db"`
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Ledger      LedgerConfig      `mapstructure:"ledger"`
	Settlement  SettlementConfig  `mapstructure:"settlement"`
	Escrow      EscrowConfig      `mapstructure:"escrow"`
	Ownership   OwnershipConfig   `mapstructure:"ownership"`
	Entries     EntriesConfig     `mapstructure:"entries"`
	NATS        NATSConfig        `mapstructure:"nats"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
}

// SweeperConfig holds configuration for the escrow sweeper
type SweeperConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Ledger      LedgerConfig      `mapstructure:"ledger"`
	Settlement  SettlementConfig  `mapstructure:"settlement"`
	Escrow      EscrowConfig      `mapstructure:"escrow"`
	NATS        NATSConfig        `mapstructure:"nats"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setLedgerDefaults(v)
	setEscrowDefaults(v)
	setNATSDefaults(v)
	setRateLimiterDefaults(v)
	v.SetDefault("ownership.merge_by_stake_key", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the escrow sweeper
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setLedgerDefaults(v)
	setEscrowDefaults(v)
	setNATSDefaults(v)
	setRateLimiterDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}
	if cfg.Settlement.URL == "" {
		return nil, errors.New("settlement.url is required")
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setLedgerDefaults(v *viper.Viper) {
	v.SetDefault("ledger.api_url", "https://cardano-mainnet.blockfrost.io/api/v0")
	v.SetDefault("ledger.http_timeout", "30s")
	v.SetDefault("ledger.page_size", 100)
	v.SetDefault("settlement.http_timeout", "60s")
}

func setEscrowDefaults(v *viper.Viper) {
	v.SetDefault("escrow.wait_window", "900s")
	v.SetDefault("escrow.sweep_interval", "15m")
	v.SetDefault("escrow.confirm_interval", "1s")
	v.SetDefault("escrow.confirm_max_attempts", 600)
	v.SetDefault("escrow.settle_lease", "5m")
	v.SetDefault("escrow.batch_size", 100)
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.stream_name", "ESCROW_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
}

func setRateLimiterDefaults(v *viper.Viper) {
	v.SetDefault("rate_limiter.redis_key_prefix", "ledgersync:limiter:")
	v.SetDefault("rate_limiter.enable_local_fallback", true)
	v.SetDefault("rate_limiter.local_fallback_multiplier", 0.5)
	v.SetDefault("rate_limiter.max_workers", 20)
	v.SetDefault("rate_limiter.max_queue_size", 1000)
	v.SetDefault("rate_limiter.providers.ledger.requests_per_period", 10)
	v.SetDefault("rate_limiter.providers.ledger.period", "1s")
	v.SetDefault("rate_limiter.providers.ledger.burst", 10)
	v.SetDefault("rate_limiter.providers.ledger.max_queue_time", "5m")
	// One settlement submission per two seconds
	v.SetDefault("rate_limiter.providers.settlement.requests_per_period", 1)
	v.SetDefault("rate_limiter.providers.settlement.period", "2s")
	v.SetDefault("rate_limiter.providers.settlement.burst", 1)
	v.SetDefault("rate_limiter.providers.settlement.max_queue_time", "10m")
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("LEDGERSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields
// when no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Ledger
		"ledger.api_url",
		"ledger.project_id",
		"ledger.http_timeout",
		"ledger.page_size",
		// Settlement
		"settlement.url",
		"settlement.api_key",
		"settlement.http_timeout",
		// Escrow
		"escrow.wait_window",
		"escrow.sweep_interval",
		"escrow.confirm_interval",
		"escrow.confirm_max_attempts",
		"escrow.settle_lease",
		"escrow.batch_size",
		// Ownership
		"ownership.merge_by_stake_key",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Rate limiter
		"rate_limiter.redis_addr",
		"rate_limiter.redis_password",
		"rate_limiter.redis_db",
		"rate_limiter.redis_key_prefix",
		"rate_limiter.enable_local_fallback",
		"rate_limiter.local_fallback_multiplier",
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
