package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Pix       PixConfig       `mapstructure:"pix"`
	QR        QRConfig        `mapstructure:"qr"`
	WhatsApp  WhatsAppConfig  `mapstructure:"whatsapp"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Admin     AdminConfig     `mapstructure:"admin"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"` // debug, release, test
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PixConfig is the receiver identity. The key may be empty at startup;
// charge creation then fails with a configuration error.
type PixConfig struct {
	Key                string `mapstructure:"key"`
	MerchantName       string `mapstructure:"merchant_name"`
	MerchantCity       string `mapstructure:"merchant_city"`
	DefaultDescription string `mapstructure:"default_description"`
	TxIDPrefix         string `mapstructure:"txid_prefix"`
}

type QRConfig struct {
	Size     int    `mapstructure:"size"`     // PNG edge in pixels
	Recovery string `mapstructure:"recovery"` // low, medium, high, highest
}

type WhatsAppConfig struct {
	Number string `mapstructure:"number"`
}

type CatalogConfig struct {
	Backend string `mapstructure:"backend"` // memory, postgres
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// RateLimitConfig caps requests per client IP and minute. Only enforced
// when Redis is enabled.
type RateLimitConfig struct {
	PixPerMinute      int64 `mapstructure:"pix_per_minute"`
	CheckoutPerMinute int64 `mapstructure:"checkout_per_minute"`
	LoginPerMinute    int64 `mapstructure:"login_per_minute"`
}

// AdminConfig holds the single catalog administrator. PasswordHash is an
// Argon2id encoded hash; an empty hash disables admin login.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// legacyEnv maps config keys to the variable names the storefront has
// always used in its .env file.
var legacyEnv = map[string]string{
	"pix.key":           "PIX_KEY",
	"pix.merchant_name": "PIX_MERCHANT",
	"pix.merchant_city": "PIX_CITY",
	"server.port":       "SERVER_PORT",
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CUBO_.
// Nested keys use underscore: CUBO_DATABASE_HOST, CUBO_JWT_SECRET, etc.
// PIX_KEY, PIX_MERCHANT, PIX_CITY and SERVER_PORT are accepted as well.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5174)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://127.0.0.1:5173"})
	v.SetDefault("pix.key", "")
	v.SetDefault("pix.merchant_name", "Cubo Criativo")
	v.SetDefault("pix.merchant_city", "Barreiras")
	v.SetDefault("pix.default_description", "Cubo Criativo")
	v.SetDefault("pix.txid_prefix", "CUBO")
	v.SetDefault("qr.size", 256)
	v.SetDefault("qr.recovery", "medium")
	v.SetDefault("whatsapp.number", "5577998211169")
	v.SetDefault("catalog.backend", "memory")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "cubo_criativo")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ratelimit.pix_per_minute", 20)
	v.SetDefault("ratelimit.checkout_per_minute", 30)
	v.SetDefault("ratelimit.login_per_minute", 10)
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "cubo-pix-gateway")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CUBO_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CUBO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range legacyEnv {
		prefixed := "CUBO_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, name); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", name, err)
		}
	}

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Pix.Key = strings.TrimSpace(cfg.Pix.Key)

	return &cfg, nil
}
