package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Store         StoreConfig
	SyncRateLimit SyncRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"QUICKCART_APP_ENV" required:"true"`
	Port         string `envconfig:"QUICKCART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"QUICKCART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"QUICKCART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"QUICKCART_DB_DSN"`

	LegacyHost     string `envconfig:"QUICKCART_DB_HOST"`
	LegacyPort     int    `envconfig:"QUICKCART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"QUICKCART_DB_USER"`
	LegacyPassword string `envconfig:"QUICKCART_DB_PASSWORD"`
	LegacyName     string `envconfig:"QUICKCART_DB_NAME"`
	LegacySSLMode  string `envconfig:"QUICKCART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"QUICKCART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"QUICKCART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"QUICKCART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"QUICKCART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"QUICKCART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"QUICKCART_REDIS_ADDR"`
	Password     string        `envconfig:"QUICKCART_REDIS_PASSWORD"`
	DB           int           `envconfig:"QUICKCART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"QUICKCART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"QUICKCART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"QUICKCART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"QUICKCART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"QUICKCART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret string `envconfig:"QUICKCART_JWT_SECRET" required:"true"`
	Issuer string `envconfig:"QUICKCART_JWT_ISSUER" required:"true"`
}

// StoreConfig holds presentation-only storefront settings.
type StoreConfig struct {
	Currency string `envconfig:"QUICKCART_CURRENCY" default:"$"`
}

// SyncRateLimitConfig throttles the public identity-sync webhook.
type SyncRateLimitConfig struct {
	Window  time.Duration `envconfig:"QUICKCART_SYNC_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit int           `envconfig:"QUICKCART_SYNC_RATE_LIMIT_IP_LIMIT" default:"60"`
	Secret  string        `envconfig:"QUICKCART_SYNC_WEBHOOK_SECRET"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"QUICKCART_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
