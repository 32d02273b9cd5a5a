package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Scanner      ScannerConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Scanner.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"COURSES_APP_ENV" required:"true"`
	Port         string `envconfig:"COURSES_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"COURSES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"COURSES_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"COURSES_DB_DSN"`
	Driver string `envconfig:"COURSES_DB_DRIVER" default:"sqlite"`

	LegacyHost     string `envconfig:"COURSES_DB_HOST"`
	LegacyPort     int    `envconfig:"COURSES_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"COURSES_DB_USER"`
	LegacyPassword string `envconfig:"COURSES_DB_PASSWORD"`
	LegacyName     string `envconfig:"COURSES_DB_NAME"`
	LegacySSLMode  string `envconfig:"COURSES_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"COURSES_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"COURSES_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"COURSES_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"COURSES_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DBDriverSQLite)
}

type RedisConfig struct {
	URL      string `envconfig:"COURSES_REDIS_URL"`
	Address  string `envconfig:"COURSES_REDIS_ADDRESS"`
	Password string `envconfig:"COURSES_REDIS_PASSWORD"`
	DB       int    `envconfig:"COURSES_REDIS_DB" default:"0"`

	DialTimeout  time.Duration `envconfig:"COURSES_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"COURSES_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"COURSES_REDIS_WRITE_TIMEOUT" default:"3s"`
	PoolSize     int           `envconfig:"COURSES_REDIS_POOL_SIZE" default:"10"`
}

// ScannerConfig bounds the simulated scan delay window.
type ScannerConfig struct {
	MinDelay   time.Duration `envconfig:"COURSES_SCANNER_MIN_DELAY" default:"1s"`
	MaxDelay   time.Duration `envconfig:"COURSES_SCANNER_MAX_DELAY" default:"3s"`
	SessionTTL time.Duration `envconfig:"COURSES_SCANNER_SESSION_TTL" default:"2h"`
}

func (s ScannerConfig) validate() error {
	if s.MinDelay < 0 || s.MaxDelay < s.MinDelay {
		return fmt.Errorf("scanner delay window invalid: min=%s max=%s", s.MinDelay, s.MaxDelay)
	}
	return nil
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"COURSES_FEATURE_AUTO_MIGRATE" default:"true"`
	AutoSeed    bool `envconfig:"COURSES_FEATURE_AUTO_SEED" default:"true"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if db.IsSQLite() {
		db.DSN = DefaultSQLitePath
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
