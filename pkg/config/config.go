package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "FLORIST"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	RateLimit    RateLimitConfig
	Translate    TranslateConfig
	Uploads      UploadsConfig
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
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FLORIST_APP_ENV" required:"true"`
	Port         string `envconfig:"FLORIST_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"FLORIST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FLORIST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FLORIST_DB_DSN"`
	Driver string `envconfig:"FLORIST_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"FLORIST_DB_HOST"`
	Port     int    `envconfig:"FLORIST_DB_PORT" default:"5432"`
	User     string `envconfig:"FLORIST_DB_USER"`
	Password string `envconfig:"FLORIST_DB_PASSWORD"`
	Name     string `envconfig:"FLORIST_DB_NAME"`
	SSLMode  string `envconfig:"FLORIST_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FLORIST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FLORIST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FLORIST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FLORIST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FLORIST_REDIS_URL"`
	Address      string        `envconfig:"FLORIST_REDIS_ADDR"`
	Password     string        `envconfig:"FLORIST_REDIS_PASSWORD"`
	DB           int           `envconfig:"FLORIST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FLORIST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FLORIST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FLORIST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FLORIST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FLORIST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"FLORIST_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"FLORIST_JWT_ISSUER" default:"florist-backend"`
	ExpirationMinutes int    `envconfig:"FLORIST_JWT_EXPIRATION_MINUTES" default:"10080"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FLORIST_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FLORIST_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FLORIST_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FLORIST_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FLORIST_ARGON_KEY_LEN" default:"32"`
}

type RateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"FLORIST_RATE_LIMIT_LOGIN_WINDOW" default:"15m"`
	LoginIPLimit       int           `envconfig:"FLORIST_RATE_LIMIT_LOGIN_IP_LIMIT" default:"10"`
	LoginUsernameLimit int           `envconfig:"FLORIST_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"10"`
	OrderWindow        time.Duration `envconfig:"FLORIST_RATE_LIMIT_ORDER_WINDOW" default:"1m"`
	OrderIPLimit       int           `envconfig:"FLORIST_RATE_LIMIT_ORDER_IP_LIMIT" default:"10"`
}

type TranslateConfig struct {
	APIKey      string        `envconfig:"FLORIST_TRANSLATE_API_KEY"`
	CallTimeout time.Duration `envconfig:"FLORIST_TRANSLATE_CALL_TIMEOUT" default:"10s"`
}

type UploadsConfig struct {
	Dir         string `envconfig:"FLORIST_UPLOADS_DIR" default:"uploads"`
	BaseURL     string `envconfig:"FLORIST_UPLOADS_BASE_URL" default:"/uploads"`
	MaxUploadMB int    `envconfig:"FLORIST_MAX_UPLOAD_MB" default:"5"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"FLORIST_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		"FLORIST_DB_HOST": db.Host,
		"FLORIST_DB_USER": db.User,
		"FLORIST_DB_NAME": db.Name,
	}
	for _, key := range []string{"FLORIST_DB_HOST", "FLORIST_DB_USER", "FLORIST_DB_NAME"} {
		if values[key] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either FLORIST_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
