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
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	SMTP          SMTPConfig
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
	Env          string `envconfig:"SHIFTLINE_APP_ENV" required:"true"`
	Port         string `envconfig:"SHIFTLINE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHIFTLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHIFTLINE_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"SHIFTLINE_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SHIFTLINE_DB_DSN"`
	Driver string `envconfig:"SHIFTLINE_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"SHIFTLINE_DB_HOST"`
	Port     int    `envconfig:"SHIFTLINE_DB_PORT" default:"5432"`
	User     string `envconfig:"SHIFTLINE_DB_USER"`
	Password string `envconfig:"SHIFTLINE_DB_PASSWORD"`
	Name     string `envconfig:"SHIFTLINE_DB_NAME"`
	SSLMode  string `envconfig:"SHIFTLINE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHIFTLINE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHIFTLINE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHIFTLINE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHIFTLINE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SHIFTLINE_REDIS_URL"`
	Address      string        `envconfig:"SHIFTLINE_REDIS_ADDR"`
	Password     string        `envconfig:"SHIFTLINE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHIFTLINE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHIFTLINE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHIFTLINE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHIFTLINE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHIFTLINE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHIFTLINE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SHIFTLINE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SHIFTLINE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"SHIFTLINE_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SHIFTLINE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SHIFTLINE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SHIFTLINE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SHIFTLINE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SHIFTLINE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"SHIFTLINE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"SHIFTLINE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"SHIFTLINE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"SHIFTLINE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"SHIFTLINE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"SHIFTLINE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SHIFTLINE_SMTP_HOST"`
	Port     int    `envconfig:"SHIFTLINE_SMTP_PORT" default:"587"`
	User     string `envconfig:"SHIFTLINE_SMTP_USER"`
	Password string `envconfig:"SHIFTLINE_SMTP_PASSWORD"`
	From     string `envconfig:"SHIFTLINE_SMTP_FROM"`
}

// Enabled reports whether enough SMTP settings are present to send mail.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.From != ""
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SHIFTLINE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SHIFTLINE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range discreteDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
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
