package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DevJWTSecret is used when JWT_SECRET is not set outside production.
const DevJWTSecret = "dev-secret-change-in-production"

const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

type Config struct {
	Port           string        `yaml:"port"`
	Env            string        `yaml:"env"`
	LogLevel       string        `yaml:"log_level"`
	Storage        string        `yaml:"storage"`
	DatabaseDSN    string        `yaml:"database_dsn"`
	JWTSecret      string        `yaml:"jwt_secret"`
	JWTExpiry      time.Duration `yaml:"jwt_expires"`
	AdminLogin     string        `yaml:"admin_login"`
	AdminPassword  string        `yaml:"admin_password"`
	PasswordHash   string        `yaml:"password_hash"`
	LoginRateLimit float64       `yaml:"login_rate_limit"`
	LoginRateBurst int           `yaml:"login_rate_burst"`
	CORSOrigins    []string      `yaml:"cors_origins"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Port:           "8080",
		Env:            "development",
		LogLevel:       "info",
		Storage:        StorageMemory,
		DatabaseDSN:    "root:password@tcp(127.0.0.1:3306)/bloggers?parseTime=true",
		JWTExpiry:      time.Hour,
		AdminLogin:     "admin",
		AdminPassword:  "qwerty",
		PasswordHash:   "bcrypt",
		LoginRateLimit: 1,
		LoginRateBurst: 5,
		CORSOrigins:    []string{"*"},
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// CONFIG_FILE if set, then environment variables.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DevJWTSecret
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	if cfg.JWTSecret == DevJWTSecret {
		slog.Warn("JWT_SECRET not set, using development secret")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.Env, "ENV")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.Storage, "STORAGE")
	setString(&cfg.DatabaseDSN, "DATABASE_DSN")
	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.AdminLogin, "ADMIN_LOGIN")
	setString(&cfg.AdminPassword, "ADMIN_PASSWORD")
	setString(&cfg.PasswordHash, "PASSWORD_HASH")

	if v := os.Getenv("JWT_EXPIRES"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("JWT_EXPIRES: %w", err)
		}
		cfg.JWTExpiry = d
	}
	if v := os.Getenv("LOGIN_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LOGIN_RATE_LIMIT: %w", err)
		}
		cfg.LoginRateLimit = f
	}
	if v := os.Getenv("LOGIN_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LOGIN_RATE_BURST: %w", err)
		}
		cfg.LoginRateBurst = n
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}
	switch c.Storage {
	case StorageMemory:
	case StorageMySQL:
		if c.DatabaseDSN == "" {
			errs = append(errs, errors.New("database_dsn is required when storage is \"mysql\""))
		}
	default:
		errs = append(errs, fmt.Errorf("storage must be %q or %q, got %q", StorageMemory, StorageMySQL, c.Storage))
	}
	switch c.PasswordHash {
	case "bcrypt", "argon2id":
	default:
		errs = append(errs, fmt.Errorf("password_hash must be \"bcrypt\" or \"argon2id\", got %q", c.PasswordHash))
	}
	if c.JWTExpiry <= 0 {
		errs = append(errs, fmt.Errorf("jwt_expires must be > 0, got %s", c.JWTExpiry))
	}
	if c.AdminLogin == "" || c.AdminPassword == "" {
		errs = append(errs, errors.New("admin_login and admin_password are required"))
	}
	if c.LoginRateLimit <= 0 || c.LoginRateBurst <= 0 {
		errs = append(errs, errors.New("login_rate_limit and login_rate_burst must be > 0"))
	}
	if c.IsProduction() && c.JWTSecret == DevJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production environment"))
	}

	return errors.Join(errs...)
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
