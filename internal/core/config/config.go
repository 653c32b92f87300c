package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultJWTSecret 仅供本地开发；生产环境必须通过 JWT_SECRET 覆盖
const DefaultJWTSecret = "your-secret-key-change-in-production"

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int   `mapstructure:"read_timeout_sec"`
	WriteTimeoutSec int   `mapstructure:"write_timeout_sec"`
	IdleTimeoutSec  int   `mapstructure:"idle_timeout_sec"`
	MaxInFlight     int64 `mapstructure:"max_in_flight"`
	MaxBodyBytes    int64 `mapstructure:"max_body_bytes"`
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level      string
	JSON       bool
	File       string // 非空则同时写文件并切割
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int `mapstructure:"access_token_ttl_min"` // 0 = 不过期
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int    `mapstructure:"conn_max_lifetime_min"`
	AutoMigrate        bool   `mapstructure:"auto_migrate"`
	LogLevel           string `mapstructure:"log_level"`
}

type Config struct {
	App App
	Log Log
	JWT JWT
	DB  DB
}

// UsingDefaultSecret 是否仍在使用占位密钥
func (c *Config) UsingDefaultSecret() bool { return c.JWT.Secret == DefaultJWTSecret }

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "canny-backend")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 3001)
	v.SetDefault("app.http.read_timeout_sec", 15)
	v.SetDefault("app.http.write_timeout_sec", 15)
	v.SetDefault("app.http.idle_timeout_sec", 60)
	v.SetDefault("app.http.max_in_flight", 300)
	v.SetDefault("app.http.max_body_bytes", 1<<20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)

	v.SetDefault("jwt.secret", DefaultJWTSecret)
	v.SetDefault("jwt.issuer", "")
	v.SetDefault("jwt.access_token_ttl_min", 0)

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.dsn", "postgresql://localhost/canny")
	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime_min", 60)
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("db.log_level", "warn")
}

// Load 读取配置：默认值 < YAML 文件（可选） < 环境变量。
// 除 APP_ 前缀外，兼容 DATABASE_URL / JWT_SECRET / PORT。
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv("db.dsn", "DATABASE_URL")
	_ = v.BindEnv("jwt.secret", "JWT_SECRET")
	_ = v.BindEnv("app.http.port", "PORT")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
