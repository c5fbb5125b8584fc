package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const DefaultPath = "./configs/config.local.yaml"

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
	// per-request limits
	RequestTimeoutSec int
	MaxBodyBytes      int64
	RateLimitRPS      float64
	RateLimitBurst    int
	MaxConcurrent     int64
	CORSOrigins       []string `mapstructure:"corsOrigins"`
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type LogFile struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

type JWT struct {
	Secret   string
	Issuer   string
	TTLHours int `mapstructure:"ttlHours"`
}

type Admin struct {
	Username     string
	Password     string
	PasswordHash string `mapstructure:"passwordHash"`
}

type Store struct {
	Path string
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	Admin Admin
	Store Store
}

func (c *Config) IsProduction() bool { return strings.EqualFold(c.App.Env, "production") }

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "inventory-api")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readTimeoutSec", 5)
	v.SetDefault("app.http.writeTimeoutSec", 10)
	v.SetDefault("app.http.idleTimeoutSec", 60)
	v.SetDefault("app.http.requestTimeoutSec", 10)
	v.SetDefault("app.http.maxBodyBytes", 1<<20)
	v.SetDefault("app.http.rateLimitRPS", 50)
	v.SetDefault("app.http.rateLimitBurst", 100)
	v.SetDefault("app.http.maxConcurrent", 64)
	v.SetDefault("app.http.corsOrigins", []string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file.enable", false)
	v.SetDefault("log.file.filename", "logs/app.log")
	v.SetDefault("log.file.maxSizeMB", 50)
	v.SetDefault("log.file.maxBackups", 5)
	v.SetDefault("log.file.maxAgeDays", 14)
	v.SetDefault("log.file.compress", true)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "inventory-api")
	v.SetDefault("jwt.ttlHours", 24)

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("admin.passwordHash", "")

	v.SetDefault("store.path", "data/items.json")
}

// Load reads the YAML file at path (or CONFIG_PATH, or DefaultPath) on top of
// the built-in defaults. A missing file is fine; a broken one is not.
// APP_* variables override file values, and the plain ADMIN_USERNAME,
// ADMIN_PASSWORD, JWT_SECRET and DATA_PATH variables are honored too.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = DefaultPath
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	binds := map[string][]string{
		"admin.username":     {"APP_ADMIN_USERNAME", "ADMIN_USERNAME"},
		"admin.password":     {"APP_ADMIN_PASSWORD", "ADMIN_PASSWORD"},
		"admin.passwordHash": {"APP_ADMIN_PASSWORDHASH", "ADMIN_PASSWORD_HASH"},
		"jwt.secret":         {"APP_JWT_SECRET", "JWT_SECRET"},
		"store.path":         {"APP_STORE_PATH", "DATA_PATH"},
	}
	for key, envs := range binds {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, errors.Wrapf(err, "bind env %s", key)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &c, nil
}
