package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/num30/config"
)

type Config struct {
	RunAddress  string   `default:":8080" envvar:"RUN_ADDR"`
	LogLevel    string   `default:"info" flag:"loglevel" envvar:"LOGLEVEL"`
	DB          Database `default:"{}"`
	RedisURL    string   `envvar:"REDIS_URL"`
	CacheExpiry int      `default:"3600" envvar:"CACHE_EXPIRY"`
	Uploads     Uploads  `default:"{}"`
	Admin       Admin    `default:"{}"`
}

type Database struct {
	Host     string `default:"localhost" validate:"required" envvar:"DB_HOST"`
	Port     int    `default:"5434" envvar:"DB_PORT"`
	Password string `default:"banner_db" validate:"required" envvar:"DB_PASS"`
	DbName   string `default:"banner_db" envvar:"DB_NAME"`
	Username string `default:"banner_db" envvar:"DB_USERNAME"`
}

// Uploads is where banner images live on disk and the public path prefix
// they are served under.
type Uploads struct {
	Dir string `default:"./uploads" envvar:"UPLOADS_DIR"`
	URL string `default:"/uploads" envvar:"UPLOADS_URL"`
}

// Admin configures the admin panel's REST client.
type Admin struct {
	APIBaseURL string `default:"http://localhost:8080/api/v1" envvar:"ADMIN_API_URL"`
	APITimeout int    `default:"15" envvar:"ADMIN_API_TIMEOUT"`
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheExpiry) * time.Second
}

func (a Admin) Timeout() time.Duration {
	return time.Duration(a.APITimeout) * time.Second
}

func MustBuild(cfgFile string) *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment", "error", err)
	}

	var conf Config
	err := config.NewConfReader(cfgFile).Read(&conf)
	if err != nil {
		panic(err)
	}

	return &conf
}
