package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"env"`
	Port           int    `mapstructure:"port"`
	ShutdownSecond int    `mapstructure:"shutdown_seconds"`
}

type MongoConf struct {
	URI               string `mapstructure:"uri"`
	Database          string `mapstructure:"database"`
	ContentCollection string `mapstructure:"content_collection"`
	AdminCollection   string `mapstructure:"admin_collection"`
}

type AdminConf struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type AuthConf struct {
	Secret       string `mapstructure:"secret"`
	CookieDomain string `mapstructure:"cookie_domain"`
}

type AWSConf struct {
	Region   string `mapstructure:"region"`
	Bucket   string `mapstructure:"bucket"`
	Endpoint string `mapstructure:"endpoint"`
}

type S3Conf struct {
	PublicRead bool `mapstructure:"public_read"`
	PresignTTL int  `mapstructure:"presign_ttl_seconds"`
}

type Config struct {
	App   AppConf   `mapstructure:"app"`
	Mongo MongoConf `mapstructure:"mongodb"`
	Admin AdminConf `mapstructure:"admin"`
	Auth  AuthConf  `mapstructure:"auth"`
	AWS   AWSConf   `mapstructure:"aws"`
	S3    S3Conf    `mapstructure:"s3"`
	Log   struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	// derived
	ShutdownTimeout time.Duration
}

func (c *Config) Production() bool { return c.App.Env == "production" }

// Load reads the optional yaml file at path, then lets environment
// variables override the sensitive values. A missing file is not an
// error so the service can run on env vars alone.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v := viper.New()
			v.SetConfigFile(path)
			v.AutomaticEnv()
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
			if err := v.Unmarshal(&cfg); err != nil {
				return nil, err
			}
		}
	}

	applyEnv(&cfg)

	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}
	if cfg.App.ShutdownSecond == 0 {
		cfg.App.ShutdownSecond = 15
	}
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second

	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "contentdb"
	}
	if cfg.Mongo.ContentCollection == "" {
		cfg.Mongo.ContentCollection = "contents"
	}
	if cfg.Mongo.AdminCollection == "" {
		cfg.Mongo.AdminCollection = "admins"
	}
	if cfg.Auth.Secret == "" {
		cfg.Auth.Secret = "secret"
	}
	if cfg.S3.PresignTTL == 0 {
		cfg.S3.PresignTTL = 600
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.App.Env = v
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		cfg.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("COOKIE_DOMAIN"); v != "" {
		cfg.Auth.CookieDomain = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.AWS.Region = v
	}
	if v := os.Getenv("AWS_BUCKET"); v != "" {
		cfg.AWS.Bucket = v
	}
}
