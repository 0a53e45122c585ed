package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type JWT struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	AccessExpMin  int
	RefreshExpDay int
}

type Redis struct {
	Addr string
	Pass string
	DB   int
}

type S3 struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	URLBase   string
}

type Config struct {
	HTTP  HTTP
	DB    DB
	JWT   JWT
	Redis Redis
	S3    S3
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8080)
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "alumnet")
	v.SetDefault("jwt.issuer", "alumnet")
	v.SetDefault("jwt.access_exp_min", 15)
	v.SetDefault("jwt.refresh_exp_day", 10)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("s3.region", "us-east-1")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB:   DB{Host: v.GetString("db.host"), Port: v.GetInt("db.port"), User: v.GetString("db.user"), Pass: v.GetString("db.pass"), Name: v.GetString("db.name")},
		JWT: JWT{
			AccessSecret:  v.GetString("jwt.access_secret"),
			RefreshSecret: v.GetString("jwt.refresh_secret"),
			Issuer:        v.GetString("jwt.issuer"),
			AccessExpMin:  v.GetInt("jwt.access_exp_min"),
			RefreshExpDay: v.GetInt("jwt.refresh_exp_day"),
		},
		Redis: Redis{Addr: v.GetString("redis.addr"), Pass: v.GetString("redis.pass"), DB: v.GetInt("redis.db")},
		S3: S3{
			Bucket:    v.GetString("s3.bucket"),
			Region:    v.GetString("s3.region"),
			AccessKey: v.GetString("s3.access_key"),
			SecretKey: v.GetString("s3.secret_key"),
			URLBase:   v.GetString("s3.url_base"),
		},
	}
	if cfg.JWT.AccessSecret == "" {
		cfg.JWT.AccessSecret = "dev-access-secret"
	}
	if cfg.JWT.RefreshSecret == "" {
		cfg.JWT.RefreshSecret = "dev-refresh-secret"
	}
	if cfg.JWT.AccessExpMin <= 0 {
		cfg.JWT.AccessExpMin = 15
	}
	if cfg.JWT.RefreshExpDay <= 0 {
		cfg.JWT.RefreshExpDay = 10
	}
	return cfg, nil
}
