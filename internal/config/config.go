package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAppName      = "eVote"
	DefaultListenAddr   = ":3000"
	DefaultStaticDir    = "./static"
	DefaultCookieName   = "evote_session"
	DefaultCookieMaxAge = 7 * 24 * time.Hour
)

type MySQLConfig struct {
	Dsn             string `yaml:"dsn"`
	MaxIdleConns    int    `yaml:"maxIdleConns"`
	MaxOpenConns    int    `yaml:"maxOpenConns"`
	ConnMaxIdleTime int    `yaml:"connMaxIdleTime"`
	ConnMaxLifetime int    `yaml:"connMaxLifetime"`
}

type SessionConfig struct {
	SessionMaxAge  time.Duration `yaml:"sessionMaxAge"`
	CookieName     string        `yaml:"cookieName"`
	CookieHttpOnly bool          `yaml:"cookieHttpOnly"`
	CookieSecure   bool          `yaml:"cookieSecure"`
}

type Config struct {
	Debug       bool          `yaml:"debug"`
	AppName     string        `yaml:"appName"`
	ListenAddr  string        `yaml:"listenAddr"`
	StaticDir   string        `yaml:"staticDir"`
	TemplateDir string        `yaml:"templateDir"`
	RedisURL    string        `yaml:"redisURL"`
	Session     SessionConfig `yaml:"session"`
	MySQL       MySQLConfig   `yaml:"mysql"`
}

func (c *Config) Sanitize() error {
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.StaticDir == "" {
		c.StaticDir = DefaultStaticDir
	}
	if c.Session.SessionMaxAge == 0 {
		c.Session.SessionMaxAge = DefaultCookieMaxAge
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = DefaultCookieName
	}
	return nil
}

func LoadConfig(filename string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Sanitize(); err != nil {
		return nil, err
	}
	return &config, nil
}
