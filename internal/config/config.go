package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the application needs at startup, including the
// read-only credential table handed to the auth layer.
type Config struct {
	Addr         string  `yaml:"addr" env:"ADDR" env-default:":8080"`
	DatabaseURL  string  `yaml:"database_url" env:"DATABASE_URL" env-default:""`
	DatabaseFile string  `yaml:"database_file" env:"DATABASE_FILE" env-default:"bizdesk.db"`
	Session      Session `yaml:"session"`
	Users        []User  `yaml:"users"`
}

type Session struct {
	Secret string        `yaml:"secret" env:"SESSION_SECRET"`
	TTL    time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
}

// User is one row of the credential table. PasswordHash is a bcrypt hash.
type User struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Role         string `yaml:"role"`
}

// MustLoad reads the config file named by the -config flag or CONFIG_PATH.
// Environment variables override file values. Panics on a broken config,
// which is the right behavior at process start.
func MustLoad() *Config {
	path := fetchConfigPath()

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			panic("config file does not exist: " + path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			panic("failed to read config: " + err.Error())
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config from environment: " + err.Error())
	}
	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
