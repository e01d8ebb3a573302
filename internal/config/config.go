package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"sasku-server/internal/util"
)

// store drivers
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config provides configuration for the Sasku server
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Store Store `yaml:"store"`
	Game  struct {
		GameEndThreshold int  `yaml:"gameEndThreshold" envconfig:"game_end_threshold"`
		PictureExchange  bool `yaml:"pictureExchange" envconfig:"picture_exchange"`
		PokkBonus        int  `yaml:"pokkBonus" envconfig:"pokk_bonus"`
	} `yaml:"game"`
	Bots Bots `yaml:"bots"`
}

// Bots configures the automated seats
type Bots struct {
	Level string `yaml:"level"`
	// DelayMS paces the bots of a watched session
	DelayMS int `yaml:"delayMs" envconfig:"delay_ms"`
}

// Delay returns DelayMS as a duration
func (b Bots) Delay() time.Duration {
	if b.DelayMS <= 0 {
		return 0
	}

	return time.Duration(b.DelayMS) * time.Millisecond
}

// Store configures where session state is persisted
type Store struct {
	Driver         string `yaml:"driver"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	// TTLSeconds expires saved sessions in Redis; 0 keeps them forever
	TTLSeconds int `yaml:"ttlSeconds" envconfig:"ttl_seconds"`
	Redis      struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Store.Driver = DriverMemory
	cfg.Store.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	cfg.Store.MigrationsPath = "./sql"
	cfg.Store.Redis.Addr = "localhost:6379"
	cfg.Game.GameEndThreshold = 16
	cfg.Bots.Level = "policy"
	cfg.Bots.DelayMS = 750
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional unless SASKU_CONFIG_FILE names one
func Load() error {
	configFile := util.Getenv("SASKU_CONFIG_FILE", "")
	explicit := configFile != ""
	if !explicit {
		configFile = "config.yaml"
	}

	cfg := DefaultConfig()
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case explicit || !os.IsNotExist(err):
		return err
	}

	if err := envconfig.Process("sasku", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
