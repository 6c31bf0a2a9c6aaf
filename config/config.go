// Package config loads ledger settings from defaults, an optional YAML file
// and POWLEDGER_ prefixed environment variables, in increasing priority.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/pow-ledger/ledger"
)

const EnvPrefix = "POWLEDGER"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Difficulty       int       `mapstructure:"difficulty"`
	Reward           int64     `mapstructure:"reward"`
	GenesisTimestamp string    `mapstructure:"genesis_timestamp"`
	Log              LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// File enables a rotating log file instead of terminal output.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("difficulty", ledger.DefaultDifficulty)
	v.SetDefault("reward", ledger.DefaultReward)
	v.SetDefault("genesis_timestamp", ledger.DefaultGenesisTimestamp)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// Load reads the configuration. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Difficulty < 0 || c.Difficulty > ledger.HashLength {
		return errors.Wrapf(ErrInvalidConfig, "difficulty must be in [0, %d], got %d", ledger.HashLength, c.Difficulty)
	}
	if c.Reward < 0 {
		return errors.Wrapf(ErrInvalidConfig, "reward must not be negative, got %d", c.Reward)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown log level %q", c.Log.Level)
	}
	return nil
}

// LedgerOptions translates the configuration into ledger options.
func (c Config) LedgerOptions() []ledger.Option {
	return []ledger.Option{
		ledger.WithDifficulty(c.Difficulty),
		ledger.WithReward(c.Reward),
		ledger.WithGenesisTimestamp(c.GenesisTimestamp),
	}
}
