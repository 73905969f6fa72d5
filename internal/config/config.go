package config

import (
	"os"
	"time"

	"codeberg.org/mutker/senecd/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultInterval is the default collection interval in seconds.
	DefaultInterval = 60
	// MinInterval is the shortest collection interval the daemon accepts.
	MinInterval = 10
	// DefaultLogLevel is used when no log level is configured.
	DefaultLogLevel = "info"

	envConfigFile = "SENECD_CONFIG"
)

type Config struct {
	Host     string `mapstructure:"host"`
	Interval int    `mapstructure:"interval"`
	LogLevel string `mapstructure:"log_level"`
	Debug    bool   `mapstructure:"debug"`
	Verbose  bool   `mapstructure:"verbose"`
}

// PollInterval returns the configured interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// Validate checks the loaded configuration values.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.Interval < MinInterval {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}

	return nil
}

// Load reads configuration from the config file, environment and command
// line flags, in increasing order of precedence. The config file path is
// taken from SENECD_CONFIG when set, otherwise /etc/senecd.toml is tried.
// Load builds a fresh flag set on every call so it stays re-entrant for
// tests.
func Load() (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("host", "")
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("log_level", DefaultLogLevel)

	fs := pflag.NewFlagSet("senecd", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.String("host", "", "Address of the device to poll")
	fs.Int("interval", DefaultInterval, "Collection interval in seconds")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	for key, flag := range map[string]string{
		"host":      "host",
		"interval":  "interval",
		"log_level": "log-level",
		"debug":     "debug",
		"verbose":   "verbose",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix("SENECD")
	v.AutomaticEnv()

	if path := os.Getenv(envConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	} else {
		v.SetConfigName("senecd")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
