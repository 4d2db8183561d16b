package config

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel       string
	Host           string
	Port           int
	MetricsPort    int
	PollIntervalMs int
}

func (config *Config) GetLogLevel() (log.Level, error) {
	return log.ParseLevel(config.LogLevel)
}

// PollInterval is the minimum time between poll settles; the loop never
// has more than one poll in flight.
func (config *Config) PollInterval() time.Duration {
	return time.Duration(config.PollIntervalMs) * time.Millisecond
}

func GetConfig(configPath string) (*Config, error) {
	config := &Config{
		LogLevel:       "info",
		Host:           "localhost",
		Port:           8880,
		MetricsPort:    9880,
		PollIntervalMs: 2500,
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	// AutomaticEnv alone does not feed Unmarshal; each key is bound
	for _, key := range []string{"LogLevel", "Host", "Port", "MetricsPort", "PollIntervalMs"} {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "failed to bind env for %s", key)
		}
	}
	err := v.ReadInConfig()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to ReadInConfig at %s", configPath)
	}

	err = v.Unmarshal(config)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config at %s", configPath)
	}

	if config.PollIntervalMs <= 0 {
		return nil, errors.Errorf("PollIntervalMs must be positive, got %d", config.PollIntervalMs)
	}
	return config, nil
}
