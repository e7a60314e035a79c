package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/hexboard/internal/logging"
)

const (
	configFileName = "hexboard"
	envPrefix      = "HEXBOARD"

	cfgKeyLogLevel = "log.level"
)

// config is the CLI configuration. Keys follow the mapstructure tags, so
// log.level is also HEXBOARD_LOG_LEVEL in the environment.
type config struct {
	Log logging.Config `mapstructure:"log"`
}

// loadConfig reads path, or ./hexboard.{yaml,json,toml} when path is empty,
// then the environment, then the --log-level flag. A missing default file
// is not an error; a missing explicit file is.
func loadConfig(path string, levelFlag *pflag.Flag) (config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.dev", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if levelFlag != nil {
		if err := v.BindPFlag(cfgKeyLogLevel, levelFlag); err != nil {
			return config{}, fmt.Errorf("bind --log-level: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func newLogger(cfg config) *zap.Logger {
	return logging.New(appName, cfg.Log)
}
