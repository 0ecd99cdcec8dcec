// Package config loads the CLI's optional settings file: default toggles
// for the chiitoitsu/kokushi hand shapes and aka dora, plus the logging
// level. Without a config path the defaults are used; a path that cannot be
// read is an error.
package config

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds the settings read from file/env, layered under the CLI's own
// flags (flags always win; see cmd/shanten).
type Config struct {
	Log     LogConf  `mapstructure:"log"`
	Shanten HandConf `mapstructure:"shanten"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type HandConf struct {
	Chiitoitsu bool `mapstructure:"chiitoitsu"`
	Kokushi    bool `mapstructure:"kokushi"`
	AkaDora    bool `mapstructure:"akaDora"`
}

// Default returns the configuration used when no file is supplied: both
// alternate hand shapes and aka dora on, info-level logging.
func Default() Config {
	return Config{
		Log:     LogConf{Level: "info"},
		Shanten: HandConf{Chiitoitsu: true, Kokushi: true, AkaDora: true},
	}
}

// Load reads configFile (any format viper supports: yaml, toml, json, ...)
// over the defaults. An empty configFile returns the defaults untouched.
// When onChange is non-nil the file is watched and onChange is invoked with
// the freshly reloaded value whenever the file is rewritten.
func Load(configFile string, onChange func(Config)) (Config, error) {
	cfg := Default()
	if configFile == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("shanten.chiitoitsu", cfg.Shanten.Chiitoitsu)
	v.SetDefault("shanten.kokushi", cfg.Shanten.Kokushi)
	v.SetDefault("shanten.akaDora", cfg.Shanten.AkaDora)

	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if onChange != nil {
		v.WatchConfig()
		v.OnConfigChange(func(_ fsnotify.Event) {
			var reloaded Config
			if err := v.Unmarshal(&reloaded); err == nil {
				onChange(reloaded)
			}
		})
	}

	return cfg, nil
}
