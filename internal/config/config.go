package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	DataPath        string `mapstructure:"data_path"`
	ListenAddr      string `mapstructure:"listen_addr"`
	SocketPath      string `mapstructure:"socket_path"`
	RedisURL        string `mapstructure:"redis_url"`
	SerializeWrites bool   `mapstructure:"serialize_writes"`
	PprofAddr       string `mapstructure:"pprof_addr"`
}

// Load reads defaults, then the optional YAML file at path, then environment
// variables (DATA_PATH, LISTEN_ADDR, ...), each overriding the previous.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("data_path", "./persistent/data.json")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("socket_path", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("serialize_writes", false)
	v.SetDefault("pprof_addr", "")
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config file %s not found", path)
		}
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.DataPath == "" {
		return Config{}, errors.New("data_path must not be empty")
	}
	return cfg, nil
}
