package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB     DBConfig     `mapstructure:"db"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Cookie CookieConfig `mapstructure:"cookie"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type CookieConfig struct {
	Secure bool `mapstructure:"secure"`
}

func Load() (*Config, error) {
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/configs")
	viper.SetConfigName("settings")
	viper.SetConfigType("yml")

	viper.SetDefault("http.addr", ":8080")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
