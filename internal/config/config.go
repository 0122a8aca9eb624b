package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	MySQL  MySQLConfig
	Redis  RedisConfig
	JWT    JWTConfig
	SMTP   SMTPConfig
	Kafka  KafkaConfig
}

type ServerConfig struct {
	Addr     string
	BaseURL  string `mapstructure:"base_url"`
	MediaDir string `mapstructure:"media_dir"`
}

type MySQLConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	AccessSecret  string `mapstructure:"access_secret"`
	RefreshSecret string `mapstructure:"refresh_secret"`
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Cfg 全局可访问的配置实例
var Cfg *Config

// Load 从 configs/config.yaml 加载配置并填充到 Cfg
func Load() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("config file not found: %w", err)
		}
		return err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg
	return nil
}
