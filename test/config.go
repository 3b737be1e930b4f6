package test

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// CHAT_TEST_REDIS_ADDR points at a disposable Redis instance.
	// Integration tests are skipped when it is unset.
	RedisAddr     string `envconfig:"CHAT_TEST_REDIS_ADDR"`
	RedisPassword string `envconfig:"CHAT_TEST_REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"CHAT_TEST_REDIS_DB" default:"9"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
