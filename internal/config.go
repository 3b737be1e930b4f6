package internal

import (
	"strings"
	"time"
)

type Config struct {
	RedisAddr     string `env:"REDIS_ADDR,required=true"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB,default=0"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`

	DailyMessageLimit  int           `env:"DAILY_MESSAGE_LIMIT,default=1000"`
	MaxTextLength      int           `env:"MAX_TEXT_LENGTH,default=500"`
	SendCooldown       time.Duration `env:"SEND_COOLDOWN,default=2s"`
	QuotaCheckInterval time.Duration `env:"QUOTA_CHECK_INTERVAL,default=1m"`

	AddressEndpoint  string        `env:"ADDRESS_ENDPOINT,default=https://ipapi.co/json"`
	AddressFieldPath string        `env:"ADDRESS_FIELD_PATH,default=network.ip"`
	AddressCacheTTL  time.Duration `env:"ADDRESS_CACHE_TTL,default=1h"`

	DefaultAvatarRef  string `env:"DEFAULT_AVATAR_REF,default=/AnonimUser.png"`
	ExternalAvatarRef string `env:"EXTERNAL_AVATAR_REF"`
	AdminNames        string `env:"ADMIN_NAMES"`
}

// AdminNameList splits the comma-separated ADMIN_NAMES value.
func (c Config) AdminNameList() []string {
	if c.AdminNames == "" {
		return nil
	}
	parts := strings.Split(c.AdminNames, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
