package rewards

import (
	"time"
)

// Config defines configuration of application. Values are parsed from environment variables.
type Config struct {
	ServerPort                    int           `split_words:"true" default:"11111"`
	ServerHost                    string        `split_words:"true" default:"localhost"`
	ServerGracefulShutdownTimeout time.Duration `split_words:"true" default:"3s"`
	InitDebug                     bool          `split_words:"true"`
	StoreBackend                  string        `split_words:"true" default:"memory"`
	RedisAddr                     string        `split_words:"true" default:"localhost:6379"`
	RedisPassword                 string        `split_words:"true"`
	RedisDB                       int           `split_words:"true"`
	RedisConnectRetries           uint64        `split_words:"true" default:"5"`
	SeedFile                      string        `split_words:"true"`
	MetricsEnabled                bool          `split_words:"true" default:"true"`
	MetricsPort                   int           `split_words:"true" default:"8080"`
	MetricsPath                   string        `split_words:"true" default:"/metrics"`
}

const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)
