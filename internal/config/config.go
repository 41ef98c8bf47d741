package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Storage    string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`

	// origins other than the server's own that may open a websocket
	AllowedOrigins []string `yaml:"allowed-origins" env:"ALLOWED_ORIGINS" env-separator:","`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	GuardOccupiedCells bool          `yaml:"guard-occupied-cells" env:"GAME_GUARD_OCCUPIED_CELLS" env-default:"false"`
	SessionTTL         time.Duration `yaml:"session-ttl" env:"GAME_SESSION_TTL" env-default:"30m"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Storage != StorageMemory && config.Storage != StorageRedis {
		return nil, fmt.Errorf("unknown storage %q", config.Storage)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
