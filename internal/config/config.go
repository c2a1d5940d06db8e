package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	APICompletion = "completion"
	APIChat       = "chat"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	HTTP     HTTP   `yaml:"http"`
	AI       AI     `yaml:"ai"`
	Redis    Redis  `yaml:"redis"`
}

type HTTP struct {
	ReadTimeout  time.Duration `yaml:"read-timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write-timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"60s"`
	IdleTimeout  time.Duration `yaml:"idle-timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"30s"`
}

// AI - inference backend settings. Any OpenAI-compatible server works.
type AI struct {
	API       string `yaml:"api" env:"AI_API" env-default:"completion"`
	BaseURL   string `yaml:"base-url" env:"AI_BASE_URL" env-default:"http://localhost:8000/v1"`
	APIKey    string `yaml:"api-key" env:"AI_API_KEY"`
	Model     string `yaml:"model" env:"AI_MODEL" env-default:"tiiuae/falcon-rw-1b"`
	MaxTokens int    `yaml:"max-tokens" env:"AI_MAX_TOKENS" env-default:"3"`
	Mark      string `yaml:"mark" env:"AI_MARK" env-default:"O"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.AI.API {
	case APICompletion, APIChat:
	default:
		return fmt.Errorf("ai.api must be %q or %q, got %q", APICompletion, APIChat, that.AI.API)
	}

	if that.AI.Model == "" {
		return fmt.Errorf("ai.model is empty")
	}

	if that.AI.MaxTokens <= 0 {
		return fmt.Errorf("ai.max-tokens must be positive, got %d", that.AI.MaxTokens)
	}

	if that.AI.Mark != "X" && that.AI.Mark != "O" {
		return fmt.Errorf("ai.mark must be X or O, got %q", that.AI.Mark)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
