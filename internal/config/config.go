package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aretw0/cellview/pkg/render"
	"gopkg.in/yaml.v3"
)

const (
	EnvMaxPayloadSize = "CELLVIEW_MAX_PAYLOAD_SIZE"
	EnvRedisAddr      = "CELLVIEW_REDIS_ADDR"
)

// Config is the structure of cellview.yaml.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
	Decode DecodeConfig `yaml:"decode"`
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type RenderConfig struct {
	// Escape is "text" (default) or "none".
	Escape       string `yaml:"escape"`
	SanitizeHTML bool   `yaml:"sanitize_html"`
	// Highlight is a chroma style name; empty disables highlighting.
	Highlight string `yaml:"highlight"`
}

type DecodeConfig struct {
	MaxPayloadBytes int `yaml:"max_payload_bytes"`
}

type ServerConfig struct {
	Addr    string `yaml:"addr"`
	Metrics bool   `yaml:"metrics"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Render: RenderConfig{Escape: "text"},
		Server: ServerConfig{Addr: ":8080", Metrics: true},
		Redis:  RedisConfig{Prefix: "cellview:region:"},
	}
}

// Load reads a YAML config file over the defaults and applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// treated as "no config"
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot be applied.
func (c Config) Validate() error {
	if _, ok := render.ParseEscapePolicy(c.Render.Escape); !ok {
		return fmt.Errorf("render.escape: unknown policy %q (want text or none)", c.Render.Escape)
	}
	if c.Decode.MaxPayloadBytes < 0 {
		return fmt.Errorf("decode.max_payload_bytes: must not be negative")
	}
	return nil
}

// EscapePolicy returns the parsed render.escape setting.
func (c Config) EscapePolicy() render.EscapePolicy {
	p, _ := render.ParseEscapePolicy(c.Render.Escape)
	return p
}

func applyEnv(cfg *Config) {
	if val := os.Getenv(EnvMaxPayloadSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			cfg.Decode.MaxPayloadBytes = size
		}
	}
	if val := os.Getenv(EnvRedisAddr); val != "" {
		cfg.Redis.Addr = val
	}
}
