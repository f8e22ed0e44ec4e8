package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const envPrefix = "ALLOCATOR_"

type Config struct {
	Primary Primary       `koanf:"primary"`
	Server  ServerConfig  `koanf:"server"`
	Policy  PolicyConfig  `koanf:"policy"`
	Logger  LoggerConfig  `koanf:"logger"`
	Metrics MetricsConfig `koanf:"metrics"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type PolicyConfig struct {
	PointsMethodID         string `koanf:"points_method_id" validate:"required"`
	MinPointsPercent       int    `koanf:"min_points_percent" validate:"gte=0,lte=100"`
	PartialDiscountPercent int    `koanf:"partial_discount_percent" validate:"gte=0,lte=100"`
}

// MetricsConfig controls the /metrics endpoint. KnownMethods get their own
// label on the charged amount counter; the points method always does.
type MetricsConfig struct {
	Enabled      bool     `koanf:"enabled"`
	Namespace    string   `koanf:"namespace" validate:"required"`
	KnownMethods []string `koanf:"known_methods" validate:"omitempty,dive,required"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                     "development",
		"server.port":                     "8080",
		"server.read_timeout":             "10s",
		"server.write_timeout":            "10s",
		"server.idle_timeout":             "60s",
		"server.request_timeout":          "5s",
		"policy.points_method_id":         "PUNKTY",
		"policy.min_points_percent":       10,
		"policy.partial_discount_percent": 10,
		"logger.level":                    "info",
		"logger.format":                   "text",
		"metrics.enabled":                 true,
		"metrics.namespace":               "allocator",
	}
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// and ALLOCATOR_ environment variables, in that order of precedence.
func LoadConfig(path string) (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
