package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes environment overrides: DEVSALARY_LOG__LEVEL -> log.level.
	EnvPrefix = "DEVSALARY_"
	// EnvConfigFile names an explicit YAML config file.
	EnvConfigFile = "DEVSALARY_CONFIG"
	// EnvAPIKey carries the SuperJob application secret.
	EnvAPIKey = "SUPERJOB_API_KEY"
)

// Options controls where Load looks for files. Empty fields fall back to
// DEVSALARY_CONFIG / devsalary.yaml and .env in the working directory.
type Options struct {
	ConfigFile string
	EnvFile    string
}

// Load builds the configuration.
// Precedence (highest to lowest): env vars (.env included) > config file > defaults.
// The result is validated before it is returned.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. .env into the process environment; existing variables win
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading env file %s: %w", envFile, err)
	}

	// 3. Optional YAML file
	if path := findConfigFile(opts.ConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvAPIKey, ".", func(s string) string {
		if s == EnvAPIKey {
			return "superjob.api_key"
		}
		return ""
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", EnvAPIKey, err)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps DEVSALARY_HEADHUNTER__PER_PAGE to headhunter.per_page.
// DEVSALARY_CONFIG is a file pointer, not a key.
func envKey(s string) string {
	if s == EnvConfigFile {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// findConfigFile finds the config file to use.
// Priority: explicit path > DEVSALARY_CONFIG > devsalary.yaml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

func (c *Config) normalize() {
	langs := c.Languages[:0]
	for _, lang := range c.Languages {
		if lang = strings.TrimSpace(lang); lang != "" {
			langs = append(langs, lang)
		}
	}
	c.Languages = langs
	c.SuperJob.APIKey = strings.TrimSpace(c.SuperJob.APIKey)
}
