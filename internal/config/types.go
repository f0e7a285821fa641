// Package config loads the run configuration from defaults, an optional
// YAML file, a .env file and the process environment.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Languages  []string         `koanf:"languages"`
	Workers    int              `koanf:"workers"`
	Progress   bool             `koanf:"progress"`
	Color      bool             `koanf:"color"`
	Log        LogConfig        `koanf:"log"`
	HTTP       HTTPConfig       `koanf:"http"`
	HeadHunter HeadHunterConfig `koanf:"headhunter"`
	SuperJob   SuperJobConfig   `koanf:"superjob"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level string `koanf:"level"`
}

// HTTPConfig configures the client shared by both sources.
type HTTPConfig struct {
	Timeout time.Duration `koanf:"timeout"`
	Proxy   string        `koanf:"proxy"`
}

// HeadHunterConfig configures the api.hh.ru source.
type HeadHunterConfig struct {
	Title        string `koanf:"title"`
	BaseURL      string `koanf:"base_url"`
	SearchPhrase string `koanf:"search_phrase"`
	Area         int    `koanf:"area"`
	PeriodDays   int    `koanf:"period_days"`
	Currency     string `koanf:"currency"`
	PerPage      int    `koanf:"per_page"`
}

// SuperJobConfig configures the api.superjob.ru source.
type SuperJobConfig struct {
	Title        string `koanf:"title"`
	BaseURL      string `koanf:"base_url"`
	APIKey       string `koanf:"api_key"`
	SearchPhrase string `koanf:"search_phrase"`
	Town         string `koanf:"town"`
	Count        int    `koanf:"count"`
}
