package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/fr4nk3nst1ner/devsalary/internal/logger"
)

// ErrMissingAPIKey is returned when no SuperJob key is configured.
var ErrMissingAPIKey = errors.New("superjob api key is required (set " + EnvAPIKey + ")")

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if len(c.Languages) == 0 {
		return errors.New("at least one language is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative, got %s", c.HTTP.Timeout)
	}
	if c.HTTP.Proxy != "" {
		if err := validateURL(c.HTTP.Proxy); err != nil {
			return fmt.Errorf("http.proxy: %w", err)
		}
	}
	if err := validateURL(c.HeadHunter.BaseURL); err != nil {
		return fmt.Errorf("headhunter.base_url: %w", err)
	}
	if err := validateURL(c.SuperJob.BaseURL); err != nil {
		return fmt.Errorf("superjob.base_url: %w", err)
	}
	if c.SuperJob.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute url", raw)
	}
	return nil
}
