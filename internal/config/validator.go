package config

import (
	"fmt"
	"net/url"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the loaded configuration and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if c.API.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Message: "service base URL is required",
		})
	} else {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "api.base_url",
				Message: "must be an absolute http(s) URL",
			})
		}
	}

	if c.API.TimeoutSeconds < 1 || c.API.TimeoutSeconds > 600 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Message: "timeout_seconds must be between 1 and 600",
		})
	}

	if c.UI.Theme != "dark" && c.UI.Theme != "light" {
		errors = append(errors, ValidationError{
			Field:   "ui.theme",
			Message: "theme must be \"dark\" or \"light\"",
		})
	}

	return errors
}
