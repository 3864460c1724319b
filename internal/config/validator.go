package config

import (
	"fmt"
	"net/url"
	"strconv"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Message: fmt.Sprintf("invalid port: %q", c.Server.Port),
		})
	}

	switch c.LLM.Provider {
	case "groq", "gemini":
	default:
		errors = append(errors, ValidationError{
			Field:   "llm.provider",
			Message: fmt.Sprintf("provider must be groq or gemini, got %q", c.LLM.Provider),
		})
	}

	if c.LLM.APIKey == "" {
		errors = append(errors, ValidationError{
			Field:   "llm.api_key",
			Message: "API key is required",
		})
	}

	if c.LLM.BaseURL != "" {
		if u, err := url.Parse(c.LLM.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "llm.base_url",
				Message: "invalid base URL",
			})
		}
	}

	if c.Storage.MaxFileSize < 1 {
		errors = append(errors, ValidationError{
			Field:   "storage.max_file_size",
			Message: "max_file_size must be positive",
		})
	}

	return errors
}
