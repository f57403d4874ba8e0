package config

import (
	"fmt"
	"net/url"
	"slices"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Config for issues before an agent is created. Returns
// nil if valid. Region is passed through to the API as given.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.Agent.Name == "" {
		issues = append(issues, ValidationIssue{Path: "agent.name", Message: "must not be empty"})
	}
	if cfg.Agent.ModelUUID == "" {
		issues = append(issues, ValidationIssue{Path: "agent.modelUuid", Message: "must not be empty"})
	}

	return append(issues, ValidateRuntime(cfg)...)
}

// ValidateRuntime checks only the settings that apply to every run, such as
// API and logging options. Listing models uses this instead of Validate.
func ValidateRuntime(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.API.BaseURL != "" {
		u, err := url.Parse(cfg.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			issues = append(issues, ValidationIssue{
				Path:    "api.baseUrl",
				Message: fmt.Sprintf("must be an absolute URL, got %q", cfg.API.BaseURL),
			})
		}
	}

	validLogLevels := []string{"silent", "error", "warn", "info", "debug", "trace"}
	if cfg.Logging.Level != "" && !slices.Contains(validLogLevels, cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Logging.Level),
		})
	}

	validFormats := []string{"pretty", "json"}
	if cfg.Logging.Format != "" && !slices.Contains(validFormats, cfg.Logging.Format) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.format",
			Message: fmt.Sprintf("must be one of %v, got %q", validFormats, cfg.Logging.Format),
		})
	}

	return issues
}
