package config

import (
	"fmt"

	"github.com/soyeahso/doagent/internal/domain"
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Defaults returns a Config with the built-in agent defaults.
func Defaults() Config {
	return Config{
		Agent: AgentConfig{
			Name:        domain.DefaultAgentName,
			Description: domain.DefaultDescription,
			ModelUUID:   domain.DefaultModelUUID,
			Region:      domain.DefaultRegion,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "pretty",
		},
	}
}
