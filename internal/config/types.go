package config

// Config holds the operator defaults for optional deploy settings. The API
// token and project id are never read from here; they must come from flags.
type Config struct {
	Agent   AgentConfig   `yaml:"agent,omitempty"`
	API     APIConfig     `yaml:"api,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// AgentConfig supplies defaults for the agent being provisioned.
type AgentConfig struct {
	Name            string `yaml:"name,omitempty"`
	Description     string `yaml:"description,omitempty"`
	ModelUUID       string `yaml:"modelUuid,omitempty"`
	Region          string `yaml:"region,omitempty"`
	InstructionFile string `yaml:"instructionFile,omitempty"` // replaces the built-in instruction
}

// APIConfig controls how the DigitalOcean API is reached.
type APIConfig struct {
	BaseURL string `yaml:"baseUrl,omitempty"` // empty means the public API
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // "trace" | "debug" | "info" | "warn" | "error" | "silent"
	Format string `yaml:"format,omitempty"` // "pretty" | "json"
}
