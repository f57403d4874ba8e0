package config

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR_NAME} patterns in strings.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// envLookup resolves variables from the process environment first, then
// from a parsed .env file. Empty process values count as unset. The .env
// values never leak into os.Environ.
type envLookup struct {
	dotenv map[string]string
}

func (e envLookup) get(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v, true
	}
	v, ok := e.dotenv[key]
	return v, ok
}

// expand replaces ${VAR} patterns. Unset variables are left unchanged.
func (e envLookup) expand(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if val, ok := e.get(match[2 : len(match)-1]); ok {
			return val
		}
		return match
	})
}

// Load reads the YAML file at path and the .env file at dotenvPath, then
// applies DOAGENT_* overrides. Missing files are not an error. An empty
// dotenvPath skips .env handling.
func Load(path, dotenvPath string) (Config, error) {
	cfg := Defaults()

	env, err := readDotEnv(dotenvPath)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, &ConfigError{Message: "failed to read " + path, Err: err}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, &ConfigError{Message: "failed to parse config", Err: err}
		}
		applyDefaults(&cfg)
	}

	applyEnvOverrides(&cfg, env)
	cfg.Agent.InstructionFile = env.expand(cfg.Agent.InstructionFile)
	cfg.API.BaseURL = env.expand(cfg.API.BaseURL)
	return cfg, nil
}

func readDotEnv(path string) (envLookup, error) {
	if path == "" {
		return envLookup{}, nil
	}
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return envLookup{}, nil
	}
	if err != nil {
		return envLookup{}, &ConfigError{Message: "failed to parse " + path, Err: err}
	}
	return envLookup{dotenv: vars}, nil
}

// applyDefaults fills fields a config file left blank.
func applyDefaults(cfg *Config) {
	d := Defaults()
	if cfg.Agent.Name == "" {
		cfg.Agent.Name = d.Agent.Name
	}
	if cfg.Agent.Description == "" {
		cfg.Agent.Description = d.Agent.Description
	}
	if cfg.Agent.ModelUUID == "" {
		cfg.Agent.ModelUUID = d.Agent.ModelUUID
	}
	if cfg.Agent.Region == "" {
		cfg.Agent.Region = d.Agent.Region
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = d.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = d.Logging.Format
	}
}

// applyEnvOverrides reads DOAGENT_* variables and overrides config values.
func applyEnvOverrides(cfg *Config, env envLookup) {
	if v, _ := env.get("DOAGENT_AGENT_NAME"); v != "" {
		cfg.Agent.Name = v
	}
	if v, _ := env.get("DOAGENT_DESCRIPTION"); v != "" {
		cfg.Agent.Description = v
	}
	if v, _ := env.get("DOAGENT_MODEL_UUID"); v != "" {
		cfg.Agent.ModelUUID = v
	}
	if v, _ := env.get("DOAGENT_REGION"); v != "" {
		cfg.Agent.Region = v
	}
	if v, _ := env.get("DOAGENT_INSTRUCTION_FILE"); v != "" {
		cfg.Agent.InstructionFile = v
	}
	if v, _ := env.get("DOAGENT_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v, _ := env.get("DOAGENT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v, _ := env.get("DOAGENT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
}

// ReadInstruction returns the contents of the instruction file, or "" when
// none is configured.
func (c Config) ReadInstruction() (string, error) {
	if c.Agent.InstructionFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.Agent.InstructionFile)
	if err != nil {
		return "", &ConfigError{Message: "failed to read instruction file", Err: err}
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", &ConfigError{Message: "instruction file is empty: " + c.Agent.InstructionFile}
	}
	return text, nil
}
