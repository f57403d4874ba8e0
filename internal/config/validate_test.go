package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Empty(t, Validate(&cfg))
}

func TestValidate_RegionPassedThrough(t *testing.T) {
	for _, region := range []string{"nyc1", "NYC1", "sgp-1", "new-york", ""} {
		cfg := Defaults()
		cfg.Agent.Region = region
		assert.Empty(t, Validate(&cfg), region)
	}
}

func TestValidateRuntime_IgnoresAgentFields(t *testing.T) {
	cfg := Defaults()
	cfg.Agent.Name = ""
	cfg.Agent.ModelUUID = ""
	assert.Empty(t, ValidateRuntime(&cfg))

	cfg.Logging.Format = "xml"
	issues := ValidateRuntime(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "logging.format", issues[0].Path)
}

func TestValidate_EmptyAgentFields(t *testing.T) {
	cfg := Defaults()
	cfg.Agent.Name = ""
	cfg.Agent.ModelUUID = ""
	issues := Validate(&cfg)
	require.Len(t, issues, 2)
	assert.Equal(t, "agent.name", issues[0].Path)
	assert.Equal(t, "agent.modelUuid", issues[1].Path)
}

func TestValidate_BaseURL(t *testing.T) {
	cfg := Defaults()
	cfg.API.BaseURL = "http://127.0.0.1:9999/"
	assert.Empty(t, Validate(&cfg))

	cfg.API.BaseURL = "not a url"
	issues := Validate(&cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "api.baseUrl", issues[0].Path)
}

func TestValidate_Logging(t *testing.T) {
	cfg := Defaults()
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"
	issues := Validate(&cfg)
	require.Len(t, issues, 2)
	assert.Equal(t, "logging.level", issues[0].Path)
	assert.Equal(t, "logging.format", issues[1].Path)
	assert.Contains(t, issues[1].String(), `got "xml"`)
}
