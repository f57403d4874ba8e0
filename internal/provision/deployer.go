package provision

import (
	"context"

	"github.com/soyeahso/doagent/internal/domain"
	"github.com/soyeahso/doagent/internal/logging"
)

// Deployer runs the two operations against an API, logging each outcome.
// Errors are logged and returned unchanged.
type Deployer struct {
	api API
	log *logging.Logger
}

func NewDeployer(api API, log *logging.Logger) *Deployer {
	return &Deployer{api: api, log: log.Sub("provision")}
}

// ListModels fetches and logs the available models.
func (d *Deployer) ListModels(ctx context.Context) ([]domain.Model, error) {
	models, err := d.api.ListModels(ctx)
	if err != nil {
		d.log.Error().Err(err).Msg("Failed to list models")
		return nil, err
	}

	d.log.Info().Int("count", len(models)).Msg("Available models:")
	for _, m := range models {
		d.log.Info().Msgf("  - %s: %s", m.Name, m.UUID)
	}
	return models, nil
}

// CreateAgent provisions cfg. It is the only mutating call doagent makes.
func (d *Deployer) CreateAgent(ctx context.Context, cfg domain.AgentConfig) (*domain.ProvisionResult, error) {
	d.log.Info().Str("name", cfg.Name()).Str("region", cfg.Region()).
		Str("model_uuid", cfg.ModelUUID()).Msg("Creating agent")

	result, err := d.api.CreateAgent(ctx, cfg)
	if err != nil {
		d.log.Error().Err(err).Str("name", cfg.Name()).Msg("Failed to create agent")
		return nil, err
	}

	d.log.Info().Str("agent_uuid", result.AgentUUID()).RawJSON("response", rawOrNull(result.Raw)).
		Msg("Agent created successfully")
	return result, nil
}

func rawOrNull(b []byte) []byte {
	if len(b) == 0 {
		return []byte("null")
	}
	return b
}
