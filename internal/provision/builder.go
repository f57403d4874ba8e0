package provision

import (
	"github.com/google/uuid"

	"github.com/soyeahso/doagent/internal/domain"
	"github.com/soyeahso/doagent/internal/logging"
	"github.com/soyeahso/doagent/internal/prompt"
)

// BuildOptions carries the operator inputs for an agent. Empty fields take
// the package defaults.
type BuildOptions struct {
	AgentName   string
	Description string
	ModelUUID   string
	ProjectID   string
	Region      string
	Instruction string
}

// BuildAgentConfig assembles an AgentConfig. It never fails: presence of
// the project id is the caller's job. Ids that do not look like UUIDs are
// logged as warnings because the default model id is a placeholder. A nil
// log discards the warnings.
func BuildAgentConfig(opts BuildOptions, log *logging.Logger) domain.AgentConfig {
	if log == nil {
		log = logging.Nop()
	}
	name := opts.AgentName
	if name == "" {
		name = domain.DefaultAgentName
	}
	description := opts.Description
	if description == "" {
		description = domain.DefaultDescription
	}
	instruction := opts.Instruction
	if instruction == "" {
		instruction = prompt.DogTherapyInstruction()
	}

	cfg := domain.NewAgentConfig(name, description, opts.ModelUUID, opts.ProjectID, opts.Region, instruction)

	if _, err := uuid.Parse(cfg.ModelUUID()); err != nil {
		log.Warn().Str("model_uuid", cfg.ModelUUID()).
			Msg("model id is not a UUID; run with --list-models to find a real one")
	}
	if _, err := uuid.Parse(cfg.ProjectID()); err != nil {
		log.Warn().Str("project_id", cfg.ProjectID()).Msg("project id is not a UUID")
	}
	return cfg
}
