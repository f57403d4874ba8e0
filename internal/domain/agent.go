package domain

// Defaults applied when the operator leaves a field unset.
const (
	// DefaultModelUUID is a placeholder and must be replaced with a real
	// model UUID (see `doagent --list-models`) before a production deploy.
	DefaultModelUUID   = "meta-llama-3.3-70b-instruct"
	DefaultRegion      = "nyc1"
	DefaultAgentName   = "TherapyForDogs AI Agent"
	DefaultDescription = "Professional AI therapist for canine behavioral analysis"
)

// AgentConfig describes an agent to provision. It is immutable once built;
// use NewAgentConfig or AgentConfigFromRequest to create one.
type AgentConfig struct {
	name        string
	description string
	modelUUID   string
	projectID   string
	region      string
	instruction string
}

// NewAgentConfig returns a config with the given fields. Empty region and
// model fall back to DefaultRegion and DefaultModelUUID.
func NewAgentConfig(name, description, modelUUID, projectID, region, instruction string) AgentConfig {
	if modelUUID == "" {
		modelUUID = DefaultModelUUID
	}
	if region == "" {
		region = DefaultRegion
	}
	return AgentConfig{
		name:        name,
		description: description,
		modelUUID:   modelUUID,
		projectID:   projectID,
		region:      region,
		instruction: instruction,
	}
}

func (c AgentConfig) Name() string        { return c.name }
func (c AgentConfig) Description() string { return c.description }
func (c AgentConfig) ModelUUID() string   { return c.modelUUID }
func (c AgentConfig) ProjectID() string   { return c.projectID }
func (c AgentConfig) Region() string      { return c.region }
func (c AgentConfig) Instruction() string { return c.instruction }

// CreateAgentRequest is the body of POST /v2/gen-ai/agents.
type CreateAgentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
	ModelUUID   string `json:"model_uuid"`
	ProjectID   string `json:"project_id"`
	Region      string `json:"region"`
}

// Request converts the config to its wire shape.
func (c AgentConfig) Request() CreateAgentRequest {
	return CreateAgentRequest{
		Name:        c.name,
		Description: c.description,
		Instruction: c.instruction,
		ModelUUID:   c.modelUUID,
		ProjectID:   c.projectID,
		Region:      c.region,
	}
}

// AgentConfigFromRequest is the inverse of AgentConfig.Request.
func AgentConfigFromRequest(r CreateAgentRequest) AgentConfig {
	return AgentConfig{
		name:        r.Name,
		description: r.Description,
		modelUUID:   r.ModelUUID,
		projectID:   r.ProjectID,
		region:      r.Region,
		instruction: r.Instruction,
	}
}

// Agent is the subset of a provisioned agent that doagent reads back from
// the create response.
type Agent struct {
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	Region    string `json:"region,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ProvisionResult is the response to a create call. Only the agent UUID is
// consumed; Raw keeps the body for logging.
type ProvisionResult struct {
	Agent *Agent `json:"agent"`
	Raw   []byte `json:"-"`
}

// AgentUUID returns the created agent's UUID, or "" if the response had none.
func (r *ProvisionResult) AgentUUID() string {
	if r == nil || r.Agent == nil {
		return ""
	}
	return r.Agent.UUID
}
