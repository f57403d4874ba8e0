package provision

import (
	"context"

	"github.com/soyeahso/doagent/internal/domain"
)

// MockAPI is a test double for API. It records every call.
type MockAPI struct {
	ListModelsFunc  func(ctx context.Context) ([]domain.Model, error)
	CreateAgentFunc func(ctx context.Context, cfg domain.AgentConfig) (*domain.ProvisionResult, error)

	ListCalls   int
	CreateCalls int
	Created     []domain.AgentConfig
}

func (m *MockAPI) ListModels(ctx context.Context) ([]domain.Model, error) {
	m.ListCalls++
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return []domain.Model{{Name: "Mock Llama", UUID: "00000000-0000-0000-0000-000000000001"}}, nil
}

func (m *MockAPI) CreateAgent(ctx context.Context, cfg domain.AgentConfig) (*domain.ProvisionResult, error) {
	m.CreateCalls++
	m.Created = append(m.Created, cfg)
	if m.CreateAgentFunc != nil {
		return m.CreateAgentFunc(ctx, cfg)
	}
	return &domain.ProvisionResult{
		Agent: &domain.Agent{UUID: "mock-agent-uuid", Name: cfg.Name(), Region: cfg.Region()},
		Raw:   []byte(`{"agent":{"uuid":"mock-agent-uuid"}}`),
	}, nil
}
