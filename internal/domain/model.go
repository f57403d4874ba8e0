package domain

// Model is a foundation model that can back an agent.
type Model struct {
	UUID            string `json:"uuid"`
	Name            string `json:"name"`
	IsFoundational  bool   `json:"is_foundational,omitempty"`
	UpstreamModelID string `json:"upstream_model_id,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}
