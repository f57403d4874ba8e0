// Package provision creates GenAI agents on DigitalOcean and lists the
// models that can back them.
package provision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/digitalocean/godo"
	"github.com/google/go-querystring/query"
	"golang.org/x/oauth2"

	"github.com/soyeahso/doagent/internal/domain"
	"github.com/soyeahso/doagent/internal/version"
)

const (
	modelsPath = "/v2/gen-ai/models"
	agentsPath = "/v2/gen-ai/agents"

	modelsPerPage = 200
)

// API is the remote surface doagent uses.
type API interface {
	ListModels(ctx context.Context) ([]domain.Model, error)
	CreateAgent(ctx context.Context, cfg domain.AgentConfig) (*domain.ProvisionResult, error)
}

// TokenSource implements oauth2.TokenSource for a fixed API token.
type TokenSource struct {
	AccessToken string
}

func (t *TokenSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: t.AccessToken}, nil
}

type options struct {
	baseURL   string
	userAgent string
}

// Option customizes a Client.
type Option func(*options)

// WithBaseURL points the client at a different API root.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// Client talks to the GenAI endpoints through godo. It never retries.
type Client struct {
	do *godo.Client
}

// NewClient returns a Client authenticated with token.
func NewClient(token string, opts ...Option) (*Client, error) {
	o := options{userAgent: version.UserAgent()}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := oauth2.NewClient(context.Background(), &TokenSource{AccessToken: token})

	clientOpts := []godo.ClientOpt{godo.SetUserAgent(o.userAgent)}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, godo.SetBaseURL(o.baseURL))
	}

	do, err := godo.New(httpClient, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	return &Client{do: do}, nil
}

type modelsRoot struct {
	Models []domain.Model `json:"models"`
	Links  *godo.Links    `json:"links"`
	Meta   *godo.Meta     `json:"meta"`
}

// ListModels returns every model, following pagination.
func (c *Client) ListModels(ctx context.Context) ([]domain.Model, error) {
	opt := &godo.ListOptions{PerPage: modelsPerPage}

	var all []domain.Model
	for {
		q, err := query.Values(opt)
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		req, err := c.do.NewRequest(ctx, http.MethodGet, modelsPath+"?"+q.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}

		root := new(modelsRoot)
		if _, err := c.do.Do(ctx, req, root); err != nil {
			return nil, classify("list models", err, false)
		}
		all = append(all, root.Models...)

		if root.Links == nil || root.Links.IsLastPage() {
			break
		}
		page, err := root.Links.CurrentPage()
		if err != nil {
			return nil, classify("list models", fmt.Errorf("read pagination links: %w", err), false)
		}
		opt.Page = page + 1
	}
	return all, nil
}

// CreateAgent submits cfg and returns the decoded response.
func (c *Client) CreateAgent(ctx context.Context, cfg domain.AgentConfig) (*domain.ProvisionResult, error) {
	req, err := c.do.NewRequest(ctx, http.MethodPost, agentsPath, cfg.Request())
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	var body bytes.Buffer
	if _, err := c.do.Do(ctx, req, &body); err != nil {
		return nil, classify("create agent", err, true)
	}

	result := &domain.ProvisionResult{Raw: body.Bytes()}
	if err := json.Unmarshal(body.Bytes(), result); err != nil {
		return nil, &AuthOrTransportError{Op: "create agent", Err: fmt.Errorf("decode response: %w", err)}
	}
	return result, nil
}
