package provision

import (
	"errors"
	"net/http"
	"testing"

	"github.com/digitalocean/godo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorResponse(code int, msg string) *godo.ErrorResponse {
	req, _ := http.NewRequest(http.MethodPost, "https://api.digitalocean.com/v2/gen-ai/agents", nil)
	return &godo.ErrorResponse{
		Response: &http.Response{StatusCode: code, Request: req},
		Message:  msg,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		creating bool
		wantRCE  bool
		wantCode int
	}{
		{"transport", errors.New("dial tcp: refused"), true, false, 0},
		{"bad request on create", errorResponse(400, "bad"), true, true, 400},
		{"unprocessable on create", errorResponse(422, "bad"), true, true, 422},
		{"unauthorized on create", errorResponse(401, "no"), true, false, 401},
		{"forbidden on create", errorResponse(403, "no"), true, false, 403},
		{"throttled on create", errorResponse(429, "slow"), true, false, 429},
		{"server error on create", errorResponse(500, "boom"), true, false, 500},
		{"not found on list", errorResponse(404, "nope"), false, false, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("op", tt.err, tt.creating)
			assert.ErrorIs(t, err, tt.err)

			var rce *ResourceCreationError
			var ae *AuthOrTransportError
			if tt.wantRCE {
				require.ErrorAs(t, err, &rce)
				assert.Equal(t, tt.wantCode, rce.StatusCode)
			} else {
				require.ErrorAs(t, err, &ae)
				assert.Equal(t, tt.wantCode, ae.StatusCode)
				assert.Equal(t, "op", ae.Op)
			}
		})
	}
}

func TestResourceCreationErrorMessage(t *testing.T) {
	err := &ResourceCreationError{StatusCode: 422, Message: "model not found", RequestID: "r-1"}
	assert.Equal(t, "create agent rejected: HTTP 422 (request r-1): model not found", err.Error())

	err = &ResourceCreationError{StatusCode: 400}
	assert.Equal(t, "create agent rejected: HTTP 400: Bad Request", err.Error())
}
