package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tejasmmali/canteen-swift/internal/domain"
)

// IdentityClient verifies bearer tokens against the external identity
// provider's user endpoint. Token verification stays with the provider;
// this service never parses credentials itself.
type IdentityClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewIdentityClient(baseURL, apiKey string) *IdentityClient {
	return &IdentityClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Verify resolves the token to the subject's user id. Any provider-side
// rejection maps to ErrUnauthorized; only transport failures differ.
func (c *IdentityClient) Verify(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return "", fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: identity provider: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", domain.ErrUnauthorized
	default:
		return "", fmt.Errorf("%w: identity provider returned %d", domain.ErrTransport, resp.StatusCode)
	}

	var user struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", fmt.Errorf("%w: decode identity response: %v", domain.ErrTransport, err)
	}
	if user.ID == "" {
		return "", domain.ErrUnauthorized
	}
	return user.ID, nil
}
