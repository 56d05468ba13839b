// Package provisioner talks to the external discussion-activity system.
// The rest of the application only sees the opaque activity reference it
// returns.
package provisioner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mindscape/internal/models"
)

// HTTPProvisioner creates discussion activities over a JSON API.
type HTTPProvisioner struct {
	baseURL string
	client  *http.Client
}

type createActivityRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createActivityResponse struct {
	Ref string `json:"ref"`
}

func NewHTTPProvisioner(baseURL string) *HTTPProvisioner {
	return &HTTPProvisioner{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// EnsureActivity creates (or finds) an activity for the given title and
// returns its reference id.
func (p *HTTPProvisioner) EnsureActivity(ctx context.Context, title, description string) (string, error) {
	body, err := json.Marshal(createActivityRequest{Title: title, Description: description})
	if err != nil {
		return "", models.NewInternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/activities", bytes.NewReader(body))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", models.NewInternalError(fmt.Errorf("provisioner returned status %d", resp.StatusCode))
	}

	var out createActivityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", models.NewInternalError(err)
	}
	if out.Ref == "" {
		return "", models.NewInternalError(fmt.Errorf("provisioner returned an empty ref"))
	}
	return out.Ref, nil
}

// StaticProvisioner returns deterministic references without any network
// call. Used in development and seeding.
type StaticProvisioner struct {
	Prefix string
}

func (p StaticProvisioner) EnsureActivity(_ context.Context, title, _ string) (string, error) {
	prefix := p.Prefix
	if prefix == "" {
		prefix = "local"
	}
	return fmt.Sprintf("%s:%x", prefix, title), nil
}
