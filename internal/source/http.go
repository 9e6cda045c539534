package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fixhub/pkg/models"
)

// HTTP fetches the catalog JSON from a remote URL, typically the
// catalog-server mirror. Retry policy belongs to the caller; a single
// failed fetch leaves the engine's last-known catalog untouched.
type HTTP struct {
	Client *http.Client
	URL    string
}

func NewHTTP(url string) *HTTP {
	return &HTTP{
		Client: &http.Client{Timeout: 12 * time.Second},
		URL:    url,
	}
}

func (h *HTTP) Name() string { return "url:" + h.URL }

func (h *HTTP) FetchAll(ctx context.Context) ([]models.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: build request: %w", err)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: request: %w", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch: status %d: %s", resp.StatusCode, string(body))
	}

	var entries []models.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("catalog fetch: decode: %w", err)
	}
	return clean(entries), nil
}
