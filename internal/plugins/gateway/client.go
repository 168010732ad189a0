package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/config"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
)

// Client is the delivery channel resolver: an HTTP client of the transport
// management plane. The plane's base endpoint is per-call configuration, so
// one client can serve fanouts targeting different deployments.
type Client struct {
	http *http.Client
}

func NewClient(cfg config.PushConfig) *Client {
	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Send pushes data to one connection and classifies the result:
//   - 2xx            → DeliveryOK
//   - 410            → DeliveryGone (the transport's "target gone" signal)
//   - anything else  → DeliveryFailed (timeouts, 5xx, refused connections)
//
// Only 410 prunes; a misbehaving proxy returning 404s must not be able to
// mass-prune the registry.
func (c *Client) Send(ctx context.Context, endpoint, connectionID string, data []byte) domain.DeliveryOutcome {
	target := strings.TrimRight(endpoint, "/") + "/connections/" + url.PathEscape(connectionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return domain.DeliveryFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.DeliveryFailed
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusGone:
		return domain.DeliveryGone
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return domain.DeliveryOK
	default:
		return domain.DeliveryFailed
	}
}
