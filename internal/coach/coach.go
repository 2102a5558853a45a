// Package coach produces the daily digest and, when an upstream endpoint is
// configured, asks it for a one-paragraph coaching summary. The contract with
// the endpoint is POST text, get text; any provider sits behind that.
package coach

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"momentum/internal/momentum"
	"momentum/internal/trend"
)

// #region config

// Config holds coach parameters. A zero Endpoint disables the remote call.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// DefaultConfig returns a disabled coach with a sane timeout.
func DefaultConfig() Config {
	return Config{Timeout: 15 * time.Second}
}

// #endregion

// #region coach

// Coach builds digests and optionally enriches them upstream.
type Coach struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// New builds a Coach. A nil logger is replaced with a no-op one.
func New(cfg Config, logger *zap.Logger) *Coach {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coach{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Digest returns the coaching text for a day. With no endpoint configured, or
// when the endpoint fails, the local plain-text digest is returned instead;
// a failing remote never fails the caller.
func (c *Coach) Digest(ctx context.Context, snap momentum.Snapshot, sum trend.Summary) string {
	local := FormatDigest(snap, momentum.WeakestLink(snap.Breakdown), sum)
	if c.cfg.Endpoint == "" {
		return local
	}

	remote, err := c.post(ctx, local)
	if err != nil {
		c.logger.Warn("coach endpoint failed, falling back to local digest",
			zap.String("endpoint", c.cfg.Endpoint), zap.Error(err))
		return local
	}
	return remote
}

func (c *Coach) post(ctx context.Context, body string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint,
		bytes.NewReader([]byte(body)))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("coach endpoint status %d: %s", resp.StatusCode, string(out))
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return string(out), nil
}

// #endregion
