package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"droidforge/internal/pkg/config"
	"droidforge/internal/pkg/errs"
)

// httpClient wraps outbound provider calls with a per-request timeout and
// bounded exponential backoff. Only transport errors and 5xx responses are
// retried; 4xx means the request itself is wrong.
type httpClient struct {
	client      *http.Client
	timeout     time.Duration
	maxRetries  uint64
	baseBackoff time.Duration
}

func newHTTPClient(cfg config.ProvidersConfig) *httpClient {
	return &httpClient{
		client:      &http.Client{},
		timeout:     cfg.RequestTimeout,
		maxRetries:  cfg.MaxRetries,
		baseBackoff: cfg.RetryBaseBackoff,
	}
}

func (c *httpClient) doJSON(ctx context.Context, method, rawURL string, headers map[string]string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
	}
	return c.do(ctx, method, rawURL, headers, "application/json", payload, out)
}

func (c *httpClient) doForm(ctx context.Context, rawURL string, headers map[string]string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, rawURL, headers, "application/x-www-form-urlencoded", []byte(form.Encode()), out)
}

func (c *httpClient) do(ctx context.Context, method, rawURL string, headers map[string]string, contentType string, payload []byte, out any) error {
	operation := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(reqCtx, method, rawURL, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", contentType)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("upstream returned %s", resp.Status)
		}
		if resp.StatusCode >= 400 {
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return backoff.Permanent(fmt.Errorf("upstream returned %s: %s", resp.Status, strings.TrimSpace(string(detail))))
		}

		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(errs.Wrap(err, "failed to decode response"))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.baseBackoff
	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx))
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
