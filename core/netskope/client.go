package netskope

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"app-reconciler/core/extract"

	"golang.org/x/time/rate"
)

// Client defines the interface for inventory retrieval.
type Client interface {
	// FetchDocument retrieves and decodes a single page.
	FetchDocument(ctx context.Context) (any, error)
	// FetchAllPages retrieves every page, following the configured cursor
	// until it runs out or the page cap is reached.
	FetchAllPages(ctx context.Context) ([]any, error)
}

// NewClient creates an inventory client for the configured endpoint.
func NewClient(cfg Config) (Client, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, fmt.Errorf("netskope: endpoint is not configured")
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration, // TLS handshake timeout
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration, // Wait for first response byte timeout
	}
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}

	return &httpClient{
		cfg:     cfg,
		client:  &http.Client{Transport: transport},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

type httpClient struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
}

func (c *httpClient) FetchDocument(ctx context.Context) (any, error) {
	return c.fetchPage(ctx, "")
}

func (c *httpClient) FetchAllPages(ctx context.Context) ([]any, error) {
	maxPages := c.cfg.MaxPages
	if maxPages <= 0 {
		maxPages = 50
	}

	var pages []any
	cursor := ""
	for page := 0; page < maxPages; page++ {
		doc, err := c.fetchPage(ctx, cursor)
		if err != nil {
			return nil, err
		}
		pages = append(pages, doc)

		// Single-page mode when pagination is not configured.
		if c.cfg.PaginationParam == "" || c.cfg.NextCursorPath == "" {
			break
		}
		next := cursorFrom(doc, c.cfg.NextCursorPath)
		if next == "" {
			break
		}
		cursor = next
	}
	return pages, nil
}

func (c *httpClient) fetchPage(ctx context.Context, cursor string) (any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("netskope: build request: %w", err)
	}

	query := req.URL.Query()
	if c.cfg.PerPageParam != "" && c.cfg.PerPageValue != "" {
		query.Set(c.cfg.PerPageParam, c.cfg.PerPageValue)
	}
	if c.cfg.PaginationParam != "" && cursor != "" {
		query.Set(c.cfg.PaginationParam, cursor)
	}
	req.URL.RawQuery = query.Encode()

	req.Header.Set("Accept", "application/json")
	if c.cfg.AuthHeader != "" && c.cfg.Token != "" {
		req.Header.Set(c.cfg.AuthHeader, c.cfg.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("netskope: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("netskope: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: truncateBody(body)}
	}

	return extract.DecodeDocument(body)
}

// cursorFrom walks a dotted path into a page and renders the value found
// there as the next cursor. A missing path, an empty string and a zero
// number all mean there is no further page.
func cursorFrom(doc any, path string) string {
	current := doc
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		if current, ok = node[segment]; !ok {
			return ""
		}
	}
	switch value := current.(type) {
	case string:
		return value
	case float64:
		if value == 0 {
			return ""
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "... (truncated)"
	}
	return string(body)
}
