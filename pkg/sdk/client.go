package kbdex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the kbdex HTTP SDK entry point.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	obs        *observer
}

// New creates a kbdex Client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("kbdex: base URL required")
	}

	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = http.DefaultClient
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.apiKey,
		httpClient: hc,
		obs:        obs,
	}, nil
}

type uploadRequest struct {
	TenantID string     `json:"tenant_id"`
	Docs     []Document `json:"docs"`
}

type uploadResponse struct {
	Message   string `json:"message"`
	DocsAdded int    `json:"docs_added"`
}

// Upload replaces the tenant's knowledge base with the given documents.
// Returns the number of documents stored.
func (c *Client) Upload(ctx context.Context, tenantID string, docs []Document) (added int, err error) {
	start := time.Now()
	defer func() { c.obs.observe("upload", start, err) }()

	body, err := json.Marshal(uploadRequest{TenantID: tenantID, Docs: docs})
	if err != nil {
		return 0, fmt.Errorf("kbdex: marshal upload request: %w", err)
	}

	var resp uploadResponse
	if err = c.do(ctx, http.MethodPost, "/upload", nil, bytes.NewReader(body), &resp); err != nil {
		return 0, err
	}
	return resp.DocsAdded, nil
}

type searchResponse struct {
	Items []SearchResult `json:"items"`
}

// Search runs a fuzzy+semantic query over the tenant's knowledge base.
func (c *Client) Search(ctx context.Context, tenantID, query string) (results []SearchResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	params := url.Values{}
	params.Set("tenant_id", tenantID)
	params.Set("query", query)

	var resp searchResponse
	if err = c.do(ctx, http.MethodGet, "/search", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Health checks the health of all service components.
// A degraded service responds with HTTP 503 but still returns the report.
func (c *Client) Health(ctx context.Context) (status HealthStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("health", start, err) }()

	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return HealthStatus{}, err
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("kbdex: health request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	// 503 still carries a readable health report
	var resp healthResponse
	if decErr := json.NewDecoder(httpResp.Body).Decode(&resp); decErr != nil {
		return HealthStatus{}, fmt.Errorf("kbdex: decode health response: %w", decErr)
	}
	return HealthStatus{Status: resp.Status, Checks: resp.Checks}, nil
}

type usageResponse struct {
	Period        string `json:"period"`
	PeriodStartAt string `json:"period_start_at,omitempty"`
	PeriodEndAt   string `json:"period_end_at,omitempty"`
	Usage         struct {
		EmbeddingRequests int `json:"embedding_requests"`
		Tokens            int `json:"tokens"`
		CostMillidollars  int `json:"cost_millidollars,omitempty"`
	} `json:"usage"`
	Budget struct {
		TokensLimit     int    `json:"tokens_limit"`
		TokensRemaining int    `json:"tokens_remaining"`
		IsExhausted     bool   `json:"is_exhausted"`
		ResetsAt        string `json:"resets_at,omitempty"`
	} `json:"budget"`
}

// Usage returns an embedding usage report for the given period.
func (c *Client) Usage(ctx context.Context, period UsagePeriod) (report UsageReport, err error) {
	start := time.Now()
	defer func() { c.obs.observe("usage", start, err) }()

	params := url.Values{}
	params.Set("period", string(period))

	var resp usageResponse
	if err = c.do(ctx, http.MethodGet, "/usage", params, nil, &resp); err != nil {
		return UsageReport{}, err
	}

	report = UsageReport{
		Period:      UsagePeriod(resp.Period),
		PeriodStart: parseRFC3339(resp.PeriodStartAt),
		PeriodEnd:   parseRFC3339(resp.PeriodEndAt),
		Metrics: UsageMetrics{
			EmbeddingRequests: resp.Usage.EmbeddingRequests,
			Tokens:            resp.Usage.Tokens,
			CostMillidollars:  resp.Usage.CostMillidollars,
		},
		Budget: BudgetStatus{
			TokensLimit:     resp.Budget.TokensLimit,
			TokensRemaining: resp.Budget.TokensRemaining,
			IsExhausted:     resp.Budget.IsExhausted,
			ResetsAt:        parseRFC3339(resp.Budget.ResetsAt),
		},
	}
	return report, nil
}

func (c *Client) newRequest(
	ctx context.Context, method, path string, params url.Values, body io.Reader,
) (*http.Request, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("kbdex: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

// do executes a request and decodes the JSON response into out.
// Non-2xx responses become *APIError values.
func (c *Client) do(
	ctx context.Context, method, path string, params url.Values, body io.Reader, out any,
) error {
	req, err := c.newRequest(ctx, method, path, params, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("kbdex: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("kbdex: decode response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func parseRFC3339(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
