package chi

// Wire types for the HTTP API.

// errorCode values returned in error responses.
const (
	codeBadRequest             = "bad_request"
	codeInvalidInput           = "invalid_input"
	codeTenantNotFound         = "tenant_not_found"
	codeRateLimited            = "rate_limited"
	codeEmbeddingQuota         = "embedding_quota_exceeded"
	codeEmbeddingProviderError = "embedding_provider_error"
	codeInternalError          = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type uploadDoc struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type uploadRequest struct {
	TenantID string      `json:"tenant_id"`
	Docs     []uploadDoc `json:"docs"`
}

type uploadResponse struct {
	Message   string `json:"message"`
	DocsAdded int    `json:"docs_added"`
}

type searchResultItem struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
	Source  string  `json:"source"`
}

type searchResponse struct {
	Items []searchResultItem `json:"items"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type usageMetrics struct {
	EmbeddingRequests int `json:"embedding_requests"`
	Tokens            int `json:"tokens"`
	CostMillidollars  int `json:"cost_millidollars,omitempty"`
}

type budgetStatus struct {
	TokensLimit     int    `json:"tokens_limit"`
	TokensRemaining int    `json:"tokens_remaining"`
	IsExhausted     bool   `json:"is_exhausted"`
	ResetsAt        string `json:"resets_at,omitempty"`
}

type usageResponse struct {
	Period        string       `json:"period"`
	PeriodStartAt string       `json:"period_start_at,omitempty"`
	PeriodEndAt   string       `json:"period_end_at,omitempty"`
	Usage         usageMetrics `json:"usage"`
	Budget        budgetStatus `json:"budget"`
}
