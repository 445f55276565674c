package kbdex

import "time"

// Document is a knowledge-base entry to upload.
type Document struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchResult is a single search hit.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
	Source  string  `json:"source"` // "fuzzy" or "semantic"
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component -> "ok"/"error"
}

// UsagePeriod is the aggregation granularity for usage reports.
type UsagePeriod string

// UsagePeriod constants.
const (
	PeriodDay   UsagePeriod = "day"
	PeriodMonth UsagePeriod = "month"
	PeriodTotal UsagePeriod = "total"
)

// UsageReport contains embedding usage statistics for a time period.
type UsageReport struct {
	Period      UsagePeriod
	PeriodStart time.Time // zero for PeriodTotal
	PeriodEnd   time.Time // zero for PeriodTotal
	Metrics     UsageMetrics
	Budget      BudgetStatus
}

// UsageMetrics tracks embedding resource consumption.
type UsageMetrics struct {
	EmbeddingRequests int
	Tokens            int
	CostMillidollars  int
}

// BudgetStatus tracks token quota state.
type BudgetStatus struct {
	TokensLimit     int
	TokensRemaining int
	IsExhausted     bool
	ResetsAt        time.Time
}
