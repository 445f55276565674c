package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/kbdex/internal/domain"
	domusage "github.com/kailas-cloud/kbdex/internal/domain/usage"
	healthuc "github.com/kailas-cloud/kbdex/internal/usecase/health"
	ingestuc "github.com/kailas-cloud/kbdex/internal/usecase/ingest"
	searchuc "github.com/kailas-cloud/kbdex/internal/usecase/search"
	usageuc "github.com/kailas-cloud/kbdex/internal/usecase/usage"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the knowledge-base search API over chi.
type Server struct {
	ingest        *ingestuc.Service
	search        *searchuc.Service
	usage         *usageuc.Service
	health        *healthuc.Service
	staticDir     string
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	ingest *ingestuc.Service,
	search *searchuc.Service,
	usage *usageuc.Service,
	health *healthuc.Service,
	staticDir string,
	logger *zap.Logger,
) *Server {
	s := &Server{
		ingest:    ingest,
		search:    search,
		usage:     usage,
		health:    health,
		staticDir: staticDir,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrTenantNotFound, http.StatusNotFound, codeTenantNotFound),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeInvalidInput),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, codeRateLimited),
		sentinelHandler(domain.ErrEmbeddingQuotaExceeded, http.StatusPaymentRequired, codeEmbeddingQuota),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProviderError),
	}
	return s
}

// Routes registers all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/upload", s.Upload)
	r.Get("/search", s.SearchDocuments)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Get("/usage", s.GetUsage)
	r.Get("/", s.Index)
}

// Upload handles POST /upload: a full-replace ingest of a tenant's corpus.
func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	docs := make([]domain.Document, len(req.Docs))
	for i, d := range req.Docs {
		docs[i] = domain.Document{Title: d.Title, URL: d.URL, Content: d.Content}
	}

	ctx, usage := domain.NewContextWithUsage(r.Context())
	added, err := s.ingest.Upload(ctx, req.TenantID, docs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	setEmbeddingHeaders(w, usage)
	writeJSON(w, http.StatusOK, uploadResponse{
		Message:   "upload complete",
		DocsAdded: added,
	})
}

// SearchDocuments handles GET /search?tenant_id=&query=.
// The query is lowercased here; case sensitivity is the transport's contract.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	tenantID := r.URL.Query().Get("tenant_id")
	query := r.URL.Query().Get("query")
	if tenantID == "" || query == "" {
		writeError(w, http.StatusBadRequest, codeInvalidInput, "tenant_id and query are required")
		return
	}

	ctx, usage := domain.NewContextWithUsage(r.Context())
	hits, err := s.search.Search(ctx, tenantID, strings.ToLower(query))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]searchResultItem, len(hits))
	for i, h := range hits {
		items[i] = searchResultItem{
			Title:   h.Title,
			URL:     h.URL,
			Snippet: h.Snippet,
			Score:   h.Score,
			Source:  string(h.Source),
		}
	}

	setEmbeddingHeaders(w, usage)
	writeJSON(w, http.StatusOK, searchResponse{Items: items})
}

// GetUsage handles GET /usage?period=.
func (s *Server) GetUsage(w http.ResponseWriter, r *http.Request) {
	period := domusage.PeriodMonth
	switch r.URL.Query().Get("period") {
	case "day":
		period = domusage.PeriodDay
	case "total":
		period = domusage.PeriodTotal
	}

	report := s.usage.GetReport(r.Context(), period)

	resp := usageResponse{
		Period: string(report.Period()),
		Usage: usageMetrics{
			EmbeddingRequests: report.Metrics().EmbeddingRequests(),
			Tokens:            report.Metrics().Tokens(),
			CostMillidollars:  report.Metrics().CostMillidollars(),
		},
		Budget: budgetStatus{
			TokensLimit:     report.Budget().TokensLimit(),
			TokensRemaining: report.Budget().TokensRemaining(),
			IsExhausted:     report.Budget().IsExhausted(),
		},
	}

	if report.PeriodStart() > 0 {
		resp.PeriodStartAt = time.UnixMilli(report.PeriodStart()).UTC().Format(time.RFC3339)
		resp.PeriodEndAt = time.UnixMilli(report.PeriodEnd()).UTC().Format(time.RFC3339)
	}
	if report.Budget().ResetsAt() > 0 {
		resp.Budget.ResetsAt = time.UnixMilli(report.Budget().ResetsAt()).UTC().Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// Index serves the bundled frontend page.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
}

func setEmbeddingHeaders(w http.ResponseWriter, usage *domain.EmbeddingUsage) {
	if usage != nil && usage.Used {
		w.Header().Set("X-Embedding-Tokens", strconv.Itoa(usage.TotalTokens))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrTenantNotFound,
		domain.ErrInvalidInput,
		domain.ErrRateLimited,
		domain.ErrEmbeddingQuotaExceeded,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
