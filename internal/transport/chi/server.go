package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/request"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/result"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/strategy"
)

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeIndexUnavailable = "index_unavailable"
	codeInternalError    = "internal_error"
)

// searcher is the retrieval entry point consumed by the HTTP layer.
type searcher interface {
	Search(ctx context.Context, req *request.Request) ([]result.Hit, error)
}

// pinger checks store connectivity for the health endpoint.
type pinger interface {
	Ping(ctx context.Context) error
}

// Defaults fills in request fields the caller left unset, keeping the core's
// caller-contract invariants (limits positive, alpha/lambda in range) true.
type Defaults struct {
	ResultLimit    int
	CandidateLimit int
	Alpha          float64
	Lambda         float64
}

// Server exposes the retrieval core over HTTP.
type Server struct {
	search   searcher
	store    pinger
	defaults Defaults
	logger   *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(search searcher, store pinger, defaults Defaults, logger *zap.Logger) *Server {
	return &Server{search: search, store: store, defaults: defaults, logger: logger}
}

// Routes registers the API endpoints on a chi router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/search", s.handleSearch)
	r.Get("/healthz", s.handleHealth)
}

// searchRequestBody is the wire shape of a search call. section_filter accepts
// either a JSON array of strings or a bare string.
type searchRequestBody struct {
	ScopeID         string        `json:"scope_id"`
	Query           string        `json:"query"`
	Strategy        string        `json:"strategy,omitempty"`
	ResultLimit     int           `json:"result_limit,omitempty"`
	CandidateLimit  int           `json:"candidate_limit,omitempty"`
	Alpha           *float64      `json:"alpha,omitempty"`
	Rerank          bool          `json:"rerank,omitempty"`
	Diversify       bool          `json:"diversify,omitempty"`
	DiversifyLambda *float64      `json:"diversify_lambda,omitempty"`
	SectionFilter   sectionFilter `json:"section_filter,omitempty"`
}

type hitResponse struct {
	ID           string  `json:"id"`
	Text         string  `json:"text"`
	SectionTitle string  `json:"section_title,omitempty"`
	PageNumber   int     `json:"page_number,omitempty"`
	Score        float64 `json:"score"`
}

type searchResponse struct {
	Hits  []hitResponse `json:"hits"`
	Total int           `json:"total"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body searchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if body.ResultLimit <= 0 {
		body.ResultLimit = s.defaults.ResultLimit
	}
	if body.CandidateLimit <= 0 {
		body.CandidateLimit = s.defaults.CandidateLimit
	}
	if body.CandidateLimit < body.ResultLimit {
		body.CandidateLimit = body.ResultLimit
	}
	alpha := s.defaults.Alpha
	if body.Alpha != nil {
		alpha = *body.Alpha
	}
	lambda := s.defaults.Lambda
	if body.DiversifyLambda != nil {
		lambda = *body.DiversifyLambda
	}

	req, err := request.New(
		body.ScopeID, body.Query, strategy.Strategy(body.Strategy),
		body.ResultLimit, body.CandidateLimit,
		alpha, body.Rerank, body.Diversify, lambda,
		body.SectionFilter,
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	hits, err := s.search.Search(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrIndexUnavailable) {
			s.logger.Error("candidate index unavailable", zap.Error(err))
			writeError(w, http.StatusBadGateway, codeIndexUnavailable, "candidate index unavailable")
			return
		}
		s.logger.Error("search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	resp := searchResponse{Hits: make([]hitResponse, 0, len(hits)), Total: len(hits)}
	for i := range hits {
		h := &hits[i]
		resp.Hits = append(resp.Hits, hitResponse{
			ID:           h.ID(),
			Text:         h.Text(),
			SectionTitle: h.SectionTitle(),
			PageNumber:   h.PageNumber(),
			Score:        h.Score(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
