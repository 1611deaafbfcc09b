package request

import (
	"fmt"
	"strings"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/strategy"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 4096
	MaxResultLimit = 100
	MaxCandidates  = 500
)

// Request is a validated, request-local search query. It is created per call
// and discarded after the call returns; nothing in it is shared or mutated.
type Request struct {
	scopeID         string
	query           string
	resultLimit     int
	candidateLimit  int
	alpha           float64
	rerank          bool
	diversify       bool
	diversifyLambda float64
	sectionFilter   []string
	filterDropped   bool
	strat           strategy.Strategy
}

// New validates and normalizes search parameters.
// Defaults: strategy=hybrid, candidateLimit=resultLimit when unset.
// The section filter is normalized: blank entries are dropped, and a filter
// left empty by normalization means "no filtering", never "match nothing".
func New(
	scopeID, query string,
	strat strategy.Strategy,
	resultLimit, candidateLimit int,
	alpha float64,
	rerank, diversify bool,
	diversifyLambda float64,
	sectionFilter []string,
) (Request, error) {
	if scopeID == "" {
		return Request{}, fmt.Errorf("%w: scope id is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(query) == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrInvalidRequest)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidRequest, MaxQueryLength)
	}
	if strat == "" {
		strat = strategy.Hybrid
	}
	if !strat.IsValid() {
		return Request{}, fmt.Errorf("%w: invalid search strategy: %q", domain.ErrInvalidRequest, strat)
	}
	if resultLimit <= 0 {
		return Request{}, fmt.Errorf("%w: result limit must be positive", domain.ErrInvalidRequest)
	}
	if resultLimit > MaxResultLimit {
		resultLimit = MaxResultLimit
	}
	if candidateLimit <= 0 {
		candidateLimit = resultLimit
	}
	if candidateLimit > MaxCandidates {
		candidateLimit = MaxCandidates
	}
	if candidateLimit < resultLimit {
		return Request{}, fmt.Errorf("%w: candidate limit %d below result limit %d", domain.ErrInvalidRequest, candidateLimit, resultLimit)
	}
	if alpha < 0 || alpha > 1 {
		return Request{}, fmt.Errorf("%w: alpha must be between 0 and 1", domain.ErrInvalidRequest)
	}
	if diversifyLambda < 0 || diversifyLambda > 1 {
		return Request{}, fmt.Errorf("%w: diversify lambda must be between 0 and 1", domain.ErrInvalidRequest)
	}

	normalized, dropped := normalizeSectionFilter(sectionFilter)

	return Request{
		scopeID:         scopeID,
		query:           query,
		resultLimit:     resultLimit,
		candidateLimit:  candidateLimit,
		alpha:           alpha,
		rerank:          rerank,
		diversify:       diversify,
		diversifyLambda: diversifyLambda,
		sectionFilter:   normalized,
		filterDropped:   dropped,
		strat:           strat,
	}, nil
}

// normalizeSectionFilter trims entries and drops blank ones. The second return
// reports whether a non-empty input normalized to nothing.
func normalizeSectionFilter(sections []string) ([]string, bool) {
	if len(sections) == 0 {
		return nil, false
	}
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, true
	}
	return out, false
}

// ScopeID returns the opaque document/tenant scope.
func (r *Request) ScopeID() string { return r.scopeID }

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// ResultLimit returns the maximum hits to return.
func (r *Request) ResultLimit() int { return r.resultLimit }

// CandidateLimit returns the number of candidates to retrieve per attempt.
func (r *Request) CandidateLimit() int { return r.candidateLimit }

// Alpha returns the vector blend weight (lexical weight is 1-alpha).
func (r *Request) Alpha() float64 { return r.alpha }

// Rerank reports whether a secondary scoring pass was requested.
func (r *Request) Rerank() bool { return r.rerank }

// Diversify reports whether MMR diversification was requested.
func (r *Request) Diversify() bool { return r.diversify }

// DiversifyLambda returns the MMR relevance/diversity trade-off.
func (r *Request) DiversifyLambda() float64 { return r.diversifyLambda }

// SectionFilter returns the normalized section keywords (nil = no filter).
func (r *Request) SectionFilter() []string { return r.sectionFilter }

// SectionFilterDropped reports whether a supplied filter normalized to nothing.
func (r *Request) SectionFilterDropped() bool { return r.filterDropped }

// Strategy returns the requested search strategy.
func (r *Request) Strategy() strategy.Strategy { return r.strat }
