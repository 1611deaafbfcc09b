package search

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/candidate"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/request"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/result"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/strategy"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/logger"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/metrics"
)

// Escalation alphas for the second and third hybrid_lexical_first attempts.
// Inherited tuning: 0.3 has no documented rationale beyond observed recall.
// TODO(config): expose the escalation sequence once relevance benchmarks exist.
const (
	lexicalFallbackAlpha = 0.0
	blendedFallbackAlpha = 0.3
)

// Service is the top-level retrieval entry point. It classifies the query,
// sequences one or more candidate index attempts according to the effective
// strategy, diversifies the winning attempt when asked to, and assembles hits.
//
// A Service is stateless and safe for concurrent use; everything about one
// search lives in its request.
type Service struct {
	index CandidateIndex
}

// New creates a search service over a candidate index.
func New(index CandidateIndex) *Service {
	return &Service{index: index}
}

// attempt is one escalation level: the parameters of a single index call.
type attempt struct {
	alpha     float64
	rerank    bool
	diversify bool
}

// Search resolves a request into an ordered, possibly empty, hit list.
//
// Short/symbolic queries force the hybrid_lexical_first strategy and disable
// rerank and diversification for every attempt. Attempts run strictly
// sequentially; the first non-empty one wins. An index error aborts the whole
// search immediately: escalation retries empty results, never failures.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Hit, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	strat := req.Strategy()
	rerank := req.Rerank()
	diversify := req.Diversify()
	if IsShortSymbolic(req.Query()) {
		strat = strategy.HybridLexicalFirst
		rerank, diversify = false, false
		log.Debug("short symbolic query, forcing lexical-first escalation",
			zap.String("query", req.Query()),
		)
	}
	defer func() {
		metrics.SearchDuration.WithLabelValues(string(strat)).Observe(time.Since(start).Seconds())
	}()

	if req.SectionFilterDropped() {
		log.Warn("section filter contained only blank entries, searching unfiltered",
			zap.String("scope_id", req.ScopeID()),
		)
	}

	var attempts []attempt
	switch strat {
	case strategy.Lexical:
		attempts = []attempt{{alpha: 0}}
	case strategy.HybridLexicalFirst:
		attempts = []attempt{
			{alpha: req.Alpha(), rerank: rerank, diversify: diversify},
			{alpha: lexicalFallbackAlpha},
			{alpha: blendedFallbackAlpha},
		}
	default: // strategy.Hybrid
		attempts = []attempt{{alpha: req.Alpha(), rerank: rerank, diversify: diversify}}
	}

	for i, a := range attempts {
		cands, err := s.index.HybridQuery(
			ctx,
			req.ScopeID(), req.Query(),
			a.alpha, req.CandidateLimit(),
			a.rerank, a.diversify,
			req.SectionFilter(),
		)
		level := strconv.Itoa(i + 1)
		if err != nil {
			metrics.SearchAttemptsTotal.WithLabelValues(string(strat), level, "error").Inc()
			return nil, fmt.Errorf("hybrid query attempt %d: %w", i+1, err)
		}
		if len(cands) == 0 {
			metrics.SearchAttemptsTotal.WithLabelValues(string(strat), level, "empty").Inc()
			if i < len(attempts)-1 {
				log.Debug("empty attempt, escalating",
					zap.Int("attempt", i+1),
					zap.Float64("alpha", a.alpha),
				)
			}
			continue
		}
		metrics.SearchAttemptsTotal.WithLabelValues(string(strat), level, "ok").Inc()
		hits := s.finish(req, a, cands)
		log.Info("search complete",
			zap.String("scope_id", req.ScopeID()),
			zap.String("strategy", string(strat)),
			zap.Int("attempts", i+1),
			zap.Int("candidates", len(cands)),
			zap.Int("hits", len(hits)),
		)
		return hits, nil
	}

	log.Debug("all escalation attempts empty", zap.String("scope_id", req.ScopeID()))
	return []result.Hit{}, nil
}

// finish applies diversification or plain top-k trimming to the winning
// attempt's candidates and assembles hits.
func (s *Service) finish(req *request.Request, a attempt, cands []candidate.Candidate) []result.Hit {
	switch {
	case a.diversify && len(cands) > req.ResultLimit():
		metrics.SearchDiversifyTotal.Inc()
		cands = diversifyMMR(cands, req.DiversifyLambda(), req.ResultLimit())
	case len(cands) > req.ResultLimit():
		cands = cands[:req.ResultLimit()]
	}
	return assembleHits(cands)
}
