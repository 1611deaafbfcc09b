package candidates

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/db"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/candidate"
)

// DefaultMaxConcurrent bounds in-flight index queries across all requests.
const DefaultMaxConcurrent = 16

// baseReturnFields are the passage fields fetched for every attempt. The
// embedding vector is requested separately, only when diversification needs it.
var baseReturnFields = []string{"text", "section_title", "page_number", "doc_item_refs"}

// store is the consumer interface for hybrid retrieval (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchBM25(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Embedder vectorizes query text for the vector leg of a hybrid query.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Reranker is an opaque secondary scoring pass (e.g. a cross-encoder service)
// over an initial candidate list. Implementations return candidates in
// descending relevance order.
type Reranker interface {
	Rerank(ctx context.Context, query string, cands []candidate.Candidate) ([]candidate.Candidate, error)
}

// Repo implements the search usecase's CandidateIndex over a RediSearch store.
// One hybrid query runs a BM25 leg and/or a KNN leg depending on alpha and
// fuses them into a single descending-relevance candidate list.
//
// All blocking store calls pass through one owned semaphore, so a burst of
// concurrent searches cannot exhaust the backend connection pool.
type Repo struct {
	store     store
	embed     Embedder
	reranker  Reranker
	sem       *semaphore.Weighted
	keyPrefix string
}

// New creates a candidate index over a store and a query embedder.
func New(s store, embed Embedder, keyPrefix string, maxConcurrent int64) *Repo {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &Repo{
		store:     s,
		embed:     embed,
		sem:       semaphore.NewWeighted(maxConcurrent),
		keyPrefix: keyPrefix,
	}
}

// WithReranker attaches an optional reranker. Without one, the rerank flag is a no-op.
func (r *Repo) WithReranker(rr Reranker) *Repo {
	r.reranker = rr
	return r
}

// HybridQuery runs one blended lexical+vector query against a scope index.
// Results come back in descending relevance order; vectors are attached only
// when includeVectors is set. Any backend failure aborts the attempt and is
// reported as domain.ErrIndexUnavailable.
func (r *Repo) HybridQuery(
	ctx context.Context,
	scopeID, query string,
	alpha float64,
	candidateLimit int,
	rerank, includeVectors bool,
	sections []string,
) ([]candidate.Candidate, error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: acquire query slot: %w", domain.ErrIndexUnavailable, err)
	}
	defer r.sem.Release(1)

	indexName := fmt.Sprintf("%s%s:idx", r.keyPrefix, scopeID)
	keyPrefix := fmt.Sprintf("%s%s:", r.keyPrefix, scopeID)

	returnFields := baseReturnFields
	if includeVectors {
		returnFields = append(append([]string{}, baseReturnFields...), "vector")
	}

	var lexical []candidate.Candidate
	if alpha < 1 {
		sr, err := r.store.SearchBM25(ctx, &db.TextQuery{
			IndexName:    indexName,
			Query:        query,
			Sections:     sections,
			TopK:         candidateLimit,
			ReturnFields: returnFields,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: bm25 %s: %w", domain.ErrIndexUnavailable, scopeID, err)
		}
		lexical = parseEntries(sr, keyPrefix, includeVectors)
	}

	var semantic []candidate.Candidate
	if alpha > 0 {
		vector, err := r.embed.Embed(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("%w: vectorize query: %w", domain.ErrIndexUnavailable, err)
		}
		knnFields := append(append([]string{}, returnFields...), "__vector_score")
		sr, err := r.store.SearchKNN(ctx, &db.KNNQuery{
			IndexName:    indexName,
			Sections:     sections,
			Vector:       vector,
			K:            candidateLimit,
			ReturnFields: knnFields,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: knn %s: %w", domain.ErrIndexUnavailable, scopeID, err)
		}
		semantic = parseEntries(sr, keyPrefix, includeVectors)
	}

	cands := blend(semantic, lexical, alpha, candidateLimit)

	if rerank && r.reranker != nil {
		reranked, err := r.reranker.Rerank(ctx, query, cands)
		if err != nil {
			return nil, fmt.Errorf("%w: rerank %s: %w", domain.ErrIndexUnavailable, scopeID, err)
		}
		cands = reranked
	}

	return cands, nil
}
