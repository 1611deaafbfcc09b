package search

import (
	"context"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/candidate"
)

// CandidateIndex is the external hybrid index the orchestrator queries.
// One call is one attempt: a blended lexical+vector query with weight alpha
// on the vector side, optionally reranked, restricted to passages whose
// section title matches any of the given keywords (empty = no filter).
//
// Contract: results come back in descending relevance order; embedding
// vectors are attached only when includeVectors is set (they are expensive
// to transmit and only needed for diversification); any failure is reported
// as a domain.ErrIndexUnavailable-class error.
type CandidateIndex interface {
	HybridQuery(
		ctx context.Context,
		scopeID, query string,
		alpha float64,
		candidateLimit int,
		rerank, includeVectors bool,
		sections []string,
	) ([]candidate.Candidate, error)
}
