package db

import (
	"context"
	"time"
)

// Store is the backend contract for index queries.
type Store interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
	SearchBM25(ctx context.Context, q *TextQuery) (*SearchResult, error)
	Ping(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error
	Close()
}

// KNNQuery is a vector similarity query against one scope index.
// Stored embedding vectors come back only when ReturnFields names the
// vector field; callers that do not diversify should leave it out.
type KNNQuery struct {
	IndexName string
	// Sections pre-filters to passages whose section title matches any keyword.
	// Empty means no filter.
	Sections     []string
	Vector       []float32
	K            int
	ReturnFields []string
}

// TextQuery is a BM25 keyword query against one scope index.
type TextQuery struct {
	IndexName    string
	Query        string
	Sections     []string
	TopK         int
	ReturnFields []string
}

// SearchResult is a raw FT.SEARCH response.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is one raw index record: key, score, and flat field map.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
