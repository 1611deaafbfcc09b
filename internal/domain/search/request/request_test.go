package request

import (
	"errors"
	"testing"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/strategy"
)

func newRequest(t *testing.T, opts ...func(*args)) Request {
	t.Helper()
	a := &args{
		scopeID:        "doc-1",
		query:          "what methods were used",
		strat:          strategy.Hybrid,
		resultLimit:    10,
		candidateLimit: 50,
		alpha:          0.7,
		lambda:         0.5,
	}
	for _, o := range opts {
		o(a)
	}
	r, err := New(
		a.scopeID, a.query, a.strat, a.resultLimit, a.candidateLimit,
		a.alpha, a.rerank, a.diversify, a.lambda, a.sections,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

type args struct {
	scopeID, query    string
	strat             strategy.Strategy
	resultLimit       int
	candidateLimit    int
	alpha, lambda     float64
	rerank, diversify bool
	sections          []string
}

func TestNew_Defaults(t *testing.T) {
	r, err := New("doc-1", "q gene expression", "", 10, 0, 0.5, false, false, 0.5, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Strategy() != strategy.Hybrid {
		t.Errorf("default strategy = %q, want hybrid", r.Strategy())
	}
	if r.CandidateLimit() != 10 {
		t.Errorf("default candidate limit = %d, want result limit", r.CandidateLimit())
	}
}

func TestNew_Invalid(t *testing.T) {
	cases := []struct {
		name string
		fn   func(*args)
	}{
		{"empty scope", func(a *args) { a.scopeID = "" }},
		{"blank query", func(a *args) { a.query = "   " }},
		{"bad strategy", func(a *args) { a.strat = "semantic" }},
		{"zero result limit", func(a *args) { a.resultLimit = 0 }},
		{"candidate below result", func(a *args) { a.candidateLimit = 5 }},
		{"alpha above 1", func(a *args) { a.alpha = 1.5 }},
		{"negative lambda", func(a *args) { a.lambda = -0.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := &args{
				scopeID: "doc-1", query: "some query", strat: strategy.Hybrid,
				resultLimit: 10, candidateLimit: 50, alpha: 0.7, lambda: 0.5,
			}
			tc.fn(a)
			_, err := New(
				a.scopeID, a.query, a.strat, a.resultLimit, a.candidateLimit,
				a.alpha, a.rerank, a.diversify, a.lambda, a.sections,
			)
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Errorf("error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestSectionFilter_Normalization(t *testing.T) {
	r := newRequest(t, func(a *args) { a.sections = []string{" abstract ", "", "  ", "results"} })
	got := r.SectionFilter()
	if len(got) != 2 || got[0] != "abstract" || got[1] != "results" {
		t.Errorf("SectionFilter() = %v, want [abstract results]", got)
	}
	if r.SectionFilterDropped() {
		t.Error("SectionFilterDropped() = true for a filter with surviving entries")
	}
}

func TestSectionFilter_AllBlank(t *testing.T) {
	r := newRequest(t, func(a *args) { a.sections = []string{"", "   "} })
	if r.SectionFilter() != nil {
		t.Errorf("SectionFilter() = %v, want nil", r.SectionFilter())
	}
	if !r.SectionFilterDropped() {
		t.Error("SectionFilterDropped() = false, want true")
	}
}

func TestSectionFilter_Empty(t *testing.T) {
	r := newRequest(t)
	if r.SectionFilter() != nil || r.SectionFilterDropped() {
		t.Error("empty input must mean no filter and no drop warning")
	}
}

func TestNew_ClampsLimits(t *testing.T) {
	r, err := New("doc-1", "long query text", strategy.Hybrid, 500, 9999, 0.5, false, false, 0.5, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.ResultLimit() != MaxResultLimit {
		t.Errorf("ResultLimit() = %d, want %d", r.ResultLimit(), MaxResultLimit)
	}
	if r.CandidateLimit() != MaxCandidates {
		t.Errorf("CandidateLimit() = %d, want %d", r.CandidateLimit(), MaxCandidates)
	}
}
