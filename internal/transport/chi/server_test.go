package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/request"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/result"
)

type mockSearcher struct {
	lastReq *request.Request
	hits    []result.Hit
	err     error
}

func (m *mockSearcher) Search(_ context.Context, req *request.Request) ([]result.Hit, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.hits, nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

func testDefaults() Defaults {
	return Defaults{ResultLimit: 10, CandidateLimit: 50, Alpha: 0.7, Lambda: 0.5}
}

func newTestRouter(search searcher, store pinger) http.Handler {
	r := chi.NewRouter()
	NewServer(search, store, testDefaults(), zap.NewNop()).Routes(r)
	return r
}

func postSearch(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/search", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleSearch_Success(t *testing.T) {
	search := &mockSearcher{hits: []result.Hit{
		result.New("chunk-1", "some text", "results", 3, 0.9),
	}}
	h := newTestRouter(search, &mockPinger{})

	rec := postSearch(t, h, `{"scope_id":"paper-1","query":"daf-16 expression"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Total != 1 || len(resp.Hits) != 1 {
		t.Fatalf("total = %d, hits = %d, want 1/1", resp.Total, len(resp.Hits))
	}
	got := resp.Hits[0]
	if got.ID != "chunk-1" || got.SectionTitle != "results" || got.PageNumber != 3 || got.Score != 0.9 {
		t.Errorf("unexpected hit: %+v", got)
	}
}

func TestHandleSearch_AppliesDefaults(t *testing.T) {
	search := &mockSearcher{}
	h := newTestRouter(search, &mockPinger{})

	rec := postSearch(t, h, `{"scope_id":"paper-1","query":"insulin signaling pathway"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	req := search.lastReq
	if req.ResultLimit() != 10 {
		t.Errorf("resultLimit = %d, want default 10", req.ResultLimit())
	}
	if req.CandidateLimit() != 50 {
		t.Errorf("candidateLimit = %d, want default 50", req.CandidateLimit())
	}
	if req.Alpha() != 0.7 {
		t.Errorf("alpha = %v, want default 0.7", req.Alpha())
	}
}

func TestHandleSearch_ExplicitZeroAlpha(t *testing.T) {
	search := &mockSearcher{}
	h := newTestRouter(search, &mockPinger{})

	rec := postSearch(t, h, `{"scope_id":"paper-1","query":"lexical only please","alpha":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := search.lastReq.Alpha(); got != 0 {
		t.Errorf("alpha = %v, want explicit 0 (not default)", got)
	}
}

func TestHandleSearch_SectionFilterShapes(t *testing.T) {
	// A bare string and a one-element array must produce the same request.
	bodies := []string{
		`{"scope_id":"p","query":"some query","section_filter":"results"}`,
		`{"scope_id":"p","query":"some query","section_filter":["results"]}`,
	}
	var seen [][]string
	for _, body := range bodies {
		search := &mockSearcher{}
		rec := postSearch(t, newTestRouter(search, &mockPinger{}), body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d for body %s", rec.Code, body)
		}
		seen = append(seen, search.lastReq.SectionFilter())
	}
	if !reflect.DeepEqual(seen[0], seen[1]) {
		t.Errorf("string vs array filter diverged: %v vs %v", seen[0], seen[1])
	}
	if !reflect.DeepEqual(seen[0], []string{"results"}) {
		t.Errorf("sectionFilter = %v, want [results]", seen[0])
	}
}

func TestHandleSearch_InvalidRequest(t *testing.T) {
	h := newTestRouter(&mockSearcher{}, &mockPinger{})

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"scope_id":`},
		{"missing query", `{"scope_id":"paper-1"}`},
		{"missing scope", `{"query":"something"}`},
		{"bad strategy", `{"scope_id":"p","query":"q words","strategy":"exotic"}`},
		{"alpha out of range", `{"scope_id":"p","query":"q words","alpha":1.5}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postSearch(t, h, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
			}
			var er errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
				t.Fatalf("error body not json: %v", err)
			}
			if er.Code != codeBadRequest {
				t.Errorf("code = %q, want %q", er.Code, codeBadRequest)
			}
		})
	}
}

func TestHandleSearch_IndexUnavailable(t *testing.T) {
	search := &mockSearcher{err: fmt.Errorf("%w: redis down", domain.ErrIndexUnavailable)}
	rec := postSearch(t, newTestRouter(search, &mockPinger{}), `{"scope_id":"p","query":"some query"}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), codeIndexUnavailable) {
		t.Errorf("body = %s, want code %q", rec.Body.String(), codeIndexUnavailable)
	}
}

func TestHandleSearch_InternalError(t *testing.T) {
	search := &mockSearcher{err: errors.New("boom")}
	rec := postSearch(t, newTestRouter(search, &mockPinger{}), `{"scope_id":"p","query":"some query"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	h := newTestRouter(&mockSearcher{}, &mockPinger{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	h = newTestRouter(&mockSearcher{}, &mockPinger{err: errors.New("no route to host")})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
