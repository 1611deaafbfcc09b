package candidates

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/db"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/candidate"
)

// parseEntries converts raw index records into candidates, stripping the key
// prefix into a bare passage id.
func parseEntries(sr *db.SearchResult, keyPrefix string, includeVectors bool) []candidate.Candidate {
	if sr == nil || len(sr.Entries) == 0 {
		return nil
	}

	out := make([]candidate.Candidate, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, keyPrefix)
		out = append(out, parseEntry(id, entry, includeVectors))
	}
	return out
}

func parseEntry(id string, entry db.SearchEntry, includeVectors bool) candidate.Candidate {
	var (
		text    string
		section string
		page    int
		vector  []float32
		refs    []string
	)

	for k, v := range entry.Fields {
		switch k {
		case "text":
			text = v
		case "section_title":
			section = v
		case "page_number":
			if n, err := strconv.Atoi(v); err == nil {
				page = n
			}
		case "doc_item_refs":
			refs = parseDocItemRefs(v)
		case "vector":
			if includeVectors {
				vector = bytesToVector(v)
			}
		}
	}

	return candidate.New(id, text, entry.Score, section, page, vector, refs)
}

// parseDocItemRefs decodes provenance refs stored as a JSON string array.
// A bare string value is treated as a single ref.
func parseDocItemRefs(v string) []string {
	if v == "" {
		return nil
	}
	var refs []string
	if err := json.Unmarshal([]byte(v), &refs); err == nil {
		return refs
	}
	return []string{v}
}

// bytesToVector deserializes a binary string to []float32.
func bytesToVector(s string) []float32 {
	b := []byte(s)
	if len(b)%4 != 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
