package search

import (
	"unicode"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/candidate"
	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/result"
)

const (
	// hitTextLimit caps hit text length in characters.
	hitTextLimit = 1500
	// truncationMarker is appended when a passage text was cut.
	truncationMarker = "..."
)

// assembleHits maps candidates to outward-safe hits in input order: text is
// truncated at a word boundary, embedding vectors and provenance refs are
// dropped. No filtering, no reordering.
func assembleHits(cands []candidate.Candidate) []result.Hit {
	hits := make([]result.Hit, 0, len(cands))
	for i := range cands {
		c := &cands[i]
		hits = append(hits, result.New(
			c.ID(),
			truncateText(c.Text(), hitTextLimit),
			c.SectionTitle(),
			c.PageNumber(),
			c.Score(),
		))
	}
	return hits
}

// truncateText cuts s to at most limit characters plus the truncation marker,
// backing up to the last whitespace at or before the cap so words are never
// split. Without any whitespace inside the cap, the cut lands at the cap.
func truncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	cut := limit
	for i := limit; i > 1; i-- {
		if unicode.IsSpace(runes[i-1]) {
			cut = i - 1
			break
		}
	}

	return string(runes[:cut]) + truncationMarker
}
