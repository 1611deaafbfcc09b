package result

// Hit is a single search result, safe to return to a caller: text possibly
// truncated, embedding vector and internal provenance stripped. Immutable.
type Hit struct {
	id           string
	text         string
	sectionTitle string
	pageNumber   int
	score        float64
}

// New creates a hit.
func New(id, text, sectionTitle string, pageNumber int, score float64) Hit {
	return Hit{
		id: id, text: text, sectionTitle: sectionTitle,
		pageNumber: pageNumber, score: score,
	}
}

// ID returns the passage identifier.
func (h *Hit) ID() string { return h.id }

// Text returns the (possibly truncated) passage text.
func (h *Hit) Text() string { return h.text }

// SectionTitle returns the title of the section the passage came from.
func (h *Hit) SectionTitle() string { return h.sectionTitle }

// PageNumber returns the source page number.
func (h *Hit) PageNumber() int { return h.pageNumber }

// Score returns the relevance score.
func (h *Hit) Score() float64 { return h.score }
