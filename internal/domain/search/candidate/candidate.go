package candidate

// Candidate is one retrieved passage before final ranking, diversification,
// and formatting. Candidates are produced fresh by one index call, consumed
// within that attempt, and never mutated after creation.
type Candidate struct {
	id           string
	text         string
	score        float64
	sectionTitle string
	pageNumber   int
	vector       []float32
	docItemRefs  []string
}

// New creates a candidate.
func New(
	id, text string, score float64,
	sectionTitle string, pageNumber int,
	vector []float32, docItemRefs []string,
) Candidate {
	return Candidate{
		id: id, text: text, score: score,
		sectionTitle: sectionTitle, pageNumber: pageNumber,
		vector: vector, docItemRefs: docItemRefs,
	}
}

// ID returns the passage identifier.
func (c *Candidate) ID() string { return c.id }

// Text returns the passage text.
func (c *Candidate) Text() string { return c.text }

// Score returns the index-native relevance score.
func (c *Candidate) Score() float64 { return c.score }

// SectionTitle returns the title of the section the passage came from.
func (c *Candidate) SectionTitle() string { return c.sectionTitle }

// PageNumber returns the source page number.
func (c *Candidate) PageNumber() int { return c.pageNumber }

// Vector returns the embedding vector (nil unless diversification was requested).
func (c *Candidate) Vector() []float32 { return c.vector }

// DocItemRefs returns structured provenance references.
func (c *Candidate) DocItemRefs() []string { return c.docItemRefs }

// HasVector reports whether the candidate carries an embedding vector.
func (c *Candidate) HasVector() bool { return len(c.vector) > 0 }

// WithScore returns a copy with a replaced relevance score.
func (c Candidate) WithScore(score float64) Candidate {
	c.score = score
	return c
}

// WithoutVector returns a copy with the embedding vector stripped.
// Vectors are a selection-time-only resource and never cross outward.
func (c Candidate) WithoutVector() Candidate {
	c.vector = nil
	return c
}
