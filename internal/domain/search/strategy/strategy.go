package strategy

// Strategy selects how the orchestrator sequences candidate index attempts.
type Strategy string

// Search strategy constants.
const (
	// Hybrid runs a single blended lexical+vector attempt with the caller's alpha.
	Hybrid Strategy = "hybrid"
	// Lexical runs a single keyword-only attempt (alpha=0, no rerank, no diversification).
	Lexical Strategy = "lexical"
	// HybridLexicalFirst escalates through up to three attempts
	// (requested alpha, then 0.0, then 0.3), stopping at the first non-empty one.
	HybridLexicalFirst Strategy = "hybrid_lexical_first"
)

// IsValid checks if the strategy is one of the supported values.
func (s Strategy) IsValid() bool {
	return s == Hybrid || s == Lexical || s == HybridLexicalFirst
}
