package search

import (
	"math"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/candidate"
)

// cosineEpsilon pads cosine denominators against division by zero.
const cosineEpsilon = 1e-10

// diversifyMMR greedily selects up to topK candidates by Maximal Marginal
// Relevance: mmr(c) = lambda*relevance(c) - (1-lambda)*max_j sim(c, selected_j).
// Relevance scores are normalized to [0,1] by the maximum score among
// vector-bearing candidates (raw scores are kept when that maximum is 0).
// Ties break by original index order, earliest candidate first, so output is
// deterministic for identical input. Selected candidates come back with their
// embedding vectors stripped.
//
// Candidates without vectors cannot participate in similarity; when none carry
// one, diversification is a no-op returning the top topK in given order.
func diversifyMMR(cands []candidate.Candidate, lambda float64, topK int) []candidate.Candidate {
	if len(cands) == 0 || topK <= 0 {
		return nil
	}

	pool := make([]int, 0, len(cands))
	for i := range cands {
		if cands[i].HasVector() {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		n := min(topK, len(cands))
		return append([]candidate.Candidate(nil), cands[:n]...)
	}

	var maxScore float64
	for _, i := range pool {
		if cands[i].Score() > maxScore {
			maxScore = cands[i].Score()
		}
	}
	relevance := func(i int) float64 {
		if maxScore > 0 {
			return cands[i].Score() / maxScore
		}
		return cands[i].Score()
	}

	selected := make([]int, 0, topK)
	used := make([]bool, len(cands))

	for len(selected) < topK && len(selected) < len(pool) {
		best := -1
		bestScore := math.Inf(-1)

		for _, i := range pool {
			if used[i] {
				continue
			}

			var score float64
			if len(selected) == 0 {
				score = relevance(i)
			} else {
				maxSim := math.Inf(-1)
				for _, j := range selected {
					if sim := cosineSimilarity(cands[i].Vector(), cands[j].Vector()); sim > maxSim {
						maxSim = sim
					}
				}
				score = lambda*relevance(i) - (1-lambda)*maxSim
			}

			// Strict > keeps the earliest-appearing candidate on ties.
			if score > bestScore {
				bestScore = score
				best = i
			}
		}

		if best < 0 {
			break
		}
		used[best] = true
		selected = append(selected, best)
	}

	out := make([]candidate.Candidate, 0, len(selected))
	for _, i := range selected {
		out = append(out, cands[i].WithoutVector())
	}
	return out
}

// cosineSimilarity returns the cosine of the angle between two vectors.
// A zero-norm vector is similar to nothing and yields 0.
func cosineSimilarity(a, b []float32) float64 {
	n := min(len(a), len(b))
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + cosineEpsilon)
}
