package candidates

import (
	"sort"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/domain/search/candidate"
)

// rrfK is the Reciprocal Rank Fusion constant (standard value from Cormack et al. 2009).
const rrfK = 60

// blend merges the vector and lexical legs into one descending-relevance list.
// Pure attempts (alpha 0 or 1) keep the index-native scores and order of the
// single leg that ran. Mixed attempts fuse via alpha-weighted reciprocal rank:
// score(d) = alpha/(k + rank_knn(d)) + (1-alpha)/(k + rank_bm25(d)).
// When a passage appears in both legs, the semantic copy is kept (it may carry
// the vector). Equal fused scores break by id for deterministic output.
func blend(semantic, lexical []candidate.Candidate, alpha float64, limit int) []candidate.Candidate {
	if alpha <= 0 {
		return capped(lexical, limit)
	}
	if alpha >= 1 {
		return capped(semantic, limit)
	}

	type scored struct {
		cand  candidate.Candidate
		score float64
	}

	merged := make(map[string]*scored, len(semantic)+len(lexical))

	for rank, c := range semantic {
		merged[c.ID()] = &scored{cand: c, score: alpha / float64(rrfK+rank+1)}
	}

	for rank, c := range lexical {
		s := (1 - alpha) / float64(rrfK+rank+1)
		if existing, ok := merged[c.ID()]; ok {
			existing.score += s
		} else {
			merged[c.ID()] = &scored{cand: c, score: s}
		}
	}

	fused := make([]candidate.Candidate, 0, len(merged))
	for _, s := range merged {
		fused = append(fused, s.cand.WithScore(s.score))
	}

	sort.Slice(fused, func(i, j int) bool {
		if fused[i].Score() != fused[j].Score() {
			return fused[i].Score() > fused[j].Score()
		}
		return fused[i].ID() < fused[j].ID()
	})

	return capped(fused, limit)
}

func capped(cands []candidate.Candidate, limit int) []candidate.Candidate {
	if len(cands) > limit {
		return cands[:limit]
	}
	return cands
}
