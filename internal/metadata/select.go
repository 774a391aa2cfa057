package metadata

import (
	"cmp"
	"slices"
)

// Scored pairs a candidate with its overall score.
type Scored struct {
	Record Record
	Score  float64
}

// Ranking holds every scored candidate in ascending rank order.
type Ranking struct {
	All  []Scored
	Best Scored
}

// Select scores every candidate against original and picks the best.
//
// Candidates are ranked by their score truncated to three decimals with a
// stable ascending sort, and the last one wins. When several candidates
// share the highest truncated score, the one that came last in candidates
// is chosen.
func Select(original Record, candidates []Record, s Scorer) (Ranking, error) {
	if len(candidates) == 0 {
		return Ranking{}, ErrEmptyCandidates
	}

	scored := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		score, err := s.Score(original, c)
		if err != nil {
			return Ranking{}, err
		}
		scored = append(scored, Scored{Record: c, Score: score})
	}

	slices.SortStableFunc(scored, func(a, b Scored) int {
		return cmp.Compare(rankKey(a.Score), rankKey(b.Score))
	})

	return Ranking{All: scored, Best: scored[len(scored)-1]}, nil
}

// Top returns up to n of the highest ranked candidates, best first.
func (r Ranking) Top(n int) []Scored {
	n = min(n, len(r.All))
	if n <= 0 {
		return nil
	}

	top := make([]Scored, 0, n)
	for i := len(r.All) - 1; i >= len(r.All)-n; i-- {
		top = append(top, r.All[i])
	}
	return top
}

func rankKey(score float64) int64 {
	return int64(score * 1000)
}
