package metadata

import (
	"math"
	"time"

	"github.com/hbollon/go-edlib"
)

const defaultDurationTolerance = 10 * time.Second

// Weights controls how the sub-scores are blended. Title and Artist form the
// text score; TitleArtist and Duration blend the text score with the
// duration gate. Each pair should sum to 1.
type Weights struct {
	Title       float64
	Artist      float64
	TitleArtist float64
	Duration    float64
}

// DefaultWeights averages title with artist, then averages that with the
// duration score.
func DefaultWeights() Weights {
	return Weights{Title: 0.5, Artist: 0.5, TitleArtist: 0.5, Duration: 0.5}
}

// Scorer computes how well a candidate matches the original record.
type Scorer struct {
	weights   Weights
	tolerance time.Duration
}

// NewScorer creates a Scorer. A negative tolerance is treated as zero.
func NewScorer(w Weights, tolerance time.Duration) Scorer {
	if tolerance < 0 {
		tolerance = 0
	}
	return Scorer{weights: w, tolerance: tolerance}
}

// DefaultScorer uses DefaultWeights and a 10 second duration tolerance.
func DefaultScorer() Scorer {
	return NewScorer(DefaultWeights(), defaultDurationTolerance)
}

// Score returns a value in [0, 1]. Both records must carry a duration;
// the one read from the file always does, catalog tracks nearly always do.
func (s Scorer) Score(original, candidate Record) (float64, error) {
	durationScore, err := s.durationScore(original, candidate)
	if err != nil {
		return 0, err
	}

	w := s.weights
	titleArtist := w.Title*textScore(original.Title, candidate.Title) +
		w.Artist*textScore(original.Artist, candidate.Artist)

	return w.TitleArtist*titleArtist + w.Duration*durationScore, nil
}

func (s Scorer) durationScore(original, candidate Record) (float64, error) {
	if original.Duration == nil || candidate.Duration == nil {
		return 0, &MissingFieldError{Field: "duration"}
	}

	diff := *original.Duration - *candidate.Duration
	if diff < 0 {
		diff = -diff
	}

	// Whole seconds only: a 10.9s difference is within a 10s tolerance.
	if diff.Truncate(time.Second) <= s.tolerance {
		return 1, nil
	}
	return 0, nil
}

// textScore is the Jaro-Winkler similarity of a and b, or 0 if either is absent.
func textScore(a, b *string) float64 {
	if a == nil || b == nil {
		return 0
	}
	return jaroWinkler(*a, *b)
}

// The Winkler prefix boost is applied only to pairs whose Jaro similarity
// exceeds boostThreshold, and counts at most maxPrefix leading runes.
const (
	boostThreshold = 0.7
	maxPrefix      = 4
	prefixScale    = 0.1
)

func jaroWinkler(a, b string) float64 {
	if a == b {
		return 1
	}

	ra, rb := []rune(a), []rune(b)
	j := exactJaro(edlib.JaroSimilarity(a, b), len(ra), len(rb))
	if j <= boostThreshold {
		return j
	}

	prefix := 0
	for prefix < maxPrefix && prefix < len(ra) && prefix < len(rb) && ra[prefix] == rb[prefix] {
		prefix++
	}
	return j + prefixScale*float64(prefix)*(1-j)
}

// exactJaro recovers the float64 value of a Jaro similarity that edlib
// computed in float32. For strings of la and lb runes the similarity is
// (m/la + m/lb + (m-k/2)/m) / 3, with m matching runes of which k are out of
// order, so the closest such ratio is the exact one.
func exactJaro(approx float32, la, lb int) float64 {
	if approx == 0 {
		return 0
	}

	target := float64(approx)
	best, bestDiff := target, math.Inf(1)
	for m := 1; m <= min(la, lb); m++ {
		fm := float64(m)
		for k := 0; k <= m; k++ {
			v := (fm/float64(la) + fm/float64(lb) + (fm-float64(k)/2)/fm) / 3
			if d := math.Abs(v - target); d < bestDiff {
				best, bestDiff = v, d
			}
		}
	}
	return best
}
