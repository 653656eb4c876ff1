package match

// Acceptance gate (lenient calibration, paired with the ratio-of-max
// score formula): a candidate is accepted when its score clears ScoreFloor
// strictly, or its edit distance is at most DistanceCeiling.
const (
	ScoreFloor      = 0.25
	DistanceCeiling = 2
)

// Candidate is one scored stored key.
type Candidate struct {
	Pos      int     // index into the candidate list (first-seen order)
	Score    float64 // shared-word ratio
	Overlap  int     // raw intersection size
	Distance int     // Levenshtein distance between normalized keys
}

// BestMatch scans every stored normalized key against the normalized input
// and returns the best candidate under the total order: score descending,
// then overlap descending, then distance ascending, then first-seen order.
// ok is false when no candidate clears the acceptance gate, or the input
// is empty — a low-confidence guess is never returned.
//
// Linear scan over all keys; the store holds hundreds to low thousands
// of pairs and retraining the fallback model on mutation dominates.
func BestMatch(normInput string, keys []string, s *Scorer) (best Candidate, ok bool) {
	if normInput == "" || len(keys) == 0 {
		return Candidate{}, false
	}

	best = Candidate{Pos: -1}
	for i, key := range keys {
		score, overlap := s.Score(normInput, key)
		dist := Levenshtein(normInput, key)

		c := Candidate{Pos: i, Score: score, Overlap: overlap, Distance: dist}
		if best.Pos < 0 || better(c, best) {
			best = c
		}
	}

	if !Accept(best) {
		return best, false
	}
	return best, true
}

// better reports whether a replaces b as running best. Strict comparisons
// at every level keep the first-seen candidate on full ties.
func better(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Overlap != b.Overlap {
		return a.Overlap > b.Overlap
	}
	return a.Distance < b.Distance
}

// Accept applies the lenient confidence gate.
func Accept(c Candidate) bool {
	return c.Score > ScoreFloor || c.Distance <= DistanceCeiling
}
