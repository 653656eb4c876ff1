package match

import (
	"github.com/corey/recall/internal/domain/text"
)

// Scorer computes the token-overlap signal between two normalized texts.
// The formula is the shared-word ratio |I| / max(|A|,|B|) over the
// synonym-expanded token sets (calibrated against the lenient acceptance
// gate; see Accept). The raw intersection size is kept as a secondary
// tie-break signal.
//
// Not safe for concurrent use: the call counter is unguarded.
type Scorer struct {
	syn   *text.Synonyms
	calls int
}

// NewScorer creates a scorer with the given synonym table (nil disables
// expansion).
func NewScorer(syn *text.Synonyms) *Scorer {
	return &Scorer{syn: syn}
}

// Score returns the shared-word ratio and the raw overlap count for two
// texts. Inputs need not be pre-normalized; tokenization normalizes.
func (s *Scorer) Score(a, b string) (score float64, overlap int) {
	s.calls++

	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0, 0
	}
	if s.syn != nil {
		setA = s.syn.Expand(setA)
		setB = s.syn.Expand(setB)
	}

	for tok := range setA {
		if setB[tok] {
			overlap++
		}
	}
	if overlap == 0 {
		return 0, 0
	}

	max := len(setA)
	if len(setB) > max {
		max = len(setB)
	}
	return float64(overlap) / float64(max), overlap
}

// Calls reports how many times Score ran. The exact-match short-circuit in
// the resolver is verified against this counter.
func (s *Scorer) Calls() int { return s.calls }

func tokenSet(s string) map[string]bool {
	toks := text.Tokenize(s)
	set := make(map[string]bool, len(toks))
	for _, t := range toks {
		set[t] = true
	}
	return set
}
