package brain

import (
	"github.com/corey/recall/internal/domain/text"
	"github.com/corey/recall/internal/ports"
)

// Vocabulary is the ordered set of tokens seen across every pair's input
// and outputs. Order is first-seen; the set only grows within a session.
// Its length fixes the generator's feature-vector length, so it must be
// extended before any vectorization after a mutation.
type Vocabulary struct {
	tokens []string
	index  map[string]int
}

// NewVocabulary builds the vocabulary from the full store, flattening
// tokenize(input) and tokenize(each output) per pair in order.
func NewVocabulary(pairs []*ports.Pair) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int)}
	for _, p := range pairs {
		v.Extend(text.Tokenize(p.Input))
		for _, out := range p.Outputs {
			v.Extend(text.Tokenize(out))
		}
	}
	return v
}

// Extend appends tokens not already present, in order encountered.
func (v *Vocabulary) Extend(tokens []string) {
	for _, tok := range tokens {
		if _, ok := v.index[tok]; ok {
			continue
		}
		v.index[tok] = len(v.tokens)
		v.tokens = append(v.tokens, tok)
	}
}

// Len returns the vocabulary size (= feature-vector length).
func (v *Vocabulary) Len() int { return len(v.tokens) }

// Tokens returns the tokens in first-seen order. Callers must not mutate.
func (v *Vocabulary) Tokens() []string { return v.tokens }

// TokenAt returns the token at a vector position.
func (v *Vocabulary) TokenAt(i int) string { return v.tokens[i] }

// Vectorize builds the presence-flag feature vector for a text: 1.0 at
// each position whose token appears in the text, 0.0 elsewhere. Tokens
// outside the vocabulary are ignored.
func (v *Vocabulary) Vectorize(s string) []float64 {
	vec := make([]float64, len(v.tokens))
	for _, tok := range text.Tokenize(s) {
		if pos, ok := v.index[tok]; ok {
			vec[pos] = 1.0
		}
	}
	return vec
}
