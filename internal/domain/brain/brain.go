// Package brain owns the matching-and-learning session: the loaded pair
// store, its derived caches (normalized index, vocabulary, trained
// generator), and the defined mutation points. One Brain per process;
// tests construct fresh sessions.
package brain

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"

	"github.com/corey/recall/internal/domain/match"
	"github.com/corey/recall/internal/domain/text"
	"github.com/corey/recall/internal/ports"
)

// DefaultUnknown is the fixed reply when resolution, fallback generation,
// and the arithmetic evaluator all decline.
const DefaultUnknown = "I don't know how to answer that yet."

// ActivationFloor is the decode threshold for generator output vectors:
// vocabulary positions activated above it become response tokens.
const ActivationFloor = 0.3

// Brain is the owned session object. All mutation goes through Learn;
// Resolve and Respond never modify the store.
//
// A mutex guards state because chat mode reloads the store from a watcher
// goroutine; individual CLI invocations are otherwise single-threaded.
type Brain struct {
	mu sync.Mutex

	store ports.PairStore
	cache ports.ModelCache // optional weights cache
	gen   ports.Generator  // optional fallback generator
	eval  ports.Evaluator  // optional arithmetic capability

	scorer  *match.Scorer
	unknown string
	rng     *rand.Rand

	pairs    []*ports.Pair
	index    map[string]*ports.Pair // normalize(input) -> pair
	vocab    *Vocabulary
	genReady bool // false whenever the trained generator is stale
}

// Option configures optional collaborators on construction.
type Option func(*Brain)

// WithCache attaches a trained-weights cache.
func WithCache(c ports.ModelCache) Option { return func(b *Brain) { b.cache = c } }

// WithGenerator attaches a fallback generator.
func WithGenerator(g ports.Generator) Option { return func(b *Brain) { b.gen = g } }

// WithEvaluator attaches the arithmetic capability.
func WithEvaluator(e ports.Evaluator) Option { return func(b *Brain) { b.eval = e } }

// WithUnknown overrides the fixed unknown reply.
func WithUnknown(msg string) Option { return func(b *Brain) { b.unknown = msg } }

// WithScorer injects a scorer (tests use this to count invocations).
func WithScorer(s *match.Scorer) Option { return func(b *Brain) { b.scorer = s } }

// WithRandSeed makes multi-reply draws deterministic.
func WithRandSeed(seed int64) Option {
	return func(b *Brain) { b.rng = rand.New(rand.NewSource(seed)) }
}

// New loads the store and builds the derived caches. A missing store file
// yields an empty session (the adapter warns).
func New(store ports.PairStore, syn *text.Synonyms, opts ...Option) (*Brain, error) {
	b := &Brain{
		store:   store,
		unknown: DefaultUnknown,
		rng:     rand.New(rand.NewSource(rand.Int63())),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.scorer == nil {
		b.scorer = match.NewScorer(syn)
	}

	pairs, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load pairs: %w", err)
	}
	b.rebuild(pairs)
	return b, nil
}

// rebuild replaces the pair list and reconstructs the normalized index and
// vocabulary. Caller holds the lock (or is the constructor).
// Last-write-wins on duplicate normalized keys from a hand-edited file.
func (b *Brain) rebuild(pairs []*ports.Pair) {
	b.pairs = pairs
	b.index = make(map[string]*ports.Pair, len(pairs))
	for _, p := range pairs {
		b.index[text.Normalize(p.Input)] = p
	}
	b.vocab = NewVocabulary(pairs)
	b.genReady = false
}

// Reload re-reads the store from disk, discarding in-memory derived state.
// Used by chat mode when the pairs file changes externally.
func (b *Brain) Reload() error {
	pairs, err := b.store.Load()
	if err != nil {
		return fmt.Errorf("reload pairs: %w", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rebuild(pairs)
	return nil
}

// Resolve returns the stored pair best matching the input, or nil when no
// candidate clears the confidence gate. An exact normalized-key hit
// short-circuits through the index without invoking the scorer.
func (b *Brain) Resolve(input string) *ports.Pair {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.resolveLocked(input)
}

func (b *Brain) resolveLocked(input string) *ports.Pair {
	norm := text.Normalize(input)
	if norm == "" {
		return nil
	}
	if p, ok := b.index[norm]; ok {
		return p
	}

	keys := make([]string, len(b.pairs))
	for i, p := range b.pairs {
		keys[i] = text.Normalize(p.Input)
	}
	best, ok := match.BestMatch(norm, keys, b.scorer)
	if !ok {
		return nil
	}
	return b.pairs[best.Pos]
}

// Respond runs the full pipeline: arithmetic evaluator, exact/fuzzy
// resolution, fallback generation, fixed unknown reply. Always returns a
// response; an error only surfaces from a failed fallback (re)training.
func (b *Brain) Respond(input string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.eval != nil {
		if result, ok := b.eval.Evaluate(input); ok {
			return result, nil
		}
	}

	if p := b.resolveLocked(input); p != nil {
		return b.pick(p.Outputs), nil
	}

	if b.gen != nil {
		resp, err := b.fallbackLocked(input)
		if err != nil {
			return "", err
		}
		if resp != "" {
			return resp, nil
		}
	}

	return b.unknown, nil
}

// pick draws one reply uniformly at random.
func (b *Brain) pick(replies ports.Replies) string {
	if len(replies) == 0 {
		return b.unknown
	}
	return replies[b.rng.Intn(len(replies))]
}

// Fallback generates a response from the trained generator, retraining
// first if the store mutated since the last training. Empty store yields
// an empty response, never an error.
func (b *Brain) Fallback(input string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fallbackLocked(input)
}

func (b *Brain) fallbackLocked(input string) (string, error) {
	if b.gen == nil || b.vocab.Len() == 0 {
		return "", nil
	}
	if !b.genReady {
		if err := b.trainLocked(); err != nil {
			return "", err
		}
	}

	out, err := b.gen.Infer(b.vocab.Vectorize(input))
	if err != nil {
		return "", fmt.Errorf("fallback infer: %w", err)
	}
	return b.decode(out), nil
}

// trainLocked (re)trains the generator from the full store, consulting the
// weights cache by store fingerprint first.
func (b *Brain) trainLocked() error {
	fp := b.fingerprint()

	if b.cache != nil {
		if snap, err := b.cache.Load(fp); err == nil && snap != nil {
			if err := b.gen.Restore(snap); err == nil {
				b.genReady = true
				return nil
			}
			// Corrupt snapshot: fall through to retrain.
		}
	}

	inputs := make([][]float64, 0, len(b.pairs))
	targets := make([][]float64, 0, len(b.pairs))
	for _, p := range b.pairs {
		target := make([]float64, b.vocab.Len())
		for _, out := range p.Outputs {
			for i, v := range b.vocab.Vectorize(out) {
				if v > 0 {
					target[i] = 1.0
				}
			}
		}
		inputs = append(inputs, b.vocab.Vectorize(p.Input))
		targets = append(targets, target)
	}

	if err := b.gen.Train(inputs, targets); err != nil {
		return fmt.Errorf("fallback train: %w", err)
	}
	b.genReady = true

	if b.cache != nil {
		if snap, err := b.gen.Snapshot(); err == nil {
			_ = b.cache.Save(fp, snap) // cache write failure is non-fatal
		}
	}
	return nil
}

// decode turns an activation vector back into text: positions above
// ActivationFloor, sorted by descending activation, joined with spaces.
func (b *Brain) decode(out []float64) string {
	type hit struct {
		pos        int
		activation float64
	}
	var hits []hit
	for i, a := range out {
		if i >= b.vocab.Len() {
			break
		}
		if a > ActivationFloor {
			hits = append(hits, hit{pos: i, activation: a})
		}
	}
	if len(hits) == 0 {
		return ""
	}
	// Insertion sort by activation descending; hit counts are tiny.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].activation > hits[j-1].activation; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	words := make([]string, len(hits))
	for i, h := range hits {
		words[i] = b.vocab.TokenAt(h.pos)
	}
	result := words[0]
	for _, w := range words[1:] {
		result += " " + w
	}
	return result
}

// fingerprint hashes the pair collection plus vocabulary length. Any learn
// mutation changes it, which is what invalidates cached weights.
func (b *Brain) fingerprint() string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, p := range b.pairs {
		_ = enc.Encode(p)
	}
	fmt.Fprintf(h, "vocab:%d", b.vocab.Len())
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Pairs returns the stored pairs in order. Callers must not mutate.
func (b *Brain) Pairs() []*ports.Pair {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pairs
}

// Vocab returns the current vocabulary.
func (b *Brain) Vocab() *Vocabulary {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.vocab
}

// StorePath exposes the backing file path for display and watching.
func (b *Brain) StorePath() string { return b.store.Path() }
