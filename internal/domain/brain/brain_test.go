package brain

import (
	"testing"

	"github.com/corey/recall/internal/domain/match"
	"github.com/corey/recall/internal/domain/text"
	"github.com/corey/recall/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory ports.PairStore for session tests.
type memStore struct {
	pairs []*ports.Pair
	saves int
}

func (m *memStore) Load() ([]*ports.Pair, error) { return m.pairs, nil }
func (m *memStore) Save(pairs []*ports.Pair) error {
	m.pairs = pairs
	m.saves++
	return nil
}
func (m *memStore) Path() string { return "mem://pairs" }

func newTestBrain(t *testing.T, opts ...Option) (*Brain, *memStore) {
	t.Helper()
	store := &memStore{}
	b, err := New(store, text.NewSynonyms(), append(opts, WithRandSeed(1))...)
	require.NoError(t, err)
	return b, store
}

func TestResolve_ExactMatchSkipsScorer(t *testing.T) {
	scorer := match.NewScorer(nil)
	b, _ := newTestBrain(t, WithScorer(scorer))
	require.NoError(t, b.Learn("hi", "hello"))

	p := b.Resolve("hi")
	require.NotNil(t, p)
	assert.Equal(t, ports.Replies{"hello"}, p.Outputs)
	assert.Zero(t, scorer.Calls(), "exact hits must bypass scoring")
}

func TestResolve_ExactMatchIsNormalizationInsensitive(t *testing.T) {
	b, _ := newTestBrain(t)
	require.NoError(t, b.Learn("How are you?", "fine"))

	assert.NotNil(t, b.Resolve("how are you"))
	assert.NotNil(t, b.Resolve("HOW  ARE  YOU!!"))
}

func TestResolve_TypoTolerant(t *testing.T) {
	b, _ := newTestBrain(t)
	require.NoError(t, b.Learn("hello", "hi there"))

	p := b.Resolve("helo")
	require.NotNil(t, p)
	assert.Equal(t, "hello", p.Input)
}

func TestResolve_NoMatchReturnsNil(t *testing.T) {
	b, _ := newTestBrain(t)
	require.NoError(t, b.Learn("how do i reset my password", "use the reset link"))

	assert.Nil(t, b.Resolve("quantum flux capacitor"))
	assert.Nil(t, b.Resolve(""))
}

func TestResolve_EmptyStore(t *testing.T) {
	b, _ := newTestBrain(t)
	assert.Nil(t, b.Resolve("anything"))
}

func TestLearn_MergesByNormalizedKey(t *testing.T) {
	b, _ := newTestBrain(t)
	require.NoError(t, b.Learn("hi", "hello"))
	require.NoError(t, b.Learn("HI!", "hey"))

	pairs := b.Pairs()
	require.Len(t, pairs, 1, "merge law: one pair per normalized key")
	assert.ElementsMatch(t, []string{"hello", "hey"}, []string(pairs[0].Outputs))
}

func TestLearn_MergeDeduplicates(t *testing.T) {
	b, _ := newTestBrain(t)
	require.NoError(t, b.Learn("hi", "hello"))
	require.NoError(t, b.Learn("hi", "hello"))

	pairs := b.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, ports.Replies{"hello"}, pairs[0].Outputs)
}

func TestLearn_JSONArrayOutput(t *testing.T) {
	b, _ := newTestBrain(t)
	require.NoError(t, b.Learn("hi", `["hello","hey"]`))

	pairs := b.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, ports.Replies{"hello", "hey"}, pairs[0].Outputs)
}

func TestLearn_MalformedJSONDegradesToScalar(t *testing.T) {
	b, _ := newTestBrain(t)
	require.NoError(t, b.Learn("hi", `["hello", broken`))

	pairs := b.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, ports.Replies{`["hello", broken`}, pairs[0].Outputs)
}

func TestLearn_RejectsEmpty(t *testing.T) {
	b, _ := newTestBrain(t)
	assert.Error(t, b.Learn("", "hello"))
	assert.Error(t, b.Learn("hi", ""))
	assert.Empty(t, b.Pairs())
}

func TestLearn_PersistsEachMutation(t *testing.T) {
	b, store := newTestBrain(t)
	require.NoError(t, b.Learn("hi", "hello"))
	require.NoError(t, b.Learn("bye", "goodbye"))
	assert.Equal(t, 2, store.saves)
	assert.Len(t, store.pairs, 2)
}

func TestVocabulary_Monotonic(t *testing.T) {
	b, _ := newTestBrain(t)
	sizes := []int{b.Vocab().Len()}

	require.NoError(t, b.Learn("hi", "hello"))
	sizes = append(sizes, b.Vocab().Len())
	require.NoError(t, b.Learn("hi", "hey"))
	sizes = append(sizes, b.Vocab().Len())
	require.NoError(t, b.Learn("what time is it", "time to learn"))
	sizes = append(sizes, b.Vocab().Len())

	for i := 1; i < len(sizes); i++ {
		assert.GreaterOrEqual(t, sizes[i], sizes[i-1])
	}
	assert.Greater(t, sizes[len(sizes)-1], 0)
}

func TestLearnBatch_AppliesInOrder(t *testing.T) {
	b, _ := newTestBrain(t)
	err := b.LearnBatch([]ports.Pair{
		{Input: "hi", Outputs: ports.Replies{"hello", "hey"}},
		{Input: "bye", Outputs: ports.Replies{"goodbye"}},
	})
	require.NoError(t, err)

	p := b.Resolve("hi")
	require.NotNil(t, p)
	assert.Contains(t, []string{"hello", "hey"}, string(p.Outputs[0]))
	assert.Len(t, b.Pairs(), 2)
}

func TestRespond_LearnedPair(t *testing.T) {
	b, _ := newTestBrain(t)
	require.NoError(t, b.Learn("bye", "goodbye"))

	resp, err := b.Respond("bye")
	require.NoError(t, err)
	assert.Equal(t, "goodbye", resp)
}

func TestRespond_MultiReplyDrawsFromStoredSet(t *testing.T) {
	b, _ := newTestBrain(t)
	require.NoError(t, b.Learn("hi", `["hello","hey"]`))

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		resp, err := b.Respond("hi")
		require.NoError(t, err)
		assert.Contains(t, []string{"hello", "hey"}, resp)
		seen[resp] = true
	}
	// Uniform draw over 50 tries reaches both replies.
	assert.Len(t, seen, 2)
}

func TestRespond_EmptyStoreIsUnknown(t *testing.T) {
	b, _ := newTestBrain(t)
	resp, err := b.Respond("anything")
	require.NoError(t, err)
	assert.Equal(t, DefaultUnknown, resp)
}

func TestRespond_CustomUnknown(t *testing.T) {
	store := &memStore{}
	b, err := New(store, nil, WithUnknown("no idea"))
	require.NoError(t, err)

	resp, err := b.Respond("anything")
	require.NoError(t, err)
	assert.Equal(t, "no idea", resp)
}

func TestReload_PicksUpExternalWrites(t *testing.T) {
	b, store := newTestBrain(t)
	require.NoError(t, b.Learn("hi", "hello"))

	// Simulate another process rewriting the store.
	store.pairs = append(store.pairs, &ports.Pair{Input: "bye", Outputs: ports.Replies{"goodbye"}})
	require.NoError(t, b.Reload())

	assert.NotNil(t, b.Resolve("bye"))
}

func TestRoundTrip_StoreReloadEquivalent(t *testing.T) {
	b, store := newTestBrain(t)
	require.NoError(t, b.Learn("hi", `["hello","hey"]`))
	require.NoError(t, b.Learn("bye", "goodbye"))

	b2, err := New(store, text.NewSynonyms())
	require.NoError(t, err)

	require.Len(t, b2.Pairs(), 2)
	p := b2.Resolve("hi")
	require.NotNil(t, p)
	assert.ElementsMatch(t, []string{"hello", "hey"}, []string(p.Outputs))
}
