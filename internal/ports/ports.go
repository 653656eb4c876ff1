// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// PairStore persists the learned pair collection to durable storage.
//
// The discipline is read-all-at-startup, rewrite-all-on-mutation: Save must
// produce a complete, valid replacement before the old content is discarded.
// No concurrent external writers are assumed.
type PairStore interface {
	// Load reads the full pair collection. A missing store is not an
	// error: it returns nil, nil (fresh session).
	Load() ([]*Pair, error)

	// Save rewrites the entire pair collection, overwriting prior content.
	Save(pairs []*Pair) error

	// Path returns the backing file path (for display and watching).
	Path() string
}

// ModelCache persists trained generator weights keyed by a store
// fingerprint. A learn mutation invalidates the cache; the next fallback
// generation retrains and re-saves.
type ModelCache interface {
	// Load returns the cached snapshot if the stored fingerprint matches.
	// Returns nil, nil on miss or mismatch.
	Load(fingerprint string) ([]byte, error)

	// Save stores a snapshot together with its fingerprint, replacing
	// any prior entry.
	Save(fingerprint string, snapshot []byte) error

	// Invalidate drops any cached snapshot. Idempotent.
	Invalidate() error

	Close() error
}

// Generator is the fallback response generator: a function from a
// fixed-length numeric feature vector to a same-length vector. The vector
// length is the vocabulary size at training time; Train and Infer must
// agree on it within one generation call.
type Generator interface {
	// Train fits the generator on vectorized store pairs. Training on an
	// empty set is not an error; the generator stays neutral.
	Train(inputs, targets [][]float64) error

	// Infer maps an input feature vector to an output activation vector.
	Infer(features []float64) ([]float64, error)

	// Snapshot serializes the trained weights for caching.
	Snapshot() ([]byte, error)

	// Restore loads weights from a prior Snapshot.
	Restore(snapshot []byte) error
}

// Evaluator is the opaque arithmetic capability. Evaluate returns the
// formatted result and true when the input is a well-formed arithmetic
// expression, and "", false otherwise. It never errors on ordinary text.
type Evaluator interface {
	Evaluate(input string) (string, bool)
}
