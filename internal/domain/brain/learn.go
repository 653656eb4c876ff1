package brain

import (
	"fmt"

	"github.com/corey/recall/internal/domain/text"
	"github.com/corey/recall/internal/ports"
)

// Learn adds or merges one input/output pair and persists the store.
//
// Mutation order: store, normalized index, vocabulary, then generator
// invalidation, then persistence. The raw output string may be a JSON
// array of strings; anything that fails to parse as one degrades to a
// single scalar reply and never errors.
func (b *Brain) Learn(input, output string) error {
	return b.learnReplies(input, ports.ParseReplies(output))
}

// LearnBatch applies pre-parsed pairs in order. Parsing the batch happens
// at the CLI boundary, so malformed syntax never causes partial mutation.
func (b *Brain) LearnBatch(pairs []ports.Pair) error {
	for _, p := range pairs {
		if err := b.learnReplies(p.Input, p.Outputs); err != nil {
			return err
		}
	}
	return nil
}

// learnReplies is the single mutation point. A pair whose normalized input
// already exists is merged — outputs unioned, deduplicated, first-seen
// order — never replaced.
func (b *Brain) learnReplies(input string, replies ports.Replies) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	norm := text.Normalize(input)
	if norm == "" {
		return fmt.Errorf("learn: empty input")
	}
	replies = nonEmpty(replies)
	if len(replies) == 0 {
		return fmt.Errorf("learn %q: empty output", input)
	}

	pair, exists := b.index[norm]
	if exists {
		pair.Outputs = mergeReplies(pair.Outputs, replies)
	} else {
		pair = &ports.Pair{Input: input, Outputs: replies}
		b.pairs = append(b.pairs, pair)
	}
	b.index[norm] = pair

	b.vocab.Extend(text.Tokenize(input))
	for _, out := range pair.Outputs {
		b.vocab.Extend(text.Tokenize(out))
	}

	// Derived model state is stale until the next fallback call retrains.
	b.genReady = false
	if b.cache != nil {
		if err := b.cache.Invalidate(); err != nil {
			return fmt.Errorf("invalidate model cache: %w", err)
		}
	}

	if err := b.store.Save(b.pairs); err != nil {
		return fmt.Errorf("persist pairs: %w", err)
	}
	return nil
}

// mergeReplies unions two reply sequences, deduplicated, preserving
// first-seen order.
func mergeReplies(existing, incoming ports.Replies) ports.Replies {
	seen := make(map[string]bool, len(existing))
	out := make(ports.Replies, 0, len(existing)+len(incoming))
	for _, r := range existing {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	for _, r := range incoming {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// nonEmpty drops empty reply strings.
func nonEmpty(replies ports.Replies) ports.Replies {
	out := replies[:0:0]
	for _, r := range replies {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
