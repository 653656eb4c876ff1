package ports

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Pair is one learned input/output association. Outputs always holds at
// least one reply after learning; a multi-reply pair answers with a
// uniform-random draw.
type Pair struct {
	Input   string  `json:"input"`
	Outputs Replies `json:"output"`
}

// Replies is the reply sequence for a pair. On the wire it accepts both a
// bare string and an array of strings; it always encodes as an array.
// Normalizing the variant at the boundary keeps matching logic free of
// type-sniffing.
type Replies []string

// UnmarshalJSON accepts "hello" or ["hello","hey"].
func (r *Replies) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var seq []string
		if err := json.Unmarshal(data, &seq); err != nil {
			return fmt.Errorf("replies: %w", err)
		}
		*r = seq
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("replies: %w", err)
	}
	*r = Replies{s}
	return nil
}

// MarshalJSON always emits an array, even for a single reply.
func (r Replies) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(r))
}

// ParseReplies interprets a raw output string: a JSON-array-shaped string
// becomes a sequence, anything else (including malformed JSON) degrades to
// a single scalar reply.
func ParseReplies(raw string) Replies {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var seq []string
		if err := json.Unmarshal([]byte(trimmed), &seq); err == nil && len(seq) > 0 {
			return seq
		}
	}
	return Replies{raw}
}
