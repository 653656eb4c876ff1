package text

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Synonyms maps a token to alternative tokens that count as overlap during
// scoring. Expansion is a one-directional lookup: the table for "hello"
// applies when "hello" appears in a token set, and no transitive closure
// is computed.
type Synonyms struct {
	entries map[string][]string
}

// defaultSynonyms covers conversational variance: greetings, farewells,
// acknowledgements, and common shorthand.
var defaultSynonyms = map[string][]string{
	"hello":   {"hi", "hey", "howdy", "greetings", "yo"},
	"hi":      {"hello", "hey", "yo"},
	"hey":     {"hello", "hi"},
	"bye":     {"goodbye", "farewell", "later", "cya"},
	"goodbye": {"bye", "farewell"},
	"thanks":  {"thank", "thx", "ty", "cheers"},
	"thank":   {"thanks", "thx"},
	"yes":     {"yeah", "yep", "yup", "sure", "ok", "okay"},
	"no":      {"nope", "nah"},
	"you":     {"u", "ya"},
	"your":    {"ur"},
	"are":     {"r"},
	"for":     {"4"},
	"to":      {"2"},
	"what":    {"wat", "wut", "whats"},
	"how":     {"hows"},
	"please":  {"pls", "plz"},
	"good":    {"great", "fine", "nice"},
	"name":    {"called"},
}

// NewSynonyms returns the built-in conversational table.
func NewSynonyms() *Synonyms {
	entries := make(map[string][]string, len(defaultSynonyms))
	for k, v := range defaultSynonyms {
		entries[k] = append([]string(nil), v...)
	}
	return &Synonyms{entries: entries}
}

// synonymsFile is the YAML override format: token -> variants.
//
//	hello: [hi, hey]
//	cat: [kitty, feline]
type synonymsFile map[string][]string

// LoadYAML merges a user synonym file into the table. Unknown tokens are
// added; existing tokens get their variant lists extended.
func (s *Synonyms) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read synonyms: %w", err)
	}
	var file synonymsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse synonyms: %w", err)
	}
	for token, variants := range file {
		key := Normalize(token)
		if key == "" {
			continue
		}
		seen := make(map[string]bool, len(s.entries[key]))
		for _, v := range s.entries[key] {
			seen[v] = true
		}
		for _, v := range variants {
			norm := Normalize(v)
			if norm == "" || seen[norm] {
				continue
			}
			seen[norm] = true
			s.entries[key] = append(s.entries[key], norm)
		}
	}
	return nil
}

// Lookup returns the variants registered for a token, if any.
func (s *Synonyms) Lookup(token string) []string {
	return s.entries[token]
}

// Expand returns the token set grown by one lookup round: every token's
// registered variants join the set. The input set is not modified.
func (s *Synonyms) Expand(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set)*2)
	for tok := range set {
		out[tok] = true
		for _, v := range s.entries[tok] {
			out[v] = true
		}
	}
	return out
}
