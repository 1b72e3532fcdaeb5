// Package tokenize splits multi-valued catalog cells (cast lists, country lists) into names.
package tokenize

import "strings"

// Policy controls how a raw cell is split into tokens.
type Policy struct {
	Delimiter string `yaml:"delimiter"`
	Trim      bool   `yaml:"trim"`       // strip surrounding whitespace from each token
	DropEmpty bool   `yaml:"drop_empty"` // discard tokens that are empty after trimming
}

// Split breaks raw into tokens according to the policy.
// Order is preserved and repeated tokens are kept.
func (p Policy) Split(raw string) []string {
	delim := p.Delimiter
	if delim == "" {
		delim = ","
	}

	parts := strings.Split(raw, delim)
	tokens := parts[:0]
	for _, part := range parts {
		if p.Trim {
			part = strings.TrimSpace(part)
		}
		if p.DropEmpty && part == "" {
			continue
		}
		tokens = append(tokens, part)
	}

	return tokens
}

// Unique returns tokens with repeats removed, keeping the first occurrence of each.
func Unique(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
