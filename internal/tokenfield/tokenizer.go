// Package tokenfield implements the state machine behind a token input field:
// a single text input whose committed, separator-delimited values are shown
// as removable chips. Rendering is left to the host; the package consumes
// geometry through Container and events as plain values.
package tokenfield

import "strings"

// DefaultSeparator splits raw input into token candidates.
const DefaultSeparator = ","

// Tokenize splits raw on sep, keeping empty parts. An empty sep falls back to
// DefaultSeparator. Without a separator the result is []string{raw}.
func Tokenize(raw, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.Split(raw, sep)
}

// Candidates drops the empty parts produced by Tokenize, keeping order.
// Text is not trimmed: " a" and "a" are different tokens.
func Candidates(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
