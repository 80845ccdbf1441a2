/*
Responsibilities
- Replace original heading fragments with their anchored form
- Replace each fragment once, in sequence order

Each search starts where the previous replacement ended. Replacement output
is never searched again, so a fragment that reappears inside an earlier
replacement cannot be hit twice. A fragment that cannot be found after the
cursor is skipped and the cursor stays where it was.
*/
package splice

import (
	"fmt"
	"strings"
)

// Pair is one original fragment and the text that takes its place.
type Pair struct {
	Find    string
	Replace string
}

// Splice applies pairs to content in order.
func Splice(content string, pairs []Pair) string {
	if len(pairs) == 0 {
		return content
	}

	var out strings.Builder
	out.Grow(len(content) + len(pairs)*32)

	cursor := 0
	for _, p := range pairs {
		if p.Find == "" {
			continue
		}
		idx := strings.Index(content[cursor:], p.Find)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		out.WriteString(content[cursor:start])
		out.WriteString(p.Replace)
		cursor = start + len(p.Find)
	}
	out.WriteString(content[cursor:])

	return out.String()
}

// Strings is Splice over two index-aligned slices. The slices must have the
// same length.
func Strings(content string, find []string, replace []string) (string, error) {
	if len(find) != len(replace) {
		return "", &SpliceError{
			Message:   fmt.Sprintf("%d find fragments, %d replacements", len(find), len(replace)),
			Retryable: false,
			Cause:     ErrCauseLengthMismatch,
		}
	}
	return Splice(content, Zip(find, replace)), nil
}

// Zip pairs find[i] with replace[i]. Extra elements of the longer slice
// are dropped.
func Zip(find []string, replace []string) []Pair {
	n := min(len(find), len(replace))
	pairs := make([]Pair, n)
	for i := range n {
		pairs[i] = Pair{Find: find[i], Replace: replace[i]}
	}
	return pairs
}
