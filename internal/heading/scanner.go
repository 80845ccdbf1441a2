/*
Responsibilities
- Locate h1-h6 elements in raw markup
- Pair every opening tag with a closing tag of the same level
- Keep document order

Scanners work on an assumed well-formed fragment. They never repair markup:
an opening tag without a matching closing tag is skipped.
*/
package heading

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Scanner finds heading elements in content.
type Scanner interface {
	Scan(content string) []Match
}

// Compile-time interface checks
var (
	_ Scanner = PatternScanner{}
	_ Scanner = TokenScanner{}
)

var (
	openTagPattern   = regexp.MustCompile(`(?i)<h([1-6])[^>]*>`)
	closeTagPatterns = func() [MaxLevel + 1]*regexp.Regexp {
		var patterns [MaxLevel + 1]*regexp.Regexp
		for level := MinLevel; level <= MaxLevel; level++ {
			patterns[level] = regexp.MustCompile(fmt.Sprintf(`(?i)</h%d>`, level))
		}
		return patterns
	}()
)

// PatternScanner matches `<hN ...>...</hN>` with regular expressions. Inner
// content is matched lazily and may span lines; tag names are case
// insensitive. Headings inside comments or script blocks are matched like
// any other text.
type PatternScanner struct{}

func (PatternScanner) Scan(content string) []Match {
	var matches []Match
	// once a level has no closing tag after some position it has none after
	// any later position either
	var exhausted [MaxLevel + 1]bool

	pos := 0
	for pos < len(content) {
		loc := openTagPattern.FindStringSubmatchIndex(content[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		openEnd := pos + loc[1]
		level := int(content[pos+loc[2]] - '0')

		if exhausted[level] {
			pos = start + 1
			continue
		}
		closeLoc := closeTagPatterns[level].FindStringIndex(content[openEnd:])
		if closeLoc == nil {
			exhausted[level] = true
			pos = start + 1
			continue
		}

		end := openEnd + closeLoc[1]
		matches = append(matches, Match{
			Fragment: content[start:end],
			Level:    level,
			OpenTag:  content[start:openEnd],
			CloseTag: content[openEnd+closeLoc[0] : end],
			Offset:   start,
		})
		pos = end
	}

	return matches
}

// TokenScanner walks the content with the x/net/html tokenizer. Unlike
// PatternScanner it does not see headings inside comments or inside raw
// text elements such as <script> and <style>. Pairing follows the same
// rule as PatternScanner: an opening tag is matched with the next closing
// tag of its own level, and unmatched opening tags are skipped.
type TokenScanner struct{}

type tagEvent struct {
	closing bool
	level   int
	start   int
	end     int
}

func (TokenScanner) Scan(content string) []Match {
	events := headingTagEvents(content)

	var matches []Match
	for i := 0; i < len(events); {
		open := events[i]
		if open.closing {
			i++
			continue
		}

		j := i + 1
		for j < len(events) && !(events[j].closing && events[j].level == open.level) {
			j++
		}
		if j == len(events) {
			i++
			continue
		}

		closeTag := events[j]
		matches = append(matches, Match{
			Fragment: content[open.start:closeTag.end],
			Level:    open.level,
			OpenTag:  content[open.start:open.end],
			CloseTag: content[closeTag.start:closeTag.end],
			Offset:   open.start,
		})
		i = j + 1
	}

	return matches
}

// headingTagEvents lists every h1-h6 start and end tag with its byte span.
func headingTagEvents(content string) []tagEvent {
	var events []tagEvent

	z := html.NewTokenizer(strings.NewReader(content))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a read error; either way nothing more to scan
			break
		}
		start := offset
		offset += len(z.Raw())

		if tt != html.StartTagToken && tt != html.EndTagToken {
			continue
		}
		name, _ := z.TagName()
		level := levelOf(name)
		if level == 0 {
			continue
		}
		events = append(events, tagEvent{
			closing: tt == html.EndTagToken,
			level:   level,
			start:   start,
			end:     offset,
		})
	}

	return events
}

// levelOf returns the heading level for a lower-cased tag name, or 0.
func levelOf(name []byte) int {
	if len(name) != 2 || name[0] != 'h' || name[1] < '1' || name[1] > '6' {
		return 0
	}
	return int(name[1] - '0')
}
