// Package knowledge looks up encyclopedia summaries for free-text topics.
package knowledge

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ErrNotFound is returned when no page matches the topic.
var ErrNotFound = errors.New("topic not found")

// AmbiguousError is returned when the topic resolves to a disambiguation
// page. Options holds the titles of the page's list entries in the order
// they appear on the page.
type AmbiguousError struct {
	Topic   string
	Options []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%q may refer to %d topics", e.Topic, len(e.Options))
}

var sentenceEnd = regexp.MustCompile(`[.!?]+(\s+|$)`)

// abbreviations end with a period that does not end a sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true, "st": true,
	"jr": true, "sr": true, "gen": true, "col": true, "lt": true, "sgt": true,
	"vs": true, "etc": true, "approx": true, "inc": true, "ltd": true,
	"co": true, "corp": true, "mt": true, "ft": true, "jan": true, "feb": true,
	"aug": true, "sept": true, "oct": true, "nov": true, "dec": true,
}

// FirstSentences returns at most n sentences of text. A period after an
// initial, a dotted abbreviation such as "U.S." or a known abbreviation
// does not end a sentence.
func FirstSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	if n <= 0 || text == "" {
		return text
	}

	count := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		if isAbbreviation(text[:loc[0]], strings.TrimSpace(text[loc[0]:loc[1]])) {
			continue
		}
		count++
		if count == n {
			return strings.TrimSpace(text[:loc[1]])
		}
	}
	return text
}

func isAbbreviation(before, punct string) bool {
	if punct != "." {
		return false
	}

	word := before[strings.LastIndexFunc(before, unicode.IsSpace)+1:]
	word = strings.ToLower(strings.TrimLeft(word, `("'[`))
	if word == "" {
		return false
	}
	if strings.Contains(word, ".") || abbreviations[word] {
		return true
	}

	r := []rune(word)
	return len(r) == 1 && unicode.IsLetter(r[0])
}
