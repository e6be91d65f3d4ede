package knowledge

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"

	"github.com/tmc/langchaingo/tools/wikipedia"
)

const noPagesFound = "no wikipedia pages found"

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// Search summarizes the top Wikipedia search hit using langchaingo's
// Wikipedia tool. It never reports ambiguity.
type Search struct {
	tool wikipedia.Tool
}

// NewSearch creates a search-based summarizer. hc may be nil.
func NewSearch(userAgent, language string, hc *http.Client) *Search {
	var opts []wikipedia.Option
	if hc != nil {
		opts = append(opts, wikipedia.WithHTTPClient(hc))
	}

	tool := wikipedia.New(userAgent, opts...)
	tool.TopK = 1
	if language != "" {
		tool.LanguageCode = language
	}
	return &Search{tool: tool}
}

// Summarize implements assistant.Knowledge.
func (s *Search) Summarize(ctx context.Context, topic string, sentences int) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrNotFound
	}

	out, err := s.tool.Call(ctx, topic)
	if err != nil {
		return "", fmt.Errorf("wikipedia search failed: %w", err)
	}
	if out == noPagesFound {
		return "", ErrNotFound
	}

	text := html.UnescapeString(htmlTag.ReplaceAllString(out, " "))
	summary := FirstSentences(strings.Join(strings.Fields(text), " "), sentences)
	if summary == "" {
		return "", ErrNotFound
	}
	return summary, nil
}
