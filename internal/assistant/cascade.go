package assistant

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/j0lvera/arlo/internal/knowledge"
	"github.com/j0lvera/arlo/internal/metrics"
)

const (
	summarySentences  = 3
	fallbackSentences = 2
	maxListedOptions  = 5

	// minComputationAnswer is the trimmed length an unconditional
	// computation answer must exceed to be used.
	minComputationAnswer = 3
)

var mathIndicators = []string{
	"calculate", "compute", "+", "-", "*", "/", "^",
	"square", "root", "sin", "cos", "tan", "log",
}

var fillerPhrases = regexp.MustCompile(`(?i)\b(tell me about|information about|about)\b`)

// LooksLikeMath reports whether a normalized query mentions a math keyword
// or symbol, or contains a digit.
func LooksLikeMath(normalized string) bool {
	for _, indicator := range mathIndicators {
		if strings.Contains(normalized, indicator) {
			return true
		}
	}
	return strings.IndexFunc(normalized, unicode.IsDigit) >= 0
}

// Topic strips filler phrases such as "tell me about" from a query.
func Topic(query string) string {
	return strings.Join(strings.Fields(fillerPhrases.ReplaceAllString(query, "")), " ")
}

func (r *Resolver) cascade(ctx context.Context, query, normalized string) Resolution {
	// The computation service is asked twice for math-like queries: once
	// accepting any answer, then accepting only answers longer than
	// minComputationAnswer.
	if LooksLikeMath(normalized) {
		if answer, ok := r.compute(ctx, query); ok && answer != "" {
			return Resolution{Reply: answer, Source: SourceComputationEarly}
		}
	}

	if answer, ok := r.compute(ctx, query); ok && len(strings.TrimSpace(answer)) > minComputationAnswer {
		return Resolution{Reply: answer, Source: SourceComputation}
	}

	if reply, ok := r.lookup(ctx, query); ok {
		return Resolution{Reply: reply, Source: SourceKnowledge}
	}

	return Resolution{Reply: FallbackReply, Source: SourceFallback}
}

func (r *Resolver) compute(ctx context.Context, query string) (string, bool) {
	if r.computation == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	answer, ok := r.computation.Query(ctx, query)
	observeLookup("computation", start, ok)
	return answer, ok
}

func (r *Resolver) summarize(ctx context.Context, topic string, sentences int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	summary, err := r.knowledge.Summarize(ctx, topic, sentences)
	if err == nil && strings.TrimSpace(summary) == "" {
		err = knowledge.ErrNotFound
	}
	observeLookup("knowledge", start, err == nil)
	return summary, err
}

// lookup asks the knowledge service about the query's topic. An ambiguous
// topic is retried once with its first alternative; if that fails the
// alternatives are listed instead.
func (r *Resolver) lookup(ctx context.Context, query string) (string, bool) {
	if r.knowledge == nil {
		return "", false
	}

	topic := Topic(query)
	if topic == "" {
		return "", false
	}

	summary, err := r.summarize(ctx, topic, summarySentences)
	if err == nil {
		return summary, true
	}

	var ambiguous *knowledge.AmbiguousError
	if !errors.As(err, &ambiguous) {
		if !errors.Is(err, knowledge.ErrNotFound) {
			r.logger.Warn().Err(err).Str("topic", topic).Msg("knowledge lookup failed")
		}
		return "", false
	}
	if len(ambiguous.Options) == 0 {
		return "", false
	}

	choice := ambiguous.Options[0]
	summary, err = r.summarize(ctx, choice, fallbackSentences)
	if err == nil {
		return fmt.Sprintf("%s\n\n(Showing results for '%s'. Multiple topics found with this name.)", summary, choice), true
	}
	r.logger.Debug().Err(err).Str("topic", choice).Msg("first alternative lookup failed")

	options := ambiguous.Options
	if len(options) > maxListedOptions {
		options = options[:maxListedOptions]
	}
	return fmt.Sprintf(
		"Multiple topics found for '%s'. Could you be more specific? Options include: %s",
		topic, strings.Join(options, ", "),
	), true
}

func observeLookup(service string, start time.Time, ok bool) {
	outcome := "miss"
	if ok {
		outcome = "hit"
	}
	metrics.RemoteLookupDuration.WithLabelValues(service, outcome).Observe(time.Since(start).Seconds())
}
