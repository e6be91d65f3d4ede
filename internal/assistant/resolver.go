// Package assistant resolves free-text queries into reply strings.
//
// A query is first matched against an ordered intent table. A matched intent
// either yields one of its canned responses or runs a handler. Unmatched
// queries go through the computation service and then the knowledge service
// before a fixed fallback reply is returned.
package assistant

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/j0lvera/arlo/internal/intent"
	"github.com/j0lvera/arlo/internal/metrics"
	"github.com/rs/zerolog"
)

// Fixed replies.
const (
	EmptyReply        = "I didn't catch that. Could you please repeat?"
	HandlerErrorReply = "Sorry, I encountered an error processing that request."
	FallbackReply     = "I don't have specific information about that right now. You can try rephrasing your question, or I can help you with calculations, opening applications, system info, or general knowledge questions. What would you like to know?"
)

// DefaultLookupTimeout bounds each computation or knowledge service call.
const DefaultLookupTimeout = 8 * time.Second

// Source names the pipeline stage that produced a reply.
type Source string

const (
	SourceEmpty            Source = "empty"
	SourceIntent           Source = "intent"
	SourceHandlerError     Source = "handler_error"
	SourceComputationEarly Source = "computation_early"
	SourceComputation      Source = "computation"
	SourceKnowledge        Source = "knowledge"
	SourceFallback         Source = "fallback"
)

// Resolution is a reply together with how it was produced.
type Resolution struct {
	Reply  string
	Intent string
	Source Source
}

// Rand is the random source used for canned responses and file names.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Resolver is the query resolution pipeline.
type Resolver struct {
	table       *intent.Table
	handlers    map[string]HandlerFunc
	computation Computation
	knowledge   Knowledge
	timeout     time.Duration
	logger      zerolog.Logger

	randMu sync.Mutex
	rand   Rand
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(res *Resolver) {
		res.rand = r
	}
}

// WithLookupTimeout sets the per-call timeout for remote lookups.
func WithLookupTimeout(d time.Duration) Option {
	return func(res *Resolver) {
		if d > 0 {
			res.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(res *Resolver) {
		res.logger = l
	}
}

// WithHandler registers or replaces a handler by name.
func WithHandler(name string, fn HandlerFunc) Option {
	return func(res *Resolver) {
		res.handlers[name] = fn
	}
}

// NewResolver builds a resolver over table. Every handler named by the table
// must be registered. computation and knowledge may be nil, in which case
// the corresponding cascade stages yield nothing.
func NewResolver(
	table *intent.Table,
	caps Capabilities,
	computation Computation,
	knowledge Knowledge,
	opts ...Option,
) (*Resolver, error) {
	if table == nil {
		return nil, fmt.Errorf("intent table is nil")
	}

	r := &Resolver{
		table:       table,
		handlers:    map[string]HandlerFunc{},
		computation: computation,
		knowledge:   knowledge,
		timeout:     DefaultLookupTimeout,
		logger:      zerolog.Nop(),
		rand:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}

	// Built-in handlers are registered after the options so they see the
	// configured logger. Handlers set with WithHandler take precedence.
	for _, opt := range opts {
		opt(r)
	}
	builtin := &handlers{caps: caps, intN: r.intN, logger: r.logger}
	for name, fn := range builtin.registry() {
		if _, custom := r.handlers[name]; !custom {
			r.handlers[name] = fn
		}
	}

	for _, name := range table.Handlers() {
		if _, ok := r.handlers[name]; !ok {
			return nil, fmt.Errorf("%w: no handler registered for %q", intent.ErrInvalidIntent, name)
		}
	}

	return r, nil
}

// Resolve returns the reply for a raw query. It never fails: every error
// becomes a textual reply.
func (r *Resolver) Resolve(ctx context.Context, query string) string {
	return r.Explain(ctx, query).Reply
}

// Explain resolves the query and reports which stage produced the reply.
func (r *Resolver) Explain(ctx context.Context, query string) (res Resolution) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error().Interface("panic", p).Str("query", query).Msg("resolution panicked")
			res = Resolution{Reply: HandlerErrorReply, Intent: res.Intent, Source: SourceHandlerError}
		}
		metrics.Resolutions.WithLabelValues(string(res.Source), res.Intent).Inc()
		r.logger.Debug().
			Str("source", string(res.Source)).
			Str("intent", res.Intent).
			Dur("elapsed", time.Since(start)).
			Msg("query resolved")
	}()

	normalized := Normalize(query)
	if normalized == "" {
		return Resolution{Reply: EmptyReply, Source: SourceEmpty}
	}

	if m, ok := r.table.Match(query); ok {
		return r.reply(ctx, m, query)
	}

	return r.cascade(ctx, query, normalized)
}

// Normalize trims and lowercases a query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (r *Resolver) reply(ctx context.Context, m intent.Match, query string) Resolution {
	in := m.Intent
	r.logger.Debug().Str("intent", in.Name).Str("pattern", m.Pattern).Msg("intent matched")

	if !in.HasHandler() {
		return Resolution{
			Reply:  in.Responses[r.intN(len(in.Responses))],
			Intent: in.Name,
			Source: SourceIntent,
		}
	}

	reply, err := r.runHandler(ctx, in, query)
	if err != nil {
		metrics.HandlerErrors.WithLabelValues(in.Name).Inc()
		r.logger.Error().Err(err).Str("intent", in.Name).Msg("error processing intent")
		return Resolution{Reply: HandlerErrorReply, Intent: in.Name, Source: SourceHandlerError}
	}
	return Resolution{Reply: reply, Intent: in.Name, Source: SourceIntent}
}

func (r *Resolver) runHandler(ctx context.Context, in intent.Intent, query string) (reply string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("handler %s panicked: %v", in.Handler, p)
		}
	}()

	fn, ok := r.handlers[in.Handler]
	if !ok {
		return "", fmt.Errorf("no handler registered for %q", in.Handler)
	}
	return fn(ctx, query)
}

func (r *Resolver) intN(n int) int {
	r.randMu.Lock()
	defer r.randMu.Unlock()
	return r.rand.IntN(n)
}
