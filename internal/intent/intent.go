package intent

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidIntent is returned when an intent definition cannot be used.
var ErrInvalidIntent = errors.New("invalid intent")

// Handler names understood by the assistant.
const (
	HandlerTime        = "time"
	HandlerDate        = "date"
	HandlerBattery     = "battery"
	HandlerSystemInfo  = "system_info"
	HandlerOpenYouTube = "open_youtube"
	HandlerOpenGoogle  = "open_google"
	HandlerOpenGmail   = "open_gmail"
	HandlerOpenWebsite = "open_website"
	HandlerScreenshot  = "screenshot"
	HandlerNotepad     = "notepad"
	HandlerCalculator  = "calculator"
)

// Intent is a named entry of the intent table. It carries either a set of
// canned responses or the name of a handler, never both.
type Intent struct {
	Name      string
	Patterns  []*regexp.Regexp
	Responses []string
	Handler   string
}

// Option configures an Intent built with New.
type Option func(*Intent)

// WithResponses sets the canned responses of an intent.
func WithResponses(responses ...string) Option {
	return func(i *Intent) {
		i.Responses = append([]string(nil), responses...)
	}
}

// WithHandler sets the handler name of an intent.
func WithHandler(name string) Option {
	return func(i *Intent) {
		i.Handler = name
	}
}

// New compiles the patterns and validates the resulting intent.
func New(name string, patterns []string, opts ...Option) (Intent, error) {
	in := Intent{Name: name}
	for _, opt := range opts {
		opt(&in)
	}

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return Intent{}, fmt.Errorf("%w: %s: pattern %q: %v", ErrInvalidIntent, name, p, err)
		}
		in.Patterns = append(in.Patterns, re)
	}

	if err := in.Validate(); err != nil {
		return Intent{}, err
	}
	return in, nil
}

// MustNew is like New but panics on error. It is meant for tables declared
// in code.
func MustNew(name string, patterns []string, opts ...Option) Intent {
	in, err := New(name, patterns, opts...)
	if err != nil {
		panic(err)
	}
	return in
}

// Validate reports whether the intent is usable.
func (i Intent) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidIntent)
	}
	if len(i.Patterns) == 0 {
		return fmt.Errorf("%w: %s: no patterns", ErrInvalidIntent, i.Name)
	}
	hasResponses := len(i.Responses) > 0
	hasHandler := i.Handler != ""
	switch {
	case hasResponses && hasHandler:
		return fmt.Errorf("%w: %s: both responses and handler set", ErrInvalidIntent, i.Name)
	case !hasResponses && !hasHandler:
		return fmt.Errorf("%w: %s: needs responses or a handler", ErrInvalidIntent, i.Name)
	}
	return nil
}

// HasHandler reports whether the intent is resolved by a handler.
func (i Intent) HasHandler() bool {
	return i.Handler != ""
}

// match returns the first pattern that matches the folded query.
func (i Intent) match(folded string) (string, bool) {
	for _, re := range i.Patterns {
		if re.MatchString(folded) {
			return re.String(), true
		}
	}
	return "", false
}
