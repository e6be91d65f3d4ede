package intent

import (
	"fmt"
	"strings"
)

// Table is an ordered, read-only list of intents. Declaration order decides
// which intent wins when several could match.
type Table struct {
	intents []Intent
}

// Match is the result of a successful table lookup.
type Match struct {
	Intent  Intent
	Pattern string
}

// NewTable validates the intents and freezes their order.
func NewTable(intents ...Intent) (*Table, error) {
	seen := make(map[string]struct{}, len(intents))
	frozen := make([]Intent, 0, len(intents))

	for _, in := range intents {
		if err := in.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[in.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %s", ErrInvalidIntent, in.Name)
		}
		seen[in.Name] = struct{}{}

		in.Responses = append([]string(nil), in.Responses...)
		in.Patterns = append(in.Patterns[:0:0], in.Patterns...)
		frozen = append(frozen, in)
	}

	return &Table{intents: frozen}, nil
}

// Match lowercases the raw query and returns the first intent, in table
// order, that has any matching pattern.
func (t *Table) Match(query string) (Match, bool) {
	folded := strings.ToLower(strings.TrimSpace(query))
	for _, in := range t.intents {
		if p, ok := in.match(folded); ok {
			return Match{Intent: in, Pattern: p}, true
		}
	}
	return Match{}, false
}

// Intents returns a copy of the table in declaration order.
func (t *Table) Intents() []Intent {
	out := make([]Intent, len(t.intents))
	for i, in := range t.intents {
		in.Responses = append([]string(nil), in.Responses...)
		in.Patterns = append(in.Patterns[:0:0], in.Patterns...)
		out[i] = in
	}
	return out
}

// Len returns the number of intents.
func (t *Table) Len() int {
	return len(t.intents)
}

// Handlers returns the distinct handler names referenced by the table.
func (t *Table) Handlers() []string {
	var names []string
	seen := map[string]struct{}{}
	for _, in := range t.intents {
		if !in.HasHandler() {
			continue
		}
		if _, ok := seen[in.Handler]; ok {
			continue
		}
		seen[in.Handler] = struct{}{}
		names = append(names, in.Handler)
	}
	return names
}
