package intent

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// FileIntent is one [[intent]] entry of an intents TOML file.
type FileIntent struct {
	Name      string   `toml:"name"`
	Patterns  []string `toml:"patterns"`
	Responses []string `toml:"responses"`
	Handler   string   `toml:"handler"`
}

// File represents the structure of an intents TOML file.
type File struct {
	Intents []FileIntent `toml:"intent"`
}

// Parse decodes a TOML intent table. Array order is table order.
func Parse(data string) (*Table, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode intents: %w", err)
	}
	return f.Table()
}

// LoadFile reads the intent table from path. A missing file yields the
// built-in table.
func LoadFile(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read intents file %s: %w", path, err)
	}

	t, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Table compiles the decoded entries.
func (f File) Table() (*Table, error) {
	if len(f.Intents) == 0 {
		return nil, fmt.Errorf("%w: no intents defined", ErrInvalidIntent)
	}

	intents := make([]Intent, 0, len(f.Intents))
	for _, fi := range f.Intents {
		var opts []Option
		if len(fi.Responses) > 0 {
			opts = append(opts, WithResponses(fi.Responses...))
		}
		if fi.Handler != "" {
			opts = append(opts, WithHandler(fi.Handler))
		}

		in, err := New(fi.Name, fi.Patterns, opts...)
		if err != nil {
			return nil, err
		}
		intents = append(intents, in)
	}

	return NewTable(intents...)
}
