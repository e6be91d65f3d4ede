package host

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// Browser opens URLs with the platform's default browser.
type Browser struct {
	open func(url string) error
}

func NewBrowser() *Browser {
	// The helper process output would otherwise interleave with our logs.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{open: browser.OpenURL}
}

func (b *Browser) Open(url string) error {
	if err := b.open(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
