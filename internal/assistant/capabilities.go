package assistant

import (
	"context"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemMetrics exposes host status. The boolean result is false when the
// host cannot provide the value.
type SystemMetrics interface {
	Battery(ctx context.Context) (float64, bool)
	CPUPercent(ctx context.Context) (float64, bool)
	MemoryPercent(ctx context.Context) (float64, bool)
	DiskPercent(ctx context.Context) (float64, bool)
	Platform(ctx context.Context) (name, release string)
}

// Browser opens a URL in the default browser.
type Browser interface {
	Open(url string) error
}

// App names a local application the assistant can start.
type App string

const (
	TextEditor App = "text_editor"
	Calculator App = "calculator"
)

// Launcher starts local applications. Launch does not wait for the
// application and does not verify it is running.
type Launcher interface {
	Launch(app App) error
}

// Screenshotter captures the full screen into a PNG file.
type Screenshotter interface {
	Available() bool
	Capture(path string) error
}

// Computation answers a query with a short plain-text result. The boolean is
// false on any failure.
type Computation interface {
	Query(ctx context.Context, text string) (string, bool)
}

// Knowledge summarizes a topic in at most the given number of sentences.
// It returns knowledge.ErrNotFound or *knowledge.AmbiguousError when it has
// no single answer.
type Knowledge interface {
	Summarize(ctx context.Context, topic string, sentences int) (string, error)
}

// Capabilities are the side-effecting collaborators used by intent handlers.
// A nil capability is reported to the user as unavailable.
type Capabilities struct {
	Clock         Clock
	Metrics       SystemMetrics
	Browser       Browser
	Launcher      Launcher
	Screenshots   Screenshotter
	ScreenshotDir string
}
