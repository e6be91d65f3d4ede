package host

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/distatus/battery"
	"github.com/j0lvera/arlo/internal/assistant"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatteryPercent(t *testing.T) {
	tests := []struct {
		name  string
		batts []*battery.Battery
		want  float64
		ok    bool
	}{
		{name: "none", batts: nil, ok: false},
		{name: "single", batts: []*battery.Battery{{Current: 40, Full: 80}}, want: 50, ok: true},
		{
			name:  "combined",
			batts: []*battery.Battery{{Current: 10, Full: 50}, {Current: 40, Full: 50}},
			want:  50,
			ok:    true,
		},
		{name: "nil entries skipped", batts: []*battery.Battery{nil, {Current: 30, Full: 40}}, want: 75, ok: true},
		{name: "zero capacity", batts: []*battery.Battery{{Current: 0, Full: 0}}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BatteryPercent(tt.batts)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestMetrics_Battery(t *testing.T) {
	m := NewMetrics(zerolog.Nop())

	m.batteries = func() ([]*battery.Battery, error) {
		return nil, errors.New("no power supply")
	}
	_, ok := m.Battery(t.Context())
	assert.False(t, ok)

	m.batteries = func() ([]*battery.Battery, error) {
		return []*battery.Battery{{Current: 90, Full: 100}, nil}, errors.New("partial")
	}
	got, ok := m.Battery(t.Context())
	assert.True(t, ok)
	assert.InDelta(t, 90, got, 0.001)
}

func TestDefaultCommands(t *testing.T) {
	assert.Equal(t, []string{"notepad"}, DefaultCommands("windows")[assistant.TextEditor])
	assert.Equal(t, []string{"calc"}, DefaultCommands("windows")[assistant.Calculator])
	assert.Equal(t, []string{"open", "-a", "TextEdit"}, DefaultCommands("darwin")[assistant.TextEditor])
	assert.Equal(t, []string{"open", "-a", "Calculator"}, DefaultCommands("darwin")[assistant.Calculator])
	assert.Equal(t, []string{"gedit"}, DefaultCommands("linux")[assistant.TextEditor])
	assert.Equal(t, []string{"gnome-calculator"}, DefaultCommands("linux")[assistant.Calculator])
}

func TestLauncher(t *testing.T) {
	l := NewLauncher(zerolog.Nop(), "code --new-window", "")

	var started []string
	l.start = func(name string, args ...string) error {
		started = append([]string{name}, args...)
		return nil
	}

	require.NoError(t, l.Launch(assistant.TextEditor))
	assert.Equal(t, []string{"code", "--new-window"}, started)

	l.start = func(string, ...string) error { return errors.New("exec: not found") }
	assert.Error(t, l.Launch(assistant.Calculator))

	err := l.Launch(assistant.App("spreadsheet"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestScreen_Capture(t *testing.T) {
	s := &Screen{
		displays: func() int { return 2 },
		bounds: func(i int) image.Rectangle {
			return image.Rect(i*4, 0, i*4+4, 3)
		},
		capture: func(r image.Rectangle) (*image.RGBA, error) {
			return image.NewRGBA(r), nil
		},
	}
	require.True(t, s.Available())

	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, s.Capture(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
}

func TestScreen_Unavailable(t *testing.T) {
	s := &Screen{displays: func() int { return 0 }}
	assert.False(t, s.Available())
	assert.ErrorIs(t, s.Capture(filepath.Join(t.TempDir(), "x.png")), ErrUnavailable)

	s = &Screen{displays: func() int { panic("no display") }}
	assert.False(t, s.Available())
}

func TestBrowser_Open(t *testing.T) {
	var opened string
	b := &Browser{open: func(url string) error {
		opened = url
		return nil
	}}
	require.NoError(t, b.Open("https://github.com"))
	assert.Equal(t, "https://github.com", opened)

	b.open = func(string) error { return errors.New("no browser") }
	assert.Error(t, b.Open("https://github.com"))
}

func TestScreen_CaptureEncodeFailureRemovesFile(t *testing.T) {
	s := &Screen{
		displays: func() int { return 1 },
		bounds:   func(int) image.Rectangle { return image.Rectangle{} },
		capture: func(r image.Rectangle) (*image.RGBA, error) {
			return image.NewRGBA(r), nil
		},
	}

	path := filepath.Join(t.TempDir(), "empty.png")
	require.Error(t, s.Capture(path))
	assert.NoFileExists(t, path)
}
