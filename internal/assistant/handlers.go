package assistant

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/j0lvera/arlo/internal/intent"
	"github.com/rs/zerolog"
)

// HandlerFunc computes a reply for a matched intent from the raw query.
type HandlerFunc func(ctx context.Context, query string) (string, error)

// ErrUnavailable is returned by handlers whose capability is not configured.
var ErrUnavailable = errors.New("capability not available")

const (
	timeLayout = "03:04:05 PM"
	dateLayout = "January 02, 2006"

	notAvailable = "N/A"

	defaultScreenshotDir = "screenshots"
)

const (
	batteryUnavailableReply    = "Battery information not available on this system."
	screenshotUnavailableReply = "Screenshot functionality not available on this system."
	screenshotSavedReply       = "Screenshot captured and saved successfully."
	websiteUnknownReply        = "I couldn't identify which website you want to open. Try saying 'open [sitename].com'"
)

var websitePatterns = compileAll(intent.WebsitePatterns)

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

type handlers struct {
	caps   Capabilities
	intN   func(n int) int
	logger zerolog.Logger
}

func (h *handlers) registry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		intent.HandlerTime:        h.currentTime,
		intent.HandlerDate:        h.currentDate,
		intent.HandlerBattery:     h.battery,
		intent.HandlerSystemInfo:  h.systemInfo,
		intent.HandlerOpenYouTube: h.openURL("https://youtube.com", "Opening YouTube for you, Sir."),
		intent.HandlerOpenGoogle:  h.openURL("https://google.com", "Opening Google Search."),
		intent.HandlerOpenGmail:   h.openURL("https://mail.google.com", "Opening Gmail for you."),
		intent.HandlerOpenWebsite: h.openWebsite,
		intent.HandlerScreenshot:  h.screenshot,
		intent.HandlerNotepad:     h.launch(TextEditor, "Opening text editor."),
		intent.HandlerCalculator:  h.launch(Calculator, "Opening calculator application."),
	}
}

func (h *handlers) now() time.Time {
	if h.caps.Clock == nil {
		return time.Now()
	}
	return h.caps.Clock.Now()
}

func (h *handlers) currentTime(context.Context, string) (string, error) {
	return "The current time is " + h.now().Format(timeLayout), nil
}

func (h *handlers) currentDate(context.Context, string) (string, error) {
	return "Today's date is " + h.now().Format(dateLayout), nil
}

func (h *handlers) battery(ctx context.Context, _ string) (string, error) {
	if h.caps.Metrics == nil {
		return batteryUnavailableReply, nil
	}
	percent, ok := h.caps.Metrics.Battery(ctx)
	if !ok {
		return batteryUnavailableReply, nil
	}
	return fmt.Sprintf("Battery is at %.0f%%", percent), nil
}

// OSName returns the display name of a GOOS value, e.g. "Linux".
func OSName(goos string) string {
	switch goos {
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "":
		return "Unknown"
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}

func (h *handlers) systemInfo(ctx context.Context, _ string) (string, error) {
	name, release := OSName(runtime.GOOS), ""
	cpu, mem, disk := notAvailable, notAvailable, notAvailable

	if m := h.caps.Metrics; m != nil {
		name, release = m.Platform(ctx)
		cpu = percentOrNA(m.CPUPercent(ctx))
		mem = percentOrNA(m.MemoryPercent(ctx))
		disk = percentOrNA(m.DiskPercent(ctx))
	}

	system := strings.TrimSpace(name + " " + release)
	return fmt.Sprintf("System: %s. CPU usage: %s. RAM usage: %s. Disk usage: %s.", system, cpu, mem, disk), nil
}

func percentOrNA(v float64, ok bool) string {
	if !ok {
		return notAvailable
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func (h *handlers) openURL(url, reply string) HandlerFunc {
	return func(context.Context, string) (string, error) {
		if h.caps.Browser == nil {
			return "", fmt.Errorf("open %s: %w", url, ErrUnavailable)
		}
		if err := h.caps.Browser.Open(url); err != nil {
			return "", fmt.Errorf("open %s: %w", url, err)
		}
		return reply, nil
	}
}

// SiteName extracts "<name>" from requests like "open <name>.com".
func SiteName(query string) (string, bool) {
	folded := strings.ToLower(query)
	for _, re := range websitePatterns {
		if m := re.FindStringSubmatch(folded); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func (h *handlers) openWebsite(_ context.Context, query string) (string, error) {
	site, ok := SiteName(query)
	if !ok {
		return websiteUnknownReply, nil
	}

	domain := site + ".com"
	url := "https://" + domain

	var err error
	if h.caps.Browser == nil {
		err = ErrUnavailable
	} else {
		err = h.caps.Browser.Open(url)
	}
	if err != nil {
		h.logger.Warn().Err(err).Str("url", url).Msg("unable to open website")
		return fmt.Sprintf("Sorry, I couldn't open %s. Please check if it's a valid website.", domain), nil
	}
	return fmt.Sprintf("Opening %s for you.", domain), nil
}

func (h *handlers) launch(app App, reply string) HandlerFunc {
	return func(context.Context, string) (string, error) {
		if h.caps.Launcher == nil {
			h.logger.Warn().Str("app", string(app)).Msg("no application launcher configured")
			return reply, nil
		}
		if err := h.caps.Launcher.Launch(app); err != nil {
			h.logger.Warn().Err(err).Str("app", string(app)).Msg("unable to launch application")
		}
		return reply, nil
	}
}

// ScreenshotName returns a randomized file name for a capture.
func ScreenshotName(intN func(n int) int) string {
	return fmt.Sprintf("screenshot_%d.png", 1000+intN(9000))
}

func (h *handlers) screenshot(context.Context, string) (string, error) {
	shots := h.caps.Screenshots
	if shots == nil || !shots.Available() {
		return screenshotUnavailableReply, nil
	}

	dir := h.caps.ScreenshotDir
	if dir == "" {
		dir = defaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	path := filepath.Join(dir, ScreenshotName(h.intN))
	if err := shots.Capture(path); err != nil {
		return "", fmt.Errorf("failed to capture screenshot: %w", err)
	}

	h.logger.Info().Str("path", path).Msg("screenshot saved")
	return screenshotSavedReply, nil
}
