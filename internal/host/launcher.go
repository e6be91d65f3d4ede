package host

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/j0lvera/arlo/internal/assistant"
	"github.com/rs/zerolog"
)

// DefaultCommands returns the command line used to start each application
// on the given GOOS.
func DefaultCommands(goos string) map[assistant.App][]string {
	switch goos {
	case "windows":
		return map[assistant.App][]string{
			assistant.TextEditor: {"notepad"},
			assistant.Calculator: {"calc"},
		}
	case "darwin":
		return map[assistant.App][]string{
			assistant.TextEditor: {"open", "-a", "TextEdit"},
			assistant.Calculator: {"open", "-a", "Calculator"},
		}
	default:
		return map[assistant.App][]string{
			assistant.TextEditor: {"gedit"},
			assistant.Calculator: {"gnome-calculator"},
		}
	}
}

// Launcher starts local applications without waiting for them.
type Launcher struct {
	commands map[assistant.App][]string
	start    func(name string, args ...string) error
	logger   zerolog.Logger
}

// NewLauncher uses the platform defaults; a non-empty override replaces the
// command for that application and is split on whitespace.
func NewLauncher(logger zerolog.Logger, editor, calculator string) *Launcher {
	commands := DefaultCommands(runtime.GOOS)
	if fields := strings.Fields(editor); len(fields) > 0 {
		commands[assistant.TextEditor] = fields
	}
	if fields := strings.Fields(calculator); len(fields) > 0 {
		commands[assistant.Calculator] = fields
	}

	l := &Launcher{commands: commands, logger: logger}
	l.start = l.startDetached
	return l
}

func (l *Launcher) Launch(app assistant.App) error {
	argv, ok := l.commands[app]
	if !ok || len(argv) == 0 {
		return fmt.Errorf("launch %s: %w", app, ErrUnavailable)
	}
	if err := l.start(argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("launch %s: %w", app, err)
	}
	return nil
}

func (l *Launcher) startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Debug().Err(err).Str("command", name).Msg("application exited with error")
		}
	}()
	return nil
}
