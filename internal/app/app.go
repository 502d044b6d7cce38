// Package app wires the termstream demo application: configuration, logging,
// the tcell source, the event multiplexer, and the interactive viewer loop.
package app

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termstream/internal/config"
	"github.com/dshills/termstream/internal/cursor"
	"github.com/dshills/termstream/internal/event"
	"github.com/dshills/termstream/internal/input/key"
	"github.com/dshills/termstream/internal/source/tcellsrc"
	"github.com/dshills/termstream/internal/term"
)

// maxLines caps the scrollback of the event viewer.
const maxLines = 128

// Options configures the application.
type Options struct {
	// ConfigPath overrides the default configuration file location.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// LogOutput receives log lines; defaults to stderr.
	LogOutput io.Writer

	// Mouse forces mouse capture on regardless of configuration.
	Mouse bool
}

// App is the interactive event viewer.
type App struct {
	cfg    config.Config
	log    *Logger
	src    *tcellsrc.Source
	reader *event.Reader
	quit   atomic.Bool
	lines  []string
}

// New loads configuration and builds the application. The terminal is not
// touched until Start.
func New(opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			path = ""
		}
	}

	cfg := config.Default()
	var saveErr error
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
		// First run: persist the defaults so the user has a file to edit.
		if _, err := os.Stat(path); os.IsNotExist(err) {
			saveErr = cfg.Save(path)
		}
	}
	if opts.Mouse {
		cfg.Mouse = true
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	log := NewLogger(ParseLogLevel(level), opts.LogOutput)
	if saveErr != nil {
		log.Warn("write default config: %v", saveErr)
	}

	return &App{
		cfg: cfg,
		log: log,
	}, nil
}

// Start takes over the terminal and builds the multiplexer. It must be
// called before Run.
func (a *App) Start() error {
	src, err := tcellsrc.New(
		tcellsrc.WithMouse(a.cfg.Mouse),
		tcellsrc.WithPaste(a.cfg.Paste),
	)
	if err != nil {
		return fmt.Errorf("initialize terminal source: %w", err)
	}
	a.startWith(src)
	return nil
}

// startWith installs an already-built source; split out for tests.
func (a *App) startWith(src *tcellsrc.Source) {
	a.src = src
	a.reader = event.NewReader(src)

	w, h := term.Size()
	a.log.Info("input source ready (%dx%d)", w, h)
}

// Run drives the viewer loop until the user quits or RequestQuit is called.
func (a *App) Run() error {
	if a.reader == nil {
		return event.ErrSourceUnavailable
	}

	a.push("termstream event viewer (q quits, c queries the cursor)")
	a.render()

	for {
		if a.quit.Load() {
			return nil
		}

		ok, err := a.reader.Poll(event.Forever, event.FilterPublic())
		if err != nil {
			return err
		}
		if !ok {
			// Woken; re-check the quit flag.
			continue
		}

		ev, found := a.reader.TryRead(event.FilterPublic())
		if !found {
			continue
		}

		if a.handle(ev) {
			return nil
		}
		a.render()
	}
}

// handle processes one event and reports whether the app should exit.
func (a *App) handle(ev event.Event) bool {
	a.log.Debug("event: %s", ev)

	if ke, ok := ev.(event.KeyEvent); ok {
		// The screen holds the tty raw, so Ctrl+C arrives here rather
		// than as SIGINT.
		if ke.Key == key.KeyRune && ke.Rune == 'c' && ke.Modifiers == key.ModCtrl {
			return true
		}
		if !ke.IsModified() {
			switch {
			case ke.Key == key.KeyEscape,
				ke.Key == key.KeyRune && ke.Rune == 'q':
				return true
			case ke.Key == key.KeyRune && ke.Rune == 'c':
				a.queryCursor()
				return false
			}
		}
	}

	a.push(ev.String())
	return false
}

// queryCursor runs the cursor-position protocol over the same reader the
// viewer polls. The tcell screen already owns the tty modes, so the query
// uses the passthrough switcher.
func (a *App) queryCursor() {
	q := cursor.New(a.reader, term.Output(), term.Passthrough{},
		cursor.WithWindow(a.cfg.CursorWindow()))

	col, row, err := q.Position()
	if err != nil {
		a.log.Warn("cursor query failed: %v", err)
		a.push("cursor: " + err.Error())
		return
	}
	a.push(fmt.Sprintf("cursor: (%d, %d)", col, row))
}

// RequestQuit asks a running loop to exit. Safe to call from another
// goroutine (signal handlers).
func (a *App) RequestQuit() {
	a.quit.Store(true)
	if a.reader == nil {
		return
	}
	if waker, err := a.reader.Waker(); err == nil {
		if err := waker.Wake(); err != nil {
			a.log.Warn("wake failed: %v", err)
		}
	}
}

// Shutdown releases the terminal. Safe to call more than once.
func (a *App) Shutdown() {
	if a.src != nil {
		_ = a.src.Close()
	}
}

func (a *App) push(line string) {
	a.lines = append(a.lines, line)
	if len(a.lines) > maxLines {
		a.lines = a.lines[len(a.lines)-maxLines:]
	}
}

func (a *App) render() {
	if a.src == nil {
		return
	}
	screen := a.src.Screen()
	screen.Clear()

	_, height := screen.Size()
	lines := a.lines
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for y, line := range lines {
		drawString(screen, 0, y, line)
	}
	screen.Show()
}

func drawString(screen tcell.Screen, x, y int, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
