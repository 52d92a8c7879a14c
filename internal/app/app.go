package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/maskedit/internal/config"
	"github.com/dshills/maskedit/internal/config/watcher"
	"github.com/dshills/maskedit/internal/mask/registry"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the mask definitions file. Empty means built-ins.
	ConfigPath string

	// LogPath is the log file. Empty disables logging.
	LogPath string

	// LogLevel is the minimum level (debug, info, warn, error).
	LogLevel string

	// Debug forces the debug log level.
	Debug bool

	// Screen overrides the tcell screen, used by tests with a
	// simulation screen. When nil a real terminal screen is created.
	Screen tcell.Screen
}

// Application owns the demo form, the terminal screen, and the config
// watcher that rebuilds the form on live edits to the mask file.
type Application struct {
	mu sync.Mutex

	opts    Options
	logger  *Logger
	logFile *os.File
	screen  tcell.Screen
	form    *Form
	watcher *watcher.Watcher

	running bool
	quit    chan struct{}
}

// New creates the application: logger, configuration, and form.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts, quit: make(chan struct{})}

	level := ParseLogLevel(opts.LogLevel)
	if opts.Debug {
		level = LogLevelDebug
	}
	if opts.LogPath != "" {
		logger, f, err := NewFileLogger(opts.LogPath, level)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
		}
		app.logger = logger
		app.logFile = f
	} else {
		app.logger = NewLogger(io.Discard, level)
	}

	form, err := app.buildForm()
	if err != nil {
		return nil, err
	}
	app.form = form

	if opts.ConfigPath != "" {
		w, err := watcher.New(app.onConfigChange,
			watcher.WithErrorHandler(func(err error) {
				app.logger.WithComponent("watcher").Error("watch error: %v", err)
			}))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
		}
		if err := w.Watch(opts.ConfigPath); err != nil {
			w.Close()
			return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
		}
		app.watcher = w
	}

	return app, nil
}

// Form returns the current form.
func (app *Application) Form() *Form {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.form
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// buildForm loads configuration (or the defaults) and constructs the
// form against a fresh registry.
func (app *Application) buildForm() (*Form, error) {
	cfg := config.Default()
	if app.opts.ConfigPath != "" {
		loaded, err := config.Load(app.opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		if loaded != nil {
			cfg = loaded
		}
	}
	return NewForm(cfg, registry.New())
}

// onConfigChange rebuilds the form when the mask file settles. A bad
// config keeps the current form; the error is logged, not fatal.
func (app *Application) onConfigChange(ev watcher.Event) {
	log := app.logger.WithComponent("config")
	form, err := app.buildForm()
	if err != nil {
		log.Error("reload failed for %s: %v", ev.Path, err)
		return
	}

	app.mu.Lock()
	app.form = form
	screen := app.screen
	app.mu.Unlock()

	log.Info("reloaded %s", ev.Path)
	if screen != nil {
		// Wake the event loop so the rebuilt form is drawn.
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// Run initializes the screen and drives the event loop until quit.
func (app *Application) Run() error {
	app.mu.Lock()
	if app.running {
		app.mu.Unlock()
		return ErrAlreadyRunning
	}
	app.running = true

	screen := app.opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			app.running = false
			app.mu.Unlock()
			return fmt.Errorf("%w: %v", ErrInitialization, err)
		}
	}
	app.screen = screen
	app.mu.Unlock()

	if err := screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	screen.EnablePaste()
	defer screen.Fini()

	app.logger.Info("started")
	err := app.eventLoop(screen)
	if errors.Is(err, ErrQuit) {
		app.logger.Info("quit")
		return nil
	}
	return err
}

// eventLoop polls and dispatches screen events. Runes between paste
// brackets are batched and applied to the focused field as one edit.
func (app *Application) eventLoop(screen tcell.Screen) error {
	var pasting bool
	var pasted []rune

	for {
		select {
		case <-app.quit:
			return ErrQuit
		default:
		}

		app.draw(screen)

		ev := screen.PollEvent()
		if ev == nil {
			return ErrQuit
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			// Redraw on next iteration.
		case *tcell.EventPaste:
			if ev.Start() {
				pasting = true
				pasted = pasted[:0]
			} else {
				pasting = false
				app.Form().Focused().Paste(string(pasted))
			}
		case *tcell.EventKey:
			if pasting {
				if ev.Key() == tcell.KeyRune {
					pasted = append(pasted, ev.Rune())
				}
				continue
			}
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return ErrQuit
			}
			app.Form().HandleKey(ev)
		}
	}
}

func (app *Application) draw(screen tcell.Screen) {
	screen.Clear()
	screen.HideCursor()

	width, _ := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for i, r := range "maskedit  (Tab: next field, Esc: quit)" {
		screen.SetContent(1+i, 0, r, nil, style)
	}

	app.Form().Draw(screen, 1, 2, width-2)
	screen.Show()
}

// Shutdown stops the event loop and releases resources. Safe to call
// from any goroutine and more than once.
func (app *Application) Shutdown() {
	app.mu.Lock()
	defer app.mu.Unlock()

	select {
	case <-app.quit:
		return
	default:
		close(app.quit)
	}

	if app.watcher != nil {
		app.watcher.Close()
	}
	if app.screen != nil {
		// Unblock PollEvent so the loop observes the quit channel.
		_ = app.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
	if app.logFile != nil {
		app.logFile.Close()
	}
}
