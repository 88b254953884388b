// Package app implements the application layer for satchel.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/satchel/internal/adapters/detector"
	"go.trai.ch/satchel/internal/adapters/linear"
	"go.trai.ch/satchel/internal/adapters/tui"
	"go.trai.ch/satchel/internal/adapters/watcher"
	"go.trai.ch/satchel/internal/core/domain"
	"go.trai.ch/satchel/internal/core/ports"
	"go.trai.ch/satchel/internal/engine/enumerator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	hasher       ports.Hasher
	reporter     ports.Reporter
	enumerator   *enumerator.Enumerator

	interactive bool
	progressOut io.Writer
	teaOptions  []tea.ProgramOption
	newWatcher  func() (ports.Watcher, error)
}

// watchDebounce is the quiet period after the last settings change before
// enumerating again.
const watchDebounce = 100 * time.Millisecond

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	hasher ports.Hasher,
	reporter ports.Reporter,
	enum *enumerator.Enumerator,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		hasher:       hasher,
		reporter:     reporter,
		enumerator:   enum,
		progressOut:  os.Stderr,
		newWatcher: func() (ports.Watcher, error) {
			w, err := watcher.NewWatcher(log)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithWatcherFactory replaces how Watch creates its file watcher.
func (a *App) WithWatcherFactory(f func() (ports.Watcher, error)) *App {
	a.newWatcher = f
	return a
}

// WithProgressOutput redirects round progress, which goes to stderr by default.
func (a *App) WithProgressOutput(w io.Writer) *App {
	a.progressOut = w
	return a
}

// logConfigurer is implemented by loggers whose verbosity and encoding can
// change at runtime.
type logConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// OutputOptions configures logging and report styling for one invocation.
type OutputOptions struct {
	Verbose bool
	LogJSON bool
	// Color is "auto", "always" or "never".
	Color string
}

// ConfigureOutput applies the global output flags.
func (a *App) ConfigureOutput(opts OutputOptions) {
	if lc, ok := a.logger.(logConfigurer); ok {
		lc.SetVerbose(opts.Verbose)
		lc.SetJSON(opts.LogJSON)
	}

	auto := detector.ModePlain
	if opts.Color == "" || opts.Color == detector.ModeAuto.String() {
		auto = detector.DetectEnvironment()
	}
	mode := detector.ResolveMode(auto, opts.Color)
	a.reporter.SetStyled(mode == detector.ModeStyled)

	// The interactive progress view needs a real terminal, not just colors.
	a.interactive = mode == detector.ModeStyled && detector.DetectEnvironment() == detector.ModeStyled
}

// EnumerateOptions configuration for the Enumerate method.
// Zero values defer to the config file, then to defaults.
type EnumerateOptions struct {
	ConfigPath  string
	Amount      int
	Order       string
	Format      string
	Parallelism int
	// Progress reports each round while the enumeration runs.
	Progress bool
}

// Enumerate discovers every satchel worth the requested amount and writes
// the sorted report.
func (a *App) Enumerate(ctx context.Context, opts EnumerateOptions) error {
	settings, err := a.resolveSettings(opts)
	if err != nil {
		return err
	}

	seed, err := domain.NewSeed(settings.Amount)
	if err != nil {
		return err
	}

	a.logger.Debug(fmt.Sprintf("enumerating %d cents with %d workers", settings.Amount, settings.Parallelism))

	var res *enumerator.Result
	if opts.Progress {
		res, err = a.runWithProgress(ctx, seed, settings.Parallelism)
	} else {
		res, err = a.enumerator.Run(ctx, seed, enumerator.Options{Parallelism: settings.Parallelism})
	}
	if err != nil {
		return err
	}

	report := &domain.Report{
		Amount:      settings.Amount,
		Rounds:      res.Rounds,
		Order:       settings.Order,
		Fingerprint: a.hasher.Fingerprint(res.Satchels),
		Satchels:    domain.Sort(res.Satchels, settings.Order),
	}

	if err := a.reporter.WriteReport(report, settings.Format); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("found %d satchels worth %d cents in %d rounds (fingerprint %s)",
		report.Count(), report.Amount, report.Rounds, report.Fingerprint))
	return nil
}

// runWithProgress runs the renderer and the enumeration concurrently. The
// renderer is stopped once the enumeration returns; quitting the renderer
// cancels the enumeration.
func (a *App) runWithProgress(ctx context.Context, seed domain.Satchel, parallelism int) (*enumerator.Result, error) {
	renderer := a.newProgressRenderer(ctx, seed.Value())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	var res *enumerator.Result
	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()

		var err error
		res, err = a.enumerator.Run(ctx, seed, enumerator.Options{
			Parallelism: parallelism,
			Observer:    renderer,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (a *App) newProgressRenderer(ctx context.Context, amount int) ports.ProgressRenderer {
	if !a.interactive {
		return linear.NewRenderer(a.progressOut)
	}

	model := tui.NewModel(a.progressOut, amount)
	optsTea := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(a.progressOut),
	}, a.teaOptions...)
	return tui.NewRenderer(&model, optsTea...)
}

// Watch enumerates once, then again after every change to the settings
// file, until ctx is done. Failed runs are logged and do not end the watch.
func (a *App) Watch(ctx context.Context, opts EnumerateOptions) error {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Stop()
	}()

	if err := w.Start(ctx, path); err != nil {
		return err
	}

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watchDebounce, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	events := w.Events()
	go func() {
		for ev := range events {
			a.logger.Debug(fmt.Sprintf("%s: %s", ev.Operation, ev.Path))
			debouncer.Add(ev.Path)
		}
	}()

	a.logger.Info(fmt.Sprintf("watching %s, press ctrl+c to stop", path))
	a.enumerateLogged(ctx, opts)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			a.logger.Info(fmt.Sprintf("%s changed, enumerating again", path))
			a.enumerateLogged(ctx, opts)
		}
	}
}

func (a *App) enumerateLogged(ctx context.Context, opts EnumerateOptions) {
	if err := a.Enumerate(ctx, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}

// resolveSettings layers the flags over the config file and validates the result.
func (a *App) resolveSettings(opts EnumerateOptions) (domain.Settings, error) {
	file, err := a.configLoader.Load(opts.ConfigPath, opts.ConfigPath != "")
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	merged := file.Merge(domain.Settings{
		Amount:      opts.Amount,
		Order:       domain.SortOrder(opts.Order),
		Format:      domain.Format(opts.Format),
		Parallelism: opts.Parallelism,
	})

	if merged.Amount == 0 {
		return domain.Settings{}, domain.ErrMissingAmount
	}

	return merged.Normalize()
}

// Moves lists the outcome of every exchange pair applied to one satchel.
func (a *App) Moves(_ context.Context, text string) error {
	s, err := domain.ParseSatchel(text)
	if err != nil {
		return err
	}

	a.logger.Debug(fmt.Sprintf("trying %d exchanges on %s (%d cents)", len(domain.Pairs()), s, s.Value()))
	return a.reporter.WriteMoves(domain.Moves(s))
}
