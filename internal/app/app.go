// Package app implements the application layer for vitetag.
package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/vitetag/internal/adapters/detector"
	"go.trai.ch/vitetag/internal/adapters/telemetry"
	"go.trai.ch/vitetag/internal/adapters/urlgen"
	"go.trai.ch/vitetag/internal/core/domain"
	"go.trai.ch/vitetag/internal/core/ports"
	"go.trai.ch/vitetag/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	factory      *resolver.Factory
	watcher      ports.HotFileWatcher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	factory *resolver.Factory,
	watcher ports.HotFileWatcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		factory:      factory,
		watcher:      watcher,
	}
}

// Options selects the project configuration for a command.
type Options struct {
	// ConfigPath is an explicit vite.yaml. When empty the file is discovered from Dir.
	ConfigPath string
	// Dir is the working directory. Defaults to ".".
	Dir string
	// BuildDirectory overrides the configured build directory.
	BuildDirectory string
}

// Config loads the project configuration.
func (a *App) Config(opts Options) (domain.Config, error) {
	var (
		cfg domain.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = a.configLoader.LoadFile(opts.ConfigPath)
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		cfg, err = a.configLoader.Load(dir)
	}
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) resolver(opts Options) (*resolver.Resolver, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return nil, err
	}
	return a.factory.New(cfg, urlgen.New(cfg.BaseURL)), nil
}

// Tags resolves the tags for entryPoints, falling back to the configured entry points.
func (a *App) Tags(ctx context.Context, entryPoints []string, opts Options) (*domain.TagSet, error) {
	r, err := a.resolver(opts)
	if err != nil {
		return nil, err
	}

	if len(entryPoints) == 0 {
		entryPoints = r.Config().EntryPoints
	}
	if len(entryPoints) == 0 {
		return nil, domain.ErrNoEntryPoints
	}

	return r.Resolve(ctx, entryPoints, opts.BuildDirectory)
}

// Asset resolves the URL of a single asset.
func (a *App) Asset(ctx context.Context, asset string, opts Options) (string, error) {
	r, err := a.resolver(opts)
	if err != nil {
		return "", err
	}
	return r.Asset(ctx, asset, opts.BuildDirectory)
}

// Hash returns the manifest hash. ok is false in hot mode or without a manifest.
func (a *App) Hash(ctx context.Context, opts Options) (hash string, ok bool, err error) {
	r, err := a.resolver(opts)
	if err != nil {
		return "", false, err
	}
	return r.ManifestHash(ctx, opts.BuildDirectory)
}

// Refresh returns the React refresh preamble, or "" when the dev server is not running.
func (a *App) Refresh(ctx context.Context, opts Options) (string, error) {
	r, err := a.resolver(opts)
	if err != nil {
		return "", err
	}
	return r.ReactRefresh(ctx)
}

// devServerState is the last reported dev server state.
type devServerState struct {
	running bool
	url     string
}

// Watch logs dev server start and stop transitions until ctx is done.
func (a *App) Watch(ctx context.Context, opts Options) error {
	r, err := a.resolver(opts)
	if err != nil {
		return err
	}

	hotFile := r.Config().HotFile
	if err := a.watcher.Start(ctx, hotFile); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info(fmt.Sprintf("watching %s", hotFile))

	state := a.initialState(r)
	for range a.watcher.Events() {
		state = a.transition(r, state)
	}
	return nil
}

func (a *App) initialState(r *resolver.Resolver) devServerState {
	url, ok, err := r.DevServerURL()
	if err != nil {
		a.logger.Error(err)
		return devServerState{}
	}
	if ok {
		a.logger.Info("dev server running at " + url)
	} else {
		a.logger.Info("dev server not running, serving build assets")
	}
	return devServerState{running: ok, url: url}
}

func (a *App) transition(r *resolver.Resolver, prev devServerState) devServerState {
	url, ok, err := r.DevServerURL()
	if err != nil {
		a.logger.Error(err)
		return prev
	}

	next := devServerState{running: ok, url: url}
	switch {
	case ok && (!prev.running || prev.url != url):
		a.logger.Info("dev server started at " + url)
	case !ok && prev.running:
		a.logger.Info("dev server stopped")
	}
	return next
}

// EnableTracing reports resolver spans through the logger.
// The returned function flushes and uninstalls the tracer provider.
func (a *App) EnableTracing() func(context.Context) error {
	return telemetry.Install(telemetry.NewLogBridge(a.logger))
}

// FormatTags renders set for the given output mode.
func FormatTags(set *domain.TagSet, mode detector.OutputMode) string {
	if mode == detector.ModeLines {
		return strings.Join(set.Tags(), "\n")
	}
	return set.String()
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		l.SetJSON(enable)
	}
}
