package cli

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aretw0/twoway"
	"github.com/aretw0/twoway/internal/config"
	"github.com/aretw0/twoway/internal/logging"
	"github.com/aretw0/twoway/internal/metrics"
)

// GlobalOptions carries the persistent flags of the root command.
// Zero values mean "not set on the command line".
type GlobalOptions struct {
	ConfigPath string
	Debug      bool
	Program    string
	NoColor    bool
}

// App holds what every command needs: resolved config, logger and metrics.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Collectors
	Registry *prometheus.Registry
	Colored  bool
}

// NewApp loads the configuration and applies flag overrides on top of it.
func NewApp(opts GlobalOptions) (*App, error) {
	path, explicit := opts.ConfigPath, true
	if path == "" {
		path, explicit = config.DefaultPath, false
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, err
	}
	if opts.Program != "" {
		cfg.Program = opts.Program
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	if opts.Debug {
		level = slog.LevelDebug
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New()
	if err := m.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &App{
		Config:   cfg,
		Logger:   createLogger(level, logging.Format(cfg.LogFormat)),
		Metrics:  m,
		Registry: reg,
		Colored:  cfg.Color && !opts.NoColor,
	}, nil
}

// NewEngine builds an engine for the configured program, wired to the
// app's logger and metrics.
func (a *App) NewEngine(strict bool) (*twoway.Engine, error) {
	hooks := a.Metrics.Hooks().Merge(createDebugHooks(a.Logger))

	engineOpts := []twoway.Option{
		twoway.WithLogger(a.Logger),
		twoway.WithLifecycleHooks(hooks),
	}
	if strict || a.Config.Strict {
		engineOpts = append(engineOpts, twoway.WithStrictCompletion())
	}

	engine, err := twoway.NewNamed(a.Config.Program, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
