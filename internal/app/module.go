package app

import (
	"context"
	"path/filepath"

	"github.com/matheus3301/messenger/internal/bus"
	"github.com/matheus3301/messenger/internal/config"
	"github.com/matheus3301/messenger/internal/logging"
	"github.com/matheus3301/messenger/internal/mockdata"
	"github.com/matheus3301/messenger/internal/paths"
	"github.com/matheus3301/messenger/internal/selection"
	"github.com/matheus3301/messenger/internal/tui"
	"github.com/matheus3301/messenger/internal/tui/model"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds command-line overrides passed to the fx module.
// Empty fields fall back to the config file, then to defaults.
type Params struct {
	ConfigPath string
	SeedPath   string
	Initial    string
	LogLevel   string
	LogPath    string // optional override for testing; empty = use default
}

// Module returns the fx module for the messenger, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("messenger",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideSeed,
			provideViewModel,
			provideApp,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = paths.ConfigPath()
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	// Seed files named in the config are relative to it.
	if cfg.Seed != "" && !filepath.IsAbs(cfg.Seed) {
		cfg.Seed = filepath.Join(filepath.Dir(path), cfg.Seed)
	}

	if p.SeedPath != "" {
		cfg.Seed = p.SeedPath
	}
	if p.Initial != "" {
		cfg.InitialSelection = p.Initial
	}
	if p.LogLevel != "" {
		cfg.LogLevel = p.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	logPath := p.LogPath
	if logPath == "" {
		if err := paths.EnsureDir(); err != nil {
			return nil, err
		}
		logPath = paths.LogPath()
	}
	return logging.New(logPath, cfg.LogLevel)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideSeed(cfg *config.Config, logger *zap.Logger) (*mockdata.Seed, error) {
	seed, err := mockdata.Load(cfg.Seed)
	if err != nil {
		return nil, err
	}
	source := cfg.Seed
	if source == "" {
		source = "builtin"
	}
	logger.Info("seed loaded",
		zap.String("source", source),
		zap.Int("contacts", len(seed.Contacts)))
	return seed, nil
}

func provideViewModel(cfg *config.Config, seed *mockdata.Seed, b *bus.Bus, logger *zap.Logger) (*model.ViewModel, error) {
	initial, err := selection.ParseInitial(cfg.InitialSelection)
	if err != nil {
		return nil, err
	}
	return model.NewViewModel(seed, initial, b, logger)
}

func provideApp(vm *model.ViewModel, logger *zap.Logger) *tui.App {
	return tui.NewApp(vm, logger)
}

func registerLifecycle(lc fx.Lifecycle, ui *tui.App, shutdowner fx.Shutdowner, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				var opts []fx.ShutdownOption
				if err := ui.Run(); err != nil {
					logger.Error("tui error", zap.Error(err))
					opts = append(opts, fx.ExitCode(1))
				}
				_ = shutdowner.Shutdown(opts...)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			ui.Stop()
			logger.Info("messenger stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
