package app

import (
	"io"
	"log/slog"

	"design-cost/internal/config"
	"design-cost/internal/ports"
	"design-cost/internal/usecase"
)

// App wires configuration, logging and the estimate use case.
type App struct {
	log *slog.Logger
	uc  *usecase.EstimateUseCase
}

func New(log *slog.Logger, cfg config.Config) *App {
	if log == nil {
		log = slog.Default()
	}
	uc := &usecase.EstimateUseCase{
		Log:         log,
		FloorHeight: cfg.Estimate.FloorHeight,
	}
	log.Debug("estimator configured", slog.Float64("floor_height", cfg.Estimate.FloorHeight))
	return &App{log: log, uc: uc}
}

func (a *App) Estimate(d ports.Design) (usecase.Estimate, error) {
	return a.uc.Run(d)
}

// NewLogger returns a text logger writing to w at the given level name.
// Unknown names fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
