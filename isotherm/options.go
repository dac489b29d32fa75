package isotherm

import (
	"log/slog"

	"github.com/arloliu/isofit/internal/options"
	"github.com/arloliu/isofit/solver"
)

// FitConfig holds the settings forwarded to the solver by Model.Solve.
type FitConfig struct {
	Loss          solver.Loss
	LossScale     float64
	MaxIterations int
	Logger        *slog.Logger
}

// defaultFitConfig returns the default config (soft L1 loss of scale 1).
func defaultFitConfig() FitConfig {
	return FitConfig{
		Loss:          solver.DefaultLoss,
		LossScale:     1,
		MaxIterations: solver.DefaultMaxIterations,
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithLoss sets the robust loss.
func WithLoss(loss solver.Loss) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.Loss = loss
	})
}

// WithLossScale sets the loss scale, in dimensionless loading units.
func WithLossScale(c float64) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.LossScale = c
	})
}

// WithMaxIterations sets the solver iteration cap.
func WithMaxIterations(n int) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.MaxIterations = n
	})
}

// WithLogger sets the logger used by Solve.
func WithLogger(logger *slog.Logger) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		if logger != nil {
			cfg.Logger = logger
		}
	})
}
