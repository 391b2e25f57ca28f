package usecase

import (
	"errors"
	"log/slog"
	"reflect"

	"design-cost/internal/ports"
)

// Estimate is the priced summary of one design.
type Estimate struct {
	Summary     string  `json:"summary"`
	Cost        float64 `json:"cost"`
	FloorHeight float64 `json:"floor_height"`
	Volume      float64 `json:"volume"`
}

// EstimateUseCase prices a design and sizes its volume at FloorHeight.
type EstimateUseCase struct {
	Log         *slog.Logger
	FloorHeight float64
}

func (uc *EstimateUseCase) Run(d ports.Design) (Estimate, error) {
	if isNil(d) {
		return Estimate{}, errors.New("usecase not initialized: missing design")
	}
	if !(uc.FloorHeight > 0) {
		return Estimate{}, errors.New("usecase not initialized: floor height must be positive")
	}
	log := uc.Log
	if log == nil {
		log = slog.Default()
	}

	est := Estimate{
		Summary:     d.String(),
		Cost:        d.CostOfDesign(),
		FloorHeight: uc.FloorHeight,
		Volume:      d.BuildingVolume(uc.FloorHeight),
	}
	log.Debug("estimated design",
		slog.String("design", est.Summary),
		slog.Float64("cost", est.Cost),
		slog.Float64("floor_height", est.FloorHeight),
		slog.Float64("volume", est.Volume),
	)
	return est, nil
}

// isNil also catches a nil pointer stored in a non-nil interface.
func isNil(d ports.Design) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
