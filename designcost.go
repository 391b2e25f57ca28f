// Package designcost models construction design projects and prices them.
//
// A Project is priced per square meter of area; a TowerProject multiplies
// that price by its number of typical floors. Both satisfy Design, so callers
// can price and size either one through the same interface.
//
//	tp, err := designcost.NewTowerProject("Apart-hotel", "Mikhailov", 215, 2000, 26, 2017)
//	if err != nil {
//		// errors.Is(err, designcost.ErrValue) for out-of-range attributes
//	}
//	cost := tp.CostOfDesign() // 11180000
//
// Attributes decoded from JSON or YAML go through ProjectFromAttributes and
// TowerProjectFromAttributes, which also report ErrType for mistyped values.
package designcost

import (
	"errors"
	"log/slog"
	"os"

	"design-cost/internal/app"
	"design-cost/internal/config"
	"design-cost/internal/domain"
	"design-cost/internal/ports"
	"design-cost/internal/usecase"
)

type (
	Project      = domain.Project
	TowerProject = domain.TowerProject
	Attributes   = domain.Attributes
	FieldError   = domain.FieldError
	Design       = ports.Design
	Estimate     = usecase.Estimate
)

var (
	ErrType  = domain.ErrType
	ErrValue = domain.ErrValue
)

// Attribute keys.
const (
	FieldName            = domain.FieldName
	FieldDesigner        = domain.FieldDesigner
	FieldArea            = domain.FieldArea
	FieldCostPerUnitArea = domain.FieldCostPerUnitArea
	FieldFloorCount      = domain.FieldFloorCount
	FieldYearBuilt       = domain.FieldYearBuilt
)

// DefaultFloorHeight is used by NewEstimatorFromEnv when DESIGN_FLOOR_HEIGHT is unset.
const DefaultFloorHeight = config.DefaultFloorHeight

// NewProject validates the attributes and returns a Project; failures wrap ErrValue.
func NewProject(name, designer string, area, costPerUnitArea float64) (*Project, error) {
	return domain.NewProject(name, designer, area, costPerUnitArea)
}

// NewTowerProject validates the base attributes, then floorCount and yearBuilt.
func NewTowerProject(name, designer string, area, costPerUnitArea float64, floorCount, yearBuilt int) (*TowerProject, error) {
	return domain.NewTowerProject(name, designer, area, costPerUnitArea, floorCount, yearBuilt)
}

// ProjectFromAttributes builds a Project from decoded attributes, reporting ErrType or ErrValue.
func ProjectFromAttributes(a Attributes) (*Project, error) {
	return domain.ProjectFromAttributes(a)
}

// TowerProjectFromAttributes builds a TowerProject from decoded attributes, reporting ErrType or ErrValue.
func TowerProjectFromAttributes(a Attributes) (*TowerProject, error) {
	return domain.TowerProjectFromAttributes(a)
}

// Estimator prices designs and sizes their volume at a fixed floor height.
type Estimator struct {
	app *app.App
}

// NewEstimator returns an Estimator using floorHeight in meters, which must be
// positive. A nil logger uses slog.Default.
func NewEstimator(log *slog.Logger, floorHeight float64) (*Estimator, error) {
	if !(floorHeight > 0) {
		return nil, errors.New("floor height must be positive")
	}
	var cfg config.Config
	cfg.Estimate.FloorHeight = floorHeight
	return &Estimator{app: app.New(log, cfg)}, nil
}

// NewEstimatorFromEnv configures an Estimator from DESIGN_FLOOR_HEIGHT and
// LOG_LEVEL (optionally set in a .env file); logs go to stderr.
func NewEstimatorFromEnv() (*Estimator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &Estimator{app: app.New(app.NewLogger(os.Stderr, cfg.Log.Level), cfg)}, nil
}

// Estimate prices d and computes its volume at the estimator's floor height.
func (e *Estimator) Estimate(d Design) (Estimate, error) {
	return e.app.Estimate(d)
}
