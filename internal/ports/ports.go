package ports

import (
	"fmt"

	"design-cost/internal/domain"
)

// Design is the capability shared by every project variant: each one computes
// its cost and volume from its own validated fields.
type Design interface {
	fmt.Stringer
	CostOfDesign() float64
	BuildingVolume(floorHeight float64) float64
}

var (
	_ Design = (*domain.Project)(nil)
	_ Design = (*domain.TowerProject)(nil)
)
