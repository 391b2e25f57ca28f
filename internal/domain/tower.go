package domain

import "fmt"

// TowerProject is a multi-floor building made of FloorCount typical floors.
// It embeds Project, so the base attributes and String are shared; cost and
// volume scale with the floor count.
type TowerProject struct {
	Project
	FloorCount int
	YearBuilt  int // year the building was put into service
}

// NewTowerProject validates the base attributes exactly as NewProject does,
// then the floor count and the year.
func NewTowerProject(name, designer string, area, costPerUnitArea float64, floorCount, yearBuilt int) (*TowerProject, error) {
	p, err := NewProject(name, designer, area, costPerUnitArea)
	if err != nil {
		return nil, err
	}
	return newTower(p, floorCount, yearBuilt)
}

func newTower(p *Project, floorCount, yearBuilt int) (*TowerProject, error) {
	if err := requirePositive(FieldFloorCount, floorCount); err != nil {
		return nil, err
	}
	if err := requirePositive(FieldYearBuilt, yearBuilt); err != nil {
		return nil, err
	}
	return &TowerProject{Project: *p, FloorCount: floorCount, YearBuilt: yearBuilt}, nil
}

// CostOfDesign returns Area * CostPerUnitArea * FloorCount.
func (t *TowerProject) CostOfDesign() float64 {
	return t.Project.CostOfDesign() * float64(t.FloorCount)
}

// BuildingVolume returns the volume of all floors of the given height.
func (t *TowerProject) BuildingVolume(floorHeight float64) float64 {
	return t.Project.BuildingVolume(floorHeight) * float64(t.FloorCount)
}

// GoString omits FloorCount.
func (t *TowerProject) GoString() string {
	return fmt.Sprintf("TowerProject(name=%q, designer=%q, yearBuilt=%d)", t.Name, t.Designer, t.YearBuilt)
}
