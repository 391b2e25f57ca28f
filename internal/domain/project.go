package domain

import "fmt"

// Project is a design project priced per unit of floor area.
//
// Values returned by NewProject always satisfy Area > 0 and
// CostPerUnitArea > 0. Fields are exported for reading; callers should not
// modify them.
type Project struct {
	Name            string
	Designer        string  // designer's surname
	Area            float64 // square meters
	CostPerUnitArea float64 // price of one square meter of design work
}

// NewProject validates the attributes and returns a Project.
// The name is accepted as is.
func NewProject(name, designer string, area, costPerUnitArea float64) (*Project, error) {
	if err := requirePositive(FieldArea, area); err != nil {
		return nil, err
	}
	if err := requirePositive(FieldCostPerUnitArea, costPerUnitArea); err != nil {
		return nil, err
	}
	return &Project{
		Name:            name,
		Designer:        designer,
		Area:            area,
		CostPerUnitArea: costPerUnitArea,
	}, nil
}

// CostOfDesign returns Area * CostPerUnitArea.
func (p *Project) CostOfDesign() float64 {
	return p.Area * p.CostPerUnitArea
}

// BuildingVolume returns the built volume of a single floor of the given height.
func (p *Project) BuildingVolume(floorHeight float64) float64 {
	return p.Area * floorHeight
}

func (p *Project) String() string {
	return fmt.Sprintf("Project %s. Designer %s", p.Name, p.Designer)
}

// GoString is the machine-oriented representation used by %#v.
func (p *Project) GoString() string {
	return fmt.Sprintf("Project(name=%q, designer=%q)", p.Name, p.Designer)
}
