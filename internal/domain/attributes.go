package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Attribute keys understood by ProjectFromAttributes and TowerProjectFromAttributes.
const (
	FieldName            = "name"
	FieldDesigner        = "designer"
	FieldArea            = "area"
	FieldCostPerUnitArea = "cost_per_unit_area"
	FieldFloorCount      = "floor_count"
	FieldYearBuilt       = "year_built"
)

// Attributes holds untyped project attributes, typically the result of
// decoding JSON or YAML into a map.
type Attributes map[string]any

// ProjectFromAttributes type-checks a and builds a Project.
// Checks run in field order, so the first bad field decides the error:
// designer must be a string, area and cost_per_unit_area must be numbers.
// A missing key is treated like a value of the wrong type.
func ProjectFromAttributes(a Attributes) (*Project, error) {
	designer, ok := a[FieldDesigner].(string)
	if !ok {
		return nil, typeError(FieldDesigner, "must be a string")
	}
	area, err := numberAttr(a, FieldArea)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(FieldArea, area); err != nil {
		return nil, err
	}
	cost, err := numberAttr(a, FieldCostPerUnitArea)
	if err != nil {
		return nil, err
	}
	return NewProject(nameAttr(a), designer, area, cost)
}

// TowerProjectFromAttributes builds the base Project from a, then requires
// floor_count and year_built to be integers.
func TowerProjectFromAttributes(a Attributes) (*TowerProject, error) {
	p, err := ProjectFromAttributes(a)
	if err != nil {
		return nil, err
	}
	floors, err := integerAttr(a, FieldFloorCount)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(FieldFloorCount, floors); err != nil {
		return nil, err
	}
	year, err := integerAttr(a, FieldYearBuilt)
	if err != nil {
		return nil, err
	}
	return newTower(p, floors, year)
}

func nameAttr(a Attributes) string {
	switch v := a[FieldName].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func numberAttr(a Attributes, field string) (float64, error) {
	switch v := a[field].(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case json.Number:
		f, err := v.Float64()
		if err == nil {
			return f, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, valueError(field, "out of range")
		}
	}
	return 0, typeError(field, "must be an integer or a floating-point number")
}

func integerAttr(a Attributes, field string) (int, error) {
	var n int64
	switch v := a[field].(type) {
	case int:
		return v, nil
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, valueError(field, "out of range")
		}
		n = int64(v)
	case uint8:
		n = int64(v)
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, valueError(field, "out of range")
		}
		n = int64(v)
	case json.Number:
		i, err := strconv.ParseInt(v.String(), 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, valueError(field, "out of range")
		}
		if err != nil {
			return 0, typeError(field, "must be an integer")
		}
		n = i
	default:
		return 0, typeError(field, "must be an integer")
	}
	if n > math.MaxInt || n < math.MinInt {
		return 0, valueError(field, "out of range")
	}
	return int(n), nil
}
