package designcost_test

import (
	"errors"
	"fmt"

	designcost "design-cost"
)

func ExampleNewTowerProject() {
	tp, err := designcost.NewTowerProject("Apart-hotel", "Mikhailov", 215, 2000, 26, 2017)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tp)
	fmt.Printf("%#v\n", tp)
	fmt.Printf("%.0f\n", tp.CostOfDesign())
	// Output:
	// Project Apart-hotel. Designer Mikhailov
	// TowerProject(name="Apart-hotel", designer="Mikhailov", yearBuilt=2017)
	// 11180000
}

func ExampleProjectFromAttributes() {
	_, err := designcost.ProjectFromAttributes(designcost.Attributes{
		"name":               "X",
		"designer":           123,
		"area":               215,
		"cost_per_unit_area": 2000,
	})
	fmt.Println(errors.Is(err, designcost.ErrType))
	fmt.Println(err)
	// Output:
	// true
	// designer: invalid type: must be a string
}
