package radius_test

import (
	"fmt"

	"github.com/katalvlaran/rcrit/geom"
	"github.com/katalvlaran/rcrit/radius"
)

// ExampleFindCriticalRadius shows a bracket that pins Rc without any search.
func ExampleFindCriticalRadius() {
	ns, _ := geom.NewNodeSet([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: 10}})

	res, err := radius.FindCriticalRadius(ns)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Initial, res.Radius, res.Degenerate, res.Evaluations)
	// Output: [7, 7] 7 true 0
}
