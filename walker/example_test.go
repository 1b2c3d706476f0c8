package walker_test

import (
	"fmt"

	"github.com/erraggy/flist/walker"
)

func ExampleWalkWithOptions() {
	count := 0
	err := walker.WalkWithOptions(
		walker.WithRoot("."),
		walker.WithMaxDepth(0),
		walker.WithEntryHandler(func(e walker.Entry) walker.Action {
			count++
			return walker.Continue
		}),
	)
	fmt.Println(err == nil, count > 0)
	// Output: true true
}
