package alloc_test

import (
	"fmt"

	"github.com/katalvlaran/sdsim/alloc"
	"github.com/katalvlaran/sdsim/core"
)

// ExampleAllocateAvailable rations 150 units among three equal requests
// whose normal priority curves differ only in their means. Higher means
// are served first.
func ExampleAllocateAvailable() {
	env := core.NewEnv()
	env.TimeStep = 1
	env.FinalTime = 1

	requests := []float64{100, 100, 100}
	profiles := []alloc.Profile{
		{Type: alloc.Normal, Priority: 1, Width: 1},
		{Type: alloc.Normal, Priority: 5, Width: 1},
		{Type: alloc.Normal, Priority: 10, Width: 1},
	}

	allocations, err := alloc.AllocateAvailable(env, requests, profiles, 150)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, a := range allocations {
		fmt.Printf("requester %d: %.0f\n", i, a)
	}
	// Output:
	// requester 0: 0
	// requester 1: 50
	// requester 2: 100
}
