package prio_test

import (
	"fmt"

	"github.com/katalvlaran/transit/prio"
	"github.com/katalvlaran/transit/trans"
)

// ExampleNew climbs a cost landscape cheapest-first. The value 2 is
// reachable both as 0+2 and as 0+1+1, and without deduplication it is
// yielded once per path.
func ExampleNew() {
	it := prio.New(0, trans.Slice(func(n int) []int {
		return []int{n + 1, n + 2}
	}))
	fmt.Println(it.Take(4))
	// Output:
	// [0 1 2 2]
}

// ExampleNewKey_fastestRoute finds the fastest route through a small road
// network by expanding partial routes cheapest-total-first. The first route
// popped at the destination is the fastest, because every hop only adds
// time; dropping routes that arrive at an already-beaten intersection keeps
// the frontier small (lazy decrease-key).
func ExampleNewKey_fastestRoute() {
	type hop struct {
		to   string
		mins int
	}
	roads := map[string][]hop{
		"A": {{"B", 4}, {"C", 2}},
		"B": {{"D", 5}},
		"C": {{"B", 1}, {"E", 10}},
		"D": {{"F", 6}},
		"E": {{"F", 3}},
	}
	type route struct {
		stops string // visited intersections, in order
		mins  int    // total travel time
	}

	best := map[byte]int{}
	extend := trans.Slice(func(r route) []route {
		at := r.stops[len(r.stops)-1]
		if m, ok := best[at]; ok && m < r.mins {
			return nil // beaten: a faster route already reached this point
		}
		best[at] = r.mins
		var out []route
		for _, h := range roads[string(at)] {
			out = append(out, route{stops: r.stops + h.to, mins: r.mins + h.mins})
		}
		return out
	})

	it := prio.NewKey(route{stops: "A"}, func(r route) int { return r.mins }, extend)
	for r := range it.Seq() {
		if r.stops[len(r.stops)-1] == 'F' {
			fmt.Printf("%s in %d minutes\n", r.stops, r.mins)
			break
		}
	}
	// Output:
	// ACBDF in 14 minutes
}
