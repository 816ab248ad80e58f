package prio_test

import (
	"testing"

	"github.com/katalvlaran/transit/prio"
	"github.com/katalvlaran/transit/trans"
)

// BenchmarkNew_Take measures cost-ordered enumeration of N nodes of the
// climb tree; the frontier holds roughly N pending duplicates by the end,
// so this exercises heap growth.
func BenchmarkNew_Take(b *testing.B) {
	const n = 4096
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := prio.New(0, trans.Slice(func(v int) []int {
			return []int{v + 1, v + 2}
		}))
		if got := it.Take(n); len(got) != n {
			b.Fatalf("yielded %d nodes; want %d", len(got), n)
		}
	}
}

// BenchmarkNewKey_Take measures the derived-key path.
func BenchmarkNewKey_Take(b *testing.B) {
	const n = 2048
	type step struct{ cost, id int }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := prio.NewKey(step{}, func(s step) int { return s.cost },
			trans.Slice(func(s step) []step {
				return []step{{s.cost + 2, s.id + 1}, {s.cost + 3, s.id + 2}}
			}))
		it.Take(n)
	}
}
