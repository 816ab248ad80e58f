package trans_test

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/transit/trans"
)

// ExampleBFS enumerates all words over {a, b, c} in length order.
func ExampleBFS() {
	it := trans.BFS("", trans.Slice(func(s string) []string {
		return []string{s + "a", s + "b", s + "c"}
	}))
	fmt.Println(it.Take(10))
	// Output:
	// [ a b c aa ab ac ba bb bc]
}

// ExampleDFS shows the depth-first left spine of the same universe: the
// first successor's subtree is unbounded, so later branches never appear.
func ExampleDFS() {
	it := trans.DFS("", trans.Slice(func(s string) []string {
		return []string{s + "a", s + "b", s + "c"}
	}))
	fmt.Println(it.Take(5))
	// Output:
	// [ a aa aaa aaaa]
}

// ExampleBFS_collatzTree walks the inverse Collatz tree: each n expands to
// the values that step to n, bounded with a depth limit.
func ExampleBFS_collatzTree() {
	inverse := trans.Slice(func(n int) []int {
		succ := []int{2 * n}
		if n > 4 && (n-1)%3 == 0 && (n-1)/3%2 == 1 {
			succ = append(succ, (n-1)/3)
		}
		return succ
	})
	it := trans.BFS(1, inverse, trans.WithMaxDepth[int](5))
	fmt.Println(it.Take(7))
	// Output:
	// [1 2 4 8 16 32 5]
}

// org is a self-expanding node type: it opts into auto mode by
// implementing Successors.
type org struct {
	team    string
	reports []*org
}

func (o *org) Successors() iter.Seq[*org] { return slices.Values(o.reports) }

// ExampleFrom traverses a self-expanding type without an explicit closure.
func ExampleFrom() {
	company := &org{team: "exec", reports: []*org{
		{team: "platform", reports: []*org{{team: "storage"}, {team: "network"}}},
		{team: "product"},
	}}
	for node := range trans.From(company).Seq() {
		fmt.Println(node.team)
	}
	// Output:
	// exec
	// platform
	// product
	// storage
	// network
}

// ExampleIter_Seq bounds an infinite traversal with an ordinary range loop.
func ExampleIter_Seq() {
	doubling := trans.Slice(func(n int) []int { return []int{2 * n} })
	total := 0
	for n := range trans.BFS(1, doubling).Seq() {
		if n > 64 {
			break
		}
		total += n
	}
	fmt.Println(total)
	// Output:
	// 127
}
