package emit

import (
	"wirec/internal/ir"
)

// sharedNodes walks the graph once and returns, in dependency order
// (children before parents), every non-trivial node referenced by two or
// more distinct parents. Parent counting is by node identity, so a diamond
// built from one shared pointer is found while two structurally equal but
// separately built subgraphs are not.
func sharedNodes(root *ir.Node) []*ir.Node {
	parents := make(map[*ir.Node]map[*ir.Node]struct{})
	visited := make(map[*ir.Node]bool)
	var order []*ir.Node

	var walk func(n *ir.Node)
	walk = func(n *ir.Node) {
		for i := 0; i < n.NumInputs(); i++ {
			in := n.Input(i)
			set, ok := parents[in]
			if !ok {
				set = make(map[*ir.Node]struct{})
				parents[in] = set
			}
			set[n] = struct{}{}
			if !visited[in] {
				visited[in] = true
				walk(in)
			}
		}
		order = append(order, n)
	}
	visited[root] = true
	walk(root)

	var shared []*ir.Node
	for _, n := range order {
		if len(parents[n]) < 2 {
			continue
		}
		if info, ok := ir.Info(n.Kind()); ok && info.Trivial {
			continue
		}
		shared = append(shared, n)
	}
	return shared
}
