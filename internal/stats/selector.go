package stats

import (
	"go-node-defense/internal/component"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/graph"
	"go-node-defense/internal/types"
)

// Select возвращает множество узлов, выбранных селектором эффекта узла owner.
// Предикат вычисляется над всеми узлами, а не только над активными.
func Select(sel defs.Selector, owner *component.Node, nodes []*component.Node, edges []component.Edge) map[types.NodeID]bool {
	out := make(map[types.NodeID]bool)
	add := func(list []*component.Node) {
		for _, n := range list {
			out[n.ID] = true
		}
	}

	switch sel.Kind {
	case defs.SelectSelf:
		out[owner.ID] = true
	case defs.SelectIDs:
		for _, id := range sel.IDs {
			if graph.Find(id, nodes) != nil {
				out[id] = true
			}
		}
	case defs.SelectChildren:
		add(graph.DirectChildren(owner.ID, nodes, edges))
	case defs.SelectDescendants:
		add(graph.AllDescendants(owner.ID, nodes, edges))
	case defs.SelectParent:
		if p := graph.DirectParent(owner.ID, nodes, edges); p != nil {
			out[p.ID] = true
		}
	case defs.SelectAncestors:
		add(graph.AllAncestors(owner.ID, nodes, edges))
	case defs.SelectSiblings:
		for _, n := range graph.Siblings(owner.ID, nodes, edges) {
			if n.ID != owner.ID {
				out[n.ID] = true
			}
		}
	case defs.SelectLeaves:
		add(graph.Leaves(nodes, edges))
	case defs.SelectRoots:
		add(graph.Roots(nodes, edges))
	case defs.SelectActive:
		for _, n := range nodes {
			if n.Active {
				out[n.ID] = true
			}
		}
	case defs.SelectAll:
		add(nodes)
	}
	return out
}
