// Package graph — запросы к дереву улучшений. Все функции чистые: работают
// над срезом узлов и списком связей, ничего не изменяют и возвращают узлы
// в порядке каталога. Ожидается лес (не больше одного родителя, без циклов),
// его проверяет Validate при загрузке каталога.
package graph

import (
	"go-node-defense/internal/component"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/types"
)

// Find ищет узел по идентификатору.
func Find(id types.NodeID, nodes []*component.Node) *component.Node {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// DirectChildren возвращает непосредственных потомков узла.
func DirectChildren(id types.NodeID, nodes []*component.Node, edges []component.Edge) []*component.Node {
	var out []*component.Node
	for _, n := range nodes {
		for _, e := range edges {
			if e.From == id && e.To == n.ID {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

// AllDescendants возвращает всех потомков: сначала прямых, затем их потомков.
// Завершается только для леса.
func AllDescendants(id types.NodeID, nodes []*component.Node, edges []component.Edge) []*component.Node {
	children := DirectChildren(id, nodes, edges)
	out := append([]*component.Node(nil), children...)
	for _, child := range children {
		out = append(out, AllDescendants(child.ID, nodes, edges)...)
	}
	return out
}

// DirectParent возвращает родителя или nil для корня.
func DirectParent(id types.NodeID, nodes []*component.Node, edges []component.Edge) *component.Node {
	for _, e := range edges {
		if e.To == id {
			return Find(e.From, nodes)
		}
	}
	return nil
}

// AllAncestors возвращает цепочку предков от родителя к корню.
func AllAncestors(id types.NodeID, nodes []*component.Node, edges []component.Edge) []*component.Node {
	var out []*component.Node
	for p := DirectParent(id, nodes, edges); p != nil; p = DirectParent(p.ID, nodes, edges) {
		out = append(out, p)
	}
	return out
}

// Leaves возвращает узлы без исходящих связей.
func Leaves(nodes []*component.Node, edges []component.Edge) []*component.Node {
	var out []*component.Node
	for _, n := range nodes {
		if !hasOutgoing(n.ID, edges) {
			out = append(out, n)
		}
	}
	return out
}

// Siblings возвращает детей родителя узла, включая сам узел.
// У корня братьев нет.
func Siblings(id types.NodeID, nodes []*component.Node, edges []component.Edge) []*component.Node {
	parent := DirectParent(id, nodes, edges)
	if parent == nil {
		return nil
	}
	return DirectChildren(parent.ID, nodes, edges)
}

// Roots возвращает узлы без входящих связей.
func Roots(nodes []*component.Node, edges []component.Edge) []*component.Node {
	var out []*component.Node
	for _, n := range nodes {
		if IsRoot(n.ID, edges) {
			out = append(out, n)
		}
	}
	return out
}

// IsRoot сообщает, что у узла нет родителя.
func IsRoot(id types.NodeID, edges []component.Edge) bool {
	for _, e := range edges {
		if e.To == id {
			return false
		}
	}
	return true
}

// Validate проверяет, что связи образуют лес над данными узлами.
func Validate(nodes []*component.Node, edges []component.Edge) error {
	ids := make([]types.NodeID, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	defsEdges := make([]defs.EdgeDefinition, len(edges))
	for i, e := range edges {
		defsEdges[i] = defs.EdgeDefinition(e)
	}
	return defs.ValidateForest(ids, defsEdges)
}

func hasOutgoing(id types.NodeID, edges []component.Edge) bool {
	for _, e := range edges {
		if e.From == id {
			return true
		}
	}
	return false
}
