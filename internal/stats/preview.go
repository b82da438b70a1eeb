package stats

import (
	"go-node-defense/internal/component"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/graph"
	"go-node-defense/internal/types"
)

// Preview показывает, что изменится, если узел id станет активным.
// Ничего не изменяет: узлы копируются, активность форсируется в копии,
// затем из гипотетических наборов вычитаются текущие. Наборы узлов
// возвращаются для узлов, которые выбирают scoped-эффекты самого id, и для
// узлов, которые scoped-эффекты других активных узлов начинают выбирать
// только после включения id. Для уже активного узла все разности нулевые.
func Preview(id types.NodeID, nodes []*component.Node, edges []component.Edge, initial defs.Bundle, current Result) Result {
	diff := Result{PerNode: make(map[types.NodeID]defs.Bundle)}
	hypothetical, target := withActive(id, nodes)
	if target == nil {
		return diff
	}

	next := Resolve(hypothetical, edges, initial)
	diff.Global = next.Global.Sub(current.Global)
	for i, owner := range hypothetical {
		if !owner.Active {
			continue
		}
		for _, e := range owner.Effects {
			if !e.IsScoped() || e.Target == nil {
				continue
			}
			var before map[types.NodeID]bool
			if owner != target {
				before = Select(*e.Target, nodes[i], nodes, edges)
			}
			for nid := range Select(*e.Target, owner, hypothetical, edges) {
				if !before[nid] {
					diff.PerNode[nid] = next.Node(nid).Sub(current.Node(nid))
				}
			}
		}
	}
	return diff
}

// withActive копирует узлы, включая в копии узел id. Второй результат —
// копия узла id или nil.
func withActive(id types.NodeID, nodes []*component.Node) ([]*component.Node, *component.Node) {
	out := make([]*component.Node, len(nodes))
	var target *component.Node
	for i, n := range nodes {
		c := *n
		if c.ID == id {
			c.Active = true
			target = &c
		}
		out[i] = &c
	}
	return out, target
}

// Resolver связывает список связей и начальные характеристики, чтобы
// вызывающему коду не приходилось передавать их в каждый вызов.
type Resolver struct {
	edges   []component.Edge
	initial defs.Bundle
}

func NewResolver(edges []component.Edge, initial defs.Bundle) *Resolver {
	return &Resolver{edges: edges, initial: initial}
}

func (r *Resolver) Resolve(nodes []*component.Node) Result {
	return Resolve(nodes, r.edges, r.initial)
}

func (r *Resolver) Preview(id types.NodeID, nodes []*component.Node, current Result) Result {
	return Preview(id, nodes, r.edges, r.initial, current)
}

func (r *Resolver) Edges() []component.Edge {
	return r.edges
}

// ResolveActivated — характеристики при включённом узле id. Узлы не изменяются.
func (r *Resolver) ResolveActivated(id types.NodeID, nodes []*component.Node) Result {
	hypothetical, _ := withActive(id, nodes)
	return Resolve(hypothetical, r.edges, r.initial)
}

// Affordable сообщает, можно ли сейчас активировать узел: родитель активен
// и энергии хватает.
func (r *Resolver) Affordable(n *component.Node, nodes []*component.Node, current Result, power float64) bool {
	parent := graph.DirectParent(n.ID, nodes, r.edges)
	return parent != nil && parent.Active && power >= float64(Cost(current, n))
}
