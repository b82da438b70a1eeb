// Package activation решает, можно ли включить или выключить узел, и
// вычисляет каскад выключения. Решение чистое: узлы не изменяются,
// экономику корректирует вызывающий код.
package activation

import (
	"go-node-defense/internal/component"
	"go-node-defense/internal/graph"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/types"
)

// Outcome — результат переключения.
type Outcome struct {
	Changed bool
	// Activated — включённый узел (пусто, если включения не было).
	Activated types.NodeID
	// Health — максимум здоровья узла с учётом его собственных эффектов.
	Health float64
	// Cost — цена включения.
	Cost int
	// Deactivated — узлы, перешедшие из активных в неактивные, в порядке каталога.
	Deactivated []types.NodeID
}

// Toggle переключает узел id.
//
// Включение требует активного родителя и power >= Cost, иначе результат
// пустой (это не ошибка). Выключение всегда удаётся и захватывает всех
// активных потомков.
// Корень переключить нельзя.
func Toggle(id types.NodeID, nodes []*component.Node, resolver *stats.Resolver, power float64, current stats.Result) Outcome {
	edges := resolver.Edges()
	node := graph.Find(id, nodes)
	if node == nil {
		return Outcome{}
	}
	parent := graph.DirectParent(id, nodes, edges)
	if parent == nil {
		return Outcome{}
	}

	if !node.Active {
		cost := stats.Cost(current, node)
		if !parent.Active || power < float64(cost) {
			return Outcome{}
		}
		return Outcome{
			Changed:   true,
			Activated: id,
			Health:    stats.MaxHealth(resolver.ResolveActivated(id, nodes), node),
			Cost:      cost,
		}
	}

	deactivated := Cascade([]types.NodeID{id}, nodes, edges)
	return Outcome{Changed: len(deactivated) > 0, Deactivated: deactivated}
}

// Cascade возвращает все узлы, которые перейдут из активных в неактивные,
// если узлы dead будут выключены вместе с потомками. Без повторов,
// в порядке каталога.
func Cascade(dead []types.NodeID, nodes []*component.Node, edges []component.Edge) []types.NodeID {
	off := make(map[types.NodeID]bool)
	for _, id := range dead {
		if off[id] {
			continue
		}
		off[id] = true
		for _, d := range graph.AllDescendants(id, nodes, edges) {
			off[d.ID] = true
		}
	}

	var out []types.NodeID
	for _, n := range nodes {
		if off[n.ID] && n.Active {
			out = append(out, n.ID)
		}
	}
	return out
}

// Apply записывает решение в данные узлов.
func Apply(o Outcome, nodes []*component.Node) {
	if !o.Changed {
		return
	}
	if o.Activated != "" {
		if n := graph.Find(o.Activated, nodes); n != nil {
			n.Active = true
			n.Health = o.Health
		}
	}
	for _, id := range o.Deactivated {
		if n := graph.Find(id, nodes); n != nil {
			n.Active = false
		}
	}
}
