// Package stats сворачивает эффекты активных узлов в глобальный набор
// характеристик и наборы отдельных узлов.
package stats

import (
	"math"

	"go-node-defense/internal/component"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/types"
)

// Result — полностью вычисленные характеристики.
type Result struct {
	Global  defs.Bundle
	PerNode map[types.NodeID]defs.Bundle
}

// Node возвращает набор узла, для неизвестного узла глобальный набор.
func (r Result) Node(id types.NodeID) defs.Bundle {
	if b, ok := r.PerNode[id]; ok {
		return b
	}
	return r.Global
}

// Resolve вычисляет характеристики в две фазы, сохраняя порядок каталога.
//
// Фаза 1: глобальные эффекты активных узлов применяются по очереди к одному
// аккумулятору, каждый видит результат предыдущих.
// Фаза 2: каждый scoped-эффект проверяет селектор на всех узлах и
// применяется к аккумулятору выбранного узла; аккумуляторы стартуют с
// результата фазы 1, поэтому scoped-эффекты читают уже вычисленные
// глобальные поля. Невыбранный узел сохраняет то, что записали в него
// предыдущие scoped-эффекты.
func Resolve(nodes []*component.Node, edges []component.Edge, initial defs.Bundle) Result {
	active := make([]*component.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Active {
			active = append(active, n)
		}
	}
	env := env{activeCount: len(active)}

	global := initial
	for _, owner := range active {
		for _, e := range owner.Effects {
			if !e.IsScoped() {
				global = applyEffect(global, e, env)
			}
		}
	}

	perNode := make(map[types.NodeID]defs.Bundle, len(nodes))
	for _, n := range nodes {
		perNode[n.ID] = global
	}
	for _, owner := range active {
		for _, e := range owner.Effects {
			if !e.IsScoped() || e.Target == nil {
				continue
			}
			selected := Select(*e.Target, owner, nodes, edges)
			for _, target := range nodes {
				if selected[target.ID] {
					perNode[target.ID] = applyEffect(perNode[target.ID], e, env)
				}
			}
		}
	}

	return Result{Global: global, PerNode: perNode}
}

type env struct {
	activeCount int
}

// applyEffect вычисляет заплатку от входного аккумулятора и перезаписывает
// ею поля. Две операции эффекта над одним полем: побеждает последняя.
func applyEffect(acc defs.Bundle, e defs.Effect, env env) defs.Bundle {
	patched := acc
	for _, op := range e.Ops {
		v := acc[op.Stat]
		switch op.Kind {
		case defs.OpAdd:
			patched[op.Stat] = v + op.Value
		case defs.OpMul:
			patched[op.Stat] = v * op.Value
		case defs.OpSet:
			patched[op.Stat] = op.Value
		case defs.OpAddStat:
			if op.Source != nil {
				patched[op.Stat] = v + op.Value*acc[*op.Source]
			}
		case defs.OpMulStat:
			if op.Source != nil {
				patched[op.Stat] = v * op.Value * acc[*op.Source]
			}
		case defs.OpAddPerActive:
			patched[op.Stat] = v + op.Value*float64(env.activeCount)
		}
	}
	return patched
}

// Cost = ceil(базовая цена × множитель цены узла).
func Cost(r Result, n *component.Node) int {
	return int(math.Ceil(float64(n.Cost) * r.Node(n.ID)[defs.StatCostMultiplier]))
}

// MaxHealth — вычисленное максимальное здоровье узла.
func MaxHealth(r Result, n *component.Node) float64 {
	return r.Node(n.ID)[defs.StatHealth]
}
