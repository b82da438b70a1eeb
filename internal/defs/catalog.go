package defs

import (
	"fmt"

	"go-node-defense/internal/types"
)

// NodeDefinition хранит статические данные узла дерева улучшений.
type NodeDefinition struct {
	ID      types.NodeID `yaml:"id" json:"id" validate:"required"`
	Title   string       `yaml:"title,omitempty" json:"title,omitempty"`
	X       float64      `yaml:"x" json:"x"`
	Y       float64      `yaml:"y" json:"y"`
	Cost    int          `yaml:"cost" json:"cost" validate:"gte=0"`
	Active  bool         `yaml:"active,omitempty" json:"active,omitempty"`
	Effects []Effect     `yaml:"effects" json:"effects" validate:"dive"`
}

// EdgeDefinition — связь родитель -> потомок.
type EdgeDefinition struct {
	From types.NodeID `yaml:"from" json:"from" validate:"required"`
	To   types.NodeID `yaml:"to" json:"to" validate:"required"`
}

// Catalog — весь статический каталог: начальные характеристики, узлы, связи.
type Catalog struct {
	InitialStats map[string]float64 `yaml:"initialStats,omitempty" json:"initialStats,omitempty"`
	Nodes        []NodeDefinition   `yaml:"nodes" json:"nodes" validate:"required,min=1,dive"`
	Edges        []EdgeDefinition   `yaml:"edges" json:"edges" validate:"dive"`
}

// Initial возвращает начальный набор характеристик с учётом переопределений.
func (c *Catalog) Initial() (Bundle, error) {
	return BundleFromMap(DefaultStats(), c.InitialStats)
}

// NodeIDs возвращает идентификаторы узлов в порядке каталога.
func (c *Catalog) NodeIDs() []types.NodeID {
	ids := make([]types.NodeID, len(c.Nodes))
	for i, n := range c.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// ValidateForest проверяет, что связи образуют лес: каждая вершина известна,
// у каждой не больше одного родителя и циклов нет.
func ValidateForest(ids []types.NodeID, edges []EdgeDefinition) error {
	known := make(map[types.NodeID]bool, len(ids))
	for _, id := range ids {
		if known[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateNode, id)
		}
		known[id] = true
	}

	parent := make(map[types.NodeID]types.NodeID, len(edges))
	for _, e := range edges {
		if !known[e.From] {
			return fmt.Errorf("edge %s->%s: %w: %s", e.From, e.To, ErrUnknownNode, e.From)
		}
		if !known[e.To] {
			return fmt.Errorf("edge %s->%s: %w: %s", e.From, e.To, ErrUnknownNode, e.To)
		}
		if e.From == e.To {
			return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrCyclicCatalog)
		}
		if p, ok := parent[e.To]; ok {
			return fmt.Errorf("%w: %s (%s, %s)", ErrMultipleParents, e.To, p, e.From)
		}
		parent[e.To] = e.From
	}

	// При одном родителе цикл виден как возврат к стартовой вершине при подъёме.
	for _, id := range ids {
		steps := 0
		for cur, ok := parent[id]; ok; cur, ok = parent[cur] {
			if cur == id || steps > len(ids) {
				return fmt.Errorf("%w: through %s", ErrCyclicCatalog, id)
			}
			steps++
		}
	}

	roots := 0
	for _, id := range ids {
		if _, ok := parent[id]; !ok {
			roots++
		}
	}
	if roots == 0 {
		return ErrMissingRootNodes
	}
	return nil
}

// validateEffects проверяет то, что не выражается тегами валидатора.
func (c *Catalog) validateEffects() error {
	known := make(map[types.NodeID]bool, len(c.Nodes))
	for _, n := range c.Nodes {
		known[n.ID] = true
	}
	for _, n := range c.Nodes {
		for i, e := range n.Effects {
			switch e.Kind {
			case EffectGlobal:
				if e.Target != nil {
					return fmt.Errorf("node %s effect %d: %w: global effect with target", n.ID, i, ErrInvalidEffect)
				}
			case EffectScoped:
				if e.Target == nil {
					return fmt.Errorf("node %s effect %d: %w: scoped effect without target", n.ID, i, ErrInvalidEffect)
				}
				if e.Target.Kind == SelectIDs && len(e.Target.IDs) == 0 {
					return fmt.Errorf("node %s effect %d: %w: ids selector is empty", n.ID, i, ErrInvalidEffect)
				}
				for _, id := range e.Target.IDs {
					if !known[id] {
						return fmt.Errorf("node %s effect %d: %w: %s", n.ID, i, ErrUnknownNode, id)
					}
				}
			}
			for j, op := range e.Ops {
				if op.Stat < 0 || op.Stat >= NumStats {
					return fmt.Errorf("node %s effect %d op %d: %w", n.ID, i, j, ErrUnknownStat)
				}
				if (op.Kind == OpAddStat || op.Kind == OpMulStat) && op.Source == nil {
					return fmt.Errorf("node %s effect %d op %d: %w: %s without source", n.ID, i, j, ErrInvalidEffect, op.Kind)
				}
			}
		}
	}
	return nil
}
