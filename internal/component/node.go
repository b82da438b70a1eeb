// component/node.go
package component

import (
	"go-node-defense/internal/defs"
	"go-node-defense/internal/types"
)

// Node — узел дерева улучшений. Простые данные без ссылок на родителя:
// структура дерева живёт в списке связей.
type Node struct {
	ID      types.NodeID
	Title   string
	Position
	Active  bool
	Cost    int
	Effects []defs.Effect
	Health  float64

	LastBulletShotTime     float64
	LastDamageTakenTime    float64
	LastPowerGeneratedTime float64
	LastRegenerationTime   float64
}

// Edge — связь родитель -> потомок
type Edge struct {
	From types.NodeID
	To   types.NodeID
}

// NewNode создаёт узел из определения каталога.
func NewNode(def defs.NodeDefinition) *Node {
	effects := make([]defs.Effect, len(def.Effects))
	copy(effects, def.Effects)
	return &Node{
		ID:       def.ID,
		Title:    def.Title,
		Position: Position{X: def.X, Y: def.Y},
		Active:   def.Active,
		Cost:     def.Cost,
		Effects:  effects,
	}
}

// EdgesFromDefs переводит связи каталога в компоненты.
func EdgesFromDefs(defsEdges []defs.EdgeDefinition) []Edge {
	edges := make([]Edge, len(defsEdges))
	for i, e := range defsEdges {
		edges[i] = Edge(e)
	}
	return edges
}
