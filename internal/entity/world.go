// internal/entity/world.go
package entity

import (
	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/types"
)

// World хранит всё изменяемое состояние сессии. Срезы вместо карт:
// порядок обхода определяет результат тика, поэтому он должен быть
// детерминированным.
type World struct {
	GameTime    float64
	NextID      types.EntityID
	Nodes       []*component.Node // в порядке каталога
	Edges       []component.Edge
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Pickups     []*component.Pickup
	Economy     component.Economy
	Wave        component.Wave

	LastCollectorStrikeTime float64
	LastCollectorHealTime   float64
	GameOver                bool

	nodeIndex map[types.NodeID]*component.Node
}

// NewWorld засевает мир из каталога. Время начала первой волны — now.
func NewWorld(catalog *defs.Catalog, economy config.EconomyConfig, now float64) *World {
	w := &World{
		GameTime:  now,
		NextID:    1,
		Nodes:     make([]*component.Node, 0, len(catalog.Nodes)),
		Edges:     component.EdgesFromDefs(catalog.Edges),
		Economy:   component.Economy{Power: economy.StartPower, Ammo: economy.StartAmmo},
		Wave:      component.Wave{Number: 1, StartTime: now},
		nodeIndex: make(map[types.NodeID]*component.Node, len(catalog.Nodes)),
	}
	for _, def := range catalog.Nodes {
		n := component.NewNode(def)
		w.Nodes = append(w.Nodes, n)
		w.nodeIndex[n.ID] = n
	}
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Node возвращает узел по идентификатору или nil.
func (w *World) Node(id types.NodeID) *component.Node {
	return w.nodeIndex[id]
}

// RemoveDeadEnemies убирает врагов со здоровьем <= 0 и возвращает их.
func (w *World) RemoveDeadEnemies() []*component.Enemy {
	var dead []*component.Enemy
	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.IsAlive() {
			alive = append(alive, e)
		} else {
			dead = append(dead, e)
		}
	}
	// хвост обнуляем, чтобы не держать ссылки на удалённых врагов
	for i := len(alive); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = alive
	return dead
}

// PassivePickupCount — число пассивных сгустков, существующих сейчас.
func (w *World) PassivePickupCount() int {
	count := 0
	for _, p := range w.Pickups {
		if p.Source == component.PickupPassive {
			count++
		}
	}
	return count
}
