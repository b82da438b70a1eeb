// internal/interfaces/game.go
package interfaces

import (
	"go-node-defense/internal/app"
	"go-node-defense/internal/component"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/types"
)

// Game — действия и чтения, которые нужны клиентам симуляции
// (окно ebiten, консольный прогон). Реализуется *app.Game.
type Game interface {
	Update(tick app.Tick, collector component.Position)
	Toggle(id types.NodeID) bool
	BuyAmmo() int
	Reset()
	Preview(id types.NodeID) stats.Result

	Stats() stats.Result
	Nodes() []*component.Node
	Edges() []component.Edge
	Enemies() []*component.Enemy
	Projectiles() []*component.Projectile
	Pickups() []*component.Pickup
	Wave() component.Wave
	WaveState() component.WaveState
	Power() float64
	Ammo() int
	IsGameOver() bool
	Time() float64
	Cost(id types.NodeID) int
	Affordable(id types.NodeID) bool
}

var _ Game = (*app.Game)(nil)
