// internal/component/projectile.go
package component

import "go-node-defense/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID types.EntityID
	Position
	Velocity Velocity
	Damage   float64
	Owner    types.NodeID
}
