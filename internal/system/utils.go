// internal/system/utils.go
package system

import (
	"math"

	"go-node-defense/internal/component"
)

// collectorArea — квадрат со стороной size с центром в позиции сборщика.
func collectorArea(collector component.Position, size float64) component.Area {
	return component.Area{
		X:      collector.X - size/2,
		Y:      collector.Y - size/2,
		Width:  size,
		Height: size,
	}
}

// overlaps — пересечение квадратных хитбоксов снаряда и врага.
func overlaps(p component.Position, hitbox float64, e *component.Enemy) bool {
	half := (e.Size + hitbox) / 2
	return math.Abs(p.X-e.X) < half && math.Abs(p.Y-e.Y) < half
}

// ready сообщает, что с момента last прошло не меньше cooldown.
func ready(now, last, cooldown float64) bool {
	return now >= last+cooldown
}
