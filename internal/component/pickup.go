package component

import "go-node-defense/internal/types"

// PickupSource — откуда взялся сгусток энергии
type PickupSource int

const (
	PickupKillDrop PickupSource = iota // выпал из врага
	PickupPassive                      // сгенерирован узлом, учитывается в лимите
	PickupRefund                       // остался от разрушенного узла
)

// Pickup — сгусток энергии, превращается в power при захвате сборщиком.
type Pickup struct {
	ID types.EntityID
	Position
	Value  float64
	Source PickupSource
	Owner  types.NodeID // для пассивных: узел-генератор
}
