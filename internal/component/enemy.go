package component

import "go-node-defense/internal/types"

// EnemyKind — характер движения врага
type EnemyKind int

const (
	EnemyStraight EnemyKind = iota
	EnemyWobbler            // виляет поперёк направления движения
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID types.EntityID
	Position
	Kind                EnemyKind
	Size                float64
	MovementSpeed       float64 // клеток в мс
	AttackDamage        float64
	AttackSpeed         float64 // мс между атаками
	Health              float64
	MaxHealth           float64
	LastAttackDealtTime float64
	LastMovementTime    float64
	Target              types.NodeID
	Rotation            float64 // градусы, только для отрисовки
}

// IsAlive сообщает, что враг ещё не уничтожен.
func (e *Enemy) IsAlive() bool {
	return e.Health > 0
}
