// internal/event/types.go
package event

import (
	"go-node-defense/internal/component"
	"go-node-defense/internal/types"
)

const (
	EnemyKilled     EventType = "EnemyKilled"     // враг уничтожен, Data: *component.Enemy
	NodeActivated   EventType = "NodeActivated"   // узел куплен, Data: types.NodeID
	NodeDeactivated EventType = "NodeDeactivated" // узел выключен игроком или каскадом, Data: types.NodeID
	NodeDestroyed   EventType = "NodeDestroyed"   // здоровье узла упало до нуля, Data: types.NodeID
	WaveStarted     EventType = "WaveStarted"     // началась новая волна, Data: int
	PickupCollected EventType = "PickupCollected" // сгусток захвачен, Data: *component.Pickup
	AmmoBought      EventType = "AmmoBought"      // Data: int
	GameOver        EventType = "GameOver"        // корень разрушен
)

// NodeEventData возвращает идентификатор узла из события, если он там есть.
func NodeEventData(e Event) (types.NodeID, bool) {
	id, ok := e.Data.(types.NodeID)
	return id, ok
}

// EnemyEventData возвращает врага из события EnemyKilled.
func EnemyEventData(e Event) (*component.Enemy, bool) {
	enemy, ok := e.Data.(*component.Enemy)
	return enemy, ok
}
