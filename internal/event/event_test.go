package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-node-defense/internal/component"
	"go-node-defense/internal/types"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(NodeActivated, ListenerFunc(func(Event) { got = append(got, "first") }))
	d.SubscribeAll(ListenerFunc(func(e Event) { got = append(got, "all:"+string(e.Type)) }), NodeActivated, GameOver)

	d.Dispatch(Event{Type: NodeActivated, Time: 10, Data: types.NodeID("A")})
	d.Dispatch(Event{Type: GameOver})
	d.Dispatch(Event{Type: WaveStarted})

	assert.Equal(t, []string{"first", "all:NodeActivated", "all:GameOver"}, got)
}

func TestEventData(t *testing.T) {
	id, ok := NodeEventData(Event{Type: NodeDestroyed, Data: types.NodeID("B")})
	assert.True(t, ok)
	assert.Equal(t, types.NodeID("B"), id)

	_, ok = NodeEventData(Event{Type: NodeDestroyed, Data: "B"})
	assert.False(t, ok)

	enemy := &component.Enemy{ID: 3}
	got, ok := EnemyEventData(Event{Type: EnemyKilled, Data: enemy})
	assert.True(t, ok)
	assert.Same(t, enemy, got)
}
