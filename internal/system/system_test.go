package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/entity"
	"go-node-defense/internal/event"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/types"
	"go-node-defense/internal/utils"
)

// farAway — позиция сборщика, не влияющая на сцену.
var farAway = component.Position{X: 100, Y: 100}

type fixture struct {
	world      *entity.World
	resolver   *stats.Resolver
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	cfg        *config.SimConfig
	events     []event.Event
}

func newFixture(t *testing.T, catalog *defs.Catalog) *fixture {
	t.Helper()
	require.NoError(t, catalog.Validate())
	initial, err := catalog.Initial()
	require.NoError(t, err)

	cfg := config.Default()
	f := &fixture{
		world:      entity.NewWorld(catalog, config.EconomyConfig{StartAmmo: 10}, 0),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(7),
		cfg:        cfg,
	}
	f.resolver = stats.NewResolver(f.world.Edges, initial)
	record := event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) })
	f.dispatcher.SubscribeAll(record,
		event.EnemyKilled, event.NodeDeactivated, event.NodeDestroyed,
		event.WaveStarted, event.PickupCollected, event.GameOver)
	return f
}

func (f *fixture) resolve() stats.Result {
	return f.resolver.Resolve(f.world.Nodes)
}

func (f *fixture) snapshot() []*component.Enemy {
	return append([]*component.Enemy(nil), f.world.Enemies...)
}

func (f *fixture) count(t event.EventType) int {
	n := 0
	for _, e := range f.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (f *fixture) addEnemy(x, y, health float64) *component.Enemy {
	e := &component.Enemy{
		ID:          f.world.NewEntity(),
		Position:    component.Position{X: x, Y: y},
		Size:        0.25,
		AttackSpeed: 2000,
		Health:      health,
		MaxHealth:   health,
	}
	f.world.Enemies = append(f.world.Enemies, e)
	return e
}

func typesID(s string) types.NodeID { return types.NodeID(s) }

func def(id string, x, y float64, cost int, active bool, effects ...defs.Effect) defs.NodeDefinition {
	return defs.NodeDefinition{ID: typesID(id), X: x, Y: y, Cost: cost, Active: active, Effects: effects}
}

func edge(from, to string) defs.EdgeDefinition {
	return defs.EdgeDefinition{From: typesID(from), To: typesID(to)}
}
