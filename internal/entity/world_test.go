package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/types"
)

func testCatalog() *defs.Catalog {
	return &defs.Catalog{
		Nodes: []defs.NodeDefinition{
			{ID: "R", Active: true},
			{ID: "A", X: 1, Y: 2, Cost: 3},
		},
		Edges: []defs.EdgeDefinition{{From: "R", To: "A"}},
	}
}

func TestNewWorld(t *testing.T) {
	w := NewWorld(testCatalog(), config.EconomyConfig{StartPower: 5, StartAmmo: 10}, 250)

	require.Len(t, w.Nodes, 2)
	assert.Equal(t, types.NodeID("R"), w.Nodes[0].ID)
	assert.True(t, w.Nodes[0].Active)
	assert.Equal(t, component.Position{X: 1, Y: 2}, w.Node("A").Position)
	assert.Equal(t, 3, w.Node("A").Cost)
	assert.Nil(t, w.Node("missing"))
	assert.Equal(t, []component.Edge{{From: "R", To: "A"}}, w.Edges)
	assert.Equal(t, component.Economy{Power: 5, Ammo: 10}, w.Economy)
	assert.Equal(t, component.Wave{Number: 1, StartTime: 250}, w.Wave)
	assert.Equal(t, 250.0, w.GameTime)
}

func TestNewEntityIsMonotonic(t *testing.T) {
	w := NewWorld(testCatalog(), config.EconomyConfig{}, 0)
	a := w.NewEntity()
	b := w.NewEntity()
	assert.Equal(t, a+1, b)
	assert.NotZero(t, a)
}

func TestRemoveDeadEnemies(t *testing.T) {
	w := NewWorld(testCatalog(), config.EconomyConfig{}, 0)
	alive := &component.Enemy{ID: 1, Health: 1}
	dead := &component.Enemy{ID: 2, Health: 0}
	overkill := &component.Enemy{ID: 3, Health: -2}
	w.Enemies = []*component.Enemy{dead, alive, overkill}

	removed := w.RemoveDeadEnemies()
	assert.Equal(t, []*component.Enemy{dead, overkill}, removed)
	assert.Equal(t, []*component.Enemy{alive}, w.Enemies)
	assert.Empty(t, w.RemoveDeadEnemies())
}

func TestPassivePickupCount(t *testing.T) {
	w := NewWorld(testCatalog(), config.EconomyConfig{}, 0)
	w.Pickups = []*component.Pickup{
		{Source: component.PickupPassive, Owner: "R"},
		{Source: component.PickupKillDrop},
		{Source: component.PickupPassive, Owner: "A"},
		{Source: component.PickupRefund, Owner: "A"},
	}
	assert.Equal(t, 2, w.PassivePickupCount())
}
