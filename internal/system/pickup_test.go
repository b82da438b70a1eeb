package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-node-defense/internal/component"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/event"
)

func generatorCatalog(maxAmount float64) *defs.Catalog {
	return &defs.Catalog{Nodes: []defs.NodeDefinition{
		def("R", 0, 0, 0, true, defs.Global(
			defs.Set(defs.StatPowerGenerationAmount, 1),
			defs.Set(defs.StatPowerGenerationMaxAmount, maxAmount),
		)),
	}}
}

func TestPickupAttraction(t *testing.T) {
	f := newFixture(t, rootOnly())
	ps := NewPickupSystem(f.world, f.dispatcher, f.rng, f.cfg.World)
	inside := ps.Drop(component.Position{X: 1}, 1, component.PickupKillDrop, "")
	outside := ps.Drop(component.Position{X: 3}, 1, component.PickupKillDrop, "")

	// радиус 2: на половине радиуса тяга 0.004·(1 − 0.25) клетки/мс
	ps.Update(0, 50, f.resolve(), nil, component.Position{})
	assert.InDelta(t, 0.85, inside.X, 1e-9)
	assert.InDelta(t, 0, inside.Y, 1e-9)
	assert.Equal(t, component.Position{X: 3}, outside.Position)
	assert.Len(t, f.world.Pickups, 2)
}

func TestPickupCaptureClampsToMaxPower(t *testing.T) {
	f := newFixture(t, rootOnly())
	ps := NewPickupSystem(f.world, f.dispatcher, f.rng, f.cfg.World)
	f.world.Economy.Power = 9
	ps.Drop(component.Position{X: 0.1}, 3, component.PickupKillDrop, "")

	ps.Update(0, 50, f.resolve(), nil, component.Position{})
	assert.Equal(t, 10.0, f.world.Economy.Power)
	assert.Empty(t, f.world.Pickups)
	assert.Equal(t, 1, f.count(event.PickupCollected))
}

func TestPickupCaptureUsesPowerMultiplier(t *testing.T) {
	f := newFixture(t, &defs.Catalog{Nodes: []defs.NodeDefinition{
		def("R", 0, 0, 0, true, defs.Global(defs.Set(defs.StatPowerMultiplier, 2))),
	}})
	ps := NewPickupSystem(f.world, f.dispatcher, f.rng, f.cfg.World)
	ps.Drop(component.Position{}, 1.5, component.PickupRefund, "R")

	ps.Update(0, 50, f.resolve(), nil, component.Position{})
	assert.Equal(t, 3.0, f.world.Economy.Power)
}

func TestDropForKill(t *testing.T) {
	tests := []struct {
		name   string
		chance float64
		want   int
	}{
		{"no bonus", 0, 1},
		{"guaranteed bonus", 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &defs.Catalog{Nodes: []defs.NodeDefinition{
				def("R", 0, 0, 0, true, defs.Global(defs.Set(defs.StatAdditionalPowerPerEnemyChance, tt.chance))),
			}})
			ps := NewPickupSystem(f.world, f.dispatcher, f.rng, f.cfg.World)
			e := f.addEnemy(5, 5, 0)

			ps.Update(0, 50, f.resolve(), []*component.Enemy{e}, farAway)
			require.Len(t, f.world.Pickups, tt.want)
			for _, p := range f.world.Pickups {
				assert.Equal(t, component.PickupKillDrop, p.Source)
				assert.InDelta(t, e.Size/2, p.DistanceTo(e.Position), 1e-9)
			}
		})
	}
}

func TestPassiveGeneration(t *testing.T) {
	f := newFixture(t, generatorCatalog(4))
	ps := NewPickupSystem(f.world, f.dispatcher, f.rng, f.cfg.World)

	ps.Update(4999, 50, f.resolve(), nil, farAway)
	assert.Empty(t, f.world.Pickups, "cooldown not elapsed")

	ps.Update(5000, 50, f.resolve(), nil, farAway)
	require.Len(t, f.world.Pickups, 1)
	first := f.world.Pickups[0]
	assert.InDelta(t, 0.625, first.X, 1e-9)
	assert.InDelta(t, 0.125, first.Y, 1e-9)
	assert.Equal(t, component.PickupPassive, first.Source)
	assert.Equal(t, 1.0, first.Value)

	ps.Update(6000, 50, f.resolve(), nil, farAway)
	assert.Len(t, f.world.Pickups, 1)

	ps.Update(10000, 50, f.resolve(), nil, farAway)
	require.Len(t, f.world.Pickups, 2)
	second := f.world.Pickups[1]
	assert.InDelta(t, 0.125, second.X, 1e-9)
	assert.InDelta(t, 0.625, second.Y, 1e-9)
}

func TestPassiveGenerationCapIsShared(t *testing.T) {
	generator := defs.Scoped(defs.Select(defs.SelectSelf),
		defs.Set(defs.StatPowerGenerationAmount, 1),
		defs.Set(defs.StatPowerGenerationMaxAmount, 1),
	)
	f := newFixture(t, &defs.Catalog{
		Nodes: []defs.NodeDefinition{
			def("R", 0, 0, 0, true),
			def("A", 2, 0, 1, true, generator),
			def("B", -2, 0, 1, true, generator),
		},
		Edges: []defs.EdgeDefinition{edge("R", "A"), edge("R", "B")},
	})
	ps := NewPickupSystem(f.world, f.dispatcher, f.rng, f.cfg.World)

	ps.Update(100000, 50, f.resolve(), nil, farAway)
	require.Len(t, f.world.Pickups, 1)
	assert.Equal(t, typesID("A"), f.world.Pickups[0].Owner)
	assert.Equal(t, 0.0, f.world.Node("B").LastPowerGeneratedTime, "B waits for a free slot")

	ps.Update(105000, 50, f.resolve(), nil, farAway)
	assert.Equal(t, 1, f.world.PassivePickupCount())

	// после сбора место снова одно на всех, первым его занимает A
	ps.Update(105050, 50, f.resolve(), nil, f.world.Pickups[0].Position)
	assert.Empty(t, f.world.Pickups)
	ps.Update(105100, 50, f.resolve(), nil, farAway)
	require.Len(t, f.world.Pickups, 1)
	assert.Equal(t, typesID("A"), f.world.Pickups[0].Owner)
}

func TestPassiveSlotUsesGlobalCount(t *testing.T) {
	f := newFixture(t, &defs.Catalog{
		Nodes: []defs.NodeDefinition{
			def("R", 0, 0, 0, true, defs.Global(
				defs.Set(defs.StatPowerGenerationAmount, 1),
				defs.Set(defs.StatPowerGenerationMaxAmount, 4),
			)),
			def("A", 3, 0, 1, true),
		},
		Edges: []defs.EdgeDefinition{edge("R", "A")},
	})
	ps := NewPickupSystem(f.world, f.dispatcher, f.rng, f.cfg.World)

	ps.Update(5000, 50, f.resolve(), nil, farAway)
	require.Len(t, f.world.Pickups, 2)
	// R занял слот 0, A кладёт свой сгусток во второй слот
	assert.InDelta(t, 0.625, f.world.Pickups[0].X, 1e-9)
	assert.InDelta(t, 3.125, f.world.Pickups[1].X, 1e-9)
	assert.InDelta(t, 0.625, f.world.Pickups[1].Y, 1e-9)
}
