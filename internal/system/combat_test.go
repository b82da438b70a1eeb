package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-node-defense/internal/defs"
)

func turrets() *defs.Catalog {
	return &defs.Catalog{
		Nodes: []defs.NodeDefinition{
			def("R", 0, 0, 0, true, defs.Global(defs.Set(defs.StatBulletAttackDamage, 1))),
			def("A", 0, 1, 1, true),
			def("B", 1, 1, 1, true),
		},
		Edges: []defs.EdgeDefinition{edge("R", "A"), edge("R", "B")},
	}
}

func TestFiringSharesAmmoPoolInCatalogOrder(t *testing.T) {
	f := newFixture(t, turrets())
	f.world.Economy.Ammo = 2
	f.addEnemy(0.5, 0.5, 5)
	cs := NewCombatSystem(f.world)

	fired := cs.Update(2000, f.resolve(), f.snapshot())

	assert.Equal(t, 2, fired)
	assert.Equal(t, 0, f.world.Economy.Ammo)
	require.Len(t, f.world.Projectiles, 2)
	assert.Equal(t, f.world.Nodes[0].ID, f.world.Projectiles[0].Owner)
	assert.Equal(t, f.world.Nodes[1].ID, f.world.Projectiles[1].Owner)
	assert.Equal(t, 2000.0, f.world.Nodes[1].LastBulletShotTime)
	assert.Equal(t, 0.0, f.world.Nodes[2].LastBulletShotTime, "out of ammo")
}

func TestFiringCooldownAndRange(t *testing.T) {
	f := newFixture(t, turrets())
	// дальность по умолчанию 1.5: до R ровно 1.5, остальные дальше
	f.addEnemy(-1.5, 0, 5)
	cs := NewCombatSystem(f.world)

	assert.Equal(t, 0, cs.Update(2000, f.resolve(), f.snapshot()), "range is strict")

	f.world.Enemies[0].X = -1.4
	assert.Equal(t, 0, cs.Update(1999, f.resolve(), f.snapshot()), "cooldown")
	assert.Equal(t, 1, cs.Update(2000, f.resolve(), f.snapshot()))
	assert.Equal(t, 9, f.world.Economy.Ammo)
}

func TestFiringAimsAtNearestEnemy(t *testing.T) {
	f := newFixture(t, &defs.Catalog{Nodes: []defs.NodeDefinition{
		def("R", 0, 0, 0, true, defs.Global(defs.Set(defs.StatBulletAttackDamage, 2))),
	}})
	f.addEnemy(0, 1.2, 5)
	f.addEnemy(1, 0, 5)
	cs := NewCombatSystem(f.world)

	require.Equal(t, 1, cs.Update(2000, f.resolve(), f.snapshot()))
	p := f.world.Projectiles[0]
	// скорость снаряда по умолчанию 0.01 клетки/мс
	assert.InDelta(t, 0.01, p.Velocity.X, 1e-12)
	assert.InDelta(t, 0, p.Velocity.Y, 1e-12)
	assert.Equal(t, 2.0, p.Damage)
	assert.Equal(t, f.world.Nodes[0].Position, p.Position)
}

func TestNodesWithoutDamageDoNotFire(t *testing.T) {
	f := newFixture(t, &defs.Catalog{Nodes: []defs.NodeDefinition{def("R", 0, 0, 0, true)}})
	f.addEnemy(0.5, 0, 5)
	cs := NewCombatSystem(f.world)

	assert.Equal(t, 0, cs.Update(2000, f.resolve(), f.snapshot()))
	assert.Equal(t, 10, f.world.Economy.Ammo)
}
