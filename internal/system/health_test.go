package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-node-defense/internal/defs"
)

func armoredRoot() *defs.Catalog {
	return &defs.Catalog{Nodes: []defs.NodeDefinition{
		def("R", 0, 0, 0, true,
			defs.Scoped(defs.Select(defs.SelectSelf), defs.Add(defs.StatHealth, 9)),
			defs.Global(defs.Add(defs.StatArmor, 1)),
		),
	}}
}

func TestEnemyAttacksRespectArmorAndCooldowns(t *testing.T) {
	f := newFixture(t, armoredRoot())
	hs := NewHealthSystem(f.world)
	root := f.world.Nodes[0]
	root.Health = 10

	strong := f.addEnemy(0, 0, 1)
	strong.AttackDamage = 3
	weak := f.addEnemy(0, 0, 1)
	weak.AttackDamage = 1

	r := f.resolve()
	hs.Update(2000, r, f.snapshot(), farAway)
	assert.Equal(t, 8.0, root.Health, "(3-1) + max(1-1, 0)")
	assert.Equal(t, 2000.0, strong.LastAttackDealtTime)
	assert.Equal(t, 2000.0, weak.LastAttackDealtTime)

	hs.Update(2500, r, f.snapshot(), farAway)
	assert.Equal(t, 8.0, root.Health, "attackers on cooldown")

	hs.Update(4000, r, f.snapshot(), farAway)
	assert.Equal(t, 6.0, root.Health)
}

func TestIntakeCooldownBlocksDamage(t *testing.T) {
	f := newFixture(t, armoredRoot())
	hs := NewHealthSystem(f.world)
	root := f.world.Nodes[0]
	root.Health = 10
	root.LastDamageTakenTime = 1500

	e := f.addEnemy(0, 0, 1)
	e.AttackDamage = 5

	hs.Update(2000, f.resolve(), f.snapshot(), farAway)
	assert.Equal(t, 10.0, root.Health)
	assert.Equal(t, 0.0, e.LastAttackDealtTime, "blocked attack keeps the attacker ready")

	hs.Update(2500, f.resolve(), f.snapshot(), farAway)
	assert.Equal(t, 6.0, root.Health)
}

func TestAttackRequiresExactColocation(t *testing.T) {
	f := newFixture(t, armoredRoot())
	hs := NewHealthSystem(f.world)
	root := f.world.Nodes[0]
	root.Health = 10

	e := f.addEnemy(0.01, 0, 1)
	e.AttackDamage = 5

	hs.Update(2000, f.resolve(), f.snapshot(), farAway)
	assert.Equal(t, 10.0, root.Health)
}

func TestRegenerationIsClampedToMax(t *testing.T) {
	f := newFixture(t, &defs.Catalog{Nodes: []defs.NodeDefinition{
		def("R", 0, 0, 0, true, defs.Scoped(defs.Select(defs.SelectSelf),
			defs.Add(defs.StatHealth, 9),
			defs.Add(defs.StatHealthRegenerationAmount, 2),
		)),
	}})
	hs := NewHealthSystem(f.world)
	root := f.world.Nodes[0]
	root.Health = 5
	r := f.resolve()

	hs.Update(4000, r, nil, farAway)
	assert.Equal(t, 7.0, root.Health)
	hs.Update(5000, r, nil, farAway)
	assert.Equal(t, 7.0, root.Health)
	hs.Update(8000, r, nil, farAway)
	assert.Equal(t, 9.0, root.Health)
	hs.Update(12000, r, nil, farAway)
	assert.Equal(t, 10.0, root.Health)
}

func TestCollectorHeal(t *testing.T) {
	f := newFixture(t, &defs.Catalog{Nodes: []defs.NodeDefinition{
		def("R", 0, 0, 0, true,
			defs.Scoped(defs.Select(defs.SelectSelf), defs.Add(defs.StatHealth, 9)),
			defs.Global(defs.Add(defs.StatCollectorHealAmount, 1)),
		),
	}})
	hs := NewHealthSystem(f.world)
	root := f.world.Nodes[0]
	root.Health = 5
	r := f.resolve()

	hs.Update(1000, r, nil, root.Position)
	assert.Equal(t, 5.0, root.Health, "collector cadence not reached")
	hs.Update(3000, r, nil, farAway)
	assert.Equal(t, 5.0, root.Health, "node outside the collector area")
	hs.Update(3000, r, nil, root.Position)
	assert.Equal(t, 6.0, root.Health)
	hs.Update(4000, r, nil, root.Position)
	assert.Equal(t, 6.0, root.Health)
}

func TestClamp(t *testing.T) {
	f := newFixture(t, armoredRoot())
	hs := NewHealthSystem(f.world)
	root := f.world.Nodes[0]
	root.Health = 25

	hs.Clamp(f.resolve())
	assert.Equal(t, 10.0, root.Health)
}

func TestDeadNodesDoNotHeal(t *testing.T) {
	f := newFixture(t, &defs.Catalog{Nodes: []defs.NodeDefinition{
		def("R", 0, 0, 0, true, defs.Scoped(defs.Select(defs.SelectSelf),
			defs.Add(defs.StatHealth, 9),
			defs.Add(defs.StatHealthRegenerationAmount, 2),
		)),
	}})
	hs := NewHealthSystem(f.world)
	root := f.world.Nodes[0]
	root.Health = 0

	hs.Update(4000, f.resolve(), nil, farAway)
	assert.Equal(t, 0.0, root.Health)
}
