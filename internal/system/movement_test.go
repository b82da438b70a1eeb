package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-node-defense/internal/component"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/types"
)

func smallTree() *defs.Catalog {
	return &defs.Catalog{
		Nodes: []defs.NodeDefinition{
			def("R", 0, 0, 0, true),
			def("A", 2, 0, 1, false),
		},
		Edges: []defs.EdgeDefinition{edge("R", "A")},
	}
}

func TestFindTarget(t *testing.T) {
	f := newFixture(t, smallTree())
	assert.Equal(t, types.NodeID("R"), FindTarget(f.world.Nodes, f.world.Edges, f.rng), "only the root is active")

	f.world.Nodes[1].Active = true
	assert.Equal(t, types.NodeID("A"), FindTarget(f.world.Nodes, f.world.Edges, f.rng))
}

func TestEnemyMovesProportionallyToElapsedTime(t *testing.T) {
	f := newFixture(t, smallTree())
	ms := NewMovementSystem(f.world, f.rng, f.cfg.World)
	e := f.addEnemy(-10, 0, 1)
	e.MovementSpeed = 0.001
	e.Target = "R"

	ms.Update(1000)
	assert.InDelta(t, -9, e.X, 1e-9)
	assert.InDelta(t, 0, e.Y, 1e-9)
	assert.InDelta(t, 0, e.Rotation, 1e-9)
	assert.Equal(t, 1000.0, e.LastMovementTime)
}

func TestEnemySnapsOntoTarget(t *testing.T) {
	f := newFixture(t, smallTree())
	ms := NewMovementSystem(f.world, f.rng, f.cfg.World)

	near := f.addEnemy(0.01, 0, 1)
	near.Target = "R"
	overshoot := f.addEnemy(0, 1, 1)
	overshoot.Target = "R"
	overshoot.MovementSpeed = 1
	overshoot.Kind = component.EnemyWobbler

	ms.Update(1000)
	assert.Equal(t, component.Position{}, near.Position)
	assert.Equal(t, component.Position{}, overshoot.Position, "no wobble once snapped")
}

func TestInactiveTargetIsReplaced(t *testing.T) {
	f := newFixture(t, smallTree())
	ms := NewMovementSystem(f.world, f.rng, f.cfg.World)
	e := f.addEnemy(5, 0, 1)
	e.MovementSpeed = 0.001
	e.Target = "A" // A выключен

	ms.Update(1000)
	assert.Equal(t, types.NodeID("R"), e.Target)
	assert.InDelta(t, 4, e.X, 1e-9)
	assert.InDelta(t, 180, e.Rotation, 1e-9)
}

func TestWobblerDriftsSideways(t *testing.T) {
	f := newFixture(t, smallTree())
	ms := NewMovementSystem(f.world, f.rng, f.cfg.World)
	e := f.addEnemy(-10, 0, 1)
	e.Kind = component.EnemyWobbler
	e.MovementSpeed = 0.001
	e.Target = "R"

	ms.Update(1000)
	assert.InDelta(t, -9, e.X, 1e-9)
	assert.NotEqual(t, 0.0, e.Y)
	assert.LessOrEqual(t, e.Y, f.cfg.World.WobbleAmplitude)
}
