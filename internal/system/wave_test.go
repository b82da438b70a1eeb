package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-node-defense/internal/component"
	"go-node-defense/internal/event"
)

func TestWaveStateAndTargetCount(t *testing.T) {
	f := newFixture(t, smallTree())
	ws := NewWaveSystem(f.world, f.dispatcher, f.rng, f.cfg)

	assert.Equal(t, component.WaveOngoing, ws.State(0))
	assert.Equal(t, component.WaveOngoing, ws.State(30000))
	assert.Equal(t, component.WaveIdle, ws.State(30001))

	assert.Equal(t, 3, ws.MaxEnemies())
	assert.Equal(t, 1, ws.TargetEnemyCount(0))
	assert.Equal(t, 2, ws.TargetEnemyCount(15000))
	assert.Equal(t, 3, ws.TargetEnemyCount(30000))
	assert.Equal(t, 0, ws.TargetEnemyCount(35000))
}

func TestWaveAdvancesAfterGrace(t *testing.T) {
	f := newFixture(t, smallTree())
	ws := NewWaveSystem(f.world, f.dispatcher, f.rng, f.cfg)

	assert.False(t, ws.Update(39999))
	assert.Equal(t, 1, f.world.Wave.Number)

	assert.True(t, ws.Update(40000))
	assert.Equal(t, component.Wave{Number: 2, StartTime: 40000}, f.world.Wave)
	assert.Equal(t, 5, ws.MaxEnemies())
	assert.Equal(t, component.WaveOngoing, ws.State(40000))
	assert.Equal(t, 1, f.count(event.WaveStarted))
}

func TestSpawnScalesWithWave(t *testing.T) {
	tests := []struct {
		wave           int
		damage, health float64
	}{
		{1, 1, 2},
		{3, 2, 2},
		{4, 2, 3},
		{7, 3, 4},
	}
	for _, tt := range tests {
		f := newFixture(t, smallTree())
		ws := NewWaveSystem(f.world, f.dispatcher, f.rng, f.cfg)
		f.world.Wave.Number = tt.wave

		e := ws.Spawn(0)
		assert.Equal(t, tt.damage, e.AttackDamage, "wave %d", tt.wave)
		assert.Equal(t, tt.health, e.Health, "wave %d", tt.wave)
		assert.Equal(t, e.Health, e.MaxHealth)
	}
}

func TestSpawnOnEdgeOfSpawnArea(t *testing.T) {
	f := newFixture(t, smallTree())
	ws := NewWaveSystem(f.world, f.dispatcher, f.rng, f.cfg)

	area := ws.SpawnArea()
	assert.Equal(t, component.Area{X: -4, Y: -4, Width: 8, Height: 8}, area, "furthest node at 2, margin 2")

	for i := 0; i < 20; i++ {
		e := ws.Spawn(0)
		onEdge := math.Abs(math.Abs(e.X)-4) < 1e-9 || math.Abs(math.Abs(e.Y)-4) < 1e-9
		assert.True(t, onEdge, "%v", e.Position)
		assert.True(t, area.Contains(e.Position))
		assert.Equal(t, "R", string(e.Target))
		if e.Kind == component.EnemyWobbler {
			assert.Equal(t, f.cfg.Enemy.WobblerSpeed, e.MovementSpeed)
		} else {
			assert.Equal(t, f.cfg.Enemy.StraightSpeed, e.MovementSpeed)
		}
	}
}

func TestSpawnUpToTargetCount(t *testing.T) {
	f := newFixture(t, smallTree())
	ws := NewWaveSystem(f.world, f.dispatcher, f.rng, f.cfg)

	require.Equal(t, 1, ws.SpawnUpTo(0))
	assert.Equal(t, 0, ws.SpawnUpTo(100))
	assert.Equal(t, 2, ws.SpawnUpTo(30000))
	assert.Len(t, f.world.Enemies, 3)
	assert.Equal(t, 0, ws.SpawnUpTo(35000), "idle")
}
