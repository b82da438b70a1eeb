// internal/system/wave.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/entity"
	"go-node-defense/internal/event"
	"go-node-defense/internal/utils"
	"go-node-defense/pkg/logger"
)

// WaveSystem — контроллер волн: окно атаки, затем передышка, затем
// следующая волна. Состояние производное от времени, хранится только
// номер волны и время её начала.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	wave            config.WaveConfig
	enemy           config.EnemyConfig
	spawnMargin     float64
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, cfg *config.SimConfig) *WaveSystem {
	return &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		wave:            cfg.Wave,
		enemy:           cfg.Enemy,
		spawnMargin:     cfg.World.SpawnMargin,
	}
}

func (s *WaveSystem) elapsed(now float64) float64 {
	return now - s.world.Wave.StartTime
}

// State — ongoing в течение окна атаки (включая границу), затем idle.
func (s *WaveSystem) State(now float64) component.WaveState {
	if s.elapsed(now) <= s.wave.AttackDurationMs {
		return component.WaveOngoing
	}
	return component.WaveIdle
}

// Update переходит к следующей волне, когда закончилась передышка.
func (s *WaveSystem) Update(now float64) bool {
	if s.elapsed(now) < s.wave.AttackDurationMs+s.wave.GraceDurationMs {
		return false
	}
	s.world.Wave.Number++
	s.world.Wave.StartTime = now
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Time: now, Data: s.world.Wave.Number})
	logger.Component("wave").WithField("wave", s.world.Wave.Number).Info("wave started")
	return true
}

// MaxEnemies — предел одновременных врагов для текущей волны.
func (s *WaveSystem) MaxEnemies() int {
	return s.wave.BaseMaxEnemies + s.wave.MaxEnemiesPerWave*(s.world.Wave.Number-1)
}

// TargetEnemyCount растёт от 1 до MaxEnemies за окно атаки; в передышке 0.
func (s *WaveSystem) TargetEnemyCount(now float64) int {
	if s.State(now) == component.WaveIdle {
		return 0
	}
	limit := s.MaxEnemies()
	if s.wave.AttackDurationMs <= 0 {
		return limit
	}
	count := 1 + int(math.Floor(float64(limit-1)*s.elapsed(now)/s.wave.AttackDurationMs))
	if count > limit {
		count = limit
	}
	return count
}

// SpawnArea — квадрат вокруг начала координат, покрывающий самый дальний
// узел с запасом.
func (s *WaveSystem) SpawnArea() component.Area {
	furthest := 0.0
	for _, n := range s.world.Nodes {
		furthest = math.Max(furthest, math.Max(math.Abs(n.X), math.Abs(n.Y)))
	}
	half := furthest + s.spawnMargin
	return component.Area{X: -half, Y: -half, Width: 2 * half, Height: 2 * half}
}

// SpawnUpTo создаёт врагов, пока волна идёт и их меньше целевого числа.
func (s *WaveSystem) SpawnUpTo(now float64) int {
	spawned := 0
	for len(s.world.Enemies) < s.TargetEnemyCount(now) {
		s.Spawn(now)
		spawned++
	}
	if spawned > 0 {
		logger.Component("wave").WithFields(logrus.Fields{
			"wave":    s.world.Wave.Number,
			"spawned": spawned,
			"enemies": len(s.world.Enemies),
		}).Debug("enemies spawned")
	}
	return spawned
}

// Spawn создаёт врага, усиленного по номеру волны, на границе области появления.
func (s *WaveSystem) Spawn(now float64) *component.Enemy {
	number := float64(s.world.Wave.Number)
	health := 1 + math.Ceil(number/3)
	e := &component.Enemy{
		ID:               s.world.NewEntity(),
		Position:         utils.RandomPositionOnEdge(s.SpawnArea(), s.rng),
		Kind:             component.EnemyStraight,
		Size:             s.enemy.Size,
		MovementSpeed:    s.enemy.StraightSpeed,
		AttackDamage:     1 + math.Floor(number/3),
		AttackSpeed:      s.enemy.AttackSpeed,
		Health:           health,
		MaxHealth:        health,
		LastMovementTime: now,
		Target:           FindTarget(s.world.Nodes, s.world.Edges, s.rng),
	}
	if s.rng.Chance(s.enemy.WobblerChance) {
		e.Kind = component.EnemyWobbler
		e.MovementSpeed = s.enemy.WobblerSpeed
	}
	s.world.Enemies = append(s.world.Enemies, e)
	return e
}
