// internal/system/projectile.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/entity"
	"go-node-defense/internal/event"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/types"
	"go-node-defense/pkg/logger"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	cfg             config.WorldConfig
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher, cfg config.WorldConfig) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
	}
}

// Update двигает снаряды, собирает урон по врагам из снимка, добавляет удар
// сборщика и удаляет погибших. Урон суммируется до применения, поэтому
// порядок попаданий не влияет на результат. Возвращает убитых врагов.
func (s *ProjectileSystem) Update(now, deltaTime float64, result stats.Result, snapshot []*component.Enemy, collector component.Position) []*component.Enemy {
	damage := make(map[types.EntityID]float64)

	kept := s.world.Projectiles[:0]
	for _, p := range s.world.Projectiles {
		p.X += p.Velocity.X * deltaTime
		p.Y += p.Velocity.Y * deltaTime
		if math.Abs(p.X) > s.cfg.BoundsHalfSize || math.Abs(p.Y) > s.cfg.BoundsHalfSize {
			continue
		}
		if hit := s.firstHit(p, snapshot); hit != nil {
			damage[hit.ID] += p.Damage
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(s.world.Projectiles); i++ {
		s.world.Projectiles[i] = nil
	}
	s.world.Projectiles = kept

	s.collectorStrike(now, result.Global, snapshot, collector, damage)

	for _, e := range snapshot {
		if d, ok := damage[e.ID]; ok {
			e.Health -= d
		}
	}

	killed := s.world.RemoveDeadEnemies()
	for _, e := range killed {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Time: now, Data: e})
	}
	if len(killed) > 0 {
		logger.Component("projectile").WithFields(logrus.Fields{
			"killed":    len(killed),
			"remaining": len(s.world.Enemies),
		}).Debug("enemies killed")
	}
	return killed
}

func (s *ProjectileSystem) firstHit(p *component.Projectile, snapshot []*component.Enemy) *component.Enemy {
	for _, e := range snapshot {
		if overlaps(p.Position, s.cfg.ProjectileHitbox, e) {
			return e
		}
	}
	return nil
}

// collectorStrike бьёт всех врагов в области сборщика. Перезарядка
// начинается только после удара хотя бы по одному врагу.
func (s *ProjectileSystem) collectorStrike(now float64, g defs.Bundle, snapshot []*component.Enemy, collector component.Position, damage map[types.EntityID]float64) {
	strike := g[defs.StatCollectorAttackDamage]
	if strike <= 0 || !ready(now, s.world.LastCollectorStrikeTime, g[defs.StatCollectorAttackSpeed]) {
		return
	}
	area := collectorArea(collector, g[defs.StatCollectorSize])
	hit := false
	for _, e := range snapshot {
		if area.Contains(e.Position) {
			damage[e.ID] += strike
			hit = true
		}
	}
	if hit {
		s.world.LastCollectorStrikeTime = now
	}
}
