// internal/system/combat.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-node-defense/internal/component"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/entity"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/utils"
	"go-node-defense/pkg/logger"
)

// CombatSystem управляет стрельбой узлов
type CombatSystem struct {
	world *entity.World
}

func NewCombatSystem(world *entity.World) *CombatSystem {
	return &CombatSystem{world: world}
}

// Update: узлы стреляют в порядке каталога, расходуя общий запас патронов.
// Узел, которому не хватило патронов, ждёт следующего тика.
func (s *CombatSystem) Update(now float64, result stats.Result, snapshot []*component.Enemy) int {
	fired := 0
	for _, n := range s.world.Nodes {
		if s.world.Economy.Ammo <= 0 {
			break
		}
		if !n.Active {
			continue
		}
		b := result.Node(n.ID)
		damage := b[defs.StatBulletAttackDamage]
		if damage == 0 || !ready(now, n.LastBulletShotTime, b[defs.StatBulletAttackSpeed]) {
			continue
		}
		target := nearestEnemy(n.Position, snapshot, b[defs.StatBulletAttackRange])
		if target == nil {
			continue
		}

		s.world.Projectiles = append(s.world.Projectiles, &component.Projectile{
			ID:       s.world.NewEntity(),
			Position: n.Position,
			Velocity: utils.SpeedVector(n.Position, target.Position, b[defs.StatBulletProjectileSpeed]),
			Damage:   damage,
			Owner:    n.ID,
		})
		s.world.Economy.Ammo--
		n.LastBulletShotTime = now
		fired++
	}
	if fired > 0 {
		logger.Component("combat").WithFields(logrus.Fields{
			"fired": fired,
			"ammo":  s.world.Economy.Ammo,
		}).Debug("nodes fired")
	}
	return fired
}

// nearestEnemy — ближайший враг строго внутри радиуса, при равенстве первый.
func nearestEnemy(from component.Position, enemies []*component.Enemy, radius float64) *component.Enemy {
	var best *component.Enemy
	bestDist := math.Inf(1)
	for _, e := range enemies {
		d := from.DistanceTo(e.Position)
		if d < radius && d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
