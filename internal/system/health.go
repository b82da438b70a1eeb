// internal/system/health.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-node-defense/internal/component"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/entity"
	"go-node-defense/internal/stats"
	"go-node-defense/pkg/logger"
)

// HealthSystem отвечает за здоровье узлов: атаки врагов, регенерацию
// и лечение сборщиком.
type HealthSystem struct {
	world *entity.World
}

func NewHealthSystem(world *entity.World) *HealthSystem {
	return &HealthSystem{world: world}
}

// Clamp опускает здоровье каждого узла до вычисленного максимума.
func (s *HealthSystem) Clamp(result stats.Result) {
	for _, n := range s.world.Nodes {
		if limit := stats.MaxHealth(result, n); n.Health > limit {
			n.Health = limit
		}
	}
}

// Update применяет атаки врагов из снимка, затем лечит выжившие активные узлы.
func (s *HealthSystem) Update(now float64, result stats.Result, snapshot []*component.Enemy, collector component.Position) {
	for _, n := range s.world.Nodes {
		if !n.Active {
			continue
		}
		s.takeHits(now, n, result.Node(n.ID), snapshot)
	}

	for _, n := range s.world.Nodes {
		if !n.Active || n.Health <= 0 {
			continue
		}
		b := result.Node(n.ID)
		amount := b[defs.StatHealthRegenerationAmount]
		if amount > 0 && ready(now, n.LastRegenerationTime, b[defs.StatHealthRegenerationSpeed]) {
			n.Health = math.Min(n.Health+amount, b[defs.StatHealth])
			n.LastRegenerationTime = now
		}
	}

	s.collectorHeal(now, result, collector)
}

// takeHits суммирует урон всех готовых атаковать врагов, стоящих точно на
// узле. Урон проходит, только если у узла истёк интервал неуязвимости;
// атаковавшие враги при этом уходят на перезарядку.
func (s *HealthSystem) takeHits(now float64, n *component.Node, b defs.Bundle, snapshot []*component.Enemy) {
	var attackers []*component.Enemy
	for _, e := range snapshot {
		if e.Position == n.Position && ready(now, e.LastAttackDealtTime, e.AttackSpeed) {
			attackers = append(attackers, e)
		}
	}
	if len(attackers) == 0 || !ready(now, n.LastDamageTakenTime, b[defs.StatDamageIntakeCooldown]) {
		return
	}

	armor := b[defs.StatArmor]
	damage := 0.0
	for _, e := range attackers {
		damage += math.Max(e.AttackDamage-armor, 0)
		e.LastAttackDealtTime = now
	}
	n.Health -= damage
	n.LastDamageTakenTime = now

	logger.Component("health").WithFields(logrus.Fields{
		"node":      n.ID,
		"attackers": len(attackers),
		"damage":    damage,
		"health":    n.Health,
	}).Debug("node hit")
}

func (s *HealthSystem) collectorHeal(now float64, result stats.Result, collector component.Position) {
	g := result.Global
	if g[defs.StatCollectorHealAmount] <= 0 || !ready(now, s.world.LastCollectorHealTime, g[defs.StatCollectorAttackSpeed]) {
		return
	}
	area := collectorArea(collector, g[defs.StatCollectorSize])
	healed := 0
	for _, n := range s.world.Nodes {
		if !n.Active || n.Health <= 0 || !area.Contains(n.Position) {
			continue
		}
		b := result.Node(n.ID)
		n.Health = math.Min(n.Health+b[defs.StatCollectorHealAmount], b[defs.StatHealth])
		healed++
	}
	if healed > 0 {
		s.world.LastCollectorHealTime = now
	}
}
