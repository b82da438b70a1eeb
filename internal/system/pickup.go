// internal/system/pickup.go
package system

import (
	"math"

	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/entity"
	"go-node-defense/internal/event"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/types"
	"go-node-defense/internal/utils"
)

// passiveOffset смещает пассивные сгустки от центра узла.
var passiveOffset = component.Position{X: 0.125, Y: 0.125}

// PickupSystem создаёт сгустки энергии, притягивает их к сборщику и
// превращает захваченные в power.
type PickupSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	cfg             config.WorldConfig
}

func NewPickupSystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, cfg config.WorldConfig) *PickupSystem {
	return &PickupSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		cfg:             cfg,
	}
}

func (s *PickupSystem) Update(now, deltaTime float64, result stats.Result, killed []*component.Enemy, collector component.Position) {
	for _, e := range killed {
		s.DropForKill(e, result.Global)
	}
	s.generate(now, result)
	s.attract(deltaTime, result.Global, collector)
	s.capture(now, result.Global, collector)
}

// DropForKill кладёт от 1 до PowerPerEnemy сгустков и ещё один с шансом
// AdditionalPowerPerEnemyChance.
func (s *PickupSystem) DropForKill(e *component.Enemy, g defs.Bundle) int {
	quantity := s.rng.IntRange(1, int(g[defs.StatPowerPerEnemy]))
	if s.rng.Chance(g[defs.StatAdditionalPowerPerEnemyChance]) {
		quantity++
	}
	for i := 0; i < quantity; i++ {
		offset := utils.DistributePointOnCircle(quantity, i, e.Size/2)
		s.Drop(e.Position.Add(offset), 1, component.PickupKillDrop, "")
	}
	return quantity
}

// Drop добавляет сгусток в мир.
func (s *PickupSystem) Drop(pos component.Position, value float64, source component.PickupSource, owner types.NodeID) *component.Pickup {
	p := &component.Pickup{
		ID:       s.world.NewEntity(),
		Position: pos,
		Value:    value,
		Source:   source,
		Owner:    owner,
	}
	s.world.Pickups = append(s.world.Pickups, p)
	return p
}

func (s *PickupSystem) generate(now float64, result stats.Result) {
	for _, n := range s.world.Nodes {
		if !n.Active {
			continue
		}
		b := result.Node(n.ID)
		amount := b[defs.StatPowerGenerationAmount]
		limit := int(b[defs.StatPowerGenerationMaxAmount])
		if amount == 0 || !ready(now, n.LastPowerGeneratedTime, b[defs.StatPowerGenerationSpeed]) {
			continue
		}
		// лимит общий для всех узлов: считаются все пассивные сгустки
		count := s.world.PassivePickupCount()
		if count >= limit {
			continue
		}
		slot := utils.DistributePointOnCircle(limit, count, s.cfg.PassivePickupRadius)
		s.Drop(slot.Add(n.Position).Add(passiveOffset), amount, component.PickupPassive, n.ID)
		n.LastPowerGeneratedTime = now
	}
}

// attract тянет сгустки внутри радиуса притяжения: у границы скорость
// нулевая, вплотную к сборщику равна MaxPickupPull.
func (s *PickupSystem) attract(deltaTime float64, g defs.Bundle, collector component.Position) {
	radius := g[defs.StatPickupAttractionRadius]
	for _, p := range s.world.Pickups {
		d := p.DistanceTo(collector)
		if d >= radius || d == 0 {
			continue
		}
		ratio := d / radius
		step := utils.Lerp(s.cfg.MaxPickupPull, 0, ratio*ratio) * deltaTime
		if step >= d {
			p.Position = collector
			continue
		}
		p.Position = p.Add(collector.Sub(p.Position).Normalized().Scale(step))
	}
}

func (s *PickupSystem) capture(now float64, g defs.Bundle, collector component.Position) {
	kept := s.world.Pickups[:0]
	for _, p := range s.world.Pickups {
		if p.DistanceTo(collector) >= s.cfg.PickupCaptureRadius {
			kept = append(kept, p)
			continue
		}
		eco := &s.world.Economy
		eco.Power = math.Min(eco.Power+p.Value*g[defs.StatPowerMultiplier], g[defs.StatMaxPower])
		s.eventDispatcher.Dispatch(event.Event{Type: event.PickupCollected, Time: now, Data: p})
	}
	for i := len(kept); i < len(s.world.Pickups); i++ {
		s.world.Pickups[i] = nil
	}
	s.world.Pickups = kept
}
