// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"go-node-defense/internal/activation"
	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/entity"
	"go-node-defense/internal/event"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/system"
	"go-node-defense/internal/types"
	"go-node-defense/internal/utils"
	"go-node-defense/pkg/logger"
)

// Tick — один шаг симуляции. ElapsedMs — абсолютное время симуляции.
type Tick struct {
	ID        uint64
	DeltaMs   float64
	ElapsedMs float64
}

// Game владеет миром и системами и выполняет тик в фиксированном порядке
// фаз. Не предназначен для использования из нескольких горутин.
type Game struct {
	catalog *defs.Catalog
	initial defs.Bundle
	cfg     *config.SimConfig

	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	resolver        *stats.Resolver
	current         stats.Result

	HealthSystem     *system.HealthSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	PickupSystem     *system.PickupSystem
	CascadeSystem    *system.CascadeSystem
}

// NewGame создаёт сессию из проверенного каталога.
func NewGame(catalog *defs.Catalog, cfg *config.SimConfig) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	initial, err := catalog.Initial()
	if err != nil {
		return nil, fmt.Errorf("failed to build initial stats: %w", err)
	}
	g := &Game{catalog: catalog, initial: initial, cfg: cfg}
	g.init(0)
	return g, nil
}

func (g *Game) init(now float64) {
	g.World = entity.NewWorld(g.catalog, g.cfg.Economy, now)
	g.EventDispatcher = event.NewDispatcher()
	g.Rng = utils.NewPRNGService(g.cfg.Seed)
	g.resolver = stats.NewResolver(g.World.Edges, g.initial)

	g.HealthSystem = system.NewHealthSystem(g.World)
	g.CombatSystem = system.NewCombatSystem(g.World)
	g.ProjectileSystem = system.NewProjectileSystem(g.World, g.EventDispatcher, g.cfg.World)
	g.MovementSystem = system.NewMovementSystem(g.World, g.Rng, g.cfg.World)
	g.WaveSystem = system.NewWaveSystem(g.World, g.EventDispatcher, g.Rng, g.cfg)
	g.PickupSystem = system.NewPickupSystem(g.World, g.EventDispatcher, g.Rng, g.cfg.World)
	g.CascadeSystem = system.NewCascadeSystem(g.World, g.EventDispatcher, g.PickupSystem)

	g.EventDispatcher.SubscribeAll(&GameEventListener{game: g},
		event.EnemyKilled, event.NodeActivated, event.NodeDeactivated, event.NodeDestroyed,
		event.WaveStarted, event.PickupCollected, event.AmmoBought, event.GameOver)

	g.current = g.resolver.Resolve(g.World.Nodes)
	for _, n := range g.World.Nodes {
		if n.Active {
			n.Health = stats.MaxHealth(g.current, n)
		}
	}
}

// Update выполняет один тик. После разрушения корня ничего не делает.
func (g *Game) Update(tick Tick, collector component.Position) {
	if g.World.GameOver {
		return
	}
	now := tick.ElapsedMs
	deltaTime := tick.DeltaMs
	if g.cfg.MaxDeltaMs > 0 && deltaTime > g.cfg.MaxDeltaMs {
		deltaTime = g.cfg.MaxDeltaMs
	}
	g.World.GameTime = now

	// 1. характеристики и ограничение здоровья
	g.refreshStats()

	// фазы 2-4 видят врагов на начало тика
	snapshot := make([]*component.Enemy, len(g.World.Enemies))
	copy(snapshot, g.World.Enemies)

	// 2. здоровье узлов
	g.HealthSystem.Update(now, g.current, snapshot, collector)
	// 3. стрельба
	g.CombatSystem.Update(now, g.current, snapshot)
	// 4. снаряды и удар сборщика
	killed := g.ProjectileSystem.Update(now, deltaTime, g.current, snapshot, collector)
	// 5. движение и появление врагов
	g.WaveSystem.Update(now)
	g.MovementSystem.Update(now)
	g.WaveSystem.SpawnUpTo(now)
	// 6. сгустки энергии
	g.PickupSystem.Update(now, deltaTime, g.current, killed, collector)
	// 7. каскад
	if g.CascadeSystem.Update(now, g.current) {
		g.refreshStats()
	}

	logger.Component("game").WithFields(logrus.Fields{
		"tick":        tick.ID,
		"time":        now,
		"enemies":     len(g.World.Enemies),
		"projectiles": len(g.World.Projectiles),
		"pickups":     len(g.World.Pickups),
		"power":       g.World.Economy.Power,
		"ammo":        g.World.Economy.Ammo,
	}).Trace("tick")
}

func (g *Game) refreshStats() {
	g.current = g.resolver.Resolve(g.World.Nodes)
	g.HealthSystem.Clamp(g.current)
}

// Toggle включает или выключает узел. Включение списывает цену, выключение
// возвращает полную цену каждого выключенного узла (не выше MaxPower).
// Недоступное действие ничего не меняет и возвращает false.
func (g *Game) Toggle(id types.NodeID) bool {
	if g.World.GameOver {
		return false
	}
	before := g.resolver.Resolve(g.World.Nodes)
	eco := &g.World.Economy
	outcome := activation.Toggle(id, g.World.Nodes, g.resolver, eco.Power, before)
	if !outcome.Changed {
		return false
	}
	activation.Apply(outcome, g.World.Nodes)
	now := g.World.GameTime

	if outcome.Activated != "" {
		eco.Power -= float64(outcome.Cost)
		g.refreshStats()
		g.EventDispatcher.Dispatch(event.Event{Type: event.NodeActivated, Time: now, Data: outcome.Activated})
		return true
	}

	refund := 0
	for _, nid := range outcome.Deactivated {
		refund += stats.Cost(before, g.World.Node(nid))
	}
	g.refreshStats()
	eco.Power = math.Min(eco.Power+float64(refund), g.current.Global[defs.StatMaxPower])
	for _, nid := range outcome.Deactivated {
		g.EventDispatcher.Dispatch(event.Event{Type: event.NodeDeactivated, Time: now, Data: nid})
	}
	return true
}

// BuyAmmo покупает столько патронов, сколько помещается и хватает энергии.
// Возвращает число купленных патронов.
func (g *Game) BuyAmmo() int {
	if g.World.GameOver {
		return 0
	}
	gl := g.current.Global
	eco := &g.World.Economy
	missing := int(gl[defs.StatBulletMaxAmmo]) - eco.Ammo
	if missing <= 0 {
		return 0
	}
	price := gl[defs.StatBulletAmmoPrice]
	bought := missing
	if price > 0 {
		bought = int(math.Min(float64(missing), math.Floor(eco.Power/price)))
		if bought <= 0 {
			return 0
		}
		eco.Power -= float64(bought) * price
	}
	eco.Ammo += bought
	g.EventDispatcher.Dispatch(event.Event{Type: event.AmmoBought, Time: g.World.GameTime, Data: bought})
	return bought
}

// Reset возвращает сессию к начальному состоянию каталога.
func (g *Game) Reset() {
	g.init(g.World.GameTime)
	logger.Component("game").Info("game reset")
}

// Preview — разность характеристик при гипотетическом включении узла.
func (g *Game) Preview(id types.NodeID) stats.Result {
	return g.resolver.Preview(id, g.World.Nodes, g.current)
}

// Cost — текущая цена включения узла.
func (g *Game) Cost(id types.NodeID) int {
	n := g.World.Node(id)
	if n == nil {
		return 0
	}
	return stats.Cost(g.current, n)
}

// Affordable сообщает, что узел можно включить прямо сейчас.
func (g *Game) Affordable(id types.NodeID) bool {
	n := g.World.Node(id)
	if n == nil || n.Active {
		return false
	}
	return g.resolver.Affordable(n, g.World.Nodes, g.current, g.World.Economy.Power)
}

func (g *Game) Stats() stats.Result { return g.current }
func (g *Game) Nodes() []*component.Node { return g.World.Nodes }
func (g *Game) Edges() []component.Edge { return g.World.Edges }
func (g *Game) Enemies() []*component.Enemy { return g.World.Enemies }
func (g *Game) Projectiles() []*component.Projectile { return g.World.Projectiles }
func (g *Game) Pickups() []*component.Pickup { return g.World.Pickups }
func (g *Game) Wave() component.Wave { return g.World.Wave }
func (g *Game) Power() float64 { return g.World.Economy.Power }
func (g *Game) Ammo() int { return g.World.Economy.Ammo }
func (g *Game) IsGameOver() bool { return g.World.GameOver }
func (g *Game) Time() float64 { return g.World.GameTime }
func (g *Game) Config() *config.SimConfig { return g.cfg }

// WaveState — состояние волны на текущее время симуляции.
func (g *Game) WaveState() component.WaveState {
	return g.WaveSystem.State(g.World.GameTime)
}
