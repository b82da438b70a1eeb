// internal/system/movement.go
package system

import (
	"math"

	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/entity"
	"go-node-defense/internal/graph"
	"go-node-defense/internal/types"
	"go-node-defense/internal/utils"
)

// MovementSystem ведёт врагов к их узлам-целям
type MovementSystem struct {
	world *entity.World
	rng   *utils.PRNGService
	cfg   config.WorldConfig
}

func NewMovementSystem(world *entity.World, rng *utils.PRNGService, cfg config.WorldConfig) *MovementSystem {
	return &MovementSystem{world: world, rng: rng, cfg: cfg}
}

// FindTarget выбирает случайный активный некорневой узел, а если таких
// нет, первый корень.
func FindTarget(nodes []*component.Node, edges []component.Edge, rng *utils.PRNGService) types.NodeID {
	var candidates []*component.Node
	for _, n := range nodes {
		if n.Active && !graph.IsRoot(n.ID, edges) {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) > 0 {
		return candidates[rng.Intn(len(candidates))].ID
	}
	if roots := graph.Roots(nodes, edges); len(roots) > 0 {
		return roots[0].ID
	}
	return ""
}

func (s *MovementSystem) Update(now float64) {
	for _, e := range s.world.Enemies {
		target := s.world.Node(e.Target)
		if target == nil || !target.Active {
			e.Target = FindTarget(s.world.Nodes, s.world.Edges, s.rng)
			target = s.world.Node(e.Target)
		}
		if target == nil {
			continue
		}
		s.step(now, e, target.Position)
	}
}

// step сдвигает врага к цели пропорционально прошедшему времени. У цели
// позиция совпадает с узлом точно: атака требует полного совпадения.
func (s *MovementSystem) step(now float64, e *component.Enemy, goal component.Position) {
	start := e.Position
	dist := start.DistanceTo(goal)
	t := 1.0
	if dist > 0 {
		t = math.Min(e.MovementSpeed*(now-e.LastMovementTime)/dist, 1)
	}
	next := utils.LerpPosition(start, goal, t, s.cfg.MovementEpsilon)
	snapped := next == goal

	if !snapped && e.Kind == component.EnemyWobbler {
		dir := goal.Sub(start).Normalized()
		offset := math.Sin(now*s.cfg.WobbleFrequency) * s.cfg.WobbleAmplitude
		next = next.Add(component.Position{X: -dir.Y, Y: dir.X}.Scale(offset))
	}

	if moved := next.Sub(start); moved.Length() > 0 {
		e.Rotation = utils.VectorAngleDegrees(moved)
	}
	e.Position = next
	e.LastMovementTime = now
}
