// internal/system/cascade.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-node-defense/internal/activation"
	"go-node-defense/internal/component"
	"go-node-defense/internal/entity"
	"go-node-defense/internal/event"
	"go-node-defense/internal/graph"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/types"
	"go-node-defense/internal/utils"
	"go-node-defense/pkg/logger"
)

// refundRadius — радиус окружности, по которой раскладывается возврат.
const refundRadius = 0.5

// CascadeSystem выключает разрушенные узлы вместе с потомками.
type CascadeSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	pickups         *PickupSystem
}

func NewCascadeSystem(world *entity.World, eventDispatcher *event.Dispatcher, pickups *PickupSystem) *CascadeSystem {
	return &CascadeSystem{world: world, eventDispatcher: eventDispatcher, pickups: pickups}
}

// Update находит активные узлы с нулевым здоровьем, выключает их и всех
// активных потомков. Каждый выключенный узел оставляет floor(cost/3)
// сгустков. Возвращает true, если хоть один узел выключился.
func (s *CascadeSystem) Update(now float64, result stats.Result) bool {
	var dead []types.NodeID
	rootDied := false
	for _, n := range s.world.Nodes {
		if n.Active && n.Health <= 0 {
			dead = append(dead, n.ID)
			if graph.IsRoot(n.ID, s.world.Edges) {
				rootDied = true
			}
			s.eventDispatcher.Dispatch(event.Event{Type: event.NodeDestroyed, Time: now, Data: n.ID})
		}
	}
	if len(dead) == 0 {
		return false
	}

	off := activation.Cascade(dead, s.world.Nodes, s.world.Edges)
	for _, id := range off {
		n := s.world.Node(id)
		s.dropRefund(n, stats.Cost(result, n))
		n.Active = false
		s.eventDispatcher.Dispatch(event.Event{Type: event.NodeDeactivated, Time: now, Data: id})
	}

	logger.Component("cascade").WithFields(logrus.Fields{
		"dead":        dead,
		"deactivated": off,
	}).Info("nodes destroyed")

	if rootDied {
		s.world.GameOver = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Time: now})
	}
	return len(off) > 0
}

func (s *CascadeSystem) dropRefund(n *component.Node, cost int) {
	count := cost / 3
	for i := 0; i < count; i++ {
		pos := n.Position.Add(utils.DistributePointOnCircle(count, i, refundRadius))
		s.pickups.Drop(pos, 1, component.PickupRefund, n.ID)
	}
}
