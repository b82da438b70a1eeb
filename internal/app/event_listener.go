// internal/app/event_listener.go
package app

import (
	"github.com/sirupsen/logrus"

	"go-node-defense/internal/event"
	"go-node-defense/pkg/logger"
)

// GameEventListener пишет игровые события в лог.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	entry := logger.Component("events").WithFields(logrus.Fields{
		"event": e.Type,
		"time":  e.Time,
		"power": l.game.World.Economy.Power,
	})
	switch e.Type {
	case event.NodeActivated, event.NodeDeactivated, event.NodeDestroyed:
		if id, ok := event.NodeEventData(e); ok {
			entry = entry.WithField("node", id)
		}
		entry.Info("node event")
	case event.EnemyKilled:
		if enemy, ok := event.EnemyEventData(e); ok {
			entry = entry.WithField("enemy", enemy.ID)
		}
		entry.Debug("enemy killed")
	case event.GameOver:
		entry.Warn("root destroyed, game over")
	case event.PickupCollected:
		entry.Trace("pickup collected")
	default:
		entry.WithField("data", e.Data).Debug("game event")
	}
}
