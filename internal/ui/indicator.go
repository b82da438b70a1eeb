// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
)

// StateIndicator — кружок в углу экрана, цвет показывает состояние волны.
// При смене состояния кратко пульсирует.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	lastState  component.WaveState
	lastChange time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, state component.WaveState) {
	if state != i.lastState {
		i.lastState = state
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	var stateColor color.Color = config.IdleStateColor
	if state == component.WaveOngoing {
		stateColor = config.WaveStateColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}
