// internal/ui/camera.go
package ui

import (
	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
)

// WorldToScreen переводит клетки сетки в пиксели; (0,0) — центр экрана.
func WorldToScreen(p component.Position) (float32, float32) {
	return float32(config.ScreenWidth/2 + p.X*config.GridScale),
		float32(config.ScreenHeight/2 + p.Y*config.GridScale)
}

// ScreenToWorld — обратное преобразование для курсора.
func ScreenToWorld(x, y int) component.Position {
	return component.Position{
		X: (float64(x) - config.ScreenWidth/2) / config.GridScale,
		Y: (float64(y) - config.ScreenHeight/2) / config.GridScale,
	}
}
