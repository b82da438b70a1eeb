// internal/ui/meter.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-node-defense/internal/config"
)

const (
	meterWidth  = 220
	meterHeight = 14
)

// Meter — горизонтальная полоса «значение / максимум» с подписью.
type Meter struct {
	X, Y     float32
	Label    string
	Fill     color.Color
	fontFace font.Face
}

func NewMeter(x, y float32, label string, fill color.Color, face font.Face) *Meter {
	return &Meter{X: x, Y: y, Label: label, Fill: fill, fontFace: face}
}

// Draw рисует полосу, заполненную на value/max.
func (m *Meter) Draw(screen *ebiten.Image, value, limit float64) {
	ratio := 0.0
	if limit > 0 {
		ratio = value / limit
	}
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen, m.X, m.Y, meterWidth, meterHeight, color.RGBA{40, 40, 50, 255}, false)
	vector.DrawFilledRect(screen, m.X, m.Y, float32(meterWidth*ratio), meterHeight, m.Fill, false)
	vector.StrokeRect(screen, m.X, m.Y, meterWidth, meterHeight, 1, color.White, false)

	label := fmt.Sprintf("%s %.1f / %.0f", m.Label, value, limit)
	text.Draw(screen, label, m.fontFace, int(m.X)+meterWidth+8, int(m.Y)+meterHeight-config.TextOffsetY, config.TextLightColor)
}
