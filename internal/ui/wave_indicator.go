// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-node-defense/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
	fontFace         font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.IdleStateColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
		fontFace:         face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}

	label := toRoman(waveNumber)
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = config.WaveStateColor
	}

	// Центрируем текст
	bounds := text.BoundString(i.fontFace, label)
	x := i.X - bounds.Dx()/2

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, x, i.Y, textColor)
}
