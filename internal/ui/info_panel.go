// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/types"
)

const (
	panelHeight    = 170
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
	columnSpacing  = 280
	maxPanelLines  = 8
)

// InfoPanel показывает узел под курсором: цену и что изменится при покупке.
type InfoPanel struct {
	IsVisible  bool
	TargetNode types.NodeID
	fontFace   font.Face
	currentY   float64
	targetY    float64
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(id types.NodeID) {
	p.TargetNode = id
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.TargetNode = ""
	}
}

// Draw рисует панель. preview — разность характеристик для узла.
func (p *InfoPanel) Draw(screen *ebiten.Image, node *component.Node, cost int, preview stats.Result) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if node == nil {
		return
	}
	x, y := panelRect.Min.X+15, panelRect.Min.Y+20

	title := node.Title
	if title == "" {
		title = string(node.ID)
	}
	status := fmt.Sprintf("cost %d", cost)
	if node.Active {
		status = "active"
	}
	text.Draw(screen, fmt.Sprintf("%s  [%s]", title, status), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight + 4

	p.drawDiff(screen, "global", preview.Global.NonZero(), x, y)
	col := x + columnSpacing
	for _, id := range sortedNodeIDs(preview.PerNode) {
		changes := preview.PerNode[id].NonZero()
		if len(changes) == 0 {
			continue
		}
		p.drawDiff(screen, string(id), changes, col, y)
		col += columnSpacing
		if col > config.ScreenWidth-columnSpacing {
			break
		}
	}
}

func (p *InfoPanel) drawDiff(screen *ebiten.Image, header string, changes map[defs.StatKey]float64, x, y int) {
	if len(changes) == 0 {
		return
	}
	text.Draw(screen, header, p.fontFace, x, y, config.AffordableColor)
	keys := make([]defs.StatKey, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for i, k := range keys {
		if i == maxPanelLines {
			break
		}
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("%s %+g", k, changes[k]), p.fontFace, x, y, config.TextLightColor)
	}
}

func sortedNodeIDs(m map[types.NodeID]defs.Bundle) []types.NodeID {
	ids := make([]types.NodeID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
