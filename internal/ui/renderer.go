// internal/ui/renderer.go
package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/graph"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/types"
)

// WorldView — то, что рендерер читает из симуляции.
type WorldView interface {
	Nodes() []*component.Node
	Edges() []component.Edge
	Enemies() []*component.Enemy
	Projectiles() []*component.Projectile
	Pickups() []*component.Pickup
	Stats() stats.Result
	Affordable(id types.NodeID) bool
}

// Renderer рисует дерево узлов, врагов, снаряды и сгустки.
type Renderer struct {
	fontFace font.Face
}

func NewRenderer(face font.Face) *Renderer {
	return &Renderer{fontFace: face}
}

func (r *Renderer) Draw(screen *ebiten.Image, view WorldView, collector component.Position) {
	screen.Fill(config.BackgroundColor)
	r.drawCollector(screen, view.Stats().Global, collector)
	r.drawEdges(screen, view)
	r.drawNodes(screen, view)
	r.drawPickups(screen, view.Pickups())
	r.drawProjectiles(screen, view.Projectiles())
	r.drawEnemies(screen, view.Enemies())
}

func (r *Renderer) drawCollector(screen *ebiten.Image, g defs.Bundle, collector component.Position) {
	size := g[defs.StatCollectorSize]
	x, y := WorldToScreen(collector.Sub(component.Position{X: size / 2, Y: size / 2}))
	side := float32(size * config.GridScale)
	vector.DrawFilledRect(screen, x, y, side, side, config.CollectorColor, false)

	radius := float32(g[defs.StatPickupAttractionRadius] * config.GridScale)
	cx, cy := WorldToScreen(collector)
	vector.StrokeCircle(screen, cx, cy, radius, 1, config.CollectorColor, true)
}

func (r *Renderer) drawEdges(screen *ebiten.Image, view WorldView) {
	nodes := view.Nodes()
	for _, e := range view.Edges() {
		from, to := graph.Find(e.From, nodes), graph.Find(e.To, nodes)
		if from == nil || to == nil {
			continue
		}
		x0, y0 := WorldToScreen(from.Position)
		x1, y1 := WorldToScreen(to.Position)
		vector.StrokeLine(screen, x0, y0, x1, y1, config.StrokeWidth, config.LineColor, true)
	}
}

func (r *Renderer) drawNodes(screen *ebiten.Image, view WorldView) {
	result := view.Stats()
	edges := view.Edges()
	for _, n := range view.Nodes() {
		x, y := WorldToScreen(n.Position)
		fill := config.InactiveNodeColor
		switch {
		case graph.IsRoot(n.ID, edges):
			fill = config.RootColor
		case n.Active:
			fill = config.ActiveNodeColor
		}
		vector.DrawFilledCircle(screen, x, y, config.NodeRadius, fill, true)
		if !n.Active && view.Affordable(n.ID) {
			vector.StrokeCircle(screen, x, y, config.NodeRadius+2, config.StrokeWidth, config.AffordableColor, true)
		}

		label := string(n.ID)
		labelColor := config.TextLightColor
		if n.Active {
			labelColor = config.TextDarkColor
		}
		text.Draw(screen, label, r.fontFace, int(x)-len(label)*config.TextCharWidth/2, int(y)+config.TextOffsetY, labelColor)

		if n.Active {
			r.drawHealthBar(screen, x, y, n.Health, stats.MaxHealth(result, n))
		}
	}
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, x, y float32, health, maxHealth float64) {
	if maxHealth <= 0 {
		return
	}
	width := float32(config.NodeRadius * 2)
	ratio := float32(math.Max(health, 0) / maxHealth)
	top := y + config.NodeRadius + 3
	vector.DrawFilledRect(screen, x-width/2, top, width, 3, color.RGBA{60, 20, 20, 255}, false)
	vector.DrawFilledRect(screen, x-width/2, top, width*ratio, 3, config.HealthBarColor, false)
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, enemies []*component.Enemy) {
	for _, e := range enemies {
		x, y := WorldToScreen(e.Position)
		half := float32(e.Size * config.GridScale / 2)
		fill := config.EnemyColor
		if e.Kind == component.EnemyWobbler {
			fill = config.WobblerColor
		}
		// повёрнутый квадрат: четыре угла вокруг центра
		var path vector.Path
		for i := 0; i < 4; i++ {
			angle := (e.Rotation + 45 + float64(i)*90) * math.Pi / 180
			px := x + half*float32(math.Sqrt2*math.Cos(angle))
			py := y + half*float32(math.Sqrt2*math.Sin(angle))
			if i == 0 {
				path.MoveTo(px, py)
			} else {
				path.LineTo(px, py)
			}
		}
		path.Close()
		drawPath(screen, &path, fill)
	}
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, projectiles []*component.Projectile) {
	for _, p := range projectiles {
		x, y := WorldToScreen(p.Position)
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, config.ProjectileColor, true)
	}
}

func (r *Renderer) drawPickups(screen *ebiten.Image, pickups []*component.Pickup) {
	for _, p := range pickups {
		x, y := WorldToScreen(p.Position)
		vector.DrawFilledCircle(screen, x, y, config.PickupRadius, config.PickupColor, true)
	}
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

func drawPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
