// internal/state/game_state.go
package state

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-node-defense/internal/app"
	"go-node-defense/internal/component"
	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/graph"
	"go-node-defense/internal/interfaces"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/types"
	"go-node-defense/internal/ui"
)

// GameState — состояние игры: ведёт часы симуляции, переводит курсор в
// позицию сборщика и клики в переключение узлов.
type GameState struct {
	sm        *StateMachine
	game      interfaces.Game
	fontFace  font.Face
	renderer  *ui.Renderer
	indicator *ui.StateIndicator
	wave      *ui.WaveIndicator
	power     *ui.Meter
	ammo      *ui.Meter
	infoPanel *ui.InfoPanel

	tickID    uint64
	elapsed   float64 // мс симуляции
	collector component.Position
}

func NewGameState(sm *StateMachine, game interfaces.Game) *GameState {
	face := basicfont.Face7x13
	return &GameState{
		sm:       sm,
		game:     game,
		fontFace: face,
		renderer: ui.NewRenderer(face),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		wave:      ui.NewWaveIndicator(config.ScreenWidth-config.IndicatorOffsetX*3, config.IndicatorOffsetX+config.TextOffsetY, face),
		power:     ui.NewMeter(20, 20, "power", config.PickupColor, face),
		ammo:      ui.NewMeter(20, 44, "ammo", config.ProjectileColor, face),
		infoPanel: ui.NewInfoPanel(face),
		elapsed:   game.Time(),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset()
		return
	}

	cx, cy := ebiten.CursorPosition()
	g.collector = ui.ScreenToWorld(cx, cy)

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.game.BuyAmmo()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if id, ok := g.nodeUnderCursor(); ok {
			g.game.Toggle(id)
		}
	}

	if id, ok := g.nodeUnderCursor(); ok {
		g.infoPanel.SetTarget(id)
	} else {
		g.infoPanel.Hide()
	}

	deltaMs := deltaTime * 1000
	g.elapsed += deltaMs
	g.tickID++
	g.game.Update(app.Tick{ID: g.tickID, DeltaMs: deltaMs, ElapsedMs: g.elapsed}, g.collector)
}

// nodeUnderCursor ищет узел, в круг которого попадает курсор.
func (g *GameState) nodeUnderCursor() (types.NodeID, bool) {
	cx, cy := ebiten.CursorPosition()
	for _, n := range g.game.Nodes() {
		x, y := ui.WorldToScreen(n.Position)
		if math.Hypot(float64(cx)-float64(x), float64(cy)-float64(y)) <= config.NodeRadius {
			return n.ID, true
		}
	}
	return "", false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game, g.collector)

	global := g.game.Stats().Global
	g.power.Draw(screen, g.game.Power(), global[defs.StatMaxPower])
	g.ammo.Draw(screen, float64(g.game.Ammo()), global[defs.StatBulletMaxAmmo])
	g.indicator.Draw(screen, g.game.WaveState())
	g.wave.Draw(screen, g.game.Wave().Number)

	if id := g.infoPanel.TargetNode; id != "" {
		node := graph.Find(id, g.game.Nodes())
		g.infoPanel.Draw(screen, node, g.game.Cost(id), g.game.Preview(id))
	} else {
		g.infoPanel.Draw(screen, nil, 0, stats.Result{})
	}

	if g.game.IsGameOver() {
		drawCentered(screen, g.fontFace, "ROOT DESTROYED - press R", config.ScreenHeight/2)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

func drawCentered(screen *ebiten.Image, face font.Face, label string, y int) {
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
}
