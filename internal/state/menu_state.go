// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-node-defense/internal/config"
	"go-node-defense/internal/interfaces"
)

// MenuState — стартовый экран с подсказкой по управлению.
type MenuState struct {
	sm   *StateMachine
	game interfaces.Game
}

func NewMenuState(sm *StateMachine, game interfaces.Game) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - 40
	for _, line := range []string{
		"NODE DEFENSE",
		"",
		"mouse - collector, click - buy / sell node",
		"B - buy ammo   R - reset   P - pause",
		"",
		"press SPACE",
	} {
		drawCentered(screen, face, line, y)
		y += 18
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
