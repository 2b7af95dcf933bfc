// internal/state/pause_state.go
package state

import (
	"go-raycast-shooter/internal/config"
	"go-raycast-shooter/internal/interfaces"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игровое время. Сцена под ней продолжает рисоваться.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	game          interfaces.GameContext
}

func NewPauseState(sm *StateMachine, prevState State, game interfaces.GameContext) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		game:          game,
	}
}

func (s *PauseState) Enter() {
	s.game.SetPaused(true)
	rl.EnableCursor()
}

func (s *PauseState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyR) {
		s.game.Reset()
	}
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw() {
	if s.previousState != nil {
		s.previousState.Draw()
	}
}

// DrawUI рисует UI для состояния паузы
func (s *PauseState) DrawUI() {
	if uiDrawable, ok := s.previousState.(interface{ DrawUI() }); ok {
		uiDrawable.DrawUI()
	}

	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, w, h, rl.NewColor(0, 0, 0, 128))

	pauseText := "PAUSED"
	fontSize := int32(40)
	textWidth := rl.MeasureText(pauseText, fontSize)
	rl.DrawText(pauseText, (w-textWidth)/2, h/2-20, fontSize, colorToRL(config.TextLightColor))

	hint := "P - resume, R - reset range"
	hintWidth := rl.MeasureText(hint, 20)
	rl.DrawText(hint, (w-hintWidth)/2, h/2+30, 20, colorToRL(config.TextLightColor))
}

func (s *PauseState) Exit() {
	s.game.SetPaused(false)
}
