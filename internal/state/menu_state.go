// internal/state/menu_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-raycast-shooter/internal/ui"
)

// Убеждаемся, что MenuState соответствует интерфейсу State
var _ State = (*MenuState)(nil)

// MenuState - стартовый экран. Клик по "Start" захватывает курсор и запускает полигон.
type MenuState struct {
	sm          *StateMachine
	next        func() State
	title       string
	startButton *ui.Button
	exitButton  *ui.Button
	quit        bool
}

func NewMenuState(sm *StateMachine, title string, next func() State) *MenuState {
	btnWidth := float32(220)
	btnHeight := float32(50)
	spacing := float32(20)
	startX := (float32(rl.GetScreenWidth()) - btnWidth) / 2
	startY := float32(rl.GetScreenHeight()/2) - btnHeight

	return &MenuState{
		sm:          sm,
		next:        next,
		title:       title,
		startButton: ui.NewButton(rl.NewRectangle(startX, startY, btnWidth, btnHeight), "Start"),
		exitButton:  ui.NewButton(rl.NewRectangle(startX, startY+btnHeight+spacing, btnWidth, btnHeight), "Exit"),
	}
}

func (s *MenuState) Enter() {
	rl.EnableCursor()
}

func (s *MenuState) Update(deltaTime float64) {
	mousePos := rl.GetMousePosition()

	if s.startButton.IsClicked(mousePos) {
		s.sm.SetState(s.next())
		return
	}
	if s.exitButton.IsClicked(mousePos) {
		s.quit = true
	}
}

func (s *MenuState) Draw() {
	titleFontSize := int32(60)
	titleWidth := rl.MeasureText(s.title, titleFontSize)
	rl.DrawText(s.title, (int32(rl.GetScreenWidth())-titleWidth)/2, int32(rl.GetScreenHeight()/2-150), titleFontSize, rl.White)

	mousePos := rl.GetMousePosition()
	s.startButton.Draw(mousePos)
	s.exitButton.Draw(mousePos)
}

func (s *MenuState) Exit() {}

// ShouldQuit сообщает главному циклу, что нажат "Exit".
func (s *MenuState) ShouldQuit() bool {
	return s.quit
}
