// internal/interfaces/game_context.go
package interfaces

// GameContext - то, что состояния хоста могут делать с игрой,
// не импортируя пакет app напрямую.
type GameContext interface {
	Reset()
	SetPaused(paused bool)
	Paused() bool
}
