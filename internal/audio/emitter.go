// internal/audio/emitter.go
package audio

import "github.com/rs/zerolog"

// SilentEmitter ставится вместо настоящего звука, когда звук выключен
// или устройство недоступно. Только считает вызовы.
type SilentEmitter struct {
	plays int
}

func (e *SilentEmitter) Play() {
	e.plays++
}

func (e *SilentEmitter) Plays() int {
	return e.plays
}

// Rewinder - плеер, который умеет начинать звук сначала (например, *audio.Player из ebiten).
type Rewinder interface {
	Rewind() error
	Play()
	Close() error
}

// PlayerEmitter перематывает плеер на начало перед каждым выстрелом.
type PlayerEmitter struct {
	player Rewinder
	log    zerolog.Logger
}

func NewPlayerEmitter(player Rewinder, log zerolog.Logger) *PlayerEmitter {
	return &PlayerEmitter{
		player: player,
		log:    log.With().Str("component", "audio").Logger(),
	}
}

// Play запускает звук. Если перемотка не удалась, звук играет
// с текущей позиции, а ошибка пишется в лог.
func (e *PlayerEmitter) Play() {
	if err := e.player.Rewind(); err != nil {
		e.log.Warn().Err(err).Msg("failed to rewind gunshot player")
	}
	e.player.Play()
}

func (e *PlayerEmitter) Close() error {
	return e.player.Close()
}
