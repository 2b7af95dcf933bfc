// internal/overview/sound.go
package overview

import (
	"go-raycast-shooter/internal/audio"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// NewGunshotPlayer создаёт контекст ebiten и плеер клипа.
// Контекст в процессе может быть только один.
func NewGunshotPlayer(clip *audio.Clip, log zerolog.Logger) *audio.PlayerEmitter {
	ctx := eaudio.NewContext(int(clip.Format().SampleRate))
	return audio.NewPlayerEmitter(ctx.NewPlayerFromBytes(clip.PCM16()), log)
}
