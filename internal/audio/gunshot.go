// internal/audio/gunshot.go
package audio

import (
	"math"
	"time"

	"go-raycast-shooter/internal/utils"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// GunshotDuration - длина звука выстрела
const GunshotDuration = 250 * time.Millisecond

const gunshotSeed = 0x5eed

// GunshotGenerator - хлопок: резкий шумовой щелчок поверх низкого удара.
// Шум детерминированный, поэтому клип всегда одинаковый.
type GunshotGenerator struct {
	sr    beep.SampleRate
	pos   int
	noise *utils.PRNGService
}

// NewGunshotGenerator создаёт бесконечный генератор; длину задаёт beep.Take.
func NewGunshotGenerator(sr beep.SampleRate) *GunshotGenerator {
	return &GunshotGenerator{
		sr:    sr,
		noise: utils.NewPRNGService(gunshotSeed),
	}
}

func (g *GunshotGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Щелчок гаснет быстро, удар медленнее
		crackEnv := math.Exp(-t * 45)
		thumpEnv := math.Exp(-t * 12)

		noise := g.noise.Signed()

		// Частота удара падает от 120 до 50 Гц
		freq := 50 + 70*math.Exp(-t*20)
		thump := math.Sin(2 * math.Pi * freq * t)

		sample := 0.6*crackEnv*noise + 0.4*thumpEnv*thump

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *GunshotGenerator) Err() error {
	return nil
}

// Gunshot - звук выстрела заданной длины и громкости (0..1).
func Gunshot(sr beep.SampleRate, duration time.Duration, volume float64) beep.Streamer {
	return newVolume(beep.Take(sr.N(duration), NewGunshotGenerator(sr)), volume)
}

// math.Log2(0) = -Inf, поэтому нулевая громкость - отдельный случай
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
