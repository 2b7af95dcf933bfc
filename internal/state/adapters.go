// internal/state/adapters.go
package state

import (
	"fmt"
	"image/color"

	"go-raycast-shooter/internal/audio"
	"go-raycast-shooter/internal/weapon"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// MouseFireInput - левая кнопка мыши. IsMouseButtonPressed срабатывает
// только в кадре нажатия, удержание не стреляет.
type MouseFireInput struct{}

func (MouseFireInput) FirePressed() bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

// SoundEmitter проигрывает звук выстрела через аудиоустройство raylib.
type SoundEmitter struct {
	sound rl.Sound
}

// NewSoundEmitter загружает клип в raylib. Аудиоустройство уже должно быть открыто.
func NewSoundEmitter(clip *audio.Clip) (*SoundEmitter, error) {
	data, err := clip.WAV()
	if err != nil {
		return nil, err
	}
	wave := rl.LoadWaveFromMemory(".wav", data, int32(len(data)))
	if wave.FrameCount == 0 {
		return nil, fmt.Errorf("load gunshot wave: raylib rejected %d bytes", len(data))
	}
	defer rl.UnloadWave(wave)
	return &SoundEmitter{sound: rl.LoadSoundFromWave(wave)}, nil
}

func (e *SoundEmitter) Play() {
	rl.PlaySound(e.sound)
}

func (e *SoundEmitter) Unload() {
	rl.UnloadSound(e.sound)
}

// NewAudioEmitter выбирает настоящий звук или тихую заглушку. Оружию
// всегда нужен эмиттер, поэтому ошибка устройства не мешает запуску.
func NewAudioEmitter(enabled bool, clip *audio.Clip, log zerolog.Logger) (weapon.AudioEmitter, func()) {
	if !enabled {
		log.Info().Msg("audio disabled, using silent emitter")
		return &audio.SilentEmitter{}, func() {}
	}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		log.Warn().Msg("audio device unavailable, using silent emitter")
		return &audio.SilentEmitter{}, func() {}
	}
	emitter, err := NewSoundEmitter(clip)
	if err != nil {
		log.Warn().Err(err).Msg("gunshot sound not loaded, using silent emitter")
		rl.CloseAudioDevice()
		return &audio.SilentEmitter{}, func() {}
	}
	return emitter, func() {
		emitter.Unload()
		rl.CloseAudioDevice()
	}
}

func vecToRL(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

// Helper to convert color.RGBA to rl.Color
func colorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
