package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 22050

func TestGunshotClip_Length(t *testing.T) {
	clip := NewGunshotClip(testRate, 0.8)
	assert.Equal(t, beep.SampleRate(testRate).N(GunshotDuration), clip.Len())
	assert.Equal(t, 2, clip.Format().NumChannels)
}

func TestGunshotClip_AudibleAndBounded(t *testing.T) {
	clip := NewGunshotClip(testRate, 1)

	s := clip.Streamer()
	buf := make([][2]float64, clip.Len())
	n, _ := s.Stream(buf)
	require.Equal(t, clip.Len(), n)

	peak := 0.0
	for _, v := range buf {
		if v[0] > peak {
			peak = v[0]
		}
		if -v[0] > peak {
			peak = -v[0]
		}
	}
	assert.Greater(t, peak, 0.1)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestGunshotClip_Deterministic(t *testing.T) {
	a := NewGunshotClip(testRate, 0.5).PCM16()
	b := NewGunshotClip(testRate, 0.5).PCM16()
	assert.Equal(t, a, b)
}

func TestGunshotClip_ZeroVolumeIsSilent(t *testing.T) {
	pcm := NewGunshotClip(testRate, 0).PCM16()
	for _, b := range pcm {
		if b != 0 {
			t.Fatalf("expected silence")
		}
	}
}

func TestClip_PCM16Size(t *testing.T) {
	clip := NewGunshotClip(testRate, 0.5)
	assert.Len(t, clip.PCM16(), clip.Len()*4)
}

func TestClip_WAVHeader(t *testing.T) {
	clip := NewGunshotClip(testRate, 0.5)
	data, err := clip.WAV()
	require.NoError(t, err)

	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, uint32(testRate), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, 44+clip.Len()*4, len(data))
}

func TestMemFile_SeekAndOverwrite(t *testing.T) {
	var f memFile
	_, _ = f.Write([]byte("abcdef"))
	_, err := f.Seek(2, 0)
	require.NoError(t, err)
	_, _ = f.Write([]byte("XY"))
	assert.Equal(t, "abXYef", string(f.buf))

	_, err = f.Seek(-10, 1)
	assert.Error(t, err)
}

func TestSilentEmitter_CountsPlays(t *testing.T) {
	var e SilentEmitter
	e.Play()
	e.Play()
	assert.Equal(t, 2, e.Plays())
}

type fakePlayer struct {
	rewindErr error
	rewinds   int
	plays     int
}

func (p *fakePlayer) Rewind() error {
	p.rewinds++
	return p.rewindErr
}
func (p *fakePlayer) Play()        { p.plays++ }
func (p *fakePlayer) Close() error { return nil }

func TestPlayerEmitter_RewindsBeforePlay(t *testing.T) {
	p := &fakePlayer{}
	e := NewPlayerEmitter(p, zerolog.Nop())
	e.Play()
	e.Play()
	assert.Equal(t, 2, p.rewinds)
	assert.Equal(t, 2, p.plays)
}

func TestPlayerEmitter_LogsRewindFailureAndStillPlays(t *testing.T) {
	var buf bytes.Buffer
	p := &fakePlayer{rewindErr: errors.New("seek failed")}
	e := NewPlayerEmitter(p, zerolog.New(&buf))

	e.Play()

	assert.Equal(t, 1, p.plays)
	assert.Contains(t, buf.String(), "failed to rewind gunshot player")
	assert.Contains(t, buf.String(), "seek failed")
}
