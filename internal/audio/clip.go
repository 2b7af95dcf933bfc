// internal/audio/clip.go
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Clip - звук, заранее отрендеренный в память. Хосты забирают его
// в своём формате: raylib как WAV, ebiten как сырой PCM.
type Clip struct {
	buffer *beep.Buffer
}

// NewGunshotClip рендерит выстрел с заданной частотой дискретизации.
func NewGunshotClip(sampleRate int, volume float64) *Clip {
	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	buffer := beep.NewBuffer(format)
	buffer.Append(Gunshot(format.SampleRate, GunshotDuration, volume))
	return &Clip{buffer: buffer}
}

func (c *Clip) Format() beep.Format {
	return c.buffer.Format()
}

// Len - длина в сэмплах на канал.
func (c *Clip) Len() int {
	return c.buffer.Len()
}

// Streamer возвращает новый поток с начала клипа.
func (c *Clip) Streamer() beep.StreamSeeker {
	return c.buffer.Streamer(0, c.buffer.Len())
}

// WAV кодирует клип в WAV-файл в памяти.
func (c *Clip) WAV() ([]byte, error) {
	var out memFile
	if err := wav.Encode(&out, c.Streamer(), c.Format()); err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}
	return out.buf, nil
}

// PCM16 - 16-битный little-endian стерео без заголовка.
func (c *Clip) PCM16() []byte {
	out := make([]byte, 0, c.Len()*4)
	s := c.Streamer()
	chunk := make([][2]float64, 512)
	var frame [4]byte
	for {
		n, ok := s.Stream(chunk)
		for _, sample := range chunk[:n] {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(sample[0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(sample[1])))
			out = append(out, frame[:]...)
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// memFile - io.WriteSeeker поверх среза: wav.Encode дописывает размеры в заголовок.
type memFile struct {
	buf []byte
	pos int
}

func (f *memFile) Write(p []byte) (int, error) {
	end := f.pos + len(p)
	if end > len(f.buf) {
		f.buf = append(f.buf, make([]byte, end-len(f.buf))...)
	}
	copy(f.buf[f.pos:], p)
	f.pos = end
	return len(p), nil
}

func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(f.pos)
	case io.SeekEnd:
		base = int64(len(f.buf))
	default:
		return 0, fmt.Errorf("seek: bad whence %d", whence)
	}
	next := base + offset
	if next < 0 {
		return 0, fmt.Errorf("seek: negative position %d", next)
	}
	f.pos = int(next)
	return next, nil
}
