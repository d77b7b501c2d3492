package audio

import (
	"fmt"
	"math"
)

// Defaults match the raw output of the upstream generative model:
// 24 kHz, mono, 16-bit little-endian PCM.
const (
	DefaultSampleRate  = 24000
	DefaultChannels    = 1
	DefaultSampleWidth = 2
)

// Format describes how a raw PCM buffer is interpreted.
type Format struct {
	SampleRate  int // samples per second
	Channels    int
	SampleWidth int // bytes per sample
}

func DefaultFormat() Format {
	return Format{
		SampleRate:  DefaultSampleRate,
		Channels:    DefaultChannels,
		SampleWidth: DefaultSampleWidth,
	}
}

// Validate reports an ErrInvalidFormatParameter when any field is zero or
// negative, or when a derived field overflows its slot in the fmt chunk.
func (f Format) Validate() error {
	if f.SampleRate < 1 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormatParameter, f.SampleRate)
	}
	if f.Channels < 1 {
		return fmt.Errorf("%w: channels %d", ErrInvalidFormatParameter, f.Channels)
	}
	if f.SampleWidth < 1 {
		return fmt.Errorf("%w: sample width %d", ErrInvalidFormatParameter, f.SampleWidth)
	}
	if f.Channels > math.MaxUint16 {
		return fmt.Errorf("%w: channels %d exceed %d", ErrInvalidFormatParameter, f.Channels, math.MaxUint16)
	}
	if uint64(f.SampleWidth)*8 > math.MaxUint16 {
		return fmt.Errorf("%w: sample width %d too large", ErrInvalidFormatParameter, f.SampleWidth)
	}
	if uint64(f.Channels)*uint64(f.SampleWidth) > math.MaxUint16 {
		return fmt.Errorf("%w: block align %d*%d too large", ErrInvalidFormatParameter, f.Channels, f.SampleWidth)
	}
	if f.byteRate() > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate %d too large", ErrInvalidFormatParameter, f.byteRate())
	}
	return nil
}

func (f Format) FrameSize() int { return f.Channels * f.SampleWidth }

func (f Format) ByteRate() int { return int(f.byteRate()) }

func (f Format) BitsPerSample() int { return f.SampleWidth * 8 }

func (f Format) byteRate() uint64 {
	return uint64(f.SampleRate) * uint64(f.Channels) * uint64(f.SampleWidth)
}

// Duration returns the playback length in seconds of n payload bytes.
// It is 0 for an empty payload or an unusable format.
func (f Format) Duration(n int) float64 {
	rate := f.byteRate()
	if n <= 0 || f.SampleRate < 1 || f.Channels < 1 || f.SampleWidth < 1 || rate == 0 {
		return 0
	}
	return float64(n) / float64(rate)
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d-bit", f.SampleRate, f.Channels, f.BitsPerSample())
}
