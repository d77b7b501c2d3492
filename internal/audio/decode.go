package audio

import (
	"bytes"
	"fmt"
	"math"

	"github.com/cwbudde/wav"
	goaudio "github.com/go-audio/audio"
)

// Inspection summarises a decoded WAV container.
type Inspection struct {
	Format   Format
	Bytes    int     // payload bytes
	Frames   int
	Duration float64 // seconds
	Peak     float32 // absolute peak, normalised to [0, 1]
}

// DecodeWAV parses a PCM WAV container and reports its format and payload.
func DecodeWAV(data []byte) (Inspection, error) {
	if len(data) == 0 {
		return Inspection{}, fmt.Errorf("%w: empty input", ErrNotWAV)
	}

	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return Inspection{}, ErrNotWAV
	}

	f := Format{
		SampleRate:  int(dec.SampleRate),
		Channels:    int(dec.NumChans),
		SampleWidth: int(dec.BitDepth) / 8,
	}
	if err := f.Validate(); err != nil {
		return Inspection{}, fmt.Errorf("%w: %w", ErrNotWAV, err)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Inspection{}, fmt.Errorf("reading PCM data: %w", err)
	}

	// The decoder pads a trailing partial sample; the data chunk size is exact.
	n := int(dec.PCMLen())
	return Inspection{
		Format:   f,
		Bytes:    n,
		Frames:   n / f.FrameSize(),
		Duration: f.Duration(n),
		Peak:     peak(buf, n/f.SampleWidth),
	}, nil
}

// peak scans the first samples values of buf.
func peak(buf *goaudio.Float32Buffer, samples int) float32 {
	data := buf.Data
	if samples < len(data) {
		data = data[:samples]
	}
	var p float64
	for _, s := range data {
		p = math.Max(p, math.Abs(float64(s)))
	}
	return float32(math.Min(p, 1))
}
