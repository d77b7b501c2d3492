// Package testutil holds WAV assertions shared by package tests.
package testutil

import (
	"encoding/binary"
	"errors"
	"testing"
)

// AssertWAVHeader checks that data is a PCM WAV whose fmt chunk carries the
// given format and whose RIFF and data sizes agree with len(data).
func AssertWAVHeader(tb testing.TB, data []byte, sampleRate, channels, bitDepth int) {
	tb.Helper()

	if len(data) < 44 {
		tb.Fatalf("WAV data too short: %d bytes", len(data))
	}

	if string(data[0:4]) != "RIFF" {
		tb.Fatalf("WAV: missing RIFF header (got %q)", string(data[0:4]))
	}

	if string(data[8:12]) != "WAVE" {
		tb.Fatalf("WAV: missing WAVE marker (got %q)", string(data[8:12]))
	}

	if string(data[12:16]) != "fmt " {
		tb.Fatalf("WAV: missing fmt chunk (got %q)", string(data[12:16]))
	}

	if riff := binary.LittleEndian.Uint32(data[4:8]); int(riff) != len(data)-8 {
		tb.Fatalf("WAV: RIFF size %d, want %d", riff, len(data)-8)
	}

	audioFmt := binary.LittleEndian.Uint16(data[20:22])
	if audioFmt != 1 {
		tb.Fatalf("WAV: expected PCM format (1), got %d", audioFmt)
	}

	if got := binary.LittleEndian.Uint16(data[22:24]); int(got) != channels {
		tb.Fatalf("WAV: expected %d channel(s), got %d", channels, got)
	}

	if got := binary.LittleEndian.Uint32(data[24:28]); int(got) != sampleRate {
		tb.Fatalf("WAV: expected sample rate %d, got %d", sampleRate, got)
	}

	blockAlign := channels * bitDepth / 8
	if got := binary.LittleEndian.Uint32(data[28:32]); int(got) != sampleRate*blockAlign {
		tb.Fatalf("WAV: expected byte rate %d, got %d", sampleRate*blockAlign, got)
	}

	if got := binary.LittleEndian.Uint16(data[32:34]); int(got) != blockAlign {
		tb.Fatalf("WAV: expected block align %d, got %d", blockAlign, got)
	}

	if got := binary.LittleEndian.Uint16(data[34:36]); int(got) != bitDepth {
		tb.Fatalf("WAV: expected %d-bit depth, got %d", bitDepth, got)
	}

	dataSize, err := findDataChunkSize(data)
	if err != nil {
		tb.Fatalf("WAV: %v", err)
	}

	if int(dataSize) != len(data)-44 {
		tb.Fatalf("WAV: data chunk size %d, want %d", dataSize, len(data)-44)
	}
}

// AssertWAVDurationApprox asserts that the WAV audio duration falls within
// [minSec, maxSec], using the byte rate from the fmt chunk.
func AssertWAVDurationApprox(tb testing.TB, data []byte, minSec, maxSec float64) {
	tb.Helper()

	dataSize, err := findDataChunkSize(data)
	if err != nil {
		tb.Fatalf("WAV duration check: %v", err)
	}

	byteRate := binary.LittleEndian.Uint32(data[28:32])
	if byteRate == 0 {
		tb.Fatal("WAV duration check: zero byte rate")
	}

	durationSec := float64(dataSize) / float64(byteRate)
	if durationSec < minSec || durationSec > maxSec {
		tb.Fatalf("WAV duration %.3fs out of expected range [%.3fs, %.3fs]", durationSec, minSec, maxSec)
	}
}

// findDataChunkSize walks the WAV chunk list to locate the "data" sub-chunk
// and returns its size in bytes.
func findDataChunkSize(data []byte) (uint32, error) {
	// Start after the 12-byte RIFF/WAVE header.
	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])

		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		if id == "data" {
			return size, nil
		}

		offset += 8 + int(size)
		// Pad to even boundary.
		if size%2 != 0 {
			offset++
		}
	}

	return 0, errors.New("data chunk not found in WAV")
}
