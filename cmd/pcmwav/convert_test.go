package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/pcmwav/internal/audio"
	"github.com/example/pcmwav/internal/testutil"
)

func writeRaw(t *testing.T, path string, n int) []byte {
	t.Helper()

	raw := make([]byte, n)
	for i := range raw {
		raw[i] = byte(i)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return raw
}

func TestConvertCmd_ExplicitSources(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	exports := filepath.Join(dir, "exports")
	if err := os.Mkdir(exports, 0o755); err != nil {
		t.Fatal(err)
	}
	raw := writeRaw(t, filepath.Join(exports, "lyria_20260202_131233.wav"), 48000)

	out, err := runCLI(t, "convert", "lyria_20260202_131233.wav", "lyria_20260202_131515.wav")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}

	for _, want := range []string{
		"✓ Converted lyria_20260202_131233.wav -> lyria_20260202_131233_fixed.wav",
		"Size: 48,000 bytes",
		"Duration: 1.0s",
		"Skipped lyria_20260202_131515.wav",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q; got:\n%s", want, out)
		}
	}

	data, err := os.ReadFile(filepath.Join(exports, "lyria_20260202_131233_fixed.wav"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	testutil.AssertWAVHeader(t, data, 24000, 1, 16)
	testutil.AssertWAVDurationApprox(t, data, 0.999, 1.001)
	if len(data) != 48044 {
		t.Errorf("output size = %d; want 48044", len(data))
	}
	if !bytes.Equal(data[44:], raw) {
		t.Error("payload did not round-trip")
	}
}

func TestConvertCmd_DirectoryScanWithFormatFlags(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeRaw(t, filepath.Join(dir, "a.raw"), 1000)
	writeRaw(t, filepath.Join(dir, "b.raw"), 10)

	_, err := runCLI(t, "convert",
		"--dir", dir,
		"--pattern", "*.raw",
		"--suffix", "_wav",
		"--sample-rate", "8000",
		"--channels", "2",
		"--concurrency", "2",
	)
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}

	for _, name := range []string{"a_wav.raw", "b_wav.raw"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		testutil.AssertWAVHeader(t, data, 8000, 2, 16)
	}
}

func TestConvertCmd_MissingSourceFailsWhenNotSkipping(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := runCLI(t, "convert", "--dir", dir, "--skip-missing=false", "absent.wav")
	if !errors.Is(err, audio.ErrSourceNotFound) {
		t.Fatalf("convert error = %v; want ErrSourceNotFound", err)
	}
}

func TestConvertCmd_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeRaw(t, filepath.Join(dir, "a.wav"), 4)

	_, err := runCLI(t, "convert", "--dir", dir, "--sample-width", "0", "a.wav")
	if !errors.Is(err, audio.ErrInvalidFormatParameter) {
		t.Fatalf("convert error = %v; want ErrInvalidFormatParameter", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "a_fixed.wav")); !os.IsNotExist(statErr) {
		t.Error("output written despite invalid format")
	}
}

func TestConvertCmd_SourcesFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeRaw(t, filepath.Join(dir, "one.wav"), 96)

	cfg := "convert:\n  dir: " + dir + "\n  sources:\n    - one.wav\n"
	if err := os.WriteFile(filepath.Join(dir, "pcmwav.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "convert"); err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "one_fixed.wav")); err != nil {
		t.Errorf("expected one_fixed.wav: %v", err)
	}
}
