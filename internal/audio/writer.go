package audio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// Info describes a written WAV container.
type Info struct {
	Path     string
	Bytes    int     // payload bytes, header excluded
	Duration float64 // seconds
}

// Writer prepends RIFF/WAVE headers to raw PCM and persists the result.
// A Writer holds no mutable state and may be shared across goroutines.
type Writer struct {
	fs afero.Fs
}

// NewWriter returns a Writer backed by fsys; nil selects the OS filesystem.
func NewWriter(fsys afero.Fs) *Writer {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Writer{fs: fsys}
}

// WriteWAV writes raw to dest through the OS filesystem.
func WriteWAV(raw []byte, dest string, f Format) (Info, error) {
	return NewWriter(nil).WriteWAV(raw, dest, f)
}

// WriteWAV validates f, then writes header and raw to a temporary file next
// to dest and renames it into place. dest is either fully replaced or left
// untouched; a replaced dest keeps its permissions. raw is written verbatim, including any trailing partial frame.
func (w *Writer) WriteWAV(raw []byte, dest string, f Format) (Info, error) {
	hdr, err := Header(f, len(raw))
	if err != nil {
		return Info{}, err
	}

	dir := filepath.Dir(dest)
	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return Info{}, fmt.Errorf("%w: create temp file in %s: %w", ErrDestinationWriteError, dir, err)
	}
	tmpPath := tmp.Name()

	if err := writeContainer(tmp, hdr, raw); err != nil {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpPath)
		return Info{}, fmt.Errorf("%w: write %s: %w", ErrDestinationWriteError, dest, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = w.fs.Remove(tmpPath)
		return Info{}, fmt.Errorf("%w: sync %s: %w", ErrDestinationWriteError, dest, err)
	}
	if err := tmp.Close(); err != nil {
		_ = w.fs.Remove(tmpPath)
		return Info{}, fmt.Errorf("%w: close temp file: %w", ErrDestinationWriteError, err)
	}
	if err := w.fs.Chmod(tmpPath, w.destMode(dest)); err != nil {
		_ = w.fs.Remove(tmpPath)
		return Info{}, fmt.Errorf("%w: chmod %s: %w", ErrDestinationWriteError, tmpPath, err)
	}
	if err := w.fs.Rename(tmpPath, dest); err != nil {
		_ = w.fs.Remove(tmpPath)
		return Info{}, fmt.Errorf("%w: move temp file into place: %w", ErrDestinationWriteError, err)
	}

	return Info{
		Path:     dest,
		Bytes:    len(raw),
		Duration: f.Duration(len(raw)),
	}, nil
}

// destMode keeps the permissions of a file being replaced; new files get 0644.
func (w *Writer) destMode(dest string) fs.FileMode {
	if st, err := w.fs.Stat(dest); err == nil && st.Mode().IsRegular() {
		return st.Mode().Perm()
	}
	return 0o644
}

// ConvertFile reads the raw PCM at src and writes it as a WAV container to dest.
func (w *Writer) ConvertFile(src, dest string, f Format) (Info, error) {
	if err := f.Validate(); err != nil {
		return Info{}, err
	}

	raw, err := afero.ReadFile(w.fs, src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Info{}, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return Info{}, fmt.Errorf("%w: read %s: %w", ErrSourceNotFound, src, err)
	}

	return w.WriteWAV(raw, dest, f)
}

// Encode writes the container for raw to out, for destinations such as
// stdout that cannot be renamed into place. It returns the bytes written.
func Encode(out io.Writer, raw []byte, f Format) (int64, error) {
	hdr, err := Header(f, len(raw))
	if err != nil {
		return 0, err
	}

	n, err := out.Write(hdr[:])
	written := int64(n)
	if err != nil {
		return written, fmt.Errorf("%w: write header: %w", ErrDestinationWriteError, err)
	}
	n, err = out.Write(raw)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("%w: write payload: %w", ErrDestinationWriteError, err)
	}

	return written, nil
}

func writeContainer(w io.Writer, hdr [HeaderSize]byte, raw []byte) error {
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(raw)
	return err
}
