package audio

import (
	"encoding/binary"
	"fmt"
	"math"
)

// HeaderSize is the length of the canonical RIFF/WAVE header for PCM.
const HeaderSize = 44

const (
	fmtChunkSize = 16
	formatPCM    = 1
)

// Header builds the 44-byte header for dataSize payload bytes in format f.
func Header(f Format, dataSize int) ([HeaderSize]byte, error) {
	var hdr [HeaderSize]byte
	if err := f.Validate(); err != nil {
		return hdr, err
	}
	if dataSize < 0 {
		return hdr, fmt.Errorf("%w: negative data size %d", ErrPayloadTooLarge, dataSize)
	}
	if uint64(dataSize) > math.MaxUint32-(HeaderSize-8) {
		return hdr, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, dataSize)
	}

	copy(hdr[0:4], "RIFF")
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(HeaderSize-8+dataSize))
	copy(hdr[8:12], "WAVE")
	copy(hdr[12:16], "fmt ")
	binary.LittleEndian.PutUint32(hdr[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(hdr[20:22], formatPCM)
	binary.LittleEndian.PutUint16(hdr[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(hdr[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(hdr[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(hdr[32:34], uint16(f.FrameSize()))
	binary.LittleEndian.PutUint16(hdr[34:36], uint16(f.BitsPerSample()))
	copy(hdr[36:40], "data")
	binary.LittleEndian.PutUint32(hdr[40:44], uint32(dataSize))

	return hdr, nil
}
