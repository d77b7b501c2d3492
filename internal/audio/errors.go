package audio

import "errors"

var (
	// ErrInvalidFormatParameter is returned when a sample rate, channel count
	// or sample width is not a positive value the WAV header can carry.
	ErrInvalidFormatParameter = errors.New("invalid format parameter")
	// ErrSourceNotFound is returned when the raw PCM source cannot be read.
	ErrSourceNotFound = errors.New("source not found")
	// ErrDestinationWriteError is returned when the output cannot be created or written.
	ErrDestinationWriteError = errors.New("destination write error")
	// ErrPayloadTooLarge is returned when the payload does not fit the 32-bit RIFF size fields.
	ErrPayloadTooLarge = errors.New("payload too large for WAV container")
	ErrNotWAV          = errors.New("not a WAV file")
)
