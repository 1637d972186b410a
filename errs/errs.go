// Package errs defines the sentinel error values returned by the scsp2json
// decoder pipeline, plus a DecodeError wrapper that attaches file and
// section context the way a batch-processing caller needs it.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Compare against these with errors.Is.
var (
	// ErrTruncatedStream is returned when an envelope block header or
	// payload is shorter than declared.
	ErrTruncatedStream = errors.New("scsp2json: truncated envelope stream")

	// ErrUnsupportedVersion is returned when the skeleton header's hash
	// string is empty. Non-empty hashes are not checked further.
	ErrUnsupportedVersion = errors.New("scsp2json: unsupported skeleton version")

	// ErrInvalidFloat is returned when a decoded float32 is NaN.
	ErrInvalidFloat = errors.New("scsp2json: invalid float (NaN)")

	// ErrIndexOutOfRange names an unresolvable bone/slot/skin/constraint
	// index. The scsp decoder does not return it: its name lookups resolve
	// an out-of-range index to "" (or "root" for a bone's parent and a
	// slot's bone) and decoding continues.
	ErrIndexOutOfRange = errors.New("scsp2json: index out of range")

	// ErrInconsistentDeform names a deform frame whose vertex count does
	// not match its base attachment. The decoder does not return or log
	// it: such a frame keeps its vertices unchanged, with no delta taken.
	ErrInconsistentDeform = errors.New("scsp2json: deform vertex count mismatch")

	// ErrMissingSecondLine is returned by the atlas rewrite helper when a
	// .atlas file has fewer than two lines.
	ErrMissingSecondLine = errors.New("scsp2json: atlas file has no second line")

	// ErrMissingExtension is returned by the atlas rewrite helper when no
	// .sct occurrence is found on the second line.
	ErrMissingExtension = errors.New("scsp2json: atlas second line has no .sct extension")
)

// LengthMismatch is a non-fatal warning value: the envelope's declared
// uncompressed block size didn't match what the codec actually produced.
// It is never returned as an error from Decode; it's surfaced via a
// Warnings slice instead (see envelope.Result).
type LengthMismatch struct {
	BlockIndex int
	Declared   int
	Actual     int
}

func (w LengthMismatch) Error() string {
	return fmt.Sprintf("block %d: declared size %d, got %d", w.BlockIndex, w.Declared, w.Actual)
}

// DecodeError wraps a fatal decode error with the file path and section
// name where it occurred, so a batch orchestrator can report it without
// aborting the rest of the batch.
type DecodeError struct {
	Path    string
	Section string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", e.Path, e.Section, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Wrap attaches file/section context to err. Returns nil if err is nil.
func Wrap(path, section string, err error) error {
	if err == nil {
		return nil
	}

	return &DecodeError{Path: path, Section: section, Err: err}
}
