// Package envelope unwraps the LZ4 block-stream transport that wraps an
// SCSP image: a sequence of records, each an 8-byte little- (or big-)
// endian header followed by a compressed payload.
package envelope

import (
	"errors"
	"io"

	"github.com/himeope/scsp2json/compress"
	"github.com/himeope/scsp2json/endian"
	"github.com/himeope/scsp2json/errs"
)

// headerSize is the fixed width of a block header: uncompressed length
// followed by compressed length, both uint32.
const headerSize = 8

// Option configures Decode.
type Option func(*options)

type options struct {
	order endian.EndianEngine
}

// WithBigEndian configures the reader to interpret block headers as
// big-endian. Block headers are little-endian by default.
func WithBigEndian() Option {
	return func(o *options) { o.order = endian.GetBigEndianEngine() }
}

// WithLittleEndian configures the reader to interpret block headers as
// little-endian. This is the default and only needs to be passed
// explicitly to override a prior WithBigEndian in the same option slice.
func WithLittleEndian() Option {
	return func(o *options) { o.order = endian.GetLittleEndianEngine() }
}

// Result is the outcome of unwrapping an envelope.
type Result struct {
	// Data is the concatenation of every block's decompressed bytes.
	Data []byte

	// BlockCount is the number of blocks successfully processed.
	BlockCount int

	// Warnings holds one errs.LengthMismatch per block whose declared
	// uncompressed size didn't match what the codec actually produced.
	// Never fatal; Data still reflects whatever the codec produced.
	Warnings []error

	// Stats holds one compress.CompressionStats entry per block, in
	// order, for callers that want to report how much a file actually
	// shrank.
	Stats []compress.CompressionStats
}

// Decode reads r to completion and unwraps its LZ4 block stream.
//
// Returns errs.ErrTruncatedStream if a block header or its compressed
// payload is cut short. A per-block uncompressed-size mismatch is recorded
// in Result.Warnings rather than failing the whole file.
func Decode(r io.Reader, opts ...Option) (Result, error) {
	cfg := options{order: endian.GetLittleEndianEngine()}
	for _, opt := range opts {
		opt(&cfg)
	}

	codec := compress.NewLZ4Compressor()

	var result Result
	hdr := make([]byte, headerSize)

	for blockIndex := 0; ; blockIndex++ {
		n, err := io.ReadFull(r, hdr)
		if err != nil {
			if errors.Is(err, io.EOF) && n == 0 {
				if blockIndex == 0 {
					// A stream must contain at least one block; a
					// wholly empty input is truncated, not empty.
					return result, errs.ErrTruncatedStream
				}

				break
			}

			return result, errs.ErrTruncatedStream
		}

		uncompressedSize := int(cfg.order.Uint32(hdr[0:4]))
		compressedSize := int(cfg.order.Uint32(hdr[4:8]))

		if compressedSize == 0 {
			if uncompressedSize > 0 {
				result.Data = append(result.Data, make([]byte, uncompressedSize)...)
			}
			result.Stats = append(result.Stats, compress.CompressionStats{
				Algorithm:      compress.CompressionNone,
				OriginalSize:   int64(uncompressedSize),
				CompressedSize: 0,
			})
			result.BlockCount++

			continue
		}

		compressed := make([]byte, compressedSize)
		if _, err := io.ReadFull(r, compressed); err != nil {
			return result, errs.ErrTruncatedStream
		}

		decompressed, actual, err := decompressBlock(codec, compressed, uncompressedSize)
		if err != nil {
			return result, err
		}

		if actual != uncompressedSize {
			result.Warnings = append(result.Warnings, errs.LengthMismatch{
				BlockIndex: blockIndex,
				Declared:   uncompressedSize,
				Actual:     actual,
			})
		}

		result.Data = append(result.Data, decompressed...)
		result.Stats = append(result.Stats, compress.CompressionStats{
			Algorithm:      compress.CompressionLZ4,
			OriginalSize:   int64(uncompressedSize),
			CompressedSize: int64(compressedSize),
		})
		result.BlockCount++
	}

	return result, nil
}

// decompressBlock decompresses compressed against the declared uncompressed
// size, falling back to the codec's adaptive-size path if the declared size
// turns out to be too small for the actual payload.
func decompressBlock(codec compress.LZ4Compressor, compressed []byte, declaredSize int) ([]byte, int, error) {
	data, err := codec.DecompressExact(compressed, declaredSize)
	if err == nil {
		return data, len(data), nil
	}

	// The declared size undershot the real payload; retry without a
	// fixed target so we still recover the data and can report the
	// mismatch rather than failing the whole file.
	data, err = codec.Decompress(compressed)
	if err != nil {
		return nil, 0, err
	}

	return data, len(data), nil
}
