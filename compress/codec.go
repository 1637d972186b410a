package compress

import "fmt"

// CompressionType identifies which codec a block was compressed with.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed (zero-fill) block.
	CompressionLZ4  CompressionType = 0x2 // CompressionLZ4 represents an LZ4-block-compressed block.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a byte slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice produced by the matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes the outcome of unwrapping a single envelope block.
//
// This is surfaced by the envelope reader (envelope.Result.Stats) for
// callers that want to report how much a file actually shrank.
type CompressionStats struct {
	Algorithm      CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// Ratio returns compressed size over original size. Values below 1.0 indicate
// the block shrank; 0 if OriginalSize is zero.
func (s CompressionStats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
