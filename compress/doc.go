// Package compress provides the compression codec abstraction used to unwrap
// SCSP envelope blocks.
//
// # Overview
//
// The SCSP envelope (see the envelope package) wraps a raw skeleton image in
// a stream of blocks, each block independently compressed. This package
// defines the codec shape that unwrapping is built against:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
// Only two codecs are registered: CompressionNone (a block whose declared
// compressed length is zero, meaning "write N zero bytes") and
// CompressionLZ4 (the only compressed form SCSP envelopes are known to use).
// The envelope reader does not go through the registry: it calls
// LZ4Compressor directly and zero-fills CompressionNone blocks itself.
// GetCodec is available to other callers.
package compress
