package envelope

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/himeope/scsp2json/errs"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

func blockHeader(order binary.ByteOrder, uncompressed, compressed uint32) []byte {
	b := make([]byte, headerSize)
	order.PutUint32(b[0:4], uncompressed)
	order.PutUint32(b[4:8], compressed)

	return b
}

func lz4CompressBlock(t *testing.T, data []byte) []byte {
	t.Helper()

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	var c lz4.Compressor
	n, err := c.CompressBlock(data, dst)
	require.NoError(t, err)

	return dst[:n]
}

func TestDecode_EmptyStream(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil))
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
}

func TestDecode_SingleZeroBlock(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(blockHeader(binary.LittleEndian, 16, 0))

	result, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 16), result.Data)
	require.Equal(t, 1, result.BlockCount)
	require.Empty(t, result.Warnings)
}

func TestDecode_MultipleBlocksConcatenated(t *testing.T) {
	payloadA := []byte("the quick brown fox jumps over the lazy dog")
	payloadB := []byte("another block of bytes to verify concatenation works")

	var buf bytes.Buffer
	for _, payload := range [][]byte{payloadA, payloadB} {
		compressed := lz4CompressBlock(t, payload)
		buf.Write(blockHeader(binary.LittleEndian, uint32(len(payload)), uint32(len(compressed))))
		buf.Write(compressed)
	}

	result, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, append(append([]byte{}, payloadA...), payloadB...), result.Data)
	require.Equal(t, 2, result.BlockCount)
}

func TestDecode_BigEndianHeader(t *testing.T) {
	payload := []byte("big endian header, little endian body is orthogonal to this")
	compressed := lz4CompressBlock(t, payload)

	var buf bytes.Buffer
	buf.Write(blockHeader(binary.BigEndian, uint32(len(payload)), uint32(len(compressed))))
	buf.Write(compressed)

	result, err := Decode(&buf, WithBigEndian())
	require.NoError(t, err)
	require.Equal(t, payload, result.Data)
}

func TestDecode_TruncatedHeader(t *testing.T) {
	buf := bytes.NewReader([]byte{1, 2, 3})
	_, err := Decode(buf)
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
}

func TestDecode_TruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(blockHeader(binary.LittleEndian, 100, 50))
	buf.Write(make([]byte, 10)) // short of the declared 50 compressed bytes

	_, err := Decode(&buf)
	require.ErrorIs(t, err, errs.ErrTruncatedStream)
}

func TestDecode_LengthMismatchIsWarningNotFatal(t *testing.T) {
	payload := []byte("a payload whose declared size we will understate on purpose here")
	compressed := lz4CompressBlock(t, payload)

	var buf bytes.Buffer
	// Declare a smaller uncompressed size than the real payload.
	buf.Write(blockHeader(binary.LittleEndian, uint32(len(payload)-10), uint32(len(compressed))))
	buf.Write(compressed)

	result, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, payload, result.Data)
	require.Len(t, result.Warnings, 1)

	var mismatch errs.LengthMismatch
	require.True(t, errors.As(result.Warnings[0], &mismatch))
	require.Equal(t, len(payload), mismatch.Actual)
}
