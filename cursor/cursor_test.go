package cursor

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/himeope/scsp2json/errs"
	"github.com/stretchr/testify/require"
)

// buildImage constructs a minimal SCSP image: an 8-byte string-table
// locator followed by body bytes followed by a NUL-separated string table.
func buildImage(t *testing.T, body []byte, strings_ ...string) []byte {
	t.Helper()

	var table []byte
	for _, s := range strings_ {
		table = append(table, s...)
		table = append(table, 0)
	}

	img := make([]byte, 8)
	binary.LittleEndian.PutUint32(img[0:4], uint32(len(body)))
	binary.LittleEndian.PutUint32(img[4:8], uint32(len(table)))
	img = append(img, body...)
	img = append(img, table...)

	return img
}

func TestCursor_TypedReads(t *testing.T) {
	body := make([]byte, 0)
	body = append(body, 0xFE)                          // int8 -2
	body = append(body, 0x02, 0x00)                     // int16 2
	body = append(body, 0x05, 0x00, 0x00, 0x00)         // uint32 5
	bits := math.Float32bits(3.5)
	fbytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(fbytes, bits)
	body = append(body, fbytes...)

	img := buildImage(t, body)
	c := New(img)
	c.Seek(8)

	require.Equal(t, int8(-2), c.Int8())
	require.Equal(t, int16(2), c.Int16())
	require.Equal(t, uint32(5), c.Uint32())

	n, err := c.Float32()
	require.NoError(t, err)
	require.Equal(t, "3.5", n.Format())
}

func TestCursor_PeekDoesNotAdvance(t *testing.T) {
	body := []byte{0x2A, 0x00, 0x99, 0x00}
	img := buildImage(t, body)
	c := New(img)
	c.Seek(8)

	require.Equal(t, int16(0x2A), c.PeekInt16())
	require.Equal(t, int16(0x2A), c.PeekInt16())
	require.Equal(t, int16(0x2A), c.Int16())
	require.Equal(t, int16(0x99), c.Int16())
}

func TestCursor_Float32_NaN(t *testing.T) {
	nanBits := uint32(0x7FC00000)
	body := make([]byte, 4)
	binary.LittleEndian.PutUint32(body, nanBits)

	img := buildImage(t, body)
	c := New(img)
	c.Seek(8)

	_, err := c.Float32()
	require.ErrorIs(t, err, errs.ErrInvalidFloat)
}

func TestCursor_Bool8(t *testing.T) {
	body := []byte{0x00, 0x01, 0xFF}
	img := buildImage(t, body)
	c := New(img)
	c.Seek(8)

	f := c.Bool8()
	require.NotNil(t, f)
	require.False(t, *f)

	tr := c.Bool8()
	require.NotNil(t, tr)
	require.True(t, *tr)

	require.Nil(t, c.Bool8())
}

func TestCursor_Bool16(t *testing.T) {
	body := []byte{0x01, 0x00, 0xFF, 0xFF, 0x00, 0x00}
	img := buildImage(t, body)
	c := New(img)
	c.Seek(8)

	require.True(t, c.Bool16())
	require.False(t, c.Bool16())
	require.False(t, c.Bool16())
}

func TestCursor_StringResolution(t *testing.T) {
	img := buildImage(t, nil, "walk", "idle")
	c := New(img)

	require.Equal(t, "walk", c.ResolveString(0))
	require.Equal(t, "idle", c.ResolveString(5))
	require.Equal(t, "", c.ResolveString(9999))
}

func TestCursor_String_ReadsOffsetThenResolves(t *testing.T) {
	var offsetBytes [4]byte
	binary.LittleEndian.PutUint32(offsetBytes[:], 5) // points at "idle"

	img := buildImage(t, offsetBytes[:], "walk", "idle")
	c := New(img)
	c.Seek(8)

	require.Equal(t, "idle", c.String())
	require.Equal(t, 12, c.Pos())
}

func TestCursor_StringAt_DoesNotAdvance(t *testing.T) {
	var offsetBytes [4]byte
	binary.LittleEndian.PutUint32(offsetBytes[:], 0)

	img := buildImage(t, offsetBytes[:], "walk")
	c := New(img)
	c.Seek(20)

	require.Equal(t, "walk", c.StringAt(8))
	require.Equal(t, 20, c.Pos())
}
