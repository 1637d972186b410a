package cursor

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func floatBytes(v float32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))

	return b
}

func TestCursor_Color_RGB_NoAlphaChannel(t *testing.T) {
	var body []byte
	body = append(body, floatBytes(1)...)   // R
	body = append(body, floatBytes(0)...)   // G
	body = append(body, floatBytes(0.5)...) // B

	img := buildImage(t, body)
	c := New(img)
	c.Seek(8)

	hex, err := c.Color(false)
	require.NoError(t, err)
	require.Equal(t, "FF0080", hex)
}

func TestCursor_Color_RGBA(t *testing.T) {
	var body []byte
	body = append(body, floatBytes(0)...)
	body = append(body, floatBytes(1)...)
	body = append(body, floatBytes(0)...)
	body = append(body, floatBytes(0)...) // alpha fully transparent

	img := buildImage(t, body)
	c := New(img)
	c.Seek(8)

	hex, err := c.Color(true)
	require.NoError(t, err)
	require.Equal(t, "00FF0000", hex)
}
