package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func bezierPoint(t, c1, c3 float64) float64 {
	return 3*(1-t)*(1-t)*t*c1 + 3*(1-t)*t*t*c3 + t*t*t
}

func TestFit_RecoversKnownHandles(t *testing.T) {
	const c1, c2, c3, c4 = 0.25, 0.1, 0.75, 0.9

	var points [9][2]float64
	for i := 0; i < 9; i++ {
		tt := 0.1 + 0.1*float64(i)
		points[i] = [2]float64{bezierPoint(tt, c1, c3), bezierPoint(tt, c2, c4)}
	}

	p := Fit(points)
	require.InDelta(t, c1, p.C1, 1e-4)
	require.InDelta(t, c2, p.C2, 1e-4)
	require.InDelta(t, c3, p.C3, 1e-4)
	require.InDelta(t, c4, p.C4, 1e-4)
}

func TestFit_LinearIsDefaultLinear(t *testing.T) {
	var points [9][2]float64
	for i := 0; i < 9; i++ {
		tt := 0.1 + 0.1*float64(i)
		points[i] = [2]float64{bezierPoint(tt, 0, 1), bezierPoint(tt, 0, 1)}
	}

	p := Fit(points)
	require.True(t, p.IsDefaultLinear())
}

func TestClassifyTag(t *testing.T) {
	require.Equal(t, TagStepped, ClassifyTag([4]byte{0x00, 0x00, 0x80, 0x3F}))
	require.Equal(t, TagLinear, ClassifyTag([4]byte{0x00, 0x00, 0x00, 0x00}))
	require.Equal(t, TagBezier, ClassifyTag([4]byte{0x00, 0x00, 0x00, 0x40}))
}

func TestParams_IsDefaultLinear(t *testing.T) {
	require.True(t, Params{C1: 0, C2: 0, C3: 1, C4: 1}.IsDefaultLinear())
	require.False(t, Params{C1: 0.1, C2: 0, C3: 1, C4: 1}.IsDefaultLinear())
}
