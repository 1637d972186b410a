// Package curve recovers Bezier curve-handle parameters from the 9 sample
// points SCSP bakes into every timeline frame transition, the same
// closed-form least-squares fit the format's reference tooling uses.
package curve

import "math"

// sampleCount is the number of (x, y) samples baked into a curve block;
// SCSP always stores exactly 9.
const sampleCount = 9

// precision is the fractional-digit precision curve parameters are
// rounded to before being compared against the default-linear sentinel.
const precision = 6

// Tag classifies the 4 raw bytes preceding a curve's 72-byte sample block.
type Tag uint8

const (
	// TagBezier means the sample block holds a genuine Bezier fit.
	TagBezier Tag = iota
	// TagStepped is Spine's float 1.0 sentinel.
	TagStepped
	// TagLinear is the 0.0 sentinel; Params is the identity curve.
	TagLinear
)

// ClassifyTag inspects the 4 raw bytes preceding a curve's sample block and
// returns which of the two sentinel values (if any) it matches.
func ClassifyTag(raw [4]byte) Tag {
	switch raw {
	case [4]byte{0x00, 0x00, 0x80, 0x3F}: // 1.0f
		return TagStepped
	case [4]byte{0x00, 0x00, 0x00, 0x00}: // 0.0f
		return TagLinear
	default:
		return TagBezier
	}
}

// Params holds the four Bezier handle coordinates Spine's curve timeline
// format expects: (c1, c2) is the first control point, (c3, c4) the second.
type Params struct {
	C1, C2, C3, C4 float64
}

// IsDefaultLinear reports whether p is indistinguishable from the default
// linear curve (0, 0, 1, 1), the shape callers should omit rather than emit.
func (p Params) IsDefaultLinear() bool {
	return p.C1 == 0 && p.C2 == 0 && p.C3 == 1 && p.C4 == 1
}

// Fit recovers Bezier handle parameters from 9 (x, y) sample points taken
// at t = 0.1, 0.2, ..., 0.9 along the curve.
//
// The underlying model is a cubic Bezier with fixed endpoints (0,0) and
// (1,1): x(t) = 3(1-t)^2*t*c1 + 3(1-t)*t^2*c3 + t^3, and similarly for y
// using c2/c4. Subtracting the t^3 term leaves a linear system in (c1, c3)
// solved by closed-form least squares, since the 9x2 design matrix is the
// same for both axes.
func Fit(points [sampleCount][2]float64) Params {
	var sumA1Sq, sumA2Sq, sumA1A2, sumA1Bx, sumA2Bx, sumA1By, sumA2By float64

	for i := 0; i < sampleCount; i++ {
		t := 0.1 + 0.1*float64(i)
		a1 := 3 * (1 - t) * (1 - t) * t
		a2 := 3 * (1 - t) * t * t
		t3 := t * t * t

		bx := points[i][0] - t3
		by := points[i][1] - t3

		sumA1Sq += a1 * a1
		sumA2Sq += a2 * a2
		sumA1A2 += a1 * a2
		sumA1Bx += a1 * bx
		sumA2Bx += a2 * bx
		sumA1By += a1 * by
		sumA2By += a2 * by
	}

	cx1, cx2 := solve2x2(sumA1Sq, sumA1A2, sumA1A2, sumA2Sq, sumA1Bx, sumA2Bx)
	cy1, cy2 := solve2x2(sumA1Sq, sumA1A2, sumA1A2, sumA2Sq, sumA1By, sumA2By)

	return Params{
		C1: round(clamp01(cx1), precision),
		C2: round(clamp01(cy1), precision),
		C3: round(clamp01(cx2), precision),
		C4: round(clamp01(cy2), precision),
	}
}

// solve2x2 solves the normal-equations system [[a, b], [c, d]] * [x, y] = [e, f].
func solve2x2(a, b, c, d, e, f float64) (float64, float64) {
	det := a*d - b*c
	if det == 0 {
		return 0, 0
	}

	x := (e*d - b*f) / det
	y := (a*f - e*c) / det

	return x, y
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func round(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))

	return math.Round(v*scale) / scale
}
