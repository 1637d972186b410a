package scsp

import (
	"github.com/himeope/scsp2json/cursor"
	"github.com/himeope/scsp2json/errs"
)

// Fixed absolute byte offsets into a decoded SCSP image. Every section
// count and pointer lives at a constant position; there is no leading
// TLV or section directory to walk.
const (
	offsetHeaderWidth     = 22
	offsetHeaderHeight    = 26
	offsetIKCount         = 54
	offsetSlotsCount      = 58
	offsetTransformCount  = 62
	offsetPathCount       = 66
	offsetSkinsCount      = 70
	offsetEventsCount     = 74
	offsetAnimationsCount = 78
	offsetHashPtr         = 82
	offsetSpinePtr        = 86
	offsetBonesCount      = 106
)

// headerPrecision is the fractional-digit precision the skeleton header's
// width/height are rounded to, narrower than the general 10-digit rule
// used everywhere else in the document.
const headerPrecision = 2

// Skeleton is the top-level metadata block every exported document opens
// with.
type Skeleton struct {
	Hash   string `json:"hash"`
	Spine  string `json:"spine"`
	X      cursor.Number `json:"x"`
	Y      cursor.Number `json:"y"`
	Width  cursor.Number `json:"width"`
	Height cursor.Number `json:"height"`
}

// parseSkeleton reads the fixed-offset header fields. x and y are always
// emitted as 0; SCSP carries no corresponding fields for them.
//
// Returns errs.ErrUnsupportedVersion if hash is empty, the same signal the
// original tool used to reject an image it didn't recognize.
func parseSkeleton(c *cursor.Cursor) (Skeleton, error) {
	width, err := c.Float32At(offsetHeaderWidth)
	if err != nil {
		return Skeleton{}, err
	}
	height, err := c.Float32At(offsetHeaderHeight)
	if err != nil {
		return Skeleton{}, err
	}

	hash := c.StringAt(offsetHashPtr)
	spine := c.StringAt(offsetSpinePtr)

	if hash == "" {
		return Skeleton{}, errs.ErrUnsupportedVersion
	}

	return Skeleton{
		Hash:   hash,
		Spine:  spine,
		X:      cursor.NewNumber(0),
		Y:      cursor.NewNumber(0),
		Width:  cursor.NewNumberWithPrecision(width.Float64(), headerPrecision),
		Height: cursor.NewNumberWithPrecision(height.Float64(), headerPrecision),
	}, nil
}
