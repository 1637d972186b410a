package scsp

import (
	"testing"

	"github.com/himeope/scsp2json/cursor"
	"github.com/stretchr/testify/require"
)

func numbers(vs ...float64) []cursor.Number {
	out := make([]cursor.Number, len(vs))
	for i, v := range vs {
		out[i] = cursor.NewNumber(v)
	}

	return out
}

func numberValues(t *testing.T, ns []cursor.Number) []float64 {
	t.Helper()

	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = n.Float64()
	}

	return out
}

func parserWithSkin(slotName, key string, base []cursor.Number) *parser {
	return &parser{
		skins: []Skin{
			{
				Name: "default",
				Attachments: map[string]map[string]Attachment{
					slotName: {
						key: Attachment{"type": "mesh", "vertices": base},
					},
				},
			},
		},
	}
}

func TestApplyDeformDelta_SubtractsBaseVertices(t *testing.T) {
	p := parserWithSkin("arm", "arm-mesh", numbers(1, 2, 3))
	frame := Frame{"time": cursor.NewNumber(0), "vertices": numbers(1.5, 2.5, 4)}
	deform := &deformResult{SkinID: 0, Key: "arm-mesh", Frames: []Frame{frame}}

	p.applyDeformDelta(deform, "arm")

	got, ok := frame["vertices"].([]cursor.Number)
	require.True(t, ok)
	require.Equal(t, []float64{0.5, 0.5, 1}, numberValues(t, got))
}

func TestApplyDeformDelta_AllZeroDropsVerticesField(t *testing.T) {
	p := parserWithSkin("arm", "arm-mesh", numbers(1, 2, 3))
	frame := Frame{"time": cursor.NewNumber(0), "vertices": numbers(1, 2, 3)}
	deform := &deformResult{SkinID: 0, Key: "arm-mesh", Frames: []Frame{frame}}

	p.applyDeformDelta(deform, "arm")

	_, ok := frame["vertices"]
	require.False(t, ok)
}

func TestApplyDeformDelta_LengthMismatchLeavesFrameUntouched(t *testing.T) {
	p := parserWithSkin("arm", "arm-mesh", numbers(1, 2))
	frame := Frame{"time": cursor.NewNumber(0), "vertices": numbers(1, 2, 3)}
	deform := &deformResult{SkinID: 0, Key: "arm-mesh", Frames: []Frame{frame}}

	p.applyDeformDelta(deform, "arm")

	got, ok := frame["vertices"].([]cursor.Number)
	require.True(t, ok)
	require.Equal(t, []float64{1, 2, 3}, numberValues(t, got))
}

func TestApplyDeformDelta_UnknownAttachmentLeavesFrameUntouched(t *testing.T) {
	p := parserWithSkin("arm", "arm-mesh", numbers(1, 2, 3))
	frame := Frame{"time": cursor.NewNumber(0), "vertices": numbers(4, 5, 6)}
	deform := &deformResult{SkinID: 0, Key: "other-mesh", Frames: []Frame{frame}}

	p.applyDeformDelta(deform, "arm")

	got, ok := frame["vertices"].([]cursor.Number)
	require.True(t, ok)
	require.Equal(t, []float64{4, 5, 6}, numberValues(t, got))
}
