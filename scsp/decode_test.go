package scsp

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/himeope/scsp2json/errs"
	"github.com/stretchr/testify/require"
)

// buildMinimalImage constructs a valid, entirely-empty SCSP image: a
// skeleton header with a recognizable hash/spine version and every
// section count set to zero.
func buildMinimalImage(t *testing.T, width, height float32, hash, spine string) []byte {
	t.Helper()

	const bodyLen = 122
	body := make([]byte, bodyLen)

	// Header offsets are absolute within the image, which opens with the
	// 8-byte string-table locator, so a field at offset N sits at body[N-8].
	const locatorLen = 8
	binary.LittleEndian.PutUint32(body[offsetHeaderWidth-locatorLen:], math.Float32bits(width))
	binary.LittleEndian.PutUint32(body[offsetHeaderHeight-locatorLen:], math.Float32bits(height))

	var table []byte
	hashOffset := uint32(len(table))
	table = append(table, hash...)
	table = append(table, 0)
	spineOffset := uint32(len(table))
	table = append(table, spine...)
	table = append(table, 0)

	binary.LittleEndian.PutUint32(body[offsetHashPtr-locatorLen:], hashOffset)
	binary.LittleEndian.PutUint32(body[offsetSpinePtr-locatorLen:], spineOffset)

	img := make([]byte, 8)
	binary.LittleEndian.PutUint32(img[0:4], uint32(len(body)))
	binary.LittleEndian.PutUint32(img[4:8], uint32(len(table)))
	img = append(img, body...)
	img = append(img, table...)

	return img
}

func TestDecode_MinimalEmptyImage(t *testing.T) {
	img := buildMinimalImage(t, 100, 200, "testhash", "3.8.99")

	doc, err := Decode(img)
	require.NoError(t, err)

	require.Equal(t, "testhash", doc.Skeleton.Hash)
	require.Equal(t, "3.8.99", doc.Skeleton.Spine)
	require.Equal(t, "100", doc.Skeleton.Width.Format())
	require.Equal(t, "200", doc.Skeleton.Height.Format())
	require.Equal(t, "0", doc.Skeleton.X.Format())
	require.Equal(t, "0", doc.Skeleton.Y.Format())

	require.Empty(t, doc.Bones)
	require.Empty(t, doc.IK)
	require.Empty(t, doc.Slots)
	require.Empty(t, doc.Transform)
	require.Empty(t, doc.Path)
	require.Empty(t, doc.Skins)
	require.Empty(t, doc.Events)
	require.Empty(t, doc.Animations)
}

func TestDecode_EmptyHashIsUnsupportedVersion(t *testing.T) {
	img := buildMinimalImage(t, 1, 1, "", "3.8.99")

	_, err := Decode(img)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestFingerprint_StableAcrossIdenticalInput(t *testing.T) {
	img := buildMinimalImage(t, 100, 200, "testhash", "3.8.99")

	docA, err := Decode(img)
	require.NoError(t, err)
	docB, err := Decode(img)
	require.NoError(t, err)

	require.Equal(t, Fingerprint(docA), Fingerprint(docB))

	other, err := Decode(buildMinimalImage(t, 100, 200, "otherhash", "3.8.99"))
	require.NoError(t, err)
	require.NotEqual(t, Fingerprint(docA), Fingerprint(other))
}

func TestTransformModeName(t *testing.T) {
	require.Equal(t, "normal", transformModeName(0))
	require.Equal(t, "onlyTranslation", transformModeName(1))
	require.Equal(t, "normal", transformModeName(99))
}

func TestAttachmentTypeName(t *testing.T) {
	require.Equal(t, "region", attachmentTypeName(0))
	require.Equal(t, "clipping", attachmentTypeName(6))
	require.Equal(t, "mesh", attachmentTypeName(42))
}

func TestIndexOf(t *testing.T) {
	require.Equal(t, 2, indexOf([]int16{5, 3, 1}, 1))
	require.Equal(t, -1, indexOf([]int16{5, 3, 1}, 9))
}
