package scsp

import "github.com/himeope/scsp2json/cursor"

// parseVertices reads a mesh/boundingbox/path/clipping attachment's vertex
// block.
//
// The leading int16 ("bone_info_count") is a 16-bit-word budget for a
// bone-index table, not a vertex count: each vertex entry contributes 1
// word for its own bone_count plus 1 word per bone it references, and the
// indexing pass stops once the accumulated word count reaches the budget.
// That index table is read in full (as a flat block of int16 words)
// before a second pass walks it and pulls the matching (x, y, weight)
// float triples, which live in their own contiguous block right after the
// index table rather than interleaved with it.
//
// When the budget is zero, the block instead holds a flat list of
// coord_weight_count floats with no bone-weight structure at all.
func (p *parser) parseVertices() ([]cursor.Number, int, error) {
	c := p.c

	boneInfoCount := c.Int16()
	coordWeightPos := c.Pos() + int(boneInfoCount)*2
	coordWeightCount := c.PeekInt16At(coordWeightPos)

	var boneInfo []int16
	words := int16(0)
	for words < boneInfoCount {
		boneCount := c.Int16()
		boneInfo = append(boneInfo, boneCount)
		words++

		for j := int16(0); j < boneCount; j++ {
			boneInfo = append(boneInfo, c.Int16())
			words++
		}

		if words >= boneInfoCount {
			break
		}
	}

	c.Skip(2)

	var vertices []cursor.Number
	vertexCount := 0

	idx := 0
	for idx < len(boneInfo) {
		boneCount := boneInfo[idx]
		idx++
		vertexCount++
		vertices = append(vertices, cursor.NewNumber(float64(boneCount)))

		for j := int16(0); j < boneCount; j++ {
			boneID := boneInfo[idx]
			idx++

			x, err := c.Float32()
			if err != nil {
				return nil, 0, err
			}
			y, err := c.Float32()
			if err != nil {
				return nil, 0, err
			}
			weight, err := c.Float32()
			if err != nil {
				return nil, 0, err
			}

			vertices = append(vertices, cursor.NewNumber(float64(boneID)), x, y, weight)
		}
	}

	if boneInfoCount == 0 && coordWeightCount != 0 {
		vertexCount = int(coordWeightCount) / 2
		for i := int16(0); i < coordWeightCount; i++ {
			v, err := c.Float32()
			if err != nil {
				return nil, 0, err
			}
			vertices = append(vertices, v)
		}
	}

	return vertices, vertexCount, nil
}
