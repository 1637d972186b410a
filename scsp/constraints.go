package scsp

import "github.com/himeope/scsp2json/cursor"

// IKConstraint is an inverse-kinematics constraint entry. mix and softness
// carry no distinguishable field in the decoded layout, so both are
// emitted at their Spine defaults (see REDESIGN FLAGS).
type IKConstraint struct {
	Name         string   `json:"name"`
	Order        int16    `json:"order"`
	Bones        []string `json:"bones"`
	Target       string   `json:"target"`
	Mix          float64  `json:"mix"`
	Softness     float64  `json:"softness"`
	BendPositive bool     `json:"bendPositive"`
	Compress     bool     `json:"compress,omitempty"`
	Stretch      bool     `json:"stretch,omitempty"`
}

// parseIK reads the IK constraint table. Its entry count is mirrored in
// the fixed header at offsetIKCount, peeked without disturbing the
// cursor: the inline count field the header shadows was already
// consumed by parseBones's trailing 2-byte skip.
func (p *parser) parseIK() ([]IKConstraint, error) {
	count := p.c.PeekInt16At(offsetIKCount)

	constraints := make([]IKConstraint, 0, count)
	p.ikNames = make([]string, 0, count)

	for i := 0; i < int(count); i++ {
		name := p.c.String()
		p.ikNames = append(p.ikNames, name)

		order := p.c.Int16()
		p.c.Skip(3)
		bendPositive := p.c.Bool16()
		p.c.Skip(2)
		compress := p.c.Bool16()
		p.c.Skip(7)
		stretch := p.c.Bool16()
		targetBoneID := p.c.Int16()
		target := p.boneName(targetBoneID)
		boneCount := p.c.Int16()

		bones := make([]string, 0, boneCount)
		for j := 0; j < int(boneCount); j++ {
			bones = append(bones, p.boneName(p.c.Int16()))
		}

		constraints = append(constraints, IKConstraint{
			Name:         name,
			Order:        order,
			Bones:        bones,
			Target:       target,
			Mix:          1,
			Softness:     0,
			BendPositive: bendPositive,
			Compress:     compress,
			Stretch:      stretch,
		})
	}

	return constraints, nil
}

// TransformConstraint is a transform constraint entry.
type TransformConstraint struct {
	Name         string        `json:"name"`
	Order        int16         `json:"order"`
	Skin         *bool         `json:"skin,omitempty"`
	Target       string        `json:"target"`
	Bones        []string      `json:"bones"`
	RotateMix    cursor.Number `json:"rotateMix"`
	TranslateMix cursor.Number `json:"translateMix"`
	ScaleMix     cursor.Number `json:"scaleMix"`
	ShearMix     cursor.Number `json:"shearMix"`
	Rotation     cursor.Number `json:"rotation"`
	X            cursor.Number `json:"x"`
	Y            cursor.Number `json:"y"`
	ScaleX       cursor.Number `json:"scaleX"`
	ScaleY       cursor.Number `json:"scaleY"`
	ShearY       cursor.Number `json:"shearY"`
	Relative     *bool         `json:"relative,omitempty"`
	Local        *bool         `json:"local,omitempty"`
}

func (p *parser) parseTransformConstraints() ([]TransformConstraint, error) {
	count := p.c.Int16()

	constraints := make([]TransformConstraint, 0, count)
	p.transformNames = make([]string, 0, count)

	for i := 0; i < int(count); i++ {
		name := p.c.String()
		p.transformNames = append(p.transformNames, name)

		order := p.c.Int16()
		skin := p.c.Bool8()
		p.c.Skip(2)

		floats := make([]cursor.Number, 10)
		for j := range floats {
			n, err := p.c.Float32()
			if err != nil {
				return nil, err
			}
			floats[j] = n
		}

		relative := p.c.Bool8()
		local := p.c.Bool8()
		targetBoneID := p.c.Int16()
		target := p.boneName(targetBoneID)
		boneCount := p.c.Int16()

		bones := make([]string, 0, boneCount)
		for j := 0; j < int(boneCount); j++ {
			bones = append(bones, p.boneName(p.c.Int16()))
		}

		constraints = append(constraints, TransformConstraint{
			Name:         name,
			Order:        order,
			Skin:         skin,
			Target:       target,
			Bones:        bones,
			RotateMix:    floats[0],
			TranslateMix: floats[1],
			ScaleMix:     floats[2],
			ShearMix:     floats[3],
			Rotation:     floats[4],
			X:            floats[5],
			Y:            floats[6],
			ScaleX:       floats[7],
			ScaleY:       floats[8],
			ShearY:       floats[9],
			Relative:     relative,
			Local:        local,
		})
	}

	return constraints, nil
}

var pathSpacingModeNames = map[int16]string{0: "length", 1: "fixed", 2: "percent", 3: "proportional"}
var pathRotateModeNames = map[int16]string{0: "tangent", 1: "chain", 2: "chainScale"}

// PathConstraint is a path constraint entry.
type PathConstraint struct {
	Name         string        `json:"name"`
	Order        int16         `json:"order"`
	Skin         *bool         `json:"skin,omitempty"`
	PositionMode string        `json:"positionMode"`
	SpacingMode  string        `json:"spacingMode"`
	RotateMode   string        `json:"rotateMode"`
	Rotation     cursor.Number `json:"rotation"`
	Position     cursor.Number `json:"position"`
	Spacing      cursor.Number `json:"spacing"`
	RotateMix    cursor.Number `json:"rotateMix"`
	TranslateMix cursor.Number `json:"translateMix"`
	Target       string        `json:"target"`
	Bones        []string      `json:"bones"`
}

func (p *parser) parsePathConstraints() ([]PathConstraint, error) {
	count := p.c.Int16()

	constraints := make([]PathConstraint, 0, count)
	p.pathNames = make([]string, 0, count)

	for i := 0; i < int(count); i++ {
		name := p.c.String()
		order := p.c.Int16()
		skin := p.c.Bool8()
		p.c.Skip(2)

		positionMode := "percent"
		if p.c.Int16() == 0 {
			positionMode = "fixed"
		}
		spacingMode := pathSpacingModeNames[p.c.Int16()]
		rotateMode := pathRotateModeNames[p.c.Int16()]

		floats := make([]cursor.Number, 5)
		for j := range floats {
			n, err := p.c.Float32()
			if err != nil {
				return nil, err
			}
			floats[j] = n
		}

		targetSlotID := p.c.Int16()
		target := p.slotName(targetSlotID)
		boneCount := p.c.Int16()

		bones := make([]string, 0, boneCount)
		for j := 0; j < int(boneCount); j++ {
			bones = append(bones, p.boneName(p.c.Int16()))
		}

		p.pathNames = append(p.pathNames, name)

		constraints = append(constraints, PathConstraint{
			Name:         name,
			Order:        order,
			Skin:         skin,
			PositionMode: positionMode,
			SpacingMode:  spacingMode,
			RotateMode:   rotateMode,
			Rotation:     floats[0],
			Position:     floats[1],
			Spacing:      floats[2],
			RotateMix:    floats[3],
			TranslateMix: floats[4],
			Target:       target,
			Bones:        bones,
		})
	}

	return constraints, nil
}
