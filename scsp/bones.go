package scsp

import "github.com/himeope/scsp2json/cursor"

// epsilon is the default-value tolerance below which a bone field is
// considered unset and omitted from the document, mirroring the
// reference tool's abs(value) > 0.001 checks.
const epsilon = 0.001

var transformModeNames = [...]string{
	"normal",
	"onlyTranslation",
	"noRotationOrReflection",
	"noScale",
	"noScaleOrReflection",
}

// Bone is a single skeleton bone entry.
type Bone struct {
	Name        string         `json:"name"`
	Parent      string         `json:"parent,omitempty"`
	Length      *cursor.Number `json:"length,omitempty"`
	X           *cursor.Number `json:"x,omitempty"`
	Y           *cursor.Number `json:"y,omitempty"`
	Rotation    *cursor.Number `json:"rotation,omitempty"`
	ScaleX      *cursor.Number `json:"scaleX,omitempty"`
	ScaleY      *cursor.Number `json:"scaleY,omitempty"`
	ShearX      *cursor.Number `json:"shearX,omitempty"`
	ShearY      *cursor.Number `json:"shearY,omitempty"`
	Transform   string         `json:"transform"`
	Skin        bool           `json:"skin,omitempty"`
}

// parseBones reads the BONES_COUNT-prefixed bone table and populates
// names, keyed by index, for slots/constraints sections parsed later to
// resolve their bone references against.
func (p *parser) parseBones() ([]Bone, error) {
	count := p.c.PeekInt16At(offsetBonesCount)
	p.c.Seek(offsetBonesCount)
	p.c.Int16()

	bones := make([]Bone, 0, count)
	p.boneNames = make([]string, 0, count)

	for i := 0; i < int(count); i++ {
		p.c.Int16() // bone_id, redundant with loop index
		name := p.c.String()
		p.boneNames = append(p.boneNames, name)

		parentID := p.c.Int16()
		length, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		x, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		y, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		rotation, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		scaleX, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		scaleY, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		shearX, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		shearY, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		transformMode := p.c.Int8()
		skinRequired := p.c.Bool8()
		p.c.Skip(1)

		bone := Bone{Name: name, Transform: transformModeName(transformMode)}
		if parentID != -1 {
			bone.Parent = p.boneNameOrRoot(parentID)
		}
		if absFloat(length.Float64()) > epsilon {
			bone.Length = &length
		}
		if absFloat(x.Float64()) > epsilon {
			bone.X = &x
		}
		if absFloat(y.Float64()) > epsilon {
			bone.Y = &y
		}
		if absFloat(rotation.Float64()) > epsilon {
			bone.Rotation = &rotation
		}
		if absFloat(scaleX.Float64()-1.0) > epsilon {
			bone.ScaleX = &scaleX
		}
		if absFloat(scaleY.Float64()-1.0) > epsilon {
			bone.ScaleY = &scaleY
		}
		if absFloat(shearX.Float64()) > epsilon {
			bone.ShearX = &shearX
		}
		if absFloat(shearY.Float64()) > epsilon {
			bone.ShearY = &shearY
		}
		if skinRequired != nil && *skinRequired {
			bone.Skin = true
		}

		bones = append(bones, bone)
	}

	p.c.Skip(2)

	return bones, nil
}

func transformModeName(mode int8) string {
	if mode < 0 || int(mode) >= len(transformModeNames) {
		return "normal"
	}

	return transformModeNames[mode]
}

// boneNameOrRoot resolves a bone index to its name, defaulting to "root"
// the way the reference tool does for an index it doesn't recognize.
func (p *parser) boneNameOrRoot(id int16) string {
	if id < 0 || int(id) >= len(p.boneNames) {
		return "root"
	}

	return p.boneNames[id]
}

// boneName resolves a bone index to its name, or "" if out of range.
func (p *parser) boneName(id int16) string {
	if id < 0 || int(id) >= len(p.boneNames) {
		return ""
	}

	return p.boneNames[id]
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
