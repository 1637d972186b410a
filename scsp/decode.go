// Package scsp decodes a compiled skeleton-animation container (SCSP)
// into the structures a portable skeletal-animation document is built
// from: bones, slots, constraints, skins, events and animations.
package scsp

import "github.com/himeope/scsp2json/cursor"

// parser holds decode-time state: the byte cursor and the name lookups
// later sections resolve their index references against. Names are
// populated strictly in section order (bones, then ik, slots, transform,
// path, skins), mirroring how later sections can only reference earlier
// ones.
type parser struct {
	c *cursor.Cursor

	boneNames      []string
	ikNames        []string
	slotNames      []string
	transformNames []string
	pathNames      []string
	skinNames      []string
	skins          []Skin
}

// Decode parses a fully decompressed SCSP image (the output of
// envelope.Decode) into a Document.
//
// Returns errs.ErrUnsupportedVersion if the skeleton header's hash is
// empty, errs.ErrInvalidFloat if any float field decodes to NaN.
func Decode(data []byte) (*Document, error) {
	p := &parser{c: cursor.New(data)}

	skeleton, err := parseSkeleton(p.c)
	if err != nil {
		return nil, err
	}

	bones, err := p.parseBones()
	if err != nil {
		return nil, err
	}

	ik, err := p.parseIK()
	if err != nil {
		return nil, err
	}

	slots, err := p.parseSlots()
	if err != nil {
		return nil, err
	}

	transform, err := p.parseTransformConstraints()
	if err != nil {
		return nil, err
	}

	path, err := p.parsePathConstraints()
	if err != nil {
		return nil, err
	}

	skins, err := p.parseSkins()
	if err != nil {
		return nil, err
	}

	events, err := p.parseEvents()
	if err != nil {
		return nil, err
	}

	animations, err := p.parseAnimations()
	if err != nil {
		return nil, err
	}

	return &Document{
		Skeleton:   skeleton,
		Bones:      bones,
		IK:         ik,
		Slots:      slots,
		Transform:  transform,
		Path:       path,
		Skins:      skins,
		Events:     events,
		Animations: animations,
	}, nil
}
