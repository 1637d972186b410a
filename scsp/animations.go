package scsp

import (
	"encoding/binary"
	"math"

	"github.com/himeope/scsp2json/curve"
	"github.com/himeope/scsp2json/cursor"
)

// Frame is a single timeline keyframe. Its fields vary by timeline type,
// so (like Attachment) it's kept as a loosely-typed map.
type Frame map[string]any

// Animation is a single named animation clip.
type Animation struct {
	Bones      map[string]map[string][]Frame `json:"bones"`
	Slots      map[string]map[string]any     `json:"slots"`
	IK         map[string][]Frame            `json:"ik"`
	Transform  map[string][]Frame            `json:"transform"`
	Path       map[string]map[string][]Frame `json:"path"`
	Deform     map[string]map[string]map[string][]Frame `json:"deform"`
	DrawOrder  []Frame                       `json:"drawOrder,omitempty"`
	Duration   cursor.Number                 `json:"duration"`
	Events     []Frame                       `json:"events,omitempty"`
}

// deformResult is the reshaped output of a deform (type_id 6) timeline:
// its frames are keyed by skin index and attachment value name rather
// than returned as a flat list.
type deformResult struct {
	SkinID int16
	Key    string
	Frames []Frame
}

// parseAnimations reads the animation-clip table and every timeline it
// contains, dispatching on each timeline's type_id (0-14).
func (p *parser) parseAnimations() (map[string]Animation, error) {
	count := p.c.Int16()

	animations := make(map[string]Animation, count)

	for a := 0; a < int(count); a++ {
		key := p.c.String()
		duration, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		timelineCount := p.c.Int16()

		anim := Animation{
			Bones:     make(map[string]map[string][]Frame),
			Slots:     make(map[string]map[string]any),
			IK:        make(map[string][]Frame),
			Transform: make(map[string][]Frame),
			Path:      make(map[string]map[string][]Frame),
			Deform:    make(map[string]map[string]map[string][]Frame),
			Duration:  duration,
		}

		timelinesRead := 0
		for timelinesRead < int(timelineCount) {
			typeID := p.c.Int16()
			boneID := p.c.PeekInt16()
			if typeID != 7 && typeID != 8 {
				p.c.Skip(2)
			}

			name := p.timelineTargetName(typeID, boneID)

			switch typeID {
			case 0, 1, 2, 3:
				frames, _, err := p.parseTimeline(typeID)
				if err != nil {
					return nil, err
				}
				if anim.Bones[name] == nil {
					anim.Bones[name] = make(map[string][]Frame)
				}
				anim.Bones[name][boneTimelineKey(typeID)] = frames

			case 4:
				frames, err := p.parseAttachmentTimeline()
				if err != nil {
					return nil, err
				}
				if anim.Slots[name] == nil {
					anim.Slots[name] = make(map[string]any)
				}
				anim.Slots[name]["attachment"] = frames

			case 5:
				frames, err := p.parseColorTimeline()
				if err != nil {
					return nil, err
				}
				if anim.Slots[name] == nil {
					anim.Slots[name] = make(map[string]any)
				}
				anim.Slots[name]["color"] = frames

			case 6:
				_, deform, err := p.parseTimeline(typeID)
				if err != nil {
					return nil, err
				}
				p.applyDeformDelta(deform, name)
				attachmentName := p.skinName(deform.SkinID)
				if anim.Deform[attachmentName] == nil {
					anim.Deform[attachmentName] = make(map[string]map[string][]Frame)
				}
				if anim.Deform[attachmentName][name] == nil {
					anim.Deform[attachmentName][name] = make(map[string][]Frame)
				}
				anim.Deform[attachmentName][name][deform.Key] = deform.Frames

			case 7:
				events, err := p.parseEventTimeline()
				if err != nil {
					return nil, err
				}
				anim.Events = events

			case 8:
				frames, _, err := p.parseTimeline(typeID)
				if err != nil {
					return nil, err
				}
				anim.DrawOrder = frames

			case 9:
				frames, _, err := p.parseTimeline(typeID)
				if err != nil {
					return nil, err
				}
				anim.IK[name] = frames

			case 10:
				frames, _, err := p.parseTimeline(typeID)
				if err != nil {
					return nil, err
				}
				anim.Transform[name] = frames

			case 11, 12, 13:
				frames, _, err := p.parseTimeline(typeID)
				if err != nil {
					return nil, err
				}
				if anim.Path[name] == nil {
					anim.Path[name] = make(map[string][]Frame)
				}
				anim.Path[name][pathTimelineKey(typeID)] = frames

			case 14:
				frames, _, err := p.parseTimeline(typeID)
				if err != nil {
					return nil, err
				}
				if anim.Slots[name] == nil {
					anim.Slots[name] = make(map[string]any)
				}
				anim.Slots[name]["twoColor"] = frames

			default:
				timelinesRead = int(timelineCount)

				continue
			}

			timelinesRead++
		}

		animations[key] = anim
	}

	return animations, nil
}

func boneTimelineKey(typeID int16) string {
	switch typeID {
	case 0:
		return "rotate"
	case 1:
		return "translate"
	case 2:
		return "scale"
	default:
		return "shear"
	}
}

func pathTimelineKey(typeID int16) string {
	switch typeID {
	case 11:
		return "position"
	case 12:
		return "spacing"
	default:
		return "mix"
	}
}

func (p *parser) timelineTargetName(typeID, boneID int16) string {
	switch typeID {
	case 4, 5, 14, 6:
		return p.slotName(boneID)
	case 9:
		return p.ikName(boneID)
	case 10:
		return p.transformName(boneID)
	case 11, 12, 13:
		return p.pathName(boneID)
	case 0, 1, 2, 3:
		return p.boneName(boneID)
	default:
		return ""
	}
}

func (p *parser) ikName(id int16) string {
	if id < 0 || int(id) >= len(p.ikNames) {
		return ""
	}

	return p.ikNames[id]
}

func (p *parser) transformName(id int16) string {
	if id < 0 || int(id) >= len(p.transformNames) {
		return ""
	}

	return p.transformNames[id]
}

func (p *parser) pathName(id int16) string {
	if id < 0 || int(id) >= len(p.pathNames) {
		return ""
	}

	return p.pathNames[id]
}

func (p *parser) skinName(id int16) string {
	if id < 0 || int(id) >= len(p.skinNames) {
		return ""
	}

	return p.skinNames[id]
}

// parseTimeline implements the shared word-budget frame loop used by bone
// (0-3), ik (9), transform-constraint (10), path (11-13), two-color (14),
// deform (6) and drawOrder (8) timelines.
//
// The leading int16 is a word budget (one word per float/skip field a
// frame consumes), not a frame count. A shared curve block follows,
// attaching recovered Bezier parameters to all but the last frame; its
// count is always read, but its tag and sample data are only read and
// applied when the count is non-zero and type_id != 8. Finally, type_id 6 and 8 receive their own
// post-processing pass that reshapes frames into their final form.
func (p *parser) parseTimeline(typeID int16) ([]Frame, *deformResult, error) {
	budget := p.c.Int16()

	var frames []Frame
	words := int16(0)
	for words < budget {
		frame := Frame{}
		t, err := p.c.Float32()
		if err != nil {
			return nil, nil, err
		}
		frame["time"] = t

		switch typeID {
		case 0:
			angle, err := p.c.Float32()
			if err != nil {
				return nil, nil, err
			}
			frame["angle"] = angle
			words += 2
		case 1, 2, 3:
			x, err := p.c.Float32()
			if err != nil {
				return nil, nil, err
			}
			y, err := p.c.Float32()
			if err != nil {
				return nil, nil, err
			}
			frame["x"] = x
			frame["y"] = y
			words += 3
		case 11, 12:
			pos, err := p.c.Float32()
			if err != nil {
				return nil, nil, err
			}
			frame["position"] = pos
			words += 2
		case 14:
			light, err := p.c.Color(true)
			if err != nil {
				return nil, nil, err
			}
			dark, err := p.c.Color(false)
			if err != nil {
				return nil, nil, err
			}
			frame["light"] = light
			frame["dark"] = dark
			words += 8
		case 10:
			fs := make([]cursor.Number, 4)
			for i := range fs {
				n, err := p.c.Float32()
				if err != nil {
					return nil, nil, err
				}
				fs[i] = n
			}
			frame["rotateMix"] = fs[0]
			frame["translateMix"] = fs[1]
			frame["scaleMix"] = fs[2]
			frame["shearMix"] = fs[3]
			words += 5
		case 9:
			mix, err := p.c.Float32()
			if err != nil {
				return nil, nil, err
			}
			softness, err := p.c.Float32()
			if err != nil {
				return nil, nil, err
			}
			p.c.Skip(4)
			bendPositive, err := p.c.Float32()
			if err != nil {
				return nil, nil, err
			}
			stretch, err := p.c.Float32()
			if err != nil {
				return nil, nil, err
			}
			frame["mix"] = mix
			frame["softness"] = softness
			frame["bendPositive"] = bendPositive
			frame["stretch"] = stretch
			words += 6
		case 13:
			rotateMix, err := p.c.Float32()
			if err != nil {
				return nil, nil, err
			}
			translateMix, err := p.c.Float32()
			if err != nil {
				return nil, nil, err
			}
			frame["rotateMix"] = rotateMix
			frame["translateMix"] = translateMix
			words += 3
		default:
			words++
		}

		frames = append(frames, frame)
	}

	if err := p.applyCurves(frames, typeID); err != nil {
		return nil, nil, err
	}

	if typeID == 6 {
		deform, err := p.finishDeformTimeline(frames)

		return nil, deform, err
	}

	if typeID == 8 {
		p.finishDrawOrderTimeline(frames)
	}

	return frames, nil, nil
}

// applyCurves reads the shared curve block that follows every timeline's
// frame list: a count, then (for all but the last frame, and never for
// drawOrder) a 4-byte tag and 72-byte sample block per frame.
func (p *parser) applyCurves(frames []Frame, typeID int16) error {
	curveCount := p.c.Int16()
	if curveCount == 0 || typeID == 8 {
		return nil
	}

	for i := 0; i < len(frames)-1; i++ {
		tagBytes := p.c.PeekBytes(4)
		p.c.Skip(4)
		sampleBytes := p.c.PeekBytes(72)
		p.c.Skip(72)

		var tag [4]byte
		copy(tag[:], tagBytes)

		switch curve.ClassifyTag(tag) {
		case curve.TagStepped:
			frames[i]["curve"] = "stepped"
		case curve.TagLinear:
			// Default linear curve; nothing to attach.
		default:
			var points [9][2]float64
			for j := 0; j < 9; j++ {
				x := math.Float32frombits(binary.LittleEndian.Uint32(sampleBytes[j*8 : j*8+4]))
				y := math.Float32frombits(binary.LittleEndian.Uint32(sampleBytes[j*8+4 : j*8+8]))
				points[j] = [2]float64{float64(x), float64(y)}
			}

			params := curve.Fit(points)
			if !params.IsDefaultLinear() {
				frames[i]["curve"] = params.C1
				frames[i]["c2"] = params.C2
				frames[i]["c3"] = params.C3
				frames[i]["c4"] = params.C4
			}
		}
	}

	return nil
}

// finishDeformTimeline reads the deform timeline's trailer: per-frame
// vertex-delta blocks, then the attachment-value key and the skin index
// the deltas apply to.
func (p *parser) finishDeformTimeline(frames []Frame) (*deformResult, error) {
	count := p.c.Int16()

	reshaped := make([]Frame, 0, count)
	for i := 0; i < int(count) && i < len(frames); i++ {
		src := frames[i]
		offset := int(p.c.Int16()) * 4

		offsetCount := 0
		for p.c.Pos()+4 <= p.c.Len() && p.c.PeekInt16() == 0 && p.c.PeekInt16At(p.c.Pos()+2) == 0 {
			p.c.Skip(4)
			offsetCount += 4
		}
		leadingZeroWords := offsetCount

		var vertices []cursor.Number
		for offsetCount < offset {
			v, err := p.c.Float32()
			if err != nil {
				return nil, err
			}
			offsetCount += 4
			vertices = append(vertices, v)

			remaining := offset - offsetCount
			if remaining > 0 {
				tail := p.c.PeekBytes(remaining)
				allZero := true
				for _, b := range tail {
					if b != 0 {
						allZero = false

						break
					}
				}
				if allZero {
					p.c.Skip(remaining)

					break
				}
			}
		}

		out := Frame{"time": src["time"]}
		if len(vertices) > 0 {
			out["vertices"] = vertices
			if offset%4 == 0 && leadingZeroWords/4 != 0 {
				out["offset"] = leadingZeroWords / 4
			}
		}
		for _, k := range []string{"curve", "c2", "c3", "c4"} {
			if v, ok := src[k]; ok {
				out[k] = v
			}
		}

		reshaped = append(reshaped, out)
	}

	keyPtr := p.c.Uint32()
	key := p.c.ResolveString(keyPtr)

	skinID := p.c.PeekInt16()
	if int(skinID) >= len(p.skins) {
		skinID = 0
	} else {
		p.c.Skip(2)
	}

	return &deformResult{SkinID: skinID, Key: key, Frames: reshaped}, nil
}

// applyDeformDelta turns a deform timeline's absolute per-frame vertex
// positions into deltas against the referenced skin attachment's base
// vertices, dropping the "vertices" field entirely from any frame whose
// delta comes out all zero. A frame with no parsed vertices, or whose
// vertex count doesn't match the base attachment's, is left untouched.
func (p *parser) applyDeformDelta(deform *deformResult, slotName string) {
	base := p.baseDeformVertices(deform.SkinID, slotName, deform.Key)
	if base == nil {
		return
	}

	for _, frame := range deform.Frames {
		raw, ok := frame["vertices"].([]cursor.Number)
		if !ok || len(raw) != len(base) {
			continue
		}

		deltas := make([]cursor.Number, len(raw))
		allZero := true
		for i, v := range raw {
			d := v.Float64() - base[i].Float64()
			deltas[i] = cursor.NewNumber(d)
			if d != 0 {
				allZero = false
			}
		}

		if allZero {
			delete(frame, "vertices")
		} else {
			frame["vertices"] = deltas
		}
	}
}

// baseDeformVertices looks up the base (non-deformed) vertex list a
// deform timeline's frames are deltas against: the skin attachment named
// by skinID/slotName/key.
func (p *parser) baseDeformVertices(skinID int16, slotName, key string) []cursor.Number {
	if skinID < 0 || int(skinID) >= len(p.skins) {
		return nil
	}

	slotAttachments, ok := p.skins[skinID].Attachments[slotName]
	if !ok {
		return nil
	}

	attachment, ok := slotAttachments[key]
	if !ok {
		return nil
	}

	vertices, _ := attachment["vertices"].([]cursor.Number)

	return vertices
}

// finishDrawOrderTimeline reads the per-frame slot-reordering offsets a
// drawOrder timeline applies, mutating frames in place.
func (p *parser) finishDrawOrderTimeline(frames []Frame) {
	for _, frame := range frames {
		drawOrderCount := p.c.Int16()

		indexAt := make([]int16, drawOrderCount)
		for i := 0; i < int(drawOrderCount); i++ {
			indexAt[i] = p.c.Int16()
			p.c.Skip(2)
		}

		var offsets []map[string]any
		for i := 0; i < int(drawOrderCount); i++ {
			index := indexOf(indexAt, int16(i))
			if index != i {
				offsets = append(offsets, map[string]any{
					"slot":   p.slotName(int16(i)),
					"offset": index - i,
				})
			}
		}
		if offsets != nil {
			frame["offsets"] = offsets
		}
	}
}

func indexOf(s []int16, v int16) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

// parseAttachmentTimeline reads a type_id 4 (slot attachment) timeline:
// a literal frame count (not a word budget), each frame a bare time,
// followed by a redundant count and then one attachment name per frame.
func (p *parser) parseAttachmentTimeline() ([]Frame, error) {
	frameCount := p.c.Int16()

	frames := make([]Frame, 0, frameCount)
	for i := 0; i < int(frameCount); i++ {
		t, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		frames = append(frames, Frame{"time": t})
	}

	p.c.Int16() // redundant count

	for _, frame := range frames {
		name := p.c.String()
		if name != "" {
			frame["name"] = name
		} else {
			frame["name"] = nil
		}
	}

	return frames, nil
}

// parseColorTimeline reads a type_id 5 (slot color) timeline: a word
// budget (5 words per frame: time + RGBA), then a shared curve block.
func (p *parser) parseColorTimeline() ([]Frame, error) {
	budget := p.c.Int16()

	frames := make([]Frame, 0, budget/5)
	for i := 0; i < int(budget)/5; i++ {
		t, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		color, err := p.c.Color(true)
		if err != nil {
			return nil, err
		}
		frames = append(frames, Frame{"time": t, "color": color})
	}
	p.c.Skip(2)

	if err := p.applyCurves(frames, 5); err != nil {
		return nil, err
	}

	return frames, nil
}

// parseEventTimeline reads a type_id 7 (fired-event) timeline: a literal
// frame count, each frame a bare time, followed by one event name per
// frame.
func (p *parser) parseEventTimeline() ([]Frame, error) {
	count := p.c.Int16()

	frames := make([]Frame, 0, count)
	for i := 0; i < int(count); i++ {
		t, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		frames = append(frames, Frame{"time": t})
	}
	p.c.Skip(2)

	for _, frame := range frames {
		frame["name"] = p.c.String()
	}

	return frames, nil
}
