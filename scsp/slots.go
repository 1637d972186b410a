package scsp

var blendModeNames = map[int16]string{1: "additive", 2: "multiply", 3: "screen"}

// Slot is a single slot entry.
type Slot struct {
	Name       string `json:"name"`
	Bone       string `json:"bone"`
	Color      string `json:"color,omitempty"`
	DarkColor  string `json:"darkColor,omitempty"`
	Attachment string `json:"attachment,omitempty"`
	Blend      string `json:"blend,omitempty"`
}

// parseSlots reads the slot table. Its entry count is mirrored in the
// fixed header at offsetSlotsCount, peeked without disturbing the
// cursor; the inline count field that precedes the slot array is then
// explicitly skipped.
func (p *parser) parseSlots() ([]Slot, error) {
	count := p.c.PeekInt16At(offsetSlotsCount)
	p.c.Skip(2)

	slots := make([]Slot, 0, count)
	p.slotNames = make([]string, 0, count)

	for i := 0; i < int(count); i++ {
		p.c.Int16() // leading marker, unused
		name := p.c.String()
		p.slotNames = append(p.slotNames, name)

		boneID := p.c.Int16()

		color, err := p.c.Color(true)
		if err != nil {
			return nil, err
		}
		darkColor, err := p.c.Color(true)
		if err != nil {
			return nil, err
		}
		p.c.Skip(1)

		attachment := p.c.String()
		blendMode := p.c.Int16()

		slot := Slot{Name: name, Bone: p.boneNameOrRoot(boneID)}
		if color != "FFFFFFFF" {
			slot.Color = color
		}
		if darkColor != "FFFFFFFF" && darkColor != "00000000" {
			if len(darkColor) >= 2 && darkColor[len(darkColor)-2:] == "FF" {
				darkColor = darkColor[:len(darkColor)-2]
			}
			slot.DarkColor = darkColor
		}
		if attachment != "" {
			slot.Attachment = attachment
		}
		if blendMode != 0 {
			slot.Blend = blendModeNames[blendMode]
		}

		slots = append(slots, slot)
	}

	return slots, nil
}

// slotName resolves a slot index to its name, or "" if out of range.
func (p *parser) slotName(id int16) string {
	if id < 0 || int(id) >= len(p.slotNames) {
		return ""
	}

	return p.slotNames[id]
}
