package scsp

import "github.com/himeope/scsp2json/cursor"

// EventDef is an event definition: the default int/float/string payload
// fired whenever a keyframe references this event by name, plus optional
// audio playback parameters.
type EventDef struct {
	Int     int16         `json:"int"`
	Float   cursor.Number `json:"float"`
	String  string        `json:"string"`
	Audio   string        `json:"audio,omitempty"`
	Volume  *cursor.Number `json:"volume,omitempty"`
	Balance *cursor.Number `json:"balance,omitempty"`
}

// parseEvents reads the event-definition table. Its entry count is
// mirrored in the fixed header at offsetEventsCount, peeked without
// disturbing the cursor, with the inline count field it shadows then
// explicitly skipped.
func (p *parser) parseEvents() (map[string]EventDef, error) {
	count := p.c.PeekInt16At(offsetEventsCount)
	p.c.Skip(2)

	events := make(map[string]EventDef, count)

	for i := 0; i < int(count); i++ {
		name := p.c.String()
		intValue := p.c.Int16()
		floatValue, err := p.c.Float32()
		if err != nil {
			return nil, err
		}
		p.c.Skip(2)
		str := p.c.String()
		audio := p.c.String()

		event := EventDef{Int: intValue, Float: floatValue, String: str}
		if audio != "" {
			event.Audio = audio
			volume, err := p.c.Float32()
			if err != nil {
				return nil, err
			}
			balance, err := p.c.Float32()
			if err != nil {
				return nil, err
			}
			event.Volume = &volume
			event.Balance = &balance
		} else {
			p.c.Skip(8)
		}

		events[name] = event
	}

	return events, nil
}
