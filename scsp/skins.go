package scsp

import "github.com/himeope/scsp2json/cursor"

var attachmentTypeNames = [...]string{
	"region", "boundingbox", "mesh", "linkedmesh", "path", "point", "clipping",
}

// Attachment is a single skin attachment. Its fields vary by Type, so it's
// kept as a loosely-typed map the way the reference tool builds its
// per-variant dict, rather than a struct with a field for every variant.
type Attachment map[string]any

// Skin is a named collection of slot attachments: skins[slot][name] holds
// the Attachment a slot displays when that skin is active.
type Skin struct {
	Name        string                       `json:"name"`
	Attachments map[string]map[string]Attachment `json:"attachments"`
}

func attachmentTypeName(id int8) string {
	if id < 0 || int(id) >= len(attachmentTypeNames) {
		return "mesh"
	}

	return attachmentTypeNames[id]
}

// parseSkins reads the skin table and every attachment it contains.
// p.skinNames and p.skins are populated for later sections (deform
// timelines resolve a skin_id against them).
func (p *parser) parseSkins() ([]Skin, error) {
	count := p.c.Int16()

	skins := make([]Skin, 0, count)
	p.skinNames = make([]string, 0, count)
	p.skins = make([]Skin, 0, count)

	for k := 0; k < int(count); k++ {
		name := p.c.String()

		skipCount := p.c.Int16()
		p.c.Skip(2 + int(skipCount)*2)

		attachmentsCount := p.c.Int16()
		attachments := make(map[string]map[string]Attachment)

		for j := 0; j < int(attachmentsCount); j++ {
			slotID := p.c.Int16()
			slotName := p.slotName(slotID)
			value := p.c.String()
			typeID := p.c.Int8()
			typeName := attachmentTypeName(typeID)

			p.c.Skip(1)
			pathPtr := p.c.Uint32()
			path := p.c.ResolveString(pathPtr)

			attachment, err := p.parseAttachmentBody(typeName, path)
			if err != nil {
				return nil, err
			}

			if attachments[slotName] == nil {
				attachments[slotName] = make(map[string]Attachment)
			}
			attachments[slotName][value] = attachment
		}

		skin := Skin{Name: name, Attachments: attachments}
		skins = append(skins, skin)
		p.skinNames = append(p.skinNames, name)
		p.skins = append(p.skins, skin)
	}

	return skins, nil
}

func (p *parser) parseAttachmentBody(typeName, path string) (Attachment, error) {
	c := p.c
	a := Attachment{"type": typeName}

	// Every variant except region carries a generic bone-weighted vertex
	// block right after the path pointer, parsed once up front and
	// reused by whichever variant branch below needs it.
	var vertices []cursor.Number
	var vertexCount int
	if typeName != "region" {
		var err error
		vertices, vertexCount, err = p.parseVertices()
		if err != nil {
			return nil, err
		}
	}

	switch typeName {
	case "boundingbox":
		a["vertexCount"] = vertexCount
		a["vertices"] = vertices
		a["path"] = path
		c.Skip(8)

	case "path":
		c.Skip(8)
		lengthsCount := c.Int16()
		lengths := make([]cursor.Number, 0, lengthsCount)
		for i := 0; i < int(lengthsCount); i++ {
			length, err := c.Float32()
			if err != nil {
				return nil, err
			}
			lengths = append(lengths, length)
		}
		closed := c.Bool8()
		constantSpeed := c.Bool8()
		a["closed"] = closed
		a["constantSpeed"] = constantSpeed
		a["lengths"] = lengths
		a["vertices"] = vertices
		a["vertexCount"] = vertexCount
		a["path"] = path

	case "region":
		fields := make([]cursor.Number, 7)
		for i := range fields {
			n, err := c.Float32()
			if err != nil {
				return nil, err
			}
			fields[i] = n
		}
		a["x"] = fields[0]
		a["y"] = fields[1]
		a["rotation"] = fields[2]
		a["scaleX"] = fields[3]
		a["scaleY"] = fields[4]
		a["width"] = fields[5]
		a["height"] = fields[6]
		c.Skip(6)
		c.Skip(86)
		regionPath := c.String()
		a["path"] = regionPath
		color, err := c.Color(true)
		if err != nil {
			return nil, err
		}
		if color != "FFFFFFFF" {
			a["color"] = color
		}

	case "clipping":
		c.Skip(8)
		endSlotID := c.Int16()
		a["end"] = p.slotName(endSlotID)
		a["vertices"] = vertices
		a["vertexCount"] = vertexCount
		a["path"] = path

	case "mesh", "linkedmesh":
		unknownCount := c.Int16()
		c.Skip(int(unknownCount)*4 + 4*6 + 8)

		uvsCount := c.Int16()
		uvs := make([]cursor.Number, 0, uvsCount)
		for i := 0; i < int(uvsCount); i++ {
			uv, err := c.Float32()
			if err != nil {
				return nil, err
			}
			uvs = append(uvs, uv)
		}

		trianglesCount := c.Int16()
		triangles := make([]int16, 0, trianglesCount)
		for i := 0; i < int(trianglesCount); i++ {
			triangles = append(triangles, c.Int16())
		}

		edgesCount := c.Int16()
		for i := 0; i < int(edgesCount); i++ {
			c.Int16()
		}

		meshPath := c.String()
		c.Skip(16)
		width, err := c.Float32()
		if err != nil {
			return nil, err
		}
		height, err := c.Float32()
		if err != nil {
			return nil, err
		}
		color, err := c.Color(true)
		if err != nil {
			return nil, err
		}
		hull := c.Int16()

		a["uvs"] = uvs
		a["triangles"] = triangles
		a["vertices"] = vertices
		a["hull"] = hull
		a["edges"] = []int16{}
		a["width"] = width
		a["height"] = height
		a["path"] = meshPath
		if color != "FFFFFFFF" {
			a["color"] = color
		}

		// Undocumented trailer: a FF FF FF 00 marker 14 bytes ahead means
		// 2 extra bytes follow; a leading 00 00 means a further 16-byte
		// block follows. Neither has a known semantic meaning.
		if marker := c.PeekBytesAt(c.Pos()+14, 4); len(marker) == 4 &&
			marker[0] == 0xFF && marker[1] == 0xFF && marker[2] == 0xFF && marker[3] == 0x00 {
			c.Skip(2)
		}
		if lead := c.PeekBytes(2); len(lead) == 2 && lead[0] == 0 && lead[1] == 0 {
			c.Skip(16)
		}
	}

	return a, nil
}
