// Package geometry holds the inline vertex data of the demos together with
// the attribute layouts needed to upload it.
package geometry

const floatSize = 4

// Attribute describes one vertex attribute in an interleaved float32 buffer
type Attribute struct {
	Index      uint32
	Components int32
	Offset     int // in bytes
}

// Layout describes an interleaved float32 vertex format
type Layout struct {
	Stride     int32 // in bytes
	Attributes []Attribute
}

// FloatsPerVertex returns the number of float32 values per vertex
func (l Layout) FloatsPerVertex() int {
	return int(l.Stride) / floatSize
}

// VertexCount returns how many whole vertices data holds in this layout
func (l Layout) VertexCount(data []float32) int {
	n := l.FloatsPerVertex()
	if n == 0 {
		return 0
	}
	return len(data) / n
}

func interleaved(components ...int32) Layout {
	var layout Layout
	offset := 0
	for i, c := range components {
		layout.Attributes = append(layout.Attributes, Attribute{
			Index:      uint32(i),
			Components: c,
			Offset:     offset,
		})
		offset += int(c) * floatSize
	}
	layout.Stride = int32(offset)
	return layout
}

var (
	// PositionLayout is position only (3 floats)
	PositionLayout = interleaved(3)
	// PositionColorLayout is position (3) and color (3)
	PositionColorLayout = interleaved(3, 3)
	// PositionNormalUVLayout is position (3), normal (3) and texture coordinates (2)
	PositionNormalUVLayout = interleaved(3, 3, 2)
)
