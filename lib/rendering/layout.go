package rendering

import "fmt"

// BufferElement describes one vertex attribute inside a vertex buffer.
type BufferElement int

const (
	Float1 BufferElement = iota + 1
	Float2
	Float3
	Float4
)

const f32 = 4

func (e BufferElement) Count() int32 {
	switch e {
	case Float1, Float2, Float3, Float4:
		return int32(e)
	}
	panic(fmt.Sprintf("unknown buffer element %d", int(e)))
}

func (e BufferElement) Type() ComponentType {
	return Float
}

// Size is the width of the attribute in bytes.
func (e BufferElement) Size() int32 {
	return e.Count() * f32
}

func (e BufferElement) String() string {
	return fmt.Sprintf("Float%d", e.Count())
}

// Layout is the ordered list of attributes stored per vertex in one buffer.
type Layout []BufferElement

func (l Layout) Size() int32 {
	var size int32
	for _, e := range l {
		size += e.Size()
	}
	return size
}

// Attribute is one fully wired vertex attribute as handed to the driver.
type Attribute struct {
	Index      uint32
	Buffer     int
	Components int32
	Type       ComponentType
	Stride     int32
	Offset     uintptr
}

type StridePolicy int

const (
	// InterleavedStride uses the summed layout of every attached buffer as
	// the stride of each attribute, with offsets running on across buffers.
	InterleavedStride StridePolicy = iota
	// PerBufferStride gives every buffer the stride of its own layout and
	// starts offsets at zero for each buffer.
	PerBufferStride
)

// DeriveAttributes computes the attribute wiring for the given layouts, one
// per attached buffer in insertion order. Attribute indices are assigned
// sequentially across all buffers.
func DeriveAttributes(layouts []Layout, policy StridePolicy) []Attribute {
	var total int32
	for _, l := range layouts {
		total += l.Size()
	}

	var attribs []Attribute
	var index uint32
	var offset uintptr
	for b, l := range layouts {
		stride := total
		if policy == PerBufferStride {
			stride = l.Size()
			offset = 0
		}
		for _, e := range l {
			attribs = append(attribs, Attribute{
				Index:      index,
				Buffer:     b,
				Components: e.Count(),
				Type:       e.Type(),
				Stride:     stride,
				Offset:     offset,
			})
			index++
			offset += uintptr(e.Size())
		}
	}
	return attribs
}
