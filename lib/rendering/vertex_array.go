package rendering

import "github.com/fosdem/glsteps/lib/metrics"

var vertexArrayMetrics = metrics.NewObjectMetrics("vertex_array")

type vertexStream struct {
	buffer *VertexBuffer
	layout Layout
}

// VertexArray owns a vertex array object together with the vertex buffers
// attached to it.
type VertexArray struct {
	d       Driver
	id      uint32
	policy  StridePolicy
	streams []vertexStream
	attribs []Attribute
}

type VertexArrayOption func(*VertexArray)

// WithPerBufferStride wires every attached buffer as an independent stream
// instead of treating all buffers as one interleaved vertex.
func WithPerBufferStride() VertexArrayOption {
	return func(v *VertexArray) {
		v.policy = PerBufferStride
	}
}

func NewVertexArray(d Driver, opts ...VertexArrayOption) *VertexArray {
	v := &VertexArray{d: d}
	for _, opt := range opts {
		opt(v)
	}
	v.id = d.GenVertexArray()
	vertexArrayMetrics.ObjectCreated()
	return v
}

// AddVertexBuffer takes ownership of buffer, attaches it with the given
// layout and rewires every attribute of the array. The returned id stays
// valid for VertexBuffer as long as the array exists.
func (v *VertexArray) AddVertexBuffer(buffer *VertexBuffer, layout Layout) int {
	if buffer == nil {
		panic("nil vertex buffer added to vertex array")
	}
	v.streams = append(v.streams, vertexStream{buffer: buffer, layout: append(Layout(nil), layout...)})

	layouts := make([]Layout, len(v.streams))
	for i, s := range v.streams {
		layouts[i] = s.layout
	}
	v.attribs = DeriveAttributes(layouts, v.policy)

	v.Bind()
	next := 0
	for _, s := range v.streams {
		s.buffer.Bind()
		for range s.layout {
			a := v.attribs[next]
			v.d.EnableVertexAttribArray(a.Index)
			v.d.VertexAttribPointer(a.Index, a.Components, a.Type, false, a.Stride, a.Offset)
			next++
		}
		s.buffer.Unbind()
	}
	v.Unbind()

	return len(v.streams) - 1
}

func (v *VertexArray) VertexBuffer(id int) *VertexBuffer {
	return v.streams[id].buffer
}

func (v *VertexArray) NumVertexBuffers() int {
	return len(v.streams)
}

// Attributes returns the wiring derived by the last AddVertexBuffer call.
func (v *VertexArray) Attributes() []Attribute {
	return v.attribs
}

func (v *VertexArray) Bind() {
	v.d.BindVertexArray(v.id)
}

func (v *VertexArray) Unbind() {
	v.d.BindVertexArray(0)
}

func (v *VertexArray) ID() uint32 {
	return v.id
}

// Delete releases the vertex array object and every buffer it owns.
func (v *VertexArray) Delete() {
	if v.id == 0 {
		return
	}
	for _, s := range v.streams {
		s.buffer.Delete()
	}
	v.d.DeleteVertexArray(v.id)
	vertexArrayMetrics.ObjectDeleted()
	v.id = 0
}
