package rendering

import (
	"errors"
	"fmt"

	"github.com/fosdem/glsteps/lib/metrics"
)

var (
	ErrEmptyPayload = errors.New("buffer payload is empty")
	ErrPayloadSize  = errors.New("buffer payload is not a whole number of elements")
)

var (
	vertexBufferMetrics = metrics.NewObjectMetrics("vertex_buffer")
	indexBufferMetrics  = metrics.NewObjectMetrics("index_buffer")
)

// VertexBuffer owns one GPU buffer holding raw vertex data.
type VertexBuffer struct {
	d           Driver
	id          uint32
	elementSize int
	count       int
}

// NewVertexBuffer uploads data once with a static usage hint. elementSize
// is the size of one vertex in bytes.
func NewVertexBuffer(d Driver, data []byte, elementSize int) (*VertexBuffer, error) {
	count, err := elementCount(data, elementSize)
	if err != nil {
		return nil, err
	}

	b := &VertexBuffer{d: d, elementSize: elementSize, count: count}
	b.id = d.GenBuffer()
	vertexBufferMetrics.ObjectCreated()

	d.BindBuffer(ArrayBuffer, b.id)
	d.BufferData(ArrayBuffer, data, StaticDraw)
	d.BindBuffer(ArrayBuffer, 0)
	vertexBufferMetrics.Uploaded.Add(float64(len(data)))
	return b, nil
}

// NewVertexBufferOf is NewVertexBuffer for a typed vertex slice.
func NewVertexBufferOf[T any](d Driver, vertices []T) (*VertexBuffer, error) {
	return NewVertexBuffer(d, Bytes(vertices), SizeOf[T]())
}

// Replace uploads new data with a dynamic usage hint, for buffers that are
// rewritten while drawing. The buffer is left unbound.
func (b *VertexBuffer) Replace(data []byte) error {
	count, err := elementCount(data, b.elementSize)
	if err != nil {
		return err
	}
	b.count = count

	b.d.BindBuffer(ArrayBuffer, b.id)
	b.d.BufferData(ArrayBuffer, data, DynamicDraw)
	b.d.BindBuffer(ArrayBuffer, 0)
	vertexBufferMetrics.Uploaded.Add(float64(len(data)))
	return nil
}

func (b *VertexBuffer) Bind() {
	b.d.BindBuffer(ArrayBuffer, b.id)
}

func (b *VertexBuffer) Unbind() {
	b.d.BindBuffer(ArrayBuffer, 0)
}

func (b *VertexBuffer) ID() uint32 {
	return b.id
}

// Count is the number of vertices in the buffer.
func (b *VertexBuffer) Count() int {
	return b.count
}

func (b *VertexBuffer) ElementSize() int {
	return b.elementSize
}

// Delete releases the GPU buffer. Calling it again does nothing.
func (b *VertexBuffer) Delete() {
	if b.id == 0 {
		return
	}
	b.d.DeleteBuffer(b.id)
	vertexBufferMetrics.ObjectDeleted()
	b.id = 0
}

// IndexBuffer owns one GPU buffer holding 32-bit element indices.
type IndexBuffer struct {
	d     Driver
	id    uint32
	count int
}

func NewIndexBuffer(d Driver, indices []uint32) (*IndexBuffer, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("could not create index buffer: %w", ErrEmptyPayload)
	}

	b := &IndexBuffer{d: d, count: len(indices)}
	b.id = d.GenBuffer()
	indexBufferMetrics.ObjectCreated()

	b.upload(indices, StaticDraw)
	return b, nil
}

func (b *IndexBuffer) Replace(indices []uint32) error {
	if len(indices) == 0 {
		return fmt.Errorf("could not replace index buffer data: %w", ErrEmptyPayload)
	}
	b.count = len(indices)
	b.upload(indices, DynamicDraw)
	return nil
}

func (b *IndexBuffer) upload(indices []uint32, usage Usage) {
	data := Bytes(indices)
	b.d.BindBuffer(ElementArrayBuffer, b.id)
	b.d.BufferData(ElementArrayBuffer, data, usage)
	b.d.BindBuffer(ElementArrayBuffer, 0)
	indexBufferMetrics.Uploaded.Add(float64(len(data)))
}

func (b *IndexBuffer) Bind() {
	b.d.BindBuffer(ElementArrayBuffer, b.id)
}

func (b *IndexBuffer) Unbind() {
	b.d.BindBuffer(ElementArrayBuffer, 0)
}

func (b *IndexBuffer) ID() uint32 {
	return b.id
}

// Count is the number of indices, i.e. the element count of a draw call.
func (b *IndexBuffer) Count() int {
	return b.count
}

func (b *IndexBuffer) Delete() {
	if b.id == 0 {
		return
	}
	b.d.DeleteBuffer(b.id)
	indexBufferMetrics.ObjectDeleted()
	b.id = 0
}

func elementCount(data []byte, elementSize int) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmptyPayload
	}
	if elementSize <= 0 || len(data)%elementSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes, element size %d", ErrPayloadSize, len(data), elementSize)
	}
	return len(data) / elementSize, nil
}
