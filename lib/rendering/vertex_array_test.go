package rendering_test

import (
	"testing"

	"github.com/fosdem/glsteps/lib/rendering"
	"github.com/fosdem/glsteps/lib/rendering/renderingtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadBuffer(t *testing.T, d rendering.Driver, floatsPerVertex int) *rendering.VertexBuffer {
	t.Helper()
	vb, err := rendering.NewVertexBuffer(d, rendering.Bytes(make([]float32, 4*floatsPerVertex)), floatsPerVertex*4)
	require.NoError(t, err)
	return vb
}

func TestVertexArraySingleInterleavedBuffer(t *testing.T) {
	d := renderingtest.New()
	va := rendering.NewVertexArray(d)
	vb := quadBuffer(t, d, 5)

	id := va.AddVertexBuffer(vb, rendering.Layout{rendering.Float3, rendering.Float2})

	assert.Equal(t, 0, id)
	assert.Same(t, vb, va.VertexBuffer(id))
	assert.Equal(t, 4, va.VertexBuffer(id).Count())
	assert.Equal(t, []uint32{0, 1}, d.Enabled)
	assert.Equal(t, []renderingtest.AttribPointer{
		{Index: 0, Buffer: vb.ID(), Size: 3, Type: rendering.Float, Stride: 20, Offset: 0},
		{Index: 1, Buffer: vb.ID(), Size: 2, Type: rendering.Float, Stride: 20, Offset: 12},
	}, d.AttribPointers)
	assert.Zero(t, d.BoundVAO, "vertex array left bound")
	assert.Zero(t, d.Bound[rendering.ArrayBuffer], "vertex buffer left bound")
	assert.Empty(t, d.Errors)
}

func TestVertexArrayTwoBuffersShareStride(t *testing.T) {
	d := renderingtest.New()
	va := rendering.NewVertexArray(d)
	positions := quadBuffer(t, d, 3)
	uvs := quadBuffer(t, d, 2)

	first := va.AddVertexBuffer(positions, rendering.Layout{rendering.Float3})
	second := va.AddVertexBuffer(uvs, rendering.Layout{rendering.Float2})

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Same(t, positions, va.VertexBuffer(first))
	assert.Same(t, uvs, va.VertexBuffer(second))
	assert.Equal(t, 2, va.NumVertexBuffers())

	// the second add rewires everything from scratch
	last := d.AttribPointers[len(d.AttribPointers)-2:]
	assert.Equal(t, []renderingtest.AttribPointer{
		{Index: 0, Buffer: positions.ID(), Size: 3, Type: rendering.Float, Stride: 20, Offset: 0},
		{Index: 1, Buffer: uvs.ID(), Size: 2, Type: rendering.Float, Stride: 20, Offset: 12},
	}, last)
	assert.Len(t, d.AttribPointers, 3)
	assert.Equal(t, 1, va.Attributes()[1].Buffer)
	assert.Empty(t, d.Errors)
}

func TestVertexArrayPerBufferStride(t *testing.T) {
	d := renderingtest.New()
	va := rendering.NewVertexArray(d, rendering.WithPerBufferStride())
	positions := quadBuffer(t, d, 3)
	uvs := quadBuffer(t, d, 2)

	va.AddVertexBuffer(positions, rendering.Layout{rendering.Float3})
	va.AddVertexBuffer(uvs, rendering.Layout{rendering.Float2})

	assert.Equal(t, []rendering.Attribute{
		{Index: 0, Buffer: 0, Components: 3, Type: rendering.Float, Stride: 12, Offset: 0},
		{Index: 1, Buffer: 1, Components: 2, Type: rendering.Float, Stride: 8, Offset: 0},
	}, va.Attributes())
}

func TestVertexArrayLayoutIsCopied(t *testing.T) {
	d := renderingtest.New()
	va := rendering.NewVertexArray(d)
	layout := rendering.Layout{rendering.Float3, rendering.Float2}
	va.AddVertexBuffer(quadBuffer(t, d, 5), layout)

	layout[0] = rendering.Float4
	va.AddVertexBuffer(quadBuffer(t, d, 1), rendering.Layout{rendering.Float1})

	assert.Equal(t, int32(24), va.Attributes()[0].Stride)
	assert.Equal(t, int32(3), va.Attributes()[0].Components)
}

func TestVertexArrayOwnsBuffers(t *testing.T) {
	d := renderingtest.New()
	va := rendering.NewVertexArray(d)
	va.AddVertexBuffer(quadBuffer(t, d, 3), rendering.Layout{rendering.Float3})
	va.AddVertexBuffer(quadBuffer(t, d, 2), rendering.Layout{rendering.Float2})

	va.Delete()
	va.Delete()

	assert.Equal(t, 1, d.Deleted[renderingtest.VertexArray])
	assert.Equal(t, 2, d.Deleted[renderingtest.Buffer])
	assert.Zero(t, d.Live(renderingtest.Buffer))
	assert.Zero(t, d.Live(renderingtest.VertexArray))
	assert.Empty(t, d.Errors)
}

func TestVertexArrayRejectsNilBuffer(t *testing.T) {
	va := rendering.NewVertexArray(renderingtest.New())
	assert.Panics(t, func() { va.AddVertexBuffer(nil, rendering.Layout{rendering.Float1}) })
}
