package rendering

import (
	"github.com/fosdem/glsteps/lib/metrics"
	"github.com/go-gl/mathgl/mgl32"
)

// Binder is anything that can be made the active object for a draw, like a
// shader program.
type Binder interface {
	Bind()
	Unbind()
}

type DrawCall struct {
	Program     Binder
	Textures    []*Texture
	VertexArray *VertexArray
	Indices     *IndexBuffer
}

// Renderer issues the per-frame clear and draw calls.
type Renderer struct {
	d          Driver
	ClearColor mgl32.Vec4

	Frames    uint64
	DrawCalls uint64
}

func NewRenderer(d Driver, clearColor mgl32.Vec4) *Renderer {
	return &Renderer{d: d, ClearColor: clearColor}
}

func (r *Renderer) Driver() Driver {
	return r.d
}

func (r *Renderer) StartFrame() {
	r.d.ClearColor(r.ClearColor)
	r.d.Clear()
	r.Frames++
	metrics.FramesDrawn.Inc()
}

// Resize matches the viewport to a new framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.d.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) Draw(dc DrawCall) {
	dc.Program.Bind()
	for unit, tex := range dc.Textures {
		tex.Bind(uint32(unit))
	}
	dc.VertexArray.Bind()
	dc.Indices.Bind()
	r.d.DrawElements(int32(dc.Indices.Count()))
	r.DrawCalls++
	metrics.DrawCalls.Inc()
}
