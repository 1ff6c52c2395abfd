package tutorial

import (
	"fmt"

	"github.com/fosdem/glsteps/lib/mesh"
	"github.com/fosdem/glsteps/lib/rendering"
	"github.com/fosdem/glsteps/lib/rendering/shaders"
	"github.com/fosdem/glsteps/lib/vecmath"
)

// drawStep is one program drawing one indexed vertex array.
type drawStep struct {
	name     string
	program  *shaders.Program
	vertices *rendering.VertexArray
	indices  *rendering.IndexBuffer
	textures []*rendering.Texture

	// animate runs before every draw
	animate func(dt float32) error
}

func (s *drawStep) Name() string {
	return s.name
}

func (s *drawStep) Draw(r *rendering.Renderer, dt float32) error {
	if s.animate != nil {
		err := s.animate(dt)
		if err != nil {
			return fmt.Errorf("could not animate %s: %w", s.name, err)
		}
	}
	r.Draw(rendering.DrawCall{
		Program:     s.program,
		Textures:    s.textures,
		VertexArray: s.vertices,
		Indices:     s.indices,
	})
	return nil
}

// Delete releases everything the step owns. Textures are shared between
// steps and belong to the Tutorial.
func (s *drawStep) Delete() {
	if s.vertices != nil {
		s.vertices.Delete()
	}
	if s.indices != nil {
		s.indices.Delete()
	}
	if s.program != nil {
		s.program.Delete()
	}
}

// buildStep creates the program and index buffer of a step and lets attach
// fill the vertex array. Whatever was created is released on error.
func buildStep(name string, a Assets, program string, indices []uint32, attach func(va *rendering.VertexArray) error, opts ...rendering.VertexArrayOption) (*drawStep, error) {
	s := &drawStep{name: name}

	var err error
	s.program, err = shaders.BuildProgram(a.Driver, a.Shaderer, program)
	if err != nil {
		return nil, err
	}
	s.vertices = rendering.NewVertexArray(a.Driver, opts...)
	err = attach(s.vertices)
	if err != nil {
		s.Delete()
		return nil, fmt.Errorf("could not fill vertex array: %w", err)
	}
	s.indices, err = rendering.NewIndexBuffer(a.Driver, indices)
	if err != nil {
		s.Delete()
		return nil, err
	}
	return s, nil
}

func newFlat(name string, a Assets, m mesh.Mesh) (Step, error) {
	s, err := buildStep(name, a, "flat", m.Indices, func(va *rendering.VertexArray) error {
		vb, err := rendering.NewVertexBufferOf(a.Driver, mesh.Positions(m.Vertices))
		if err != nil {
			return err
		}
		va.AddVertexBuffer(vb, rendering.Layout{rendering.Float3})
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = s.program.SetUniformVec4("u_Color", a.FlatColor)
	if err != nil {
		s.Delete()
		return nil, err
	}
	return s, nil
}

func newTriangle(a Assets, _ *rendering.Texture) (Step, error) {
	return newFlat("triangle", a, mesh.Triangle())
}

func newQuad(a Assets, _ *rendering.Texture) (Step, error) {
	return newFlat("quad", a, mesh.Quad(vecmath.Vec2[float32](0, 0), 0.5))
}

func textured(s *drawStep, tex *rendering.Texture) (Step, error) {
	s.textures = []*rendering.Texture{tex}
	err := s.program.SetUniformInt("u_Texture", 0)
	if err != nil {
		s.Delete()
		return nil, err
	}
	return s, nil
}

func newTexturedQuad(a Assets, tex *rendering.Texture) (Step, error) {
	m := mesh.Quad(vecmath.Vec2[float32](0, 0), 0.5)
	s, err := buildStep("textured-quad", a, "textured", m.Indices, func(va *rendering.VertexArray) error {
		vb, err := rendering.NewVertexBufferOf(a.Driver, m.Vertices)
		if err != nil {
			return err
		}
		va.AddVertexBuffer(vb, mesh.VertexLayout)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return textured(s, tex)
}

// newSplitStreams keeps positions and texture coordinates in two buffers,
// which only works with a stride per buffer.
func newSplitStreams(a Assets, tex *rendering.Texture) (Step, error) {
	m := mesh.Quad(vecmath.Vec2[float32](0, 0), 0.75)
	s, err := buildStep("split-streams", a, "textured", m.Indices, func(va *rendering.VertexArray) error {
		positions, err := rendering.NewVertexBufferOf(a.Driver, mesh.Positions(m.Vertices))
		if err != nil {
			return err
		}
		va.AddVertexBuffer(positions, rendering.Layout{rendering.Float3})

		uvs, err := rendering.NewVertexBufferOf(a.Driver, mesh.TexCoords(m.Vertices))
		if err != nil {
			return err
		}
		va.AddVertexBuffer(uvs, rendering.Layout{rendering.Float2})
		return nil
	}, rendering.WithPerBufferStride())
	if err != nil {
		return nil, err
	}
	return textured(s, tex)
}

// bouncer moves a quad in a straight line, reflecting it off the edges of
// clip space.
type bouncer struct {
	position vecmath.Vector2[float32]
	velocity vecmath.Vector2[float32]
	halfSize float32
}

const bounceSpeed = 0.6

func newBouncer() *bouncer {
	return &bouncer{
		velocity: vecmath.Normalized(vecmath.Vec2[float32](1, 0.7)).MulScalar(bounceSpeed),
		halfSize: 0.25,
	}
}

func (b *bouncer) step(dt float32) {
	b.position.AddAssign(b.velocity.MulScalar(dt))

	limit := 1 - b.halfSize
	for i := range 2 {
		p := b.position.At(i)
		v := b.velocity.At(i)
		if (p > limit && v > 0) || (p < -limit && v < 0) {
			_ = b.velocity.Set(i, -v)
		}
		_ = b.position.Set(i, min(max(p, -limit), limit))
	}
}

func (b *bouncer) mesh() mesh.Mesh {
	return mesh.Quad(b.position, b.halfSize)
}

func newDynamic(a Assets, tex *rendering.Texture) (Step, error) {
	b := newBouncer()
	m := b.mesh()

	var buffer int
	s, err := buildStep("dynamic", a, "textured", m.Indices, func(va *rendering.VertexArray) error {
		vb, err := rendering.NewVertexBufferOf(a.Driver, m.Vertices)
		if err != nil {
			return err
		}
		buffer = va.AddVertexBuffer(vb, mesh.VertexLayout)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.animate = func(dt float32) error {
		b.step(dt)
		return s.vertices.VertexBuffer(buffer).Replace(rendering.Bytes(b.mesh().Vertices))
	}
	return textured(s, tex)
}
