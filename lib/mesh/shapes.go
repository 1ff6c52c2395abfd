package mesh

import "github.com/fosdem/glsteps/lib/vecmath"

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func Triangle() Mesh {
	return Mesh{
		Vertices: []Vertex{
			NewVertex(vecmath.Vec3[float32](0.0, 0.5, 0.0), vecmath.Vec2[float32](0.5, 1.0)),
			NewVertex(vecmath.Vec3[float32](0.5, -0.5, 0.0), vecmath.Vec2[float32](1.0, 0.0)),
			NewVertex(vecmath.Vec3[float32](-0.5, -0.5, 0.0), vecmath.Vec2[float32](0.0, 0.0)),
		},
		Indices: []uint32{0, 1, 2},
	}
}

// Quad is an axis aligned square around center, wound counter-clockwise
// starting at the bottom left corner.
func Quad(center vecmath.Vector2[float32], halfSize float32) Mesh {
	corners := []vecmath.Vector2[float32]{
		{X: -1, Y: -1},
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
	}
	m := Mesh{Indices: []uint32{0, 1, 2, 2, 3, 0}}
	for _, c := range corners {
		p := c.MulScalar(halfSize).Add(center)
		uv := c.AddScalar(1).DivScalar(2)
		m.Vertices = append(m.Vertices, NewVertex(vecmath.Vec3(p.X, p.Y, 0), uv))
	}
	return m
}
