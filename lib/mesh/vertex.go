// Package mesh holds the vertex format and the shapes drawn by the tutorial
// steps.
package mesh

import (
	"github.com/fosdem/glsteps/lib/rendering"
	"github.com/fosdem/glsteps/lib/vecmath"
)

type Vertex struct {
	Position  vecmath.Vector3[float32]
	TexCoords vecmath.Vector2[float32]
}

// VertexLayout describes Vertex to a vertex array.
var VertexLayout = rendering.Layout{rendering.Float3, rendering.Float2}

func NewVertex(position vecmath.Vector3[float32], texCoords vecmath.Vector2[float32]) Vertex {
	return Vertex{Position: position, TexCoords: texCoords}
}

// Positions returns only the positions of vertices, for position-only
// buffers.
func Positions(vertices []Vertex) []vecmath.Vector3[float32] {
	out := make([]vecmath.Vector3[float32], len(vertices))
	for i, v := range vertices {
		out[i] = v.Position
	}
	return out
}

func TexCoords(vertices []Vertex) []vecmath.Vector2[float32] {
	out := make([]vecmath.Vector2[float32], len(vertices))
	for i, v := range vertices {
		out[i] = v.TexCoords
	}
	return out
}
