package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

type Vector2[T Number] struct {
	X, Y T
}

func Vec2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Get returns component i, or an error wrapping ErrIndexOutOfRange.
func (v Vector2[T]) Get(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, outOfRange(i, 2)
}

// At is like Get but panics on a bad index, the same way slice indexing does.
func (v Vector2[T]) At(i int) T {
	c, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return c
}

func (v *Vector2[T]) Set(i int, c T) error {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	default:
		return outOfRange(i, 2)
	}
	return nil
}

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + o.X, v.Y + o.Y}
}

func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - o.X, v.Y - o.Y}
}

func (v Vector2[T]) Mul(o Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X * o.X, v.Y * o.Y}
}

func (v Vector2[T]) Div(o Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X / o.X, v.Y / o.Y}
}

func (v Vector2[T]) AddScalar(s T) Vector2[T] {
	return Vector2[T]{v.X + s, v.Y + s}
}

func (v Vector2[T]) SubScalar(s T) Vector2[T] {
	return Vector2[T]{v.X - s, v.Y - s}
}

func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	return Vector2[T]{v.X / s, v.Y / s}
}

func (v *Vector2[T]) AddAssign(o Vector2[T]) { *v = v.Add(o) }
func (v *Vector2[T]) SubAssign(o Vector2[T]) { *v = v.Sub(o) }
func (v *Vector2[T]) MulAssign(o Vector2[T]) { *v = v.Mul(o) }
func (v *Vector2[T]) DivAssign(o Vector2[T]) { *v = v.Div(o) }
func (v *Vector2[T]) AddScalarAssign(s T) { *v = v.AddScalar(s) }
func (v *Vector2[T]) SubScalarAssign(s T) { *v = v.SubScalar(s) }
func (v *Vector2[T]) MulScalarAssign(s T) { *v = v.MulScalar(s) }
func (v *Vector2[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

func Dot[T Number](a, b Vector2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Normalized returns v scaled to unit length. The zero vector stays zero
// instead of turning into NaNs.
// The length is taken in float64 so float32 vectors near the ends of their
// range neither underflow to zero nor overflow to infinity.
func Normalized[T constraints.Float](v Vector2[T]) Vector2[T] {
	x, y := float64(v.X), float64(v.Y)
	length := math.Hypot(x, y)
	if length == 0 {
		return Vector2[T]{}
	}
	return Vector2[T]{X: T(x / length), Y: T(y / length)}
}

func (v Vector2[T]) Mgl() mgl32.Vec2 {
	return mgl32.Vec2{float32(v.X), float32(v.Y)}
}
