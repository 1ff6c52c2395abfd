package vecmath

import "github.com/go-gl/mathgl/mgl32"

type Vector3[T Number] struct {
	X, Y, Z T
}

func Vec3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

func (v Vector3[T]) Get(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, outOfRange(i, 3)
}

func (v Vector3[T]) At(i int) T {
	c, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return c
}

func (v *Vector3[T]) Set(i int, c T) error {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	default:
		return outOfRange(i, 3)
	}
	return nil
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3[T]) Mul(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vector3[T]) Div(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v.X + s, v.Y + s, v.Z + s}
}

func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{v.X - s, v.Y - s, v.Z - s}
}

func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

func (v *Vector3[T]) AddAssign(o Vector3[T]) { *v = v.Add(o) }
func (v *Vector3[T]) SubAssign(o Vector3[T]) { *v = v.Sub(o) }
func (v *Vector3[T]) MulAssign(o Vector3[T]) { *v = v.Mul(o) }
func (v *Vector3[T]) DivAssign(o Vector3[T]) { *v = v.Div(o) }
func (v *Vector3[T]) AddScalarAssign(s T) { *v = v.AddScalar(s) }
func (v *Vector3[T]) SubScalarAssign(s T) { *v = v.SubScalar(s) }
func (v *Vector3[T]) MulScalarAssign(s T) { *v = v.MulScalar(s) }
func (v *Vector3[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

func Dot3[T Number](a, b Vector3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func Cross[T Number](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (v Vector3[T]) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
