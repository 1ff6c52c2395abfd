package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3Componentwise(t *testing.T) {
	a := Vec3[float32](1, 2, 3)
	b := Vec3[float32](4, 5, 6)

	assert.Equal(t, Vec3[float32](5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3[float32](-3, -3, -3), a.Sub(b))
	assert.Equal(t, Vec3[float32](4, 10, 18), a.Mul(b))
	assert.Equal(t, Vec3[float32](4, 2.5, 2), b.Div(a))
	assert.Equal(t, Vec3[float32](-1, -2, -3), a.Neg())
}

func TestVector3Scalar(t *testing.T) {
	a := Vec3(2, 4, 6)

	assert.Equal(t, Vec3(3, 5, 7), a.AddScalar(1))
	assert.Equal(t, Vec3(1, 3, 5), a.SubScalar(1))
	assert.Equal(t, Vec3(4, 8, 12), a.MulScalar(2))
	assert.Equal(t, Vec3(1, 2, 3), a.DivScalar(2))
}

func TestCompoundAssignMatchesPlainForm(t *testing.T) {
	a := Vec3[float64](1.5, -2, 8)
	b := Vec3[float64](0.5, 4, -2)

	ops := []struct {
		name   string
		assign func(v *Vector3[float64])
		plain  Vector3[float64]
	}{
		{"add", func(v *Vector3[float64]) { v.AddAssign(b) }, a.Add(b)},
		{"sub", func(v *Vector3[float64]) { v.SubAssign(b) }, a.Sub(b)},
		{"mul", func(v *Vector3[float64]) { v.MulAssign(b) }, a.Mul(b)},
		{"div", func(v *Vector3[float64]) { v.DivAssign(b) }, a.Div(b)},
		{"add scalar", func(v *Vector3[float64]) { v.AddScalarAssign(3) }, a.AddScalar(3)},
		{"sub scalar", func(v *Vector3[float64]) { v.SubScalarAssign(3) }, a.SubScalar(3)},
		{"mul scalar", func(v *Vector3[float64]) { v.MulScalarAssign(3) }, a.MulScalar(3)},
		{"div scalar", func(v *Vector3[float64]) { v.DivScalarAssign(4) }, a.DivScalar(4)},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			v := a
			op.assign(&v)
			assert.Equal(t, op.plain, v)
		})
	}
}

func TestVector2CompoundAssign(t *testing.T) {
	a := Vec2(7, 3)
	b := Vec2(2, 1)

	v := a
	v.AddAssign(b)
	assert.Equal(t, a.Add(b), v)

	v = a
	v.DivAssign(b)
	assert.Equal(t, Vec2(3, 3), v)

	v = a
	v.MulScalarAssign(-1)
	assert.Equal(t, a.Neg(), v)
}

func TestIndexing(t *testing.T) {
	v := Vec3[int32](10, 20, 30)
	assert.Equal(t, int32(10), v.At(0))
	assert.Equal(t, int32(30), v.At(2))

	_, err := v.Get(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Panics(t, func() { v.At(3) })

	require.NoError(t, v.Set(1, 5))
	assert.Equal(t, int32(5), v.Y)
	assert.ErrorIs(t, v.Set(7, 1), ErrIndexOutOfRange)

	w := Vec2[float32](1, 2)
	assert.Equal(t, float32(2), w.At(1))
	assert.Panics(t, func() { w.At(2) })
}

func TestNormalized(t *testing.T) {
	assert.Equal(t, Vector2[float32]{}, Normalized(Vec2[float32](0, 0)))

	for _, v := range []Vector2[float64]{{3, 4}, {-1, 0}, {0.001, -0.002}, {1e6, 1e6}} {
		n := Normalized(v)
		assert.InDelta(t, 1.0, Dot(n, n), 1e-9)
		// same direction: parallel and not flipped
		assert.InDelta(t, 0.0, v.X*n.Y-v.Y*n.X, 1e-6*math.Max(1, math.Abs(v.X)))
		assert.Greater(t, Dot(v, n), 0.0)
	}
}

func TestNormalizedFloat32Extremes(t *testing.T) {
	for _, v := range []Vector2[float32]{{1e-25, 0}, {3e20, 4e20}, {0, -1e-30}, {-2e38, 2e38}} {
		n := Normalized(v)
		x, y := float64(n.X), float64(n.Y)
		assert.InDelta(t, 1.0, x*x+y*y, 1e-6, "%v", v)
		assert.Greater(t, float64(v.X)*x+float64(v.Y)*y, 0.0, "%v", v)
	}

	n := Normalized(Vector2[float32]{3e20, 4e20})
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.8, n.Y, 1e-6)
}

func TestDotAndCross(t *testing.T) {
	assert.Equal(t, 11, Dot(Vec2(1, 2), Vec2(3, 4)))
	assert.Equal(t, 32, Dot3(Vec3(1, 2, 3), Vec3(4, 5, 6)))
	assert.Equal(t, Vec3(0, 0, 1), Cross(Vec3(1, 0, 0), Vec3(0, 1, 0)))
}

func TestMglConversion(t *testing.T) {
	v := Vec3[float32](1, 2, 3).Mgl()
	assert.Equal(t, float32(3), v.Z())
	assert.Equal(t, float32(2), Vec2[float32](1, 2).Mgl().Y())
}
