package vec

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

var vector4Samples = []Vector4{
	MakeVector4(1, 2, 3, 4),
	MakeVector4(0, 0, 0, 1),
	MakeVector4(-0.5, 3, 0.125, -9),
}

func TestVector4Make(t *testing.T) {
	v := MakeVector4(1, 2, 3, 4)
	assert.Equal(t, float32(1), v.X())
	assert.Equal(t, float32(2), v.Y())
	assert.Equal(t, float32(3), v.Z())
	assert.Equal(t, float32(4), v.W())
	assert.Equal(t, [4]float32{0, 0, 0, 0}, ZeroVector4().Array())
	assert.Equal(t, 4, Vector4Components)
}

func TestVector4Multiply(t *testing.T) {
	assert.Equal(t, [4]float32{2, 4, 6, 8}, MakeVector4(1, 2, 3, 4).Multiply(2).Array())
}

func TestVector4Arithmetic(t *testing.T) {
	a := MakeVector4(1, 2, 3, 4)
	b := MakeVector4(4, 3, 2, 1)

	assert.Equal(t, [4]float32{5, 5, 5, 5}, a.Add(b).Array())
	assert.Equal(t, [4]float32{-3, -1, 1, 3}, a.Subtract(b).Array())
	assert.Equal(t, [4]float32{-1, -2, -3, -4}, a.Negate().Array())
	assert.Equal(t, [4]float32{0.5, 1, 1.5, 2}, a.Divide(2).Array())
	assert.Equal(t, float32(20), a.Dot(b))
	assert.Equal(t, float32(30), a.LengthSquared())
	assert.Equal(t, math32.Sqrt(30), a.Length())
	assert.Equal(t, [4]float32{0.5, 0.5, 0.5, 0.5}, MakeVector4(2, 2, 2, 2).Normalize().Array())
}

func TestVector4Properties(t *testing.T) {
	for _, v := range vector4Samples {
		assert.True(t, v.Add(v.Negate()).ApproxEqual(ZeroVector4(), epsilon), "%v", v)
		assert.InDelta(t, 1, v.Normalize().Length(), epsilon, "%v", v)
		assert.Equal(t, v.Multiply(1/float32(-6)).Array(), v.Divide(-6).Array(), "%v", v)

		for _, o := range vector4Samples {
			assert.Equal(t, v.Dot(o), o.Dot(v), "%v . %v", v, o)
		}
	}
}

func TestVector4NormalizeZero(t *testing.T) {
	for _, c := range ZeroVector4().Normalize().Array() {
		assert.True(t, math32.IsNaN(c))
	}
}

func TestVector4String(t *testing.T) {
	assert.Equal(t, "Vector4(1, 2, 3, 4)", MakeVector4(1, 2, 3, 4).String())
}
