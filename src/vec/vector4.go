package vec

import "fmt"

const Vector4Components = 4

// Vector4 is an immutable x, y, z, w vector. There is no cross product in
// four dimensions.
type Vector4 struct {
	c    [4]float32
	view *view
}

func ZeroVector4() Vector4 {
	return MakeVector4(0, 0, 0, 0)
}

func MakeVector4(x, y, z, w float32) Vector4 {
	return Vector4{c: [4]float32{x, y, z, w}, view: &view{}}
}

func vector4(c [4]float32) Vector4 {
	return Vector4{c: c, view: &view{}}
}

func (v Vector4) X() float32 { return v.c[X] }
func (v Vector4) Y() float32 { return v.c[Y] }
func (v Vector4) Z() float32 { return v.c[Z] }
func (v Vector4) W() float32 { return v.c[W] }

// ToArray returns x, y, z, w as a cached slice, e.g. for a homogeneous
// coordinate buffer. See Vector3.ToArray.
func (v Vector4) ToArray() []float32 {
	return v.view.slice("Vector4", v.c[:])
}

func (v Vector4) Array() [4]float32 {
	return v.c
}

func (v Vector4) Length() float32 {
	return length(v.c)
}

func (v Vector4) LengthSquared() float32 {
	return dot2(v.c)
}

func (v Vector4) Normalize() Vector4 {
	return vector4(normalize(v.c))
}

func (v Vector4) Negate() Vector4 {
	return vector4(negate(v.c))
}

func (v Vector4) Add(o Vector4) Vector4 {
	return vector4(add(v.c, o.c))
}

func (v Vector4) Subtract(o Vector4) Vector4 {
	return vector4(sub(v.c, o.c))
}

func (v Vector4) Multiply(s float32) Vector4 {
	return vector4(scale(v.c, s))
}

func (v Vector4) Divide(s float32) Vector4 {
	return vector4(divide(v.c, s))
}

func (v Vector4) Dot(o Vector4) float32 {
	return dot(v.c, o.c)
}

func (v Vector4) ApproxEqual(o Vector4, epsilon float32) bool {
	return approxEqual(v.c, o.c, epsilon)
}

func (v Vector4) String() string {
	return fmt.Sprintf("Vector4(%g, %g, %g, %g)", v.c[X], v.c[Y], v.c[Z], v.c[W])
}
