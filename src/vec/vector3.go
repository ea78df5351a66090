package vec

import "fmt"

const Vector3Components = 3

// Vector3 is an immutable x, y, z vector. Create it with MakeVector3 or
// ZeroVector3; the zero value is the origin but does not cache its array.
type Vector3 struct {
	c    [3]float32
	view *view
}

func ZeroVector3() Vector3 {
	return MakeVector3(0, 0, 0)
}

func MakeVector3(x, y, z float32) Vector3 {
	return Vector3{c: [3]float32{x, y, z}, view: &view{}}
}

func vector3(c [3]float32) Vector3 {
	return Vector3{c: c, view: &view{}}
}

func (v Vector3) X() float32 { return v.c[X] }
func (v Vector3) Y() float32 { return v.c[Y] }
func (v Vector3) Z() float32 { return v.c[Z] }

// ToArray returns x, y, z as a slice that is cached and shared by every call
// on this vector. Writing to it does not change the vector; in debug mode a
// warning is logged once the whole array no longer matches.
func (v Vector3) ToArray() []float32 {
	return v.view.slice("Vector3", v.c[:])
}

// Array returns a copy of the components, unrelated to ToArray.
func (v Vector3) Array() [3]float32 {
	return v.c
}

func (v Vector3) Length() float32 {
	return length(v.c)
}

func (v Vector3) LengthSquared() float32 {
	return dot2(v.c)
}

// Normalize returns v with unit length. A zero vector gives NaN components.
func (v Vector3) Normalize() Vector3 {
	return vector3(normalize(v.c))
}

func (v Vector3) Negate() Vector3 {
	return vector3(negate(v.c))
}

func (v Vector3) Add(o Vector3) Vector3 {
	return vector3(add(v.c, o.c))
}

func (v Vector3) Subtract(o Vector3) Vector3 {
	return vector3(sub(v.c, o.c))
}

func (v Vector3) Multiply(s float32) Vector3 {
	return vector3(scale(v.c, s))
}

// Divide is Multiply(1 / s).
func (v Vector3) Divide(s float32) Vector3 {
	return vector3(divide(v.c, s))
}

func (v Vector3) Dot(o Vector3) float32 {
	return dot(v.c, o.c)
}

// Cross returns v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return vector3(cross(v.c, o.c))
}

func (v Vector3) ApproxEqual(o Vector3, epsilon float32) bool {
	return approxEqual(v.c, o.c, epsilon)
}

func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%g, %g, %g)", v.c[X], v.c[Y], v.c[Z])
}
