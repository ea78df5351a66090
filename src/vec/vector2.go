package vec

import "fmt"

const Vector2Components = 2

// Vector2 is an immutable x, y vector.
type Vector2 struct {
	c    [2]float32
	view *view
}

func ZeroVector2() Vector2 {
	return MakeVector2(0, 0)
}

func MakeVector2(x, y float32) Vector2 {
	return Vector2{c: [2]float32{x, y}, view: &view{}}
}

func vector2(c [2]float32) Vector2 {
	return Vector2{c: c, view: &view{}}
}

func (v Vector2) X() float32 { return v.c[X] }
func (v Vector2) Y() float32 { return v.c[Y] }

// ToArray returns x, y as a cached slice shared with every other caller.
func (v Vector2) ToArray() []float32 {
	return v.view.slice("Vector2", v.c[:])
}

func (v Vector2) Array() [2]float32 {
	return v.c
}

func (v Vector2) Length() float32 {
	return length(v.c)
}

func (v Vector2) LengthSquared() float32 {
	return dot2(v.c)
}

func (v Vector2) Normalize() Vector2 {
	return vector2(normalize(v.c))
}

func (v Vector2) Negate() Vector2 {
	return vector2(negate(v.c))
}

func (v Vector2) Add(o Vector2) Vector2 {
	return vector2(add(v.c, o.c))
}

func (v Vector2) Subtract(o Vector2) Vector2 {
	return vector2(sub(v.c, o.c))
}

func (v Vector2) Multiply(s float32) Vector2 {
	return vector2(scale(v.c, s))
}

func (v Vector2) Divide(s float32) Vector2 {
	return vector2(divide(v.c, s))
}

func (v Vector2) Dot(o Vector2) float32 {
	return dot(v.c, o.c)
}

func (v Vector2) ApproxEqual(o Vector2, epsilon float32) bool {
	return approxEqual(v.c, o.c, epsilon)
}

func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%g, %g)", v.c[X], v.c[Y])
}
