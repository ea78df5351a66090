/*
A small fixed-size vector library, OpenGL ES flavoured. Vector2, Vector3 and
Vector4 are immutable float32 values; every operation returns a new vector.
*/

package vec

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Array indices of each component.
const (
	X = 0
	Y = 1
	Z = 2
	W = 3
)

type components interface {
	[2]float32 | [3]float32 | [4]float32
}

func add[C components](a, b C) C {
	var r C
	for i := 0; i < len(r); i++ {
		r[i] = a[i] + b[i]
	}
	return r
}

func sub[C components](a, b C) C {
	var r C
	for i := 0; i < len(r); i++ {
		r[i] = a[i] - b[i]
	}
	return r
}

func scale[C components](a C, s float32) C {
	var r C
	for i := 0; i < len(r); i++ {
		r[i] = a[i] * s
	}
	return r
}

func dot[C components](a, b C) float32 {
	var d float32
	for i := 0; i < len(a); i++ {
		d += a[i] * b[i]
	}
	return d
}

func dot2[C components](a C) float32 {
	return dot(a, a)
}

func length[C components](a C) float32 {
	return math32.Sqrt(dot2(a))
}

// No guard for zero length, the result is NaN.
func normalize[C components](a C) C {
	l := length(a)
	var r C
	for i := 0; i < len(r); i++ {
		r[i] = a[i] / l
	}
	return r
}

func negate[C components](a C) C {
	return scale(a, -1)
}

func divide[C components](a C, s float32) C {
	return scale(a, 1/s)
}

func approxEqual[C components](a, b C, epsilon float32) bool {
	for i := 0; i < len(a); i++ {
		if !Equal(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

// Equal reports whether a and b are within epsilon of each other.
func Equal[T constraints.Float](a, b, epsilon T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}
