package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xernobyl/oglmath/src/vec"
)

// Everything the three vector types have in common.
type vector[V any] interface {
	fmt.Stringer
	ToArray() []float32
	Length() float32
	Normalize() V
	Negate() V
	Add(V) V
	Subtract(V) V
	Multiply(float32) V
	Divide(float32) V
	Dot(V) float32
}

// parseComponents reads "x,y[,z][,w]".
func parseComponents(s string) ([]float32, error) {
	fields := strings.Split(s, ",")
	if len(fields) < 2 || len(fields) > 4 {
		return nil, fmt.Errorf("vector %q must have 2 to 4 components, got %d", s, len(fields))
	}

	c := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", s, err)
		}
		c[i] = float32(v)
	}

	return c, nil
}

// evaluate runs op on one or two vectors given as text. s is the scalar for
// multiply and divide.
func evaluate(op string, s float32, operands ...string) (string, error) {
	if len(operands) == 0 || len(operands) > 2 {
		return "", fmt.Errorf("%s: expected 1 or 2 vectors, got %d", op, len(operands))
	}

	a, err := parseComponents(operands[0])
	if err != nil {
		return "", err
	}

	b := make([]float32, len(a))
	if len(operands) == 2 {
		b, err = parseComponents(operands[1])
		if err != nil {
			return "", err
		}
		if len(a) != len(b) {
			return "", fmt.Errorf("%s: dimension mismatch, %d vs %d", op, len(a), len(b))
		}
	}

	log.Debug().Str("op", op).Floats32("a", a).Floats32("b", b).Float32("s", s).Msg("evaluating")

	switch len(a) {
	case vec.Vector2Components:
		return apply(op, vec.MakeVector2(a[0], a[1]), vec.MakeVector2(b[0], b[1]), s)
	case vec.Vector3Components:
		u := vec.MakeVector3(a[0], a[1], a[2])
		v := vec.MakeVector3(b[0], b[1], b[2])
		if op == "cross" {
			return u.Cross(v).String(), nil
		}
		return apply(op, u, v, s)
	default:
		return apply(op, vec.MakeVector4(a[0], a[1], a[2], a[3]), vec.MakeVector4(b[0], b[1], b[2], b[3]), s)
	}
}

func apply[V vector[V]](op string, a, b V, s float32) (string, error) {
	switch op {
	case "length":
		return fmt.Sprint(a.Length()), nil
	case "normalize":
		return a.Normalize().String(), nil
	case "negate":
		return a.Negate().String(), nil
	case "array":
		return fmt.Sprint(a.ToArray()), nil
	case "add":
		return a.Add(b).String(), nil
	case "subtract":
		return a.Subtract(b).String(), nil
	case "dot":
		return fmt.Sprint(a.Dot(b)), nil
	case "multiply":
		return a.Multiply(s).String(), nil
	case "divide":
		return a.Divide(s).String(), nil
	case "cross":
		return "", fmt.Errorf("cross: only defined for 3 component vectors, got %s", a)
	}
	return "", fmt.Errorf("unknown operation %q", op)
}
