// pkg/vec/vec.go
package vec

import "math"

// Epsilon is the magnitude threshold below which a vector is treated as
// zero by Normalize and IsZero.
const Epsilon = 1e-9

// Vec is a 2D vector. Every operation returns a new value; nothing mutates.
type Vec struct {
	X, Y float64
}

// Add adds two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub subtracts o from v.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k}
}

// Len returns the magnitude of the vector.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction. A vector whose
// magnitude is within Epsilon of zero normalizes to the zero vector.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l < Epsilon {
		return Vec{}
	}
	return v.Scale(1 / l)
}

// Dist returns the distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// IsZero reports whether the vector is within Epsilon of the zero vector.
func (v Vec) IsZero() bool {
	return v.Len() < Epsilon
}
