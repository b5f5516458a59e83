package geometry

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// tangentTolerance decides when the two quadratic roots collapse into a
// single tangential hit.
const tangentTolerance = 1e-6

// Sphere represents a sphere surface
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests the ray against the sphere.
// It solves a·t² + b·t + c = 0 for the ray parameter t and classifies the
// hit as outer or inner surface depending on the sign of the roots.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b + sqrtD) / (2 * a)
	t2 := (-b - sqrtD) / (2 * a)

	// Sphere entirely behind the ray origin
	if t1 < 0 && t2 < 0 {
		return Intersection{}, false
	}

	switch {
	case math.Abs(t1-t2) < tangentTolerance:
		// Tangential ray, single outer-surface hit
		return s.intersectionAt(ray, t1, true), true
	case t1 > 0 && t2 > 0:
		// Origin outside the sphere, closer root wins
		return s.intersectionAt(ray, math.Min(t1, t2), true), true
	default:
		// Origin inside the sphere, hit is on the inner surface
		return s.intersectionAt(ray, math.Max(t1, t2), false), true
	}
}

// intersectionAt builds the intersection record for ray parameter t.
// The normal always points from the center toward the surface point,
// for inner hits as well; shading uses it directly without sidedness checks.
func (s *Sphere) intersectionAt(ray core.Ray, t float64, outer bool) Intersection {
	point := ray.At(t)
	return Intersection{
		Point:    point,
		Distance: point.Subtract(ray.Origin).Length(),
		Outer:    outer,
		Normal:   point.Subtract(s.Center).Normalize(),
		Material: s.Material,
	}
}
