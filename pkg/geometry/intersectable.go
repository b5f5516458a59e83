package geometry

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// Intersection is the result of a ray/surface intersection test
type Intersection struct {
	Point    core.Vec3         // Intersection point in world space
	Distance float64           // Euclidean distance from the ray origin
	Outer    bool              // Whether the ray origin was outside the solid
	Normal   core.Vec3         // Unit surface normal at the point
	Material material.Material // Material of the intersected surface
}

// Intersectable is the capability of being intersected by a ray.
// Implementations must be safe for concurrent use; all current surfaces are
// immutable after construction.
type Intersectable interface {
	// Intersect returns the closest intersection with positive distance
	// along the ray, or false if the ray misses the surface.
	Intersect(ray core.Ray) (Intersection, bool)
}
