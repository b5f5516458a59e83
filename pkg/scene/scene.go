package scene

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/lights"
)

// Scene is an immutable aggregate of intersectable surfaces and light
// sources. It is built once before rendering and then only read, so it is
// safe for unbounded concurrent readers without synchronization.
type Scene struct {
	Objects []geometry.Intersectable
	Lights  []lights.PointLight
}

// New creates a scene from the given surfaces and lights
func New(objects []geometry.Intersectable, pointLights []lights.PointLight) *Scene {
	return &Scene{Objects: objects, Lights: pointLights}
}

// ClosestIntersection returns the intersection with minimum distance across
// all objects, or false if no object is hit. Ties are broken in favor of the
// object that appears first in scene order (strict < comparison).
func (s *Scene) ClosestIntersection(ray core.Ray) (geometry.Intersection, bool) {
	var closest geometry.Intersection
	found := false

	for _, object := range s.Objects {
		hit, isHit := object.Intersect(ray)
		if !isHit {
			continue
		}
		if !found || hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	}

	return closest, found
}
