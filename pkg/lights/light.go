package lights

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// PointLight is a point light source. Color channels are intensities in
// [0, 255]; they are scaled by the surface coefficients during shading.
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewPointLight creates a point light at the given position
func NewPointLight(position, color core.Vec3) PointLight {
	return PointLight{Position: position, Color: color}
}
