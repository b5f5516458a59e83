package material

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// Material holds the illumination coefficients of a surface. Diffuse and
// Specular are per-channel (R, G, B) coefficients in [0, 1]; Shininess is
// the exponent of the specular term.
type Material struct {
	Diffuse   core.Vec3
	Specular  core.Vec3
	Shininess float64
}

// New creates a material from per-channel diffuse and specular coefficients
// and a specular exponent
func New(diffuse, specular core.Vec3, shininess float64) Material {
	return Material{
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}
