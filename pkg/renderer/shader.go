package renderer

import (
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// ShadingConfig contains the illumination constants
type ShadingConfig struct {
	Ambient    float64 // Base value seeded on every channel of a hit pixel
	ShadowBias float64 // Slack added to the occluder distance in shadow tests
}

// DefaultShadingConfig returns the standard illumination constants
func DefaultShadingConfig() ShadingConfig {
	return ShadingConfig{
		Ambient:    15,
		ShadowBias: 0.01,
	}
}

// Shader evaluates the local illumination model (ambient + per-light
// diffuse/specular with shadow testing) for primary rays against a scene.
//
// Accumulation policy: the diffuse cosine is intentionally left unclamped,
// so lights behind a surface subtract from its channels. A NaN specular term
// (negative cosine raised to a fractional exponent) contributes zero. The
// final clamp maps each channel into [0, 255]; negative sums floor at 0.
type Shader struct {
	scene  *scene.Scene
	config ShadingConfig
}

// NewShader creates a shader for the given scene
func NewShader(s *scene.Scene, config ShadingConfig) *Shader {
	return &Shader{scene: s, config: config}
}

// Shade computes the color for a primary ray. A ray that hits nothing
// yields the black background. The returned channels are raw sums in light
// intensity space; use ClampChannel to convert them to 8-bit values.
func (sh *Shader) Shade(ray core.Ray) core.Vec3 {
	closest, found := sh.scene.ClosestIntersection(ray)
	if !found {
		return core.Vec3{}
	}

	color := core.NewVec3(sh.config.Ambient, sh.config.Ambient, sh.config.Ambient)

	for _, light := range sh.scene.Lights {
		if sh.occluded(light.Position, closest.Point) {
			continue
		}

		// Unit vector from the surface point toward the light
		toLight := light.Position.Subtract(closest.Point).Normalize()
		normal := closest.Normal

		color = color.Add(sh.diffuse(light.Color, closest.Material.Diffuse, toLight, normal))
		color = color.Add(sh.specular(light.Color, closest.Material.Specular, closest.Material.Shininess,
			toLight, normal, ray.Origin, closest.Point))
	}

	return color
}

// occluded tests whether another surface blocks the straight line from the
// light to the target point. The shadow ray starts at the light; the light
// is occluded when its closest hit is nearer than the target by more than
// the shadow bias.
func (sh *Shader) occluded(lightPos, point core.Vec3) bool {
	shadowRay := core.NewRayThrough(lightPos, point)
	hit, found := sh.scene.ClosestIntersection(shadowRay)
	if !found {
		return false
	}
	lightDistance := lightPos.Subtract(point).Length()
	return hit.Distance+sh.config.ShadowBias < lightDistance
}

// diffuse returns the per-channel diffuse contribution of one light.
// The cosine stays signed: surfaces facing away from a light lose intensity.
func (sh *Shader) diffuse(lightColor, coeff core.Vec3, toLight, normal core.Vec3) core.Vec3 {
	cosAngle := toLight.Dot(normal)
	return lightColor.MultiplyVec(coeff).Multiply(cosAngle)
}

// specular returns the per-channel specular contribution of one light:
// the light direction reflected about the normal, dotted with the direction
// toward the viewer and raised to the surface's specular exponent.
func (sh *Shader) specular(lightColor, coeff core.Vec3, shininess float64,
	toLight, normal, rayOrigin, point core.Vec3) core.Vec3 {

	reflected := toLight.Subtract(normal.Multiply(2 * toLight.Dot(normal))).Normalize()
	toViewer := rayOrigin.Subtract(point).Normalize()

	cosN := math.Pow(reflected.Dot(toViewer), shininess)
	if math.IsNaN(cosN) {
		// Negative cosine under a fractional exponent; contributes nothing.
		return core.Vec3{}
	}
	return lightColor.MultiplyVec(coeff).Multiply(cosN)
}

// ClampChannel converts a raw channel sum to an 8-bit value. Values above
// 255 saturate, negative values and NaN map to 0.
func ClampChannel(value float64) uint8 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return uint8(value)
}
