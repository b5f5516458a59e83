package scene

import (
	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/lights"
	"github.com/df07/go-scanline-raytracer/pkg/material"
)

// NewDefaultScene creates the two-sphere showcase scene: a large matte
// sphere at the origin lit by two colored point lights, with a smaller
// glossy sphere offset toward the camera's right.
func NewDefaultScene() *Scene {
	big := geometry.NewSphere(
		core.NewVec3(0, 0, 0), 4,
		material.New(core.NewVec3(0.8, 0.3, 0.3), core.NewVec3(0.3, 0.3, 0.3), 10),
	)
	small := geometry.NewSphere(
		core.NewVec3(2, 4, -2), 1.5,
		material.New(core.NewVec3(0.3, 0.4, 0.8), core.NewVec3(0.6, 0.6, 0.6), 40),
	)

	return New(
		[]geometry.Intersectable{big, small},
		[]lights.PointLight{
			lights.NewPointLight(core.NewVec3(12, 8, 10), core.NewVec3(200, 180, 160)),
			lights.NewPointLight(core.NewVec3(10, -8, 6), core.NewVec3(120, 140, 200)),
		},
	)
}

// NewSingleSphereScene creates the minimal scene used by the end-to-end
// tests: one sphere of radius 5 at the origin with one white light placed
// near the eye.
func NewSingleSphereScene() *Scene {
	sphere := geometry.NewSphere(
		core.NewVec3(0, 0, 0), 5,
		material.New(core.NewVec3(0.7, 0.7, 0.7), core.NewVec3(0.4, 0.4, 0.4), 10),
	)

	return New(
		[]geometry.Intersectable{sphere},
		[]lights.PointLight{
			lights.NewPointLight(core.NewVec3(20, 10, 10), core.NewVec3(255, 255, 255)),
		},
	)
}
