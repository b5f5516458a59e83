package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/geometry"
	"github.com/df07/go-scanline-raytracer/pkg/lights"
	"github.com/df07/go-scanline-raytracer/pkg/material"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

func TestShader_Shade_Background(t *testing.T) {
	s := scene.New(nil, nil)
	sh := NewShader(s, DefaultShadingConfig())

	c := sh.Shade(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)))
	if !c.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected black background, got %v", c)
	}
}

func TestShader_Shade_AmbientOnly(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1,
		material.New(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.5, 0.5, 0.5), 10))
	s := scene.New([]geometry.Intersectable{sphere}, nil)
	sh := NewShader(s, DefaultShadingConfig())

	c := sh.Shade(core.NewRay(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0)))
	if !c.Equals(core.NewVec3(15, 15, 15)) {
		t.Errorf("Expected ambient (15, 15, 15) with no lights, got %v", c)
	}
}

func TestShader_Shade_OccludedLightContributesNothing(t *testing.T) {
	mat := material.New(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.5, 0.5, 0.5), 10)
	target := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	blocker := geometry.NewSphere(core.NewVec3(5.5, 0, 5), 1, mat)
	light := lights.NewPointLight(core.NewVec3(10, 0, 10), core.NewVec3(255, 255, 255))

	ray := core.NewRay(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0))

	occludedScene := scene.New([]geometry.Intersectable{target, blocker}, []lights.PointLight{light})
	c := NewShader(occludedScene, DefaultShadingConfig()).Shade(ray)
	if !c.Equals(core.NewVec3(15, 15, 15)) {
		t.Errorf("Expected exactly the ambient value for an occluded light, got %v", c)
	}

	// Same scene without the blocker: the light must now contribute.
	openScene := scene.New([]geometry.Intersectable{target}, []lights.PointLight{light})
	c = NewShader(openScene, DefaultShadingConfig()).Shade(ray)
	if c.X <= 15 || c.Y <= 15 || c.Z <= 15 {
		t.Errorf("Expected more than ambient from an unoccluded light, got %v", c)
	}
}

func TestShader_Shade_DiffuseValue(t *testing.T) {
	// Hit point (1,0,0), normal (1,0,0), light along the normal: cosine 1,
	// no ambiguity from the specular term (coefficients zero).
	mat := material.New(core.NewVec3(0.4, 0.5, 0.6), core.NewVec3(0, 0, 0), 10)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	light := lights.NewPointLight(core.NewVec3(10, 0, 0), core.NewVec3(100, 100, 100))
	s := scene.New([]geometry.Intersectable{sphere}, []lights.PointLight{light})

	c := NewShader(s, DefaultShadingConfig()).Shade(core.NewRay(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0)))

	expected := core.NewVec3(15+100*0.4, 15+100*0.5, 15+100*0.6)
	if !c.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

func TestShader_DiffuseCosineStaysSigned(t *testing.T) {
	sh := NewShader(scene.New(nil, nil), DefaultShadingConfig())

	// Light behind the surface: negative cosine must subtract, not clamp.
	contribution := sh.diffuse(
		core.NewVec3(100, 100, 100),
		core.NewVec3(0.5, 0.5, 0.5),
		core.NewVec3(0, 0, -1), // toLight
		core.NewVec3(0, 0, 1),  // normal
	)
	if !contribution.Equals(core.NewVec3(-50, -50, -50)) {
		t.Errorf("Expected signed diffuse contribution (-50, -50, -50), got %v", contribution)
	}
}

func TestShader_SpecularNaNContributesZero(t *testing.T) {
	sh := NewShader(scene.New(nil, nil), DefaultShadingConfig())

	// Reflected vector pointing away from the viewer under a fractional
	// exponent produces NaN from Pow; the term must vanish instead.
	contribution := sh.specular(
		core.NewVec3(255, 255, 255),
		core.NewVec3(0.5, 0.5, 0.5),
		0.5,                    // fractional shininess
		core.NewVec3(0, 0, 1),  // toLight along the normal
		core.NewVec3(0, 0, 1),  // normal
		core.NewVec3(0, 0, 5),  // ray origin (viewer)
		core.NewVec3(0, 0, 0),  // surface point
	)
	if !contribution.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected zero contribution for NaN specular term, got %v", contribution)
	}
}

func TestShader_SpecularHighlight(t *testing.T) {
	sh := NewShader(scene.New(nil, nil), DefaultShadingConfig())

	// Light along the normal reflects straight back; a viewer on the normal
	// sees the full highlight regardless of exponent.
	contribution := sh.specular(
		core.NewVec3(200, 200, 200),
		core.NewVec3(0.5, 0.5, 0.5),
		32,
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 0, 5),
		core.NewVec3(0, 0, 0),
	)
	if !contribution.Equals(core.NewVec3(100, 100, 100)) {
		t.Errorf("Expected full highlight (100, 100, 100), got %v", contribution)
	}
}

func TestClampChannel(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected uint8
	}{
		{name: "in range", value: 128.7, expected: 128},
		{name: "saturates above 255", value: 300, expected: 255},
		{name: "negative floors at 0", value: -42, expected: 0},
		{name: "NaN maps to 0", value: math.NaN(), expected: 0},
		{name: "exact 255", value: 255, expected: 255},
		{name: "zero", value: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampChannel(tt.value); got != tt.expected {
				t.Errorf("ClampChannel(%v) = %d, expected %d", tt.value, got, tt.expected)
			}
		})
	}
}
