package renderer

import (
	"fmt"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// Camera holds the orthonormal view-plane basis derived from the eye
// position and look-at parameters. The view plane is a horizontal×vertical
// rectangle centered on the look-at point; screenCorner is its top-left
// corner.
type Camera struct {
	Eye          core.Vec3
	xAxis        core.Vec3
	yAxis        core.Vec3
	screenCorner core.Vec3
	horizontal   float64
	vertical     float64
}

// NewCamera derives the view-plane basis via Gram-Schmidt orthogonalization
// of viewUp against the view direction. It returns an error when the basis
// is degenerate: eye and view coincide, viewUp is zero, or viewUp is
// parallel to the view direction.
func NewCamera(eye, view, viewUp core.Vec3, horizontal, vertical float64) (*Camera, error) {
	toView := view.Subtract(eye)
	if toView.LengthSquared() == 0 {
		return nil, fmt.Errorf("camera: eye and view points coincide at %v", eye)
	}
	if viewUp.LengthSquared() == 0 {
		return nil, fmt.Errorf("camera: viewUp must not be the zero vector")
	}

	viewDir := toView.Normalize()
	up := viewUp.Normalize()

	// Gram-Schmidt: remove the view-direction component from up
	yAxis := up.Subtract(viewDir.Multiply(viewDir.Dot(up)))
	if yAxis.Length() < core.Epsilon {
		return nil, fmt.Errorf("camera: viewUp %v is parallel to the view direction %v", viewUp, viewDir)
	}
	yAxis = yAxis.Normalize()
	xAxis := viewDir.Cross(yAxis).Normalize()

	screenCorner := view.
		Subtract(xAxis.Multiply(horizontal / 2)).
		Add(yAxis.Multiply(vertical / 2))

	return &Camera{
		Eye:          eye,
		xAxis:        xAxis,
		yAxis:        yAxis,
		screenCorner: screenCorner,
		horizontal:   horizontal,
		vertical:     vertical,
	}, nil
}

// ScreenPoint maps pixel coordinates (x, y) to a point on the view-plane
// rectangle by linear interpolation from the screen corner. Width and height
// must both be at least 2.
func (c *Camera) ScreenPoint(x, y, width, height int) core.Vec3 {
	xComponent := c.xAxis.Multiply(float64(x) * c.horizontal / float64(width-1))
	yComponent := c.yAxis.Multiply(float64(y) * c.vertical / float64(height-1))
	return c.screenCorner.Add(xComponent).Subtract(yComponent)
}

// RayThrough builds the primary ray from the eye through pixel (x, y)
func (c *Camera) RayThrough(x, y, width, height int) core.Ray {
	return core.NewRayThrough(c.Eye, c.ScreenPoint(x, y, width, height))
}
