package viewer

import (
	"math"

	"github.com/philipparndt/lidarview/pkg/geometry"
	"github.com/philipparndt/lidarview/pkg/view"
)

// Camera sits at the origin looking down -Z. It maps camera-space positions
// (display positions after the view state's camera matrix) to pixels.
type Camera struct {
	Projection view.Projection
	FOV        float64 // vertical field of view in degrees
	Near       float64
	Far        float64
}

// NewCamera creates a camera with the frustum of the interactive window:
// 60 degrees, depth from 1 to 10
func NewCamera(projection view.Projection) Camera {
	return Camera{
		Projection: projection,
		FOV:        60,
		Near:       1,
		Far:        10,
	}
}

// Project maps a camera-space point to screen coordinates and a depth used
// for the z-buffer. ok is false when the point is outside the depth range.
func (c Camera) Project(p geometry.Vector3, width, height float64) (x, y, depth float64, ok bool) {
	aspect := width / height
	depth = -p.Z

	if c.Projection == view.TopOrthographic {
		// Orthographic top view: the unit square fills the shorter side
		x = (p.X/aspect)*(width/2) + width/2
		y = (-p.Y)*(height/2) + height/2
		return x, y, depth, true
	}

	if depth < c.Near || depth > c.Far {
		return 0, 0, 0, false
	}

	fovScale := math.Tan(c.FOV * math.Pi / 360)
	x = (p.X/(depth*fovScale*aspect))*(width/2) + width/2
	y = (-p.Y/(depth*fovScale))*(height/2) + height/2
	return x, y, depth, true
}
