package frame

import (
	"image/color"

	"github.com/philipparndt/lidarview/pkg/geometry"
	"github.com/philipparndt/lidarview/pkg/view"
)

// Face is one colored quad of the reference cube
type Face struct {
	Color   color.RGBA
	Corners [4]geometry.Vector3
}

// Cube returns the reference cube [-side, side]^3 drawn around the cloud:
// blue back face, red front face, green sides, and the three middle planes
// (cyan z=0, gray x=0, magenta y=0). Top and bottom are left open.
func Cube(side float64) []Face {
	return []Face{
		xyRect(-side, side, view.Blue),
		xyRect(side, side, view.Red),
		yzRect(-side, side, view.Green),
		yzRect(side, side, view.Green),
		xyRect(0, side, view.Cyan),
		yzRect(0, side, view.Gray),
		xzRect(0, side, view.Magenta),
	}
}

// Edges returns the four edges of a face as start/end pairs
func (f Face) Edges() [4][2]geometry.Vector3 {
	var edges [4][2]geometry.Vector3
	for i := range f.Corners {
		edges[i] = [2]geometry.Vector3{f.Corners[i], f.Corners[(i+1)%4]}
	}
	return edges
}

func xyRect(z, side float64, c color.RGBA) Face {
	return Face{Color: c, Corners: [4]geometry.Vector3{
		{X: -side, Y: -side, Z: z},
		{X: -side, Y: side, Z: z},
		{X: side, Y: side, Z: z},
		{X: side, Y: -side, Z: z},
	}}
}

func yzRect(x, side float64, c color.RGBA) Face {
	return Face{Color: c, Corners: [4]geometry.Vector3{
		{X: x, Y: -side, Z: side},
		{X: x, Y: side, Z: side},
		{X: x, Y: side, Z: -side},
		{X: x, Y: -side, Z: -side},
	}}
}

func xzRect(y, side float64, c color.RGBA) Face {
	return Face{Color: c, Corners: [4]geometry.Vector3{
		{X: -side, Y: y, Z: side},
		{X: -side, Y: y, Z: -side},
		{X: side, Y: y, Z: -side},
		{X: side, Y: y, Z: side},
	}}
}
