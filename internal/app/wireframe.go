package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/lidarview/pkg/frame"
)

// drawCube renders the reference cube as lines or filled quads
func (app *App) drawCube() {
	matrix := app.Session.View.CameraMatrix()

	for _, face := range frame.Cube(1) {
		col := rl.NewColor(face.Color.R, face.Color.G, face.Color.B, face.Color.A)

		var c [4]rl.Vector3
		for i, corner := range face.Corners {
			c[i] = toRaylib(matrix.TransformAffine(corner))
		}

		if app.Session.View.FilledCube {
			// both windings so back faces are not culled
			rl.DrawTriangle3D(c[0], c[1], c[2], col)
			rl.DrawTriangle3D(c[0], c[2], c[3], col)
			rl.DrawTriangle3D(c[2], c[1], c[0], col)
			rl.DrawTriangle3D(c[3], c[2], c[0], col)
			continue
		}
		for i := range c {
			rl.DrawLine3D(c[i], c[(i+1)%4], col)
		}
	}
}
