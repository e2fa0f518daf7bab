package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/lidarview/pkg/view"
)

// newCamera returns the fixed camera at the origin looking down -Z.
// Camera movement is applied to the vertices through the view state's
// camera matrix.
func newCamera(projection view.Projection) rl.Camera3D {
	camera := rl.Camera3D{
		Position:   rl.NewVector3(0, 0, 0),
		Target:     rl.NewVector3(0, 0, -1),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	if projection == view.TopOrthographic {
		// orthographic fovy is the visible height
		camera.Fovy = 2
		camera.Projection = rl.CameraOrthographic
	}
	return camera
}
