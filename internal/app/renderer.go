package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"

	"github.com/philipparndt/lidarview/pkg/frame"
	"github.com/philipparndt/lidarview/pkg/geometry"
)

// rebuildFrame reruns the frame pass and caches camera-space vertices
func (app *App) rebuildFrame() {
	vertices, stats, err := frame.Collect(app.Session.Cloud, app.Session.View, app.Session.Colors)
	if err != nil {
		glog.Errorf("frame pass failed: %v", err)
		return
	}

	matrix := app.Session.View.CameraMatrix()
	positions := app.Scene.positions[:0]
	colors := app.Scene.colors[:0]
	for _, v := range vertices {
		positions = append(positions, toRaylib(matrix.TransformAffine(v.Position)))
		colors = append(colors, rl.NewColor(v.Color.R, v.Color.G, v.Color.B, v.Color.A))
	}

	app.Scene.positions = positions
	app.Scene.colors = colors
	app.Scene.stats = stats
	app.Scene.dirty = false
}

// drawPoints issues one point per cached vertex
func (app *App) drawPoints() {
	pointSize := app.Session.Config.PointSize
	size := float32(pointSize) * 0.002
	for i, pos := range app.Scene.positions {
		if pointSize <= 1 {
			rl.DrawPoint3D(pos, app.Scene.colors[i])
		} else {
			rl.DrawCube(pos, size, size, size, app.Scene.colors[i])
		}
	}
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
