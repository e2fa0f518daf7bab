package app

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"

	"github.com/philipparndt/lidarview/internal/session"
)

// Run opens the interactive window for a session until the user quits
func Run(s *session.Session) error {
	app := &App{
		Session: s,
		Scene:   SceneData{dirty: true},
		UI:      UIState{showHUD: true},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if s.Config.Watch {
		if err := app.setupFileWatcher(ctx); err != nil {
			glog.Warningf("failed to set up file watching, auto-reload disabled: %v", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(s.Config.Width), int32(s.Config.Height), fmt.Sprintf("lidarview - %s", s.Cloud.Name))
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull)

	for !rl.WindowShouldClose() {
		if app.FileWatch.reload.Take() {
			app.reloadCloud()
		}

		if !app.handleInput() {
			break
		}

		if app.Scene.dirty {
			app.rebuildFrame()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		rl.BeginMode3D(newCamera(s.View.Projection))
		app.drawPoints()
		app.drawCube()
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}
