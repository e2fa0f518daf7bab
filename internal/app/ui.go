package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/lidarview/pkg/view"
	"github.com/philipparndt/lidarview/pkg/viewer"
)

const (
	fontSize   = 14
	lineHeight = 18
	margin     = 8
)

// drawUI renders the status lines and the optional key help
func (app *App) drawUI() {
	y := int32(margin)

	if app.UI.showHUD {
		for _, line := range viewer.HUDLines(app.Session.Cloud, app.Session.View, app.Scene.stats) {
			rl.DrawText(line, margin, y, fontSize, rl.RayWhite)
			y += lineHeight
		}
	}

	if err := app.FileWatch.lastError; err != nil {
		rl.DrawText(fmt.Sprintf("reload failed: %v", err), margin, y, fontSize, rl.Red)
		y += lineHeight
	}

	if app.UI.showHelp {
		y += lineHeight / 2
		for _, line := range view.KeyHelp {
			rl.DrawText(line, margin, y, fontSize, rl.LightGray)
			y += lineHeight
		}
		return
	}

	rl.DrawText("F1 help", margin, int32(rl.GetScreenHeight())-lineHeight-margin, fontSize, rl.Gray)
}
