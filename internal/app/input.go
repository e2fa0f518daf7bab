package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/lidarview/pkg/view"
)

// handleInput translates pressed keys into view commands.
// It returns false when the session should end.
func (app *App) handleInput() bool {
	if rl.IsKeyPressed(rl.KeyHome) {
		app.apply(view.CmdReset)
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		app.UI.showHelp = !app.UI.showHelp
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		app.UI.showHUD = !app.UI.showHUD
	}

	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		cmd, ok := view.CommandForKey(rune(ch))
		if !ok {
			continue
		}
		if app.apply(cmd) == view.EffectQuit {
			return false
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel > 0 {
		app.apply(view.CmdZoomIn)
	} else if wheel < 0 {
		app.apply(view.CmdZoomOut)
	}

	return true
}

func (app *App) apply(cmd view.Command) view.Effect {
	effect := app.Session.View.Apply(cmd)
	if effect == view.EffectRedraw {
		app.Scene.dirty = true
	}
	return effect
}
