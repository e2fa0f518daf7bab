package app

import (
	"context"

	"github.com/golang/glog"

	"github.com/philipparndt/lidarview/pkg/watcher"
)

// setupFileWatcher starts watching the source file; changes only set the
// reload flag, the main loop performs the reload
func (app *App) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(app.Session.Path, watcher.DefaultDebounce)
	if err != nil {
		return err
	}
	fw.Start(ctx, func() {
		glog.Infof("%s changed", app.Session.Path)
		app.FileWatch.reload.Set()
	})
	app.FileWatch.fileWatcher = fw
	return nil
}

// reloadCloud runs on the main loop between frames
func (app *App) reloadCloud() {
	if err := app.Session.Reload(); err != nil {
		glog.Errorf("%v", err)
		app.FileWatch.lastError = err
		return
	}
	app.FileWatch.lastError = nil
	app.Scene.dirty = true
}
