package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/lidarview/internal/session"
	"github.com/philipparndt/lidarview/pkg/frame"
	"github.com/philipparndt/lidarview/pkg/watcher"
)

// SceneData holds the vertices of the last frame pass
type SceneData struct {
	positions []rl.Vector3 // camera space
	colors    []rl.Color
	stats     frame.Stats
	dirty     bool // state changed since the last frame pass
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher
	reload      watcher.ReloadFlag
	lastError   error
}

// UIState holds UI-related state
type UIState struct {
	showHelp bool
	showHUD  bool
}

// App is the interactive window around one session
type App struct {
	Session   *session.Session
	Scene     SceneData
	FileWatch FileWatchState
	UI        UIState
}
