package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/philipparndt/lidarview/internal/config"
	"github.com/philipparndt/lidarview/internal/session"
	"github.com/philipparndt/lidarview/pkg/analysis"
	"github.com/philipparndt/lidarview/pkg/view"
	"github.com/philipparndt/lidarview/pkg/viewer"
	"github.com/philipparndt/lidarview/pkg/watcher"
)

type App struct {
	window  fyne.Window
	config  *config.Config
	session *session.Session
	view    *viewer.CloudView

	cloudInfo  *widget.Label
	frameInfo  *widget.Label
	colorSel   *widget.Select
	returnSel  *widget.Select
	bucketChks [view.NumBuckets]*widget.Check

	cancelWatch context.CancelFunc
	fileWatcher *watcher.FileWatcher
}

func main() {
	_ = flag.Set("logtostderr", "true")
	configFlags := config.RegisterFlags(pflag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	_ = flag.CommandLine.Parse(nil)
	defer glog.Flush()

	cfg, err := configFlags.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("lidarview")

	appInstance := &App{
		window: w,
		config: cfg,
	}

	if pflag.NArg() > 0 {
		appInstance.loadFile(pflag.Arg(0))
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(float32(cfg.Width)+300, float32(cfg.Height)))
	w.ShowAndRun()
	appInstance.stopWatching()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to lidarview")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Open a point cloud exported with las2txt or pdal translate")

	openButton := widget.NewButton("Open Point Cloud", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	s, err := session.Open(filename, a.config)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load point cloud: %w", err), a.window)
		return
	}

	a.stopWatching()
	a.session = s
	a.window.SetTitle("lidarview - " + s.Cloud.Name)
	a.setupMainUI()

	if a.config.Watch {
		a.startWatching()
	}
}

func (a *App) setupMainUI() {
	opts := viewer.DefaultOptions()
	opts.Width, opts.Height = a.config.Width, a.config.Height
	opts.PointSize = a.config.PointSize
	opts.HUD = false

	a.view = viewer.NewCloudView(a.session.Cloud, a.session.View, a.session.Colors, opts)
	a.view.SetOnQuit(func() { a.window.Close() })
	a.view.SetOnChange(func(result *viewer.Result) {
		stats := result.Stats
		fyne.Do(func() {
			a.frameInfo.SetText(fmt.Sprintf("Visible: %d of %d\nDrawn: %d", stats.Visible, stats.Total, result.Drawn))
			a.syncControls()
		})
	})

	a.cloudInfo = widget.NewLabel("")
	a.frameInfo = widget.NewLabel("")
	a.updateCloudInfo()

	colorSelect := widget.NewSelect([]string{"uniform", "source", "derived"}, func(value string) {
		mode, err := view.ParseColorMode(value)
		if err != nil {
			return
		}
		for a.session.View.ColorMode != mode {
			a.view.Apply(view.CmdCycleColorMode)
		}
	})
	colorSelect.SetSelected(a.session.View.ColorMode.String())
	a.colorSel = colorSelect

	returnCommands := map[string]view.Command{
		"all":      view.CmdReturnsAll,
		"first":    view.CmdReturnsFirst,
		"last":     view.CmdReturnsLast,
		"multiple": view.CmdReturnsMultiple,
		"single":   view.CmdReturnsSingle,
	}
	returnSelect := widget.NewSelect([]string{"all", "first", "last", "multiple", "single"}, func(value string) {
		if cmd, ok := returnCommands[value]; ok {
			a.view.Apply(cmd)
		}
	})
	returnSelect.SetSelected(a.session.View.ReturnFilter.String())
	a.returnSel = returnSelect

	toggles := [view.NumBuckets]view.Command{
		view.CmdToggleGround, view.CmdToggleVegetation, view.CmdToggleBuilding, view.CmdToggleOther,
	}
	buckets := container.NewVBox()
	for b := view.Bucket(0); b < view.NumBuckets; b++ {
		b := b
		check := widget.NewCheck(b.String(), func(checked bool) {
			if a.session.View.Buckets[b] != checked {
				a.view.Apply(toggles[b])
			}
		})
		check.SetChecked(a.session.View.Buckets[b])
		a.bucketChks[b] = check
		buckets.Add(check)
	}

	cubeCheck := widget.NewCheck("Filled cube", func(checked bool) {
		if a.session.View.FilledCube != checked {
			a.view.Apply(view.CmdToggleCube)
		}
	})

	topButton := widget.NewButton("Top View", func() { a.view.Apply(view.CmdTopView) })
	perspectiveButton := widget.NewButton("Perspective", func() { a.view.Apply(view.CmdPerspectiveView) })
	resetButton := widget.NewButton("Reset", func() { a.view.Apply(view.CmdReset) })
	openButton := widget.NewButton("Open File", func() { a.showFileDialog() })

	help := ""
	for _, line := range view.KeyHelp {
		help += line + "\n"
	}
	instructions := widget.NewLabel("Click the view, then use the keys:\n" + help + "Drag to rotate, scroll to zoom")
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Point Cloud:"),
		widget.NewSeparator(),
		a.cloudInfo,
		a.frameInfo,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorSelect,
		widget.NewLabel("Returns:"),
		returnSelect,
		widget.NewLabel("Classes:"),
		buckets,
		cubeCheck,
		widget.NewSeparator(),
		container.NewGridWithColumns(3, topButton, perspectiveButton, resetButton),
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,
		nil,
		nil,
		infoScroll,
		a.view,
	)

	a.window.SetContent(content)
	a.window.Canvas().Focus(a.view)
}

// syncControls mirrors key-driven changes in the side panel
func (a *App) syncControls() {
	if mode := a.session.View.ColorMode.String(); a.colorSel.Selected != mode {
		a.colorSel.SetSelected(mode)
	}
	if filter := a.session.View.ReturnFilter.String(); a.returnSel.Selected != filter {
		a.returnSel.SetSelected(filter)
	}
	for b, check := range a.bucketChks {
		if check != nil && check.Checked != a.session.View.Buckets[b] {
			check.SetChecked(a.session.View.Buckets[b])
		}
	}
}

func (a *App) updateCloudInfo() {
	result := analysis.AnalyzeCloud(a.session.Cloud)
	a.cloudInfo.SetText(fmt.Sprintf(
		"Name: %s\nPoints: %d\nNon-finite: %d\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		result.Name,
		result.PointCount,
		result.Flagged,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	))
}

func (a *App) startWatching() {
	fw, err := watcher.NewFileWatcher(a.session.Path, watcher.DefaultDebounce)
	if err != nil {
		glog.Warningf("failed to set up file watching, auto-reload disabled: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	fw.Start(ctx, func() {
		fyne.Do(a.reload)
	})
	a.fileWatcher = fw
	a.cancelWatch = cancel
}

func (a *App) stopWatching() {
	if a.cancelWatch != nil {
		a.cancelWatch()
		a.cancelWatch = nil
	}
	if a.fileWatcher != nil {
		a.fileWatcher.Close()
		a.fileWatcher = nil
	}
}

func (a *App) reload() {
	cloud, err := session.LoadCloud(a.session.Path, a.config)
	if err != nil {
		dialog.ShowError(fmt.Errorf("reload failed: %w", err), a.window)
		return
	}
	if err := a.view.SetCloud(cloud); err != nil {
		dialog.ShowError(fmt.Errorf("reload failed: %w", err), a.window)
		return
	}
	a.session.Cloud = cloud
	a.updateCloudInfo()
}
