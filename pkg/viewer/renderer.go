package viewer

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/golang/glog"

	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/view"
)

// dragStep is the pointer travel in pixels that issues one rotate command
const dragStep = 8

// CloudView is a fyne widget showing a point cloud through the software
// renderer. Keys, drags and scrolling are translated into view commands.
type CloudView struct {
	widget.BaseWidget

	mu     sync.Mutex
	cloud  *lidar.PointCloud
	state  *view.ViewState
	colors *view.ColorPolicy
	opts   Options
	raster *canvas.Raster

	dragX, dragY float32
	onQuit       func()
	onChange     func(*Result)
}

// NewCloudView creates a widget for a loaded cloud
func NewCloudView(cloud *lidar.PointCloud, state *view.ViewState, colors *view.ColorPolicy, opts Options) *CloudView {
	v := &CloudView{
		cloud:  cloud,
		state:  state,
		colors: colors,
		opts:   opts,
	}
	v.raster = canvas.NewRaster(v.generate)
	v.ExtendBaseWidget(v)
	return v
}

// SetOnQuit sets the callback for the quit command
func (v *CloudView) SetOnQuit(callback func()) {
	v.onQuit = callback
}

// SetOnChange sets the callback invoked after every rendered frame
func (v *CloudView) SetOnChange(callback func(*Result)) {
	v.onChange = callback
}

// SetCloud replaces the displayed cloud, e.g. after a reload
func (v *CloudView) SetCloud(cloud *lidar.PointCloud) error {
	v.mu.Lock()
	if err := v.state.Rebase(cloud.Bounds()); err != nil {
		v.mu.Unlock()
		return err
	}
	v.cloud = cloud
	v.mu.Unlock()
	v.Refresh()
	return nil
}

// Apply runs a command against the view state and redraws when needed
func (v *CloudView) Apply(cmd view.Command) view.Effect {
	v.mu.Lock()
	effect := v.state.Apply(cmd)
	v.mu.Unlock()

	switch effect {
	case view.EffectRedraw:
		v.Refresh()
	case view.EffectQuit:
		if v.onQuit != nil {
			v.onQuit()
		}
	}
	return effect
}

func (v *CloudView) generate(w, h int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()

	opts := v.opts
	opts.Width, opts.Height = w, h
	result, err := Render(v.cloud, v.state, v.colors, opts)
	if err != nil {
		glog.Errorf("render failed: %v", err)
		return image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	}
	if v.onChange != nil {
		v.onChange(result)
	}
	return result.Image
}

// CreateRenderer creates the renderer for the widget
func (v *CloudView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// MinSize keeps the window usable
func (v *CloudView) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

// Tapped grabs keyboard focus
func (v *CloudView) Tapped(_ *fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(v); c != nil {
		c.Focus(v)
	}
}

// FocusGained implements fyne.Focusable
func (v *CloudView) FocusGained() {}

// FocusLost implements fyne.Focusable
func (v *CloudView) FocusLost() {}

// TypedRune maps characters to commands
func (v *CloudView) TypedRune(r rune) {
	if cmd, ok := view.CommandForKey(r); ok {
		v.Apply(cmd)
	}
}

// TypedKey handles keys without a character
func (v *CloudView) TypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyHome:
		v.Apply(view.CmdReset)
	case fyne.KeyUp:
		v.Apply(view.CmdRotateXPos)
	case fyne.KeyDown:
		v.Apply(view.CmdRotateXNeg)
	case fyne.KeyLeft:
		v.Apply(view.CmdRotateZNeg)
	case fyne.KeyRight:
		v.Apply(view.CmdRotateZPos)
	}
}

// Dragged rotates around Z for horizontal and X for vertical movement
func (v *CloudView) Dragged(event *fyne.DragEvent) {
	v.dragX += event.Dragged.DX
	v.dragY += event.Dragged.DY

	for v.dragX >= dragStep {
		v.dragX -= dragStep
		v.Apply(view.CmdRotateZPos)
	}
	for v.dragX <= -dragStep {
		v.dragX += dragStep
		v.Apply(view.CmdRotateZNeg)
	}
	for v.dragY >= dragStep {
		v.dragY -= dragStep
		v.Apply(view.CmdRotateXPos)
	}
	for v.dragY <= -dragStep {
		v.dragY += dragStep
		v.Apply(view.CmdRotateXNeg)
	}
}

// DragEnd resets the accumulated drag distance
func (v *CloudView) DragEnd() {
	v.dragX, v.dragY = 0, 0
}

// Scrolled zooms in and out
func (v *CloudView) Scrolled(event *fyne.ScrollEvent) {
	switch {
	case event.Scrolled.DY > 0:
		v.Apply(view.CmdZoomIn)
	case event.Scrolled.DY < 0:
		v.Apply(view.CmdZoomOut)
	}
}
