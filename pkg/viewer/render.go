package viewer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/lidarview/pkg/frame"
	"github.com/philipparndt/lidarview/pkg/geometry"
	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/view"
)

// Options control the software renderer
type Options struct {
	Width      int
	Height     int
	PointSize  int
	Background color.RGBA
	Cube       bool
	HUD        bool
}

// DefaultOptions matches the interactive window: 500x500, black background,
// cube on, HUD on
func DefaultOptions() Options {
	return Options{
		Width:      500,
		Height:     500,
		PointSize:  1,
		Background: color.RGBA{A: 255},
		Cube:       true,
		HUD:        true,
	}
}

// Result is a rendered frame
type Result struct {
	Image *image.RGBA
	Stats frame.Stats
	Drawn int // points that reached at least one pixel
}

// Render draws one frame of the cloud into an image. It consumes the
// frame pass and only issues pixel writes.
func Render(cloud *lidar.PointCloud, state *view.ViewState, colors *view.ColorPolicy, opts Options) (*Result, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	vertices, stats, err := frame.Collect(cloud, state, colors)
	if err != nil {
		return nil, err
	}

	c := newCanvas(opts.Width, opts.Height, opts.Background)
	camera := NewCamera(state.Projection)
	matrix := state.CameraMatrix()
	w, h := float64(opts.Width), float64(opts.Height)

	drawn := 0
	for _, v := range vertices {
		x, y, z, ok := camera.Project(matrix.TransformAffine(v.Position), w, h)
		if !ok {
			continue
		}
		if c.point(x, y, z, opts.PointSize, v.Color) > 0 {
			drawn++
		}
	}

	if opts.Cube {
		drawCube(c, camera, matrix, state.FilledCube, w, h)
	}

	if opts.HUD {
		drawHUD(c.img, HUDLines(cloud, state, stats))
	}

	return &Result{Image: c.img, Stats: stats, Drawn: drawn}, nil
}

func drawCube(c *canvas, camera Camera, matrix geometry.Mat4, filled bool, w, h float64) {
	for _, face := range frame.Cube(1) {
		var pts [4][3]float64
		visible := true
		for i, corner := range face.Corners {
			x, y, z, ok := camera.Project(matrix.TransformAffine(corner), w, h)
			if !ok {
				visible = false
				break
			}
			pts[i] = [3]float64{x, y, z}
		}
		if !visible {
			continue
		}

		if filled {
			c.fillTriangle(pts[0][0], pts[0][1], pts[0][2], pts[1][0], pts[1][1], pts[1][2], pts[2][0], pts[2][1], pts[2][2], face.Color)
			c.fillTriangle(pts[0][0], pts[0][1], pts[0][2], pts[2][0], pts[2][1], pts[2][2], pts[3][0], pts[3][1], pts[3][2], face.Color)
			continue
		}
		for i := range pts {
			a, b := pts[i], pts[(i+1)%4]
			c.line(round(a[0]), round(a[1]), a[2], round(b[0]), round(b[1]), b[2], face.Color)
		}
	}
}

// HUDLines returns the status lines shown on top of a frame
func HUDLines(cloud *lidar.PointCloud, state *view.ViewState, stats frame.Stats) []string {
	shown := ""
	for b := view.Bucket(0); b < view.NumBuckets; b++ {
		if state.Buckets[b] {
			if shown != "" {
				shown += ","
			}
			shown += b.String()
		}
	}
	if shown == "" {
		shown = "none"
	}
	zoom := 1.0
	if state.InitialScale != 0 {
		zoom = state.Scale / state.InitialScale
	}

	return []string{
		fmt.Sprintf("%s: %d/%d points", cloud.Name, stats.Visible, stats.Total),
		fmt.Sprintf("color: %s  returns: %s  view: %s", state.ColorMode, state.ReturnFilter, state.Projection),
		fmt.Sprintf("show: %s", shown),
		fmt.Sprintf("zoom: %.2fx  exaggeration: %.2fx", zoom, state.Exaggeration),
	}
}

func drawHUD(img *image.RGBA, lines []string) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(view.White),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(6, 4+lineHeight*(i+1))
		d.DrawString(line)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
