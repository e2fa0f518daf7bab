package viewer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/view"
)

func plainOptions() Options {
	opts := DefaultOptions()
	opts.Width, opts.Height = 100, 100
	opts.Cube = false
	opts.HUD = false
	return opts
}

func squareCloud(t *testing.T, extra ...lidar.Point) *lidar.PointCloud {
	t.Helper()
	cloud := lidar.NewPointCloud("square")
	points := append([]lidar.Point{
		lidar.NewPoint(0, 0, 0, 1, 1, lidar.Ground),
		lidar.NewPoint(10, 10, 0, 1, 1, lidar.Ground),
	}, extra...)
	for _, p := range points {
		require.NoError(t, cloud.Add(p))
	}
	return cloud
}

func TestRenderTopViewCenterPoint(t *testing.T) {
	cloud := squareCloud(t, lidar.NewPoint(5, 5, 0, 1, 1, lidar.Ground))
	state, err := view.NewViewState(cloud.Bounds())
	require.NoError(t, err)
	state.Apply(view.CmdTopView)

	result, err := Render(cloud, state, view.NewColorPolicy(), plainOptions())
	require.NoError(t, err)

	assert.Equal(t, view.Yellow, result.Image.RGBAAt(50, 50))
	assert.Equal(t, 3, result.Stats.Visible)
}

func TestRenderDrawsVisiblePointsOnly(t *testing.T) {
	cloud := squareCloud(t, lidar.NewPoint(5, 5, 0, 1, 1, lidar.Ground))
	state, err := view.NewViewState(cloud.Bounds())
	require.NoError(t, err)
	state.Apply(view.CmdTopView)
	state.Apply(view.CmdToggleGround)

	result, err := Render(cloud, state, view.NewColorPolicy(), plainOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.Visible)
	assert.Equal(t, 0, result.Drawn)
	black := color.RGBA{A: 255}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			require.Equal(t, black, result.Image.RGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestRenderDepthTest(t *testing.T) {
	cloud := squareCloud(t,
		lidar.NewPoint(5, 5, 1, 1, 1, lidar.Building),
		lidar.NewPoint(5, 5, 0, 1, 1, lidar.Ground),
	)
	state, err := view.NewViewState(cloud.Bounds())
	require.NoError(t, err)
	state.Apply(view.CmdTopView)
	state.Apply(view.CmdCycleColorMode)

	result, err := Render(cloud, state, view.NewColorPolicy(), plainOptions())
	require.NoError(t, err)

	// the higher building point is closer to the top camera
	assert.Equal(t, view.Copper, result.Image.RGBAAt(50, 50))
}

func TestRenderPerspectiveCenter(t *testing.T) {
	cloud := squareCloud(t, lidar.NewPoint(5, 5, 0, 1, 1, lidar.Ground))
	state, err := view.NewViewState(cloud.Bounds())
	require.NoError(t, err)

	opts := plainOptions()
	opts.PointSize = 3
	result, err := Render(cloud, state, view.NewColorPolicy(), opts)
	require.NoError(t, err)

	assert.Equal(t, view.Yellow, result.Image.RGBAAt(50, 50))
	assert.Equal(t, view.Yellow, result.Image.RGBAAt(49, 49))
	assert.Equal(t, view.Yellow, result.Image.RGBAAt(51, 51))
}

func TestRenderBehindCameraIsSkipped(t *testing.T) {
	cloud := squareCloud(t)
	state, err := view.NewViewState(cloud.Bounds())
	require.NoError(t, err)
	for i := 0; i < 30; i++ {
		state.Apply(view.CmdTranslateZPos)
	}

	result, err := Render(cloud, state, view.NewColorPolicy(), plainOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Stats.Visible)
	assert.Equal(t, 0, result.Drawn)
}

func TestRenderCubeAndHUD(t *testing.T) {
	cloud := squareCloud(t)
	state, err := view.NewViewState(cloud.Bounds())
	require.NoError(t, err)

	opts := DefaultOptions()
	bare, err := Render(cloud, state, view.NewColorPolicy(), plainOptions())
	require.NoError(t, err)
	full, err := Render(cloud, state, view.NewColorPolicy(), opts)
	require.NoError(t, err)

	assert.Equal(t, 500, full.Image.Bounds().Dx())
	assert.NotEqual(t, bare.Image.Bounds(), full.Image.Bounds())

	state.Apply(view.CmdToggleCube)
	filled, err := Render(cloud, state, view.NewColorPolicy(), opts)
	require.NoError(t, err)
	assert.NotEqual(t, full.Image.Pix, filled.Image.Pix)
}

func TestRenderErrors(t *testing.T) {
	state := &view.ViewState{Scale: 1, Buckets: view.AllBuckets()}

	_, err := Render(lidar.NewPointCloud("empty"), state, view.NewColorPolicy(), plainOptions())
	require.ErrorIs(t, err, view.ErrEmptyCloud)

	opts := plainOptions()
	opts.Width = 0
	_, err = Render(squareCloud(t), state, view.NewColorPolicy(), opts)
	require.Error(t, err)
}

func TestHUDLines(t *testing.T) {
	cloud := squareCloud(t)
	state, err := view.NewViewState(cloud.Bounds())
	require.NoError(t, err)
	state.Apply(view.CmdToggleVegetation)
	state.Apply(view.CmdZoomIn)

	result, err := Render(cloud, state, view.NewColorPolicy(), plainOptions())
	require.NoError(t, err)
	lines := HUDLines(cloud, state, result.Stats)

	require.Len(t, lines, 4)
	assert.Equal(t, "square: 2/2 points", lines[0])
	assert.Equal(t, "color: uniform  returns: all  view: perspective", lines[1])
	assert.Equal(t, "show: ground,building,other", lines[2])
	assert.Equal(t, "zoom: 1.10x  exaggeration: 1.00x", lines[3])
}
