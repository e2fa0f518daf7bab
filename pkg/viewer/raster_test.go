package viewer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/lidarview/pkg/geometry"
	"github.com/philipparndt/lidarview/pkg/view"
)

var red = color.RGBA{R: 255, A: 255}
var blue = color.RGBA{B: 255, A: 255}

func TestCanvasDepthTest(t *testing.T) {
	c := newCanvas(10, 10, color.RGBA{A: 255})

	assert.True(t, c.set(3, 3, 5, red), "first write")
	assert.False(t, c.set(3, 3, 6, blue), "farther write")
	assert.True(t, c.set(3, 3, 4, blue), "closer write")
	assert.Equal(t, blue, c.img.RGBAAt(3, 3))
	assert.False(t, c.set(-1, 3, 0, red), "out of bounds write")
	assert.False(t, c.set(3, 10, 0, red), "out of bounds write")
}

func TestCanvasLine(t *testing.T) {
	c := newCanvas(10, 10, color.RGBA{A: 255})
	c.line(0, 0, 1, 9, 9, 1, red)

	for i := 0; i < 10; i++ {
		assert.Equal(t, red, c.img.RGBAAt(i, i), "pixel (%d, %d)", i, i)
	}
}

func TestCanvasFillTriangle(t *testing.T) {
	c := newCanvas(20, 20, color.RGBA{A: 255})
	c.fillTriangle(2, 2, 1, 18, 2, 1, 2, 18, 1, red)

	assert.Equal(t, red, c.img.RGBAAt(5, 5), "inside")
	assert.NotEqual(t, red, c.img.RGBAAt(17, 17), "outside")
}

func TestCameraProjection(t *testing.T) {
	persp := NewCamera(view.Perspective)

	x, y, depth, ok := persp.Project(geometry.NewVector3(0, 0, -2), 100, 100)
	assert.True(t, ok)
	assert.Equal(t, []float64{50, 50, 2}, []float64{x, y, depth})

	_, _, _, ok = persp.Project(geometry.NewVector3(0, 0, -0.5), 100, 100)
	assert.False(t, ok, "in front of the near plane")
	_, _, _, ok = persp.Project(geometry.NewVector3(0, 0, -11), 100, 100)
	assert.False(t, ok, "behind the far plane")

	ortho := NewCamera(view.TopOrthographic)
	x, y, _, ok = ortho.Project(geometry.NewVector3(0.5, 0.5, -7), 100, 100)
	assert.True(t, ok)
	assert.Equal(t, []float64{75, 25}, []float64{x, y})
}
