package viewer

import (
	"image"
	"image/color"
	"math"
)

// canvas is an image with a z-buffer
type canvas struct {
	img     *image.RGBA
	zbuffer []float64
}

func newCanvas(width, height int, background color.RGBA) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = background.R
		img.Pix[i+1] = background.G
		img.Pix[i+2] = background.B
		img.Pix[i+3] = background.A
	}

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	return &canvas{img: img, zbuffer: zbuffer}
}

// set writes a pixel if it is closer than what is already there
func (c *canvas) set(x, y int, z float64, col color.RGBA) bool {
	bounds := c.img.Bounds()
	if x < 0 || y < 0 || x >= bounds.Max.X || y >= bounds.Max.Y {
		return false
	}
	idx := y*bounds.Max.X + x
	if z >= c.zbuffer[idx] {
		return false
	}
	c.zbuffer[idx] = z
	c.img.SetRGBA(x, y, col)
	return true
}

// point draws a size x size square centered on (x, y)
func (c *canvas) point(x, y, z float64, size int, col color.RGBA) int {
	if size < 1 {
		size = 1
	}
	x0 := int(math.Floor(x)) - (size-1)/2
	y0 := int(math.Floor(y)) - (size-1)/2

	drawn := 0
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			if c.set(x0+dx, y0+dy, z, col) {
				drawn++
			}
		}
	}
	return drawn
}

// fillTriangle fills a triangle with depth testing using a scanline algorithm
func (c *canvas) fillTriangle(x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA) {
	vertices := [][3]float64{
		{x1, y1, z1},
		{x2, y2, z2},
		{x3, y3, z3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1, z1 = vertices[0][0], vertices[0][1], vertices[0][2]
	x2, y2, z2 = vertices[1][0], vertices[1][1], vertices[1][2]
	x3, y3, z3 = vertices[2][0], vertices[2][1], vertices[2][2]

	bounds := c.img.Bounds()

	for y := int(math.Max(0, math.Ceil(y1))); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)

		var xs, zs [2]float64
		n := 0
		edge := func(ax, ay, az, bx, by, bz float64) {
			if n == 2 || ay == by || fy < ay || fy > by {
				return
			}
			t := (fy - ay) / (by - ay)
			xs[n] = ax + t*(bx-ax)
			zs[n] = az + t*(bz-az)
			n++
		}
		edge(x1, y1, z1, x2, y2, z2)
		edge(x2, y2, z2, x3, y3, z3)
		edge(x1, y1, z1, x3, y3, z3)
		if n < 2 {
			continue
		}

		xStart, xEnd, zStart, zEnd := xs[0], xs[1], zs[0], zs[1]
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		for x := int(math.Max(0, math.Ceil(xStart))); x <= int(math.Min(float64(bounds.Max.X-1), xEnd)); x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			c.set(x, y, zStart+t*(zEnd-zStart), col)
		}
	}
}

// line draws a depth-tested line using Bresenham's algorithm
func (c *canvas) line(x1, y1 int, z1 float64, x2, y2 int, z2 float64, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	steps := max(dx, dy)
	step := 0
	err := dx - dy

	for {
		z := z1
		if steps > 0 {
			z = z1 + (z2-z1)*float64(step)/float64(steps)
		}
		c.set(x1, y1, z, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
		step++
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
