package lidar

import (
	"errors"
	"fmt"
	"iter"

	"github.com/philipparndt/lidarview/pkg/geometry"
)

// ErrInvalidPoint is returned by Add for points whose position is not finite
var ErrInvalidPoint = errors.New("invalid point")

// PointCloud holds the points of one survey in insertion order
// together with their bounding box
type PointCloud struct {
	Name string

	points  []Point
	bounds  geometry.BoundingBox
	flagged int
}

// NewPointCloud creates an empty point cloud
func NewPointCloud(name string) *PointCloud {
	return &PointCloud{
		Name:   name,
		points: make([]Point, 0),
		bounds: geometry.NewBoundingBox(),
	}
}

// Add appends a point and updates the bounding box.
// A point with a NaN or infinite coordinate is still stored but does not
// extend the bounding box; Add reports it with ErrInvalidPoint.
func (c *PointCloud) Add(p Point) error {
	c.points = append(c.points, p)
	if !p.Position.IsFinite() {
		c.flagged++
		return fmt.Errorf("%w: point %d has non-finite position %v", ErrInvalidPoint, len(c.points)-1, p.Position)
	}
	c.bounds.Extend(p.Position)
	return nil
}

// Size returns the number of points
func (c *PointCloud) Size() int {
	return len(c.points)
}

// Bounds returns the bounding box of all finite points
func (c *PointCloud) Bounds() geometry.BoundingBox {
	return c.bounds
}

// Flagged returns how many points were stored with a non-finite position
func (c *PointCloud) Flagged() int {
	return c.flagged
}

// At returns a pointer to the i-th point
func (c *PointCloud) At(i int) *Point {
	return &c.points[i]
}

// All iterates the points in insertion order. The sequence can be ranged
// over any number of times; points must not be added while iterating.
func (c *PointCloud) All() iter.Seq2[int, *Point] {
	return func(yield func(int, *Point) bool) {
		for i := range c.points {
			if !yield(i, &c.points[i]) {
				return
			}
		}
	}
}
