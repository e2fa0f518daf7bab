// Package frame produces the per-frame vertex stream: every visible point of a
// cloud with its display color and normalized position. It issues no drawing
// calls; render consumers walk the stream and draw.
package frame

import (
	"image/color"
	"iter"

	"github.com/philipparndt/lidarview/pkg/geometry"
	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/view"
)

// Vertex is one visible point ready for drawing
type Vertex struct {
	Color    color.RGBA
	Position geometry.Vector3 // normalized display space, camera not applied
}

// Stats summarizes one frame pass
type Stats struct {
	Total     int
	Visible   int
	PerBucket [view.NumBuckets]int // visible points per bucket
}

// Build returns the lazy vertex stream for the current state.
// It fails only when the cloud is empty.
func Build(cloud *lidar.PointCloud, state *view.ViewState, colors *view.ColorPolicy) (iter.Seq[Vertex], error) {
	bounds := cloud.Bounds()
	if bounds.Empty() {
		return nil, view.ErrEmptyCloud
	}

	return func(yield func(Vertex) bool) {
		for _, p := range cloud.All() {
			if !view.IsVisible(p, state) {
				continue
			}
			pos := view.Normalize(p, state, bounds)
			if !yield(Vertex{Color: colors.ColorOf(p, state), Position: pos}) {
				return
			}
		}
	}, nil
}

// Collect runs a full frame pass and returns the vertices with their stats
func Collect(cloud *lidar.PointCloud, state *view.ViewState, colors *view.ColorPolicy) ([]Vertex, Stats, error) {
	stats := Stats{Total: cloud.Size()}
	seq, err := Build(cloud, state, colors)
	if err != nil {
		return nil, stats, err
	}

	vertices := make([]Vertex, 0, cloud.Size())
	for v := range seq {
		vertices = append(vertices, v)
	}

	stats.Visible = len(vertices)
	for _, p := range cloud.All() {
		if view.IsVisible(p, state) {
			stats.PerBucket[view.BucketOf(p.Code)]++
		}
	}
	return vertices, stats, nil
}
