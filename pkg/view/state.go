package view

import (
	"errors"
	"math"

	"github.com/philipparndt/lidarview/pkg/geometry"
	"github.com/philipparndt/lidarview/pkg/lidar"
)

// ErrEmptyCloud is returned by operations that need a bounding box
// when the cloud holds no points
var ErrEmptyCloud = errors.New("empty point cloud")

// Camera placement of the two canned views
var (
	PerspectiveTranslation = geometry.Vector3{X: 0, Y: 0, Z: -2}
	PerspectiveRotation    = geometry.Vector3{X: -45, Y: 0, Z: 0}
	TopTranslation         = geometry.Vector3{X: 0, Y: 0, Z: -7}
)

// ViewState holds every parameter the frame pass reads.
// It is mutated only through Apply.
type ViewState struct {
	Translation geometry.Vector3
	Rotation    geometry.Vector3 // degrees per axis, unbounded

	Scale        float64
	InitialScale float64
	Exaggeration float64

	ReturnFilter ReturnFilter
	Buckets      BucketToggles
	ColorMode    ColorMode

	FilledCube bool
	Projection Projection
}

// InitialScale returns 1/max(dim_x, dim_y) for the given bounds.
// A cloud without horizontal extent falls back to a scale of 1.
func InitialScale(bounds geometry.BoundingBox) (float64, error) {
	if bounds.Empty() {
		return 0, ErrEmptyCloud
	}
	size := bounds.Size()
	extent := math.Max(size.X, size.Y)
	if extent <= 0 {
		return 1, nil
	}
	return 1 / extent, nil
}

// NewViewState creates the session's view state for a cloud with the given bounds
func NewViewState(bounds geometry.BoundingBox) (*ViewState, error) {
	scale, err := InitialScale(bounds)
	if err != nil {
		return nil, err
	}
	return &ViewState{
		Translation:  PerspectiveTranslation,
		Rotation:     PerspectiveRotation,
		Scale:        scale,
		InitialScale: scale,
		Exaggeration: 1,
		ReturnFilter: ReturnsAll,
		Buckets:      AllBuckets(),
		ColorMode:    ColorUniform,
		Projection:   Perspective,
	}, nil
}

// Rebase adopts the initial scale of new bounds, keeping the current zoom
// factor, camera and filters. Used after the input file was reloaded.
func (s *ViewState) Rebase(bounds geometry.BoundingBox) error {
	scale, err := InitialScale(bounds)
	if err != nil {
		return err
	}
	zoom := 1.0
	if s.InitialScale != 0 {
		zoom = s.Scale / s.InitialScale
	}
	s.InitialScale = scale
	s.Scale = scale * zoom
	return nil
}

// CameraMatrix returns the rigid camera transform T * Rx * Ry * Rz.
// Consumers apply it to projected positions; Project never does.
func (s *ViewState) CameraMatrix() geometry.Mat4 {
	t := s.Translation
	r := s.Rotation
	return geometry.Translate(t.X, t.Y, t.Z).
		Mul(geometry.RotateX(r.X)).
		Mul(geometry.RotateY(r.Y)).
		Mul(geometry.RotateZ(r.Z))
}

// Project maps a point into normalized display space.
// The larger horizontal extent spans [-1, 1] at the initial scale, the shorter
// one is centered. Height stays in scaled data units times the exaggeration.
func Project(p *lidar.Point, s *ViewState, bounds geometry.BoundingBox) (geometry.Vector3, error) {
	if bounds.Empty() {
		return geometry.Vector3{}, ErrEmptyCloud
	}
	return Normalize(p, s, bounds), nil
}

// Normalize maps p into display space for bounds that already hold at least
// one point. Frame passes check the bounds once and call it per point.
func Normalize(p *lidar.Point, s *ViewState, bounds geometry.BoundingBox) geometry.Vector3 {
	size := bounds.Size()
	scale := s.Scale
	pos := p.Position
	return geometry.Vector3{
		X: -1 + (1 - size.X*scale) + 2*(pos.X-bounds.Min.X)*scale,
		Y: -1 + (1 - size.Y*scale) + 2*(pos.Y-bounds.Min.Y)*scale,
		Z: (pos.Z - bounds.Min.Z) * scale * s.Exaggeration,
	}
}
