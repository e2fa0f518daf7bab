package geometry

// BoundingBox represents an axis-aligned bounding box.
// The zero value is empty: it has no extent until the first point is added.
type BoundingBox struct {
	Min Vector3
	Max Vector3

	valid bool
}

// NewBoundingBox creates a new, empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{}
}

// Extend expands the bounding box to include a point.
// The first point initializes both corners.
func (b *BoundingBox) Extend(point Vector3) {
	if !b.valid {
		b.Min, b.Max = point, point
		b.valid = true
		return
	}
	if point.X < b.Min.X {
		b.Min.X = point.X
	}
	if point.X > b.Max.X {
		b.Max.X = point.X
	}
	if point.Y < b.Min.Y {
		b.Min.Y = point.Y
	}
	if point.Y > b.Max.Y {
		b.Max.Y = point.Y
	}
	if point.Z < b.Min.Z {
		b.Min.Z = point.Z
	}
	if point.Z > b.Max.Z {
		b.Max.Z = point.Z
	}
}

// Empty reports whether no point was ever added
func (b BoundingBox) Empty() bool {
	return !b.valid
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}
