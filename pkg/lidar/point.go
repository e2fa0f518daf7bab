package lidar

import "github.com/philipparndt/lidarview/pkg/geometry"

// Point is a single LiDAR return
type Point struct {
	Position geometry.Vector3

	ReturnNumber    int // position of this return within its pulse, starting at 1
	NumberOfReturns int // total returns of the originating pulse

	Code    Code // classification read from the input
	Derived Code // classification assigned by a Classifier
}

// NewPoint creates a point with an unclassified derived code
func NewPoint(x, y, z float64, returnNumber, numberOfReturns int, code Code) Point {
	return Point{
		Position:        geometry.NewVector3(x, y, z),
		ReturnNumber:    returnNumber,
		NumberOfReturns: numberOfReturns,
		Code:            code,
		Derived:         NeverClassified,
	}
}
