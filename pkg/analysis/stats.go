package analysis

import (
	"fmt"
	"sort"

	"github.com/philipparndt/lidarview/pkg/geometry"
	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/view"
)

// CodeCount is the number of points carrying one classification code
type CodeCount struct {
	Code  lidar.Code
	Count int
}

// CloudStats contains summary statistics of a point cloud
type CloudStats struct {
	Name        string
	PointCount  int
	Flagged     int
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	Density     float64 // points per horizontal square unit, 0 without extent

	PerBucket  [view.NumBuckets]int
	PerCode    [256]int
	PerReturns map[int]int // number_of_returns -> points
	FirstCount int
	LastCount  int

	// return_number outside 1..number_of_returns
	InconsistentReturns int
	UnknownCodes        int
}

// AnalyzeCloud walks the cloud once and collects its statistics
func AnalyzeCloud(cloud *lidar.PointCloud) *CloudStats {
	result := &CloudStats{
		Name:        cloud.Name,
		PointCount:  cloud.Size(),
		Flagged:     cloud.Flagged(),
		BoundingBox: cloud.Bounds(),
		PerReturns:  make(map[int]int),
	}

	if !result.BoundingBox.Empty() {
		result.Dimensions = result.BoundingBox.Size()
		if area := result.Dimensions.X * result.Dimensions.Y; area > 0 {
			result.Density = float64(result.PointCount) / area
		}
	}

	for _, p := range cloud.All() {
		result.PerBucket[view.BucketOf(p.Code)]++
		result.PerCode[p.Code]++
		result.PerReturns[p.NumberOfReturns]++

		if p.ReturnNumber == 1 {
			result.FirstCount++
		}
		if p.ReturnNumber == p.NumberOfReturns {
			result.LastCount++
		}
		if p.ReturnNumber < 1 || p.ReturnNumber > p.NumberOfReturns {
			result.InconsistentReturns++
		}
		if !p.Code.Defined() {
			result.UnknownCodes++
		}
	}

	return result
}

// TopCodes returns the N most frequent classification codes.
// Ties are ordered by code.
func TopCodes(result *CloudStats, count int) []CodeCount {
	codes := make([]CodeCount, 0)
	for code, n := range result.PerCode {
		if n > 0 {
			codes = append(codes, CodeCount{Code: lidar.Code(code), Count: n})
		}
	}

	sort.SliceStable(codes, func(i, j int) bool {
		return codes[i].Count > codes[j].Count
	})

	if count > len(codes) {
		count = len(codes)
	}

	return codes[:count]
}

// ReturnCounts returns the number_of_returns values present, ascending
func ReturnCounts(result *CloudStats) []int {
	keys := make([]int, 0, len(result.PerReturns))
	for k := range result.PerReturns {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Percent returns part as a percentage of the cloud's point count
func (s *CloudStats) Percent(part int) float64 {
	if s.PointCount == 0 {
		return 0
	}
	return 100 * float64(part) / float64(s.PointCount)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
