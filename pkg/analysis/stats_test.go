package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/view"
)

func sampleCloud(t *testing.T) *lidar.PointCloud {
	t.Helper()
	cloud := lidar.NewPointCloud("sample")
	points := []lidar.Point{
		lidar.NewPoint(0, 0, 0, 1, 1, lidar.Ground),
		lidar.NewPoint(10, 0, 0, 1, 1, lidar.Ground),
		lidar.NewPoint(0, 5, 4, 1, 2, lidar.HighVegetation),
		lidar.NewPoint(0, 5, 1, 2, 2, lidar.HighVegetation),
		lidar.NewPoint(5, 5, 8, 1, 1, lidar.Building),
		lidar.NewPoint(5, 5, 8, 3, 2, 42),
	}
	for _, p := range points {
		if err := cloud.Add(p); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	return cloud
}

func TestAnalyzeCloud(t *testing.T) {
	result := AnalyzeCloud(sampleCloud(t))

	if result.PointCount != 6 {
		t.Errorf("PointCount failed: expected 6, got %d", result.PointCount)
	}
	if result.Dimensions.X != 10 || result.Dimensions.Y != 5 || result.Dimensions.Z != 8 {
		t.Errorf("Dimensions failed: expected (10, 5, 8), got %v", result.Dimensions)
	}
	if math.Abs(result.Density-6.0/50.0) > 1e-10 {
		t.Errorf("Density failed: expected %v, got %v", 6.0/50.0, result.Density)
	}

	expectedBuckets := [view.NumBuckets]int{2, 2, 1, 1}
	if result.PerBucket != expectedBuckets {
		t.Errorf("PerBucket failed: expected %v, got %v", expectedBuckets, result.PerBucket)
	}
	if result.PerCode[lidar.Ground] != 2 || result.PerCode[42] != 1 {
		t.Errorf("PerCode failed: got ground=%d code42=%d", result.PerCode[lidar.Ground], result.PerCode[42])
	}
	if result.PerReturns[1] != 3 || result.PerReturns[2] != 3 {
		t.Errorf("PerReturns failed: got %v", result.PerReturns)
	}
	if result.FirstCount != 4 {
		t.Errorf("FirstCount failed: expected 4, got %d", result.FirstCount)
	}
	if result.LastCount != 4 {
		t.Errorf("LastCount failed: expected 4, got %d", result.LastCount)
	}
	if result.InconsistentReturns != 1 {
		t.Errorf("InconsistentReturns failed: expected 1, got %d", result.InconsistentReturns)
	}
	if result.UnknownCodes != 1 {
		t.Errorf("UnknownCodes failed: expected 1, got %d", result.UnknownCodes)
	}
}

func TestAnalyzeEmptyCloud(t *testing.T) {
	result := AnalyzeCloud(lidar.NewPointCloud("empty"))

	if result.PointCount != 0 || result.Density != 0 {
		t.Errorf("empty cloud failed: got count=%d density=%v", result.PointCount, result.Density)
	}
	if !result.BoundingBox.Empty() {
		t.Errorf("empty cloud failed: expected empty bounds")
	}
	if result.Percent(3) != 0 {
		t.Errorf("Percent failed: expected 0, got %v", result.Percent(3))
	}
}

func TestTopCodes(t *testing.T) {
	result := AnalyzeCloud(sampleCloud(t))

	top := TopCodes(result, 2)
	if len(top) != 2 {
		t.Fatalf("TopCodes failed: expected 2 entries, got %d", len(top))
	}
	if top[0] != (CodeCount{Code: lidar.Ground, Count: 2}) {
		t.Errorf("TopCodes[0] failed: got %v", top[0])
	}
	if top[1] != (CodeCount{Code: lidar.HighVegetation, Count: 2}) {
		t.Errorf("TopCodes[1] failed: got %v", top[1])
	}

	if all := TopCodes(result, 100); len(all) != 4 {
		t.Errorf("TopCodes(100) failed: expected 4 entries, got %d", len(all))
	}
}

func TestReturnCountsAndPercent(t *testing.T) {
	result := AnalyzeCloud(sampleCloud(t))

	keys := ReturnCounts(result)
	if len(keys) != 2 || keys[0] != 1 || keys[1] != 2 {
		t.Errorf("ReturnCounts failed: expected [1 2], got %v", keys)
	}
	if got := result.Percent(3); math.Abs(got-50) > 1e-10 {
		t.Errorf("Percent failed: expected 50, got %v", got)
	}
}
