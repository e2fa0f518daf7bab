package lidar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/lidarview/pkg/geometry"
)

func TestPointCloudAddSinglePoint(t *testing.T) {
	cloud := NewPointCloud("single")
	p := NewPoint(3, -4, 12.5, 1, 1, Ground)

	require.NoError(t, cloud.Add(p))

	bounds := cloud.Bounds()
	assert.Equal(t, p.Position, bounds.Min)
	assert.Equal(t, p.Position, bounds.Max)
	assert.Equal(t, 1, cloud.Size())
}

func TestPointCloudBounds(t *testing.T) {
	cloud := NewPointCloud("three")
	for _, p := range []Point{
		NewPoint(0, 0, 0, 1, 1, Ground),
		NewPoint(10, 0, 0, 1, 1, Ground),
		NewPoint(0, 10, 0, 1, 1, Ground),
	} {
		require.NoError(t, cloud.Add(p))
	}

	assert.Equal(t, geometry.NewVector3(0, 0, 0), cloud.Bounds().Min)
	assert.Equal(t, geometry.NewVector3(10, 10, 0), cloud.Bounds().Max)
}

func TestPointCloudEmptyBounds(t *testing.T) {
	cloud := NewPointCloud("empty")
	assert.True(t, cloud.Bounds().Empty())
	assert.Equal(t, 0, cloud.Size())
}

func TestPointCloudNonFinitePoint(t *testing.T) {
	cloud := NewPointCloud("nan")
	require.NoError(t, cloud.Add(NewPoint(1, 1, 1, 1, 1, Ground)))

	err := cloud.Add(NewPoint(math.NaN(), 5, 5, 1, 1, Ground))
	require.ErrorIs(t, err, ErrInvalidPoint)

	assert.Equal(t, 2, cloud.Size(), "flagged point is still stored")
	assert.Equal(t, 1, cloud.Flagged())
	assert.Equal(t, geometry.NewVector3(1, 1, 1), cloud.Bounds().Max, "flagged point must not extend bounds")
}

func TestPointCloudAllIsRestartable(t *testing.T) {
	cloud := NewPointCloud("order")
	for i := 0; i < 5; i++ {
		_ = cloud.Add(NewPoint(float64(i), 0, 0, 1, 1, Unassigned))
	}

	for pass := 0; pass < 2; pass++ {
		expected := 0
		for i, p := range cloud.All() {
			require.Equal(t, expected, i, "pass %d", pass)
			require.Equal(t, float64(expected), p.Position.X, "pass %d", pass)
			expected++
		}
		assert.Equal(t, 5, expected, "pass %d", pass)
	}

	count := 0
	for range cloud.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count, "early break")
}
