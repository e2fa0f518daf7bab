package view

import (
	"fmt"
	"strings"

	"github.com/philipparndt/lidarview/pkg/lidar"
)

// Bucket groups classification codes for display filtering
type Bucket int

const (
	BucketGround     Bucket = iota // code 2
	BucketVegetation               // codes 3, 4, 5
	BucketBuilding                 // code 6
	BucketOther                    // everything else

	NumBuckets
)

var bucketNames = [...]string{
	BucketGround:     "ground",
	BucketVegetation: "vegetation",
	BucketBuilding:   "building",
	BucketOther:      "other",
}

func (b Bucket) String() string {
	if b >= 0 && b < NumBuckets {
		return bucketNames[b]
	}
	return fmt.Sprintf("Bucket(%d)", int(b))
}

// ParseBucket parses a bucket name such as "vegetation"
func ParseBucket(value string) (Bucket, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for i, name := range bucketNames {
		if name == v {
			return Bucket(i), nil
		}
	}
	return 0, fmt.Errorf("unknown bucket %q (expected one of %s)", value, strings.Join(bucketNames[:], ", "))
}

// BucketOf returns the bucket a classification code belongs to.
// Every code maps to exactly one bucket.
func BucketOf(code lidar.Code) Bucket {
	switch code {
	case lidar.Ground:
		return BucketGround
	case lidar.LowVegetation, lidar.MediumVegetation, lidar.HighVegetation:
		return BucketVegetation
	case lidar.Building:
		return BucketBuilding
	default:
		return BucketOther
	}
}

// BucketToggles holds one visibility switch per bucket
type BucketToggles [NumBuckets]bool

// AllBuckets returns toggles with every bucket visible
func AllBuckets() BucketToggles {
	return BucketToggles{true, true, true, true}
}

// Accepts reports whether the return filter lets p through
func (f ReturnFilter) Accepts(p *lidar.Point) bool {
	switch f {
	case ReturnsFirst:
		return p.ReturnNumber == 1
	case ReturnsLast:
		return p.ReturnNumber == p.NumberOfReturns
	case ReturnsMultiple:
		return p.NumberOfReturns > 1
	case ReturnsSingle:
		return p.NumberOfReturns == 1
	default:
		return true
	}
}

// IsVisible reports whether p passes both the return stage and the
// classification stage of the current state
func IsVisible(p *lidar.Point, s *ViewState) bool {
	return s.ReturnFilter.Accepts(p) && s.Buckets[BucketOf(p.Code)]
}
