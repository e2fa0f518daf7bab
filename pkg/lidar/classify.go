package lidar

import (
	"fmt"
	"sort"
	"strings"
)

// Policy computes the derived classification of a single point
type Policy func(p Point) Code

// Classifier assigns Point.Derived for every point of a cloud
type Classifier struct {
	Policy Policy
}

// NewClassifier creates a classifier using the given policy.
// A nil policy falls back to ConstantPolicy(Building).
func NewClassifier(policy Policy) *Classifier {
	if policy == nil {
		policy = ConstantPolicy(Building)
	}
	return &Classifier{Policy: policy}
}

// Classify recomputes the derived code of every point
func (c *Classifier) Classify(cloud *PointCloud) {
	for _, p := range cloud.All() {
		p.Derived = c.Policy(*p)
	}
}

// ConstantPolicy assigns the same code to every point
func ConstantPolicy(code Code) Policy {
	return func(Point) Code {
		return code
	}
}

// SourcePolicy copies the classification read from the input
func SourcePolicy(p Point) Code {
	return p.Code
}

// HeightPolicy labels points within threshold of minZ as ground and
// everything above as high vegetation
func HeightPolicy(minZ, threshold float64) Policy {
	return func(p Point) Code {
		if p.Position.Z-minZ <= threshold {
			return Ground
		}
		return HighVegetation
	}
}

// PolicyFactory builds a policy for a loaded cloud
type PolicyFactory func(cloud *PointCloud, heightThreshold float64) Policy

var policies = map[string]PolicyFactory{
	"building": func(*PointCloud, float64) Policy {
		return ConstantPolicy(Building)
	},
	"source": func(*PointCloud, float64) Policy {
		return SourcePolicy
	},
	"height": func(cloud *PointCloud, threshold float64) Policy {
		return HeightPolicy(cloud.Bounds().Min.Z, threshold)
	},
}

// PolicyNames lists the registered policy names
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPolicy returns the policy factory registered under name
func LookupPolicy(name string) (PolicyFactory, error) {
	f, ok := policies[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown classifier %q (expected one of %s)", name, strings.Join(PolicyNames(), ", "))
	}
	return f, nil
}
