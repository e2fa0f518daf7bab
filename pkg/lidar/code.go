package lidar

import "strconv"

// Code is an ASPRS point classification code (0-255)
type Code uint8

// Classification codes defined by the ASPRS LAS specification.
// 19-255 are reserved.
const (
	NeverClassified   Code = 0
	Unassigned        Code = 1
	Ground            Code = 2
	LowVegetation     Code = 3
	MediumVegetation  Code = 4
	HighVegetation    Code = 5
	Building          Code = 6
	LowPoint          Code = 7
	ModelKeyPoint     Code = 8
	Water             Code = 9
	Rail              Code = 10
	RoadSurface       Code = 11
	Overlap           Code = 12
	WireGuard         Code = 13
	WireConductor     Code = 14
	TransmissionTower Code = 15
	WireConnector     Code = 16
	BridgeDeck        Code = 17
	HighNoise         Code = 18

	// MaxDefinedCode is the highest code with a defined meaning
	MaxDefinedCode = HighNoise
)

var codeNames = [...]string{
	NeverClassified:   "never classified",
	Unassigned:        "unassigned",
	Ground:            "ground",
	LowVegetation:     "low vegetation",
	MediumVegetation:  "medium vegetation",
	HighVegetation:    "high vegetation",
	Building:          "building",
	LowPoint:          "low point (noise)",
	ModelKeyPoint:     "model key-point",
	Water:             "water",
	Rail:              "rail",
	RoadSurface:       "road surface",
	Overlap:           "overlap",
	WireGuard:         "wire guard (shield)",
	WireConductor:     "wire conductor (phase)",
	TransmissionTower: "transmission tower",
	WireConnector:     "wire connector",
	BridgeDeck:        "bridge deck",
	HighNoise:         "high noise",
}

// Defined reports whether the code has an ASPRS meaning
func (c Code) Defined() bool {
	return c <= MaxDefinedCode
}

func (c Code) String() string {
	if c.Defined() {
		return codeNames[c]
	}
	return "reserved(" + strconv.Itoa(int(c)) + ")"
}
