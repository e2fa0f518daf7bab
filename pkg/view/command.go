package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/golang/glog"

	"github.com/philipparndt/lidarview/pkg/geometry"
)

// Step sizes of the camera commands
const (
	RotateStep         = 5.0 // degrees
	TranslateStep      = 0.1
	ZoomFactor         = 1.1
	ExaggerationFactor = 1.1
)

// Command is a discrete user command mutating a ViewState
type Command int

const (
	CmdNone Command = iota
	CmdCycleColorMode
	CmdCycleReturnFilter
	CmdReturnsAll
	CmdReturnsFirst
	CmdReturnsLast
	CmdReturnsMultiple
	CmdReturnsSingle
	CmdToggleGround
	CmdToggleVegetation
	CmdToggleBuilding
	CmdToggleOther
	CmdRotateXPos
	CmdRotateXNeg
	CmdRotateYPos
	CmdRotateYNeg
	CmdRotateZPos
	CmdRotateZNeg
	CmdTranslateXPos
	CmdTranslateXNeg
	CmdTranslateYPos
	CmdTranslateYNeg
	CmdTranslateZPos
	CmdTranslateZNeg
	CmdZoomIn
	CmdZoomOut
	CmdExaggerateUp
	CmdExaggerateDown
	CmdToggleCube
	CmdPerspectiveView
	CmdTopView
	CmdReset
	CmdQuit

	numCommands
)

var commandNames = [...]string{
	CmdNone:              "none",
	CmdCycleColorMode:    "cycle-color",
	CmdCycleReturnFilter: "cycle-returns",
	CmdReturnsAll:        "returns-all",
	CmdReturnsFirst:      "returns-first",
	CmdReturnsLast:       "returns-last",
	CmdReturnsMultiple:   "returns-multiple",
	CmdReturnsSingle:     "returns-single",
	CmdToggleGround:      "toggle-ground",
	CmdToggleVegetation:  "toggle-vegetation",
	CmdToggleBuilding:    "toggle-building",
	CmdToggleOther:       "toggle-other",
	CmdRotateXPos:        "rotate-x+",
	CmdRotateXNeg:        "rotate-x-",
	CmdRotateYPos:        "rotate-y+",
	CmdRotateYNeg:        "rotate-y-",
	CmdRotateZPos:        "rotate-z+",
	CmdRotateZNeg:        "rotate-z-",
	CmdTranslateXPos:     "move-x+",
	CmdTranslateXNeg:     "move-x-",
	CmdTranslateYPos:     "move-y+",
	CmdTranslateYNeg:     "move-y-",
	CmdTranslateZPos:     "move-z+",
	CmdTranslateZNeg:     "move-z-",
	CmdZoomIn:            "zoom-in",
	CmdZoomOut:           "zoom-out",
	CmdExaggerateUp:      "exaggerate-up",
	CmdExaggerateDown:    "exaggerate-down",
	CmdToggleCube:        "toggle-cube",
	CmdPerspectiveView:   "perspective",
	CmdTopView:           "top",
	CmdReset:             "reset",
	CmdQuit:              "quit",
}

func (c Command) String() string {
	if c >= 0 && c < numCommands {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand parses a command name such as "rotate-x+"
func ParseCommand(name string) (Command, error) {
	v := strings.ToLower(strings.TrimSpace(name))
	for i, n := range commandNames {
		if n == v {
			return Command(i), nil
		}
	}
	return CmdNone, fmt.Errorf("unknown command %q", name)
}

// CommandNames returns all command names, sorted
func CommandNames() []string {
	names := make([]string, 0, len(commandNames)-1)
	for _, n := range commandNames[1:] {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Effect tells the event loop what to do after a command
type Effect int

const (
	EffectNone Effect = iota
	EffectRedraw
	EffectQuit
)

// Apply mutates the state for one command. Unknown commands are ignored.
func (s *ViewState) Apply(cmd Command) Effect {
	switch cmd {
	case CmdCycleColorMode:
		s.ColorMode = s.ColorMode.Next()
	case CmdCycleReturnFilter:
		s.ReturnFilter = s.ReturnFilter.Next()
	case CmdReturnsAll:
		s.ReturnFilter = ReturnsAll
	case CmdReturnsFirst:
		s.ReturnFilter = ReturnsFirst
	case CmdReturnsLast:
		s.ReturnFilter = ReturnsLast
	case CmdReturnsMultiple:
		s.ReturnFilter = ReturnsMultiple
	case CmdReturnsSingle:
		s.ReturnFilter = ReturnsSingle
	case CmdToggleGround:
		s.toggle(BucketGround)
	case CmdToggleVegetation:
		s.toggle(BucketVegetation)
	case CmdToggleBuilding:
		s.toggle(BucketBuilding)
	case CmdToggleOther:
		s.toggle(BucketOther)
	case CmdRotateXPos:
		s.Rotation.X += RotateStep
	case CmdRotateXNeg:
		s.Rotation.X -= RotateStep
	case CmdRotateYPos:
		s.Rotation.Y += RotateStep
	case CmdRotateYNeg:
		s.Rotation.Y -= RotateStep
	case CmdRotateZPos:
		s.Rotation.Z += RotateStep
	case CmdRotateZNeg:
		s.Rotation.Z -= RotateStep
	case CmdTranslateXPos:
		s.Translation.X += TranslateStep
	case CmdTranslateXNeg:
		s.Translation.X -= TranslateStep
	case CmdTranslateYPos:
		s.Translation.Y += TranslateStep
	case CmdTranslateYNeg:
		s.Translation.Y -= TranslateStep
	case CmdTranslateZPos:
		s.Translation.Z += TranslateStep
	case CmdTranslateZNeg:
		s.Translation.Z -= TranslateStep
	case CmdZoomIn:
		s.Scale *= ZoomFactor
	case CmdZoomOut:
		s.Scale /= ZoomFactor
	case CmdExaggerateUp:
		s.Exaggeration *= ExaggerationFactor
	case CmdExaggerateDown:
		s.Exaggeration /= ExaggerationFactor
	case CmdToggleCube:
		s.FilledCube = !s.FilledCube
	case CmdPerspectiveView:
		s.Translation = PerspectiveTranslation
		s.Rotation = PerspectiveRotation
		s.Projection = Perspective
	case CmdTopView:
		s.Translation = TopTranslation
		s.Rotation = geometry.Vector3{}
		s.Projection = TopOrthographic
	case CmdReset:
		s.Translation = PerspectiveTranslation
		s.Rotation = PerspectiveRotation
		s.Projection = Perspective
		s.Scale = s.InitialScale
		s.Exaggeration = 1
	case CmdQuit:
		return EffectQuit
	default:
		return EffectNone
	}

	if glog.V(1) {
		glog.Infof("command %s: returns=%s color=%s buckets=%v scale=%.4g exaggeration=%.4g",
			cmd, s.ReturnFilter, s.ColorMode, s.Buckets, s.Scale, s.Exaggeration)
	}
	return EffectRedraw
}

func (s *ViewState) toggle(b Bucket) {
	s.Buckets[b] = !s.Buckets[b]
}
