package view

// keyBindings maps typed characters to commands. Shift selects the
// uppercase variant of the rotation keys.
var keyBindings = map[rune]Command{
	'c': CmdCycleColorMode,
	't': CmdCycleReturnFilter,
	'0': CmdReturnsAll,
	'1': CmdReturnsFirst,
	'4': CmdReturnsLast,
	'm': CmdReturnsMultiple,
	's': CmdReturnsSingle,
	'g': CmdToggleGround,
	'v': CmdToggleVegetation,
	'h': CmdToggleBuilding,
	'o': CmdToggleOther,
	'x': CmdRotateXPos,
	'X': CmdRotateXNeg,
	'y': CmdRotateYPos,
	'Y': CmdRotateYNeg,
	'z': CmdRotateZPos,
	'Z': CmdRotateZNeg,
	'r': CmdTranslateXPos,
	'l': CmdTranslateXNeg,
	'u': CmdTranslateYPos,
	'd': CmdTranslateYNeg,
	'f': CmdTranslateZPos,
	'b': CmdTranslateZNeg,
	'+': CmdZoomIn,
	'=': CmdZoomIn,
	'-': CmdZoomOut,
	'e': CmdExaggerateUp,
	'E': CmdExaggerateDown,
	'w': CmdToggleCube,
	'2': CmdTopView,
	'3': CmdPerspectiveView,
	'q': CmdQuit,
}

// CommandForKey returns the command bound to a typed character
func CommandForKey(r rune) (Command, bool) {
	cmd, ok := keyBindings[r]
	return cmd, ok
}

// KeyHelp lists the bindings for the help overlay
var KeyHelp = []string{
	"c color mode    t cycle returns   0 all 1 first 4 last m multi s single",
	"g/v/h/o toggle ground/vegetation/building/other",
	"x/X y/Y z/Z rotate   l/r u/d f/b move   +/- zoom   e/E exaggeration",
	"w cube   2 top view   3 perspective   Home reset   q quit",
}
