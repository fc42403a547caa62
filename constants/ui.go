package constants

import "github.com/gdamore/tcell/v2"

// Map Layout
const (
	// MapOffsetX and MapOffsetY leave room for the border frame
	MapOffsetX = 1
	MapOffsetY = 1

	// StatusBarGap is the number of blank rows between the frame and the status bar
	StatusBarGap = 0
)

// Colors
var (
	TrackColor         = tcell.NewRGBColor(128, 128, 128)
	OccupiedBackground = tcell.NewRGBColor(64, 0, 0)
	Background         = tcell.ColorBlack
	FrameColor         = tcell.ColorDarkCyan
	LightGreenColor    = tcell.ColorLightGreen
	LightRedColor      = tcell.ColorRed
	StatusColor        = tcell.ColorSilver
	FaultColor         = tcell.ColorYellow

	DefaultTrainBodyColor = tcell.ColorBlue
	DefaultTrainHeadColor = tcell.ColorLightBlue
)

// Traffic light arrows, indexed by core.Direction (Up, Right, Down, Left)
var LightArrows = [4]rune{'↑', '→', '↓', '←'}
