// Package style provides shared colors and icons for diagnostic output.
package style

// Color is a hex RGB color.
type Color string

// Palette.
const (
	Slate  Color = "#667085"
	Green  Color = "#22A06B"
	Red    Color = "#D93025"
	Yellow Color = "#F59E0B"
	Iris   Color = "#8B5CF6"
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)
