package parameter

// Animation Rates
const (
	// PixelPerSecond is how far a node may move per second, values <= 0 snap instantly
	PixelPerSecond = 320

	// MillisPerAlpha is how long alpha takes to traverse 0..1, values <= 0 snap instantly
	MillisPerAlpha = 640

	// MillisPerScale is how long scale takes to traverse 0..1, values <= 0 snap instantly
	MillisPerScale = 456

	// ImmediateTicks is the grace window after attach during which position snaps
	ImmediateTicks = 3
)

// Selection Effects
const (
	// SelectionFadePerSecond is how fast an item ramps into its selected look
	SelectionFadePerSecond = 4.0

	// PulseFrequency is the angular speed of the selected item pulse (rad/s)
	PulseFrequency = 6.0

	// PulseAmplitude is the effect scale added at the top of the pulse, halved per side
	PulseAmplitude = 0.05
)

// List Input
const (
	// MillisPerInput is the base repeat interval between accepted inputs
	MillisPerInput = 144

	// MinMillisPerInput is the floor the repeat interval accelerates toward while held
	MinMillisPerInput = 48

	// InputRepeatDecel is how many ms per second the repeat interval shrinks while held
	InputRepeatDecel = 96

	// VisibleRange is the number of neighbors shown on each side of a dynamic selection
	VisibleRange = 1

	// SelectedColorHex is the default secondary color for items inside lists
	SelectedColorHex = "#ffff00"
)

// Percent Sizing
const (
	// PercentFromContent marks a dimension as derived from children
	PercentFromContent = -1

	// PercentFill is the default for plain containers
	PercentFill = 100
)

// Cell Backend
const (
	// CellBackgroundHex is the terminal color of cells nothing painted
	CellBackgroundHex = "#101018"

	// CellMinTextScale hides text scaled below half a cell
	CellMinTextScale = 0.5
)

// Pixel Backend
const (
	GfxWindowWidth  = 1280
	GfxWindowHeight = 720
	GfxWindowTitle  = "vi-menu"

	// GfxFontSize is the pixel size of faces loaded without an explicit size
	GfxFontSize = 24

	// GfxStickDeadZone is the axis magnitude past which a stick reads as a direction
	GfxStickDeadZone = 0.5

	// GfxClearHex fills the window before the screens draw
	GfxClearHex = "#101018"
)
