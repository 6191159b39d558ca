package constant

// Glyphs
const (
	CookieGlyph   = '🍪'
	TenRodGlyph   = '▮'
	HundredGlyph  = '■'
	OneCubeGlyph  = '▪'
	FrogGlyph     = '🐸'
	TickGlyph     = '┼'
	LineGlyph     = '─'
	SelectorGlyph = '▲'
)

// Layout
const (
	// HeaderHeight covers title row and level tab row
	HeaderHeight = 3

	// FooterHeight covers the help line and the status bar
	FooterHeight = 3

	// CookiesPerRow matches the ten-column grid of level 1
	CookiesPerRow = 10

	// CookieCellWidth is the horizontal pitch of one cookie (glyph + gap)
	CookieCellWidth = 4

	// TierPanelWidth is the width of one tier column in levels 3-5
	TierPanelWidth = 24

	// MinScreenWidth and MinScreenHeight below which a resize notice is drawn
	MinScreenWidth  = 64
	MinScreenHeight = 24
)

// Pulse animation period for breaking panels, in frames
const PulsePeriodFrames = 20
