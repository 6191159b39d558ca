package constant

// Render priorities (lower renders first)
const (
	PriorityBackground = 0
	PriorityHeader     = 100
	PriorityLevel      = 200
	PriorityTotals     = 300
	PriorityFooter     = 400
	PriorityOverlay    = 500
)
