package render

import "github.com/lixenwraith/regroup/constant"

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = constant.PriorityBackground
	PriorityHeader     Priority = constant.PriorityHeader
	PriorityLevel      Priority = constant.PriorityLevel
	PriorityTotals     Priority = constant.PriorityTotals
	PriorityFooter     Priority = constant.PriorityFooter
	PriorityOverlay    Priority = constant.PriorityOverlay
)
