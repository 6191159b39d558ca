package renderers

import "github.com/lixenwraith/regroup/render"

// RegisterAll wires every frame part into the orchestrator
func RegisterAll(o *render.Orchestrator) {
	o.Register(NewHeaderRenderer(), render.PriorityHeader)
	o.Register(NewCountingRenderer(), render.PriorityLevel)
	o.Register(NewNumberLineRenderer(), render.PriorityLevel)
	o.Register(NewBoardRenderer(), render.PriorityLevel)
	o.Register(NewButtonsRenderer(), render.PriorityTotals)
	o.Register(NewTotalsRenderer(), render.PriorityTotals)
	o.Register(NewFooterRenderer(), render.PriorityFooter)
}
