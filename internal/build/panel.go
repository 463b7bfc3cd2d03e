package build

import (
	"strconv"

	"iso-city/internal/core"
	"iso-city/internal/world"
)

// Parameter keys exposed to the HUD.
const (
	ParamBuild  = "build"
	ParamKind   = "kind"
	ParamRadius = "radius"
)

// Panel exposes a Controller to the HUD as a set of adjustable parameters.
type Panel struct {
	ctrl   *Controller
	labels []string
}

// NewPanel wraps ctrl using catalog for the tile selector labels.
func NewPanel(ctrl *Controller, catalog *world.Catalog) *Panel {
	if catalog == nil {
		catalog = world.DefaultCatalog()
	}
	return &Panel{ctrl: ctrl, labels: catalog.Labels()}
}

// Title names the HUD panel.
func (p *Panel) Title() string { return "City" }

// Budget returns the world's cash counter.
func (p *Panel) Budget() int { return p.ctrl.world.Budget() }

// Parameters snapshots the values shown on the HUD.
func (p *Panel) Parameters() core.ParameterSnapshot {
	st := p.ctrl.state
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: ParamBuild, Label: "Build", Type: core.ParamTypeBool, Value: strconv.FormatBool(st.Active)},
		{Key: ParamKind, Label: "Tile", Type: core.ParamTypeChoice, Value: strconv.Itoa(kindChoice(st.Selected))},
		{Key: ParamRadius, Label: "Radius", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Radius)},
	}}
}

// ParameterControls lists the HUD controls. The tile selector and radius are
// only offered while building.
func (p *Panel) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: ParamBuild, Label: "Build", Type: core.ParamTypeBool, OnLabel: "Stop Building", OffLabel: "Build"},
	}
	if !p.ctrl.state.Active {
		return controls
	}
	return append(controls,
		core.ParameterControl{Key: ParamKind, Label: "Tile", Type: core.ParamTypeChoice, Step: 1, Choices: p.labels},
		core.ParameterControl{Key: ParamRadius, Label: "Radius", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
	)
}

// SetIntParameter handles tile selector and radius adjustments.
func (p *Panel) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamKind:
		if value < 0 || value >= len(world.Placeable) {
			return false
		}
		return p.ctrl.Select(world.Placeable[value])
	case ParamRadius:
		for p.ctrl.state.Radius < value {
			p.ctrl.IncreaseRadius()
		}
		for p.ctrl.state.Radius > value && p.ctrl.state.Radius > 0 {
			p.ctrl.DecreaseRadius()
		}
		return p.ctrl.state.Radius == value
	}
	return false
}

// SetBoolParameter handles the build toggle.
func (p *Panel) SetBoolParameter(key string, value bool) bool {
	if key != ParamBuild {
		return false
	}
	p.ctrl.SetActive(value)
	return true
}

func kindChoice(k world.Kind) int {
	for i, pk := range world.Placeable {
		if pk == k {
			return i
		}
	}
	return 0
}
