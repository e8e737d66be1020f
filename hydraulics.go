package engivault

import (
	"context"
	"net/http"
)

// defaultPipeRoughness is the absolute roughness of commercial steel
// pipe in meters, applied when an input leaves the field unset.
const defaultPipeRoughness = 0.00015

// HydraulicsService exposes pipe hydraulics calculations.
type HydraulicsService struct {
	t *transport
}

// PressureDropInput holds the parameters for a pressure drop
// calculation over a pipe run.
type PressureDropInput struct {
	// FlowRate is the volumetric flow rate in m³/s.
	FlowRate float64 `json:"flowRate" validate:"gt=0"`
	// PipeDiameter is the internal pipe diameter in m.
	PipeDiameter float64 `json:"pipeDiameter" validate:"gt=0"`
	// PipeLength is the pipe length in m.
	PipeLength float64 `json:"pipeLength" validate:"gt=0"`
	// FluidDensity is the fluid density in kg/m³.
	FluidDensity float64 `json:"fluidDensity" validate:"gt=0"`
	// FluidViscosity is the dynamic viscosity in Pa·s.
	FluidViscosity float64 `json:"fluidViscosity" validate:"gt=0"`
	// PipeRoughness is the absolute roughness in m. Zero means
	// commercial steel (0.00015 m).
	PipeRoughness float64 `json:"pipeRoughness" validate:"gt=0"`
}

func (in *PressureDropInput) applyDefaults() {
	if in.PipeRoughness == 0 {
		in.PipeRoughness = defaultPipeRoughness
	}
}

// PressureDropResult is the server's answer to a pressure drop
// calculation.
type PressureDropResult struct {
	// PressureDrop in Pa.
	PressureDrop float64 `json:"pressureDrop"`
	// ReynoldsNumber, dimensionless.
	ReynoldsNumber float64 `json:"reynoldsNumber"`
	// FrictionFactor, dimensionless.
	FrictionFactor float64 `json:"frictionFactor"`
	// Velocity is the mean fluid velocity in m/s.
	Velocity float64 `json:"velocity"`
}

// FlowRateInput holds the parameters for deriving a flow rate from a
// known pressure drop.
type FlowRateInput struct {
	// PressureDrop is the available pressure drop in Pa.
	PressureDrop float64 `json:"pressureDrop" validate:"gt=0"`
	// PipeDiameter is the internal pipe diameter in m.
	PipeDiameter float64 `json:"pipeDiameter" validate:"gt=0"`
	// PipeLength is the pipe length in m.
	PipeLength float64 `json:"pipeLength" validate:"gt=0"`
	// FluidDensity is the fluid density in kg/m³.
	FluidDensity float64 `json:"fluidDensity" validate:"gt=0"`
	// FluidViscosity is the dynamic viscosity in Pa·s.
	FluidViscosity float64 `json:"fluidViscosity" validate:"gt=0"`
	// PipeRoughness is the absolute roughness in m. Zero means
	// commercial steel (0.00015 m).
	PipeRoughness float64 `json:"pipeRoughness" validate:"gt=0"`
}

func (in *FlowRateInput) applyDefaults() {
	if in.PipeRoughness == 0 {
		in.PipeRoughness = defaultPipeRoughness
	}
}

// FlowRateResult is the server's answer to a flow rate calculation.
type FlowRateResult struct {
	// FlowRate is the volumetric flow rate in m³/s.
	FlowRate float64 `json:"flowRate"`
	// Velocity is the mean fluid velocity in m/s.
	Velocity float64 `json:"velocity"`
	// ReynoldsNumber, dimensionless.
	ReynoldsNumber float64 `json:"reynoldsNumber"`
}

// PressureDrop calculates the Darcy-Weisbach pressure drop for the
// given pipe and fluid.
func (s *HydraulicsService) PressureDrop(ctx context.Context, in PressureDropInput) (*PressureDropResult, error) {
	in.applyDefaults()
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/hydraulics/pressure-drop", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[PressureDropResult](data)
}

// FlowRate derives the flow rate that produces the given pressure
// drop, solved iteratively server-side.
func (s *HydraulicsService) FlowRate(ctx context.Context, in FlowRateInput) (*FlowRateResult, error) {
	in.applyDefaults()
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/hydraulics/flow-rate", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[FlowRateResult](data)
}
