package engivault

import (
	"context"
	"net/http"
)

// PumpsService exposes pump performance and cavitation calculations.
type PumpsService struct {
	t *transport
}

// PumpPerformanceInput holds the parameters for a pump performance
// calculation.
type PumpPerformanceInput struct {
	// FlowRate is the volumetric flow rate in m³/s.
	FlowRate float64 `json:"flowRate" validate:"gt=0"`
	// Head is the total pump head in m.
	Head float64 `json:"head" validate:"gt=0"`
	// Efficiency is the pump efficiency, in (0, 1].
	Efficiency float64 `json:"efficiency" validate:"gt=0,lte=1"`
	// Power is the pump power in W.
	Power float64 `json:"power" validate:"gt=0"`
}

// PumpPerformanceResult is the server's answer to a pump performance
// calculation.
type PumpPerformanceResult struct {
	// HydraulicPower in kW.
	HydraulicPower float64 `json:"hydraulicPower"`
	// BrakePower in kW.
	BrakePower float64 `json:"brakePower"`
	// SpecificSpeed, dimensionless.
	SpecificSpeed float64 `json:"specificSpeed"`
	// Efficiency echoed back, in (0, 1].
	Efficiency float64 `json:"efficiency"`
}

// NPSHInput holds the parameters for a Net Positive Suction Head
// calculation.
type NPSHInput struct {
	// SuctionPressure at the pump inlet in Pa.
	SuctionPressure float64 `json:"suctionPressure" validate:"required"`
	// VaporPressure of the fluid at operating temperature in Pa.
	VaporPressure float64 `json:"vaporPressure" validate:"required"`
	// FluidDensity in kg/m³.
	FluidDensity float64 `json:"fluidDensity" validate:"gt=0"`
	// SuctionVelocity in m/s.
	SuctionVelocity float64 `json:"suctionVelocity" validate:"gt=0"`
	// SuctionLosses in m of head.
	SuctionLosses float64 `json:"suctionLosses" validate:"gt=0"`
}

// NPSHResult is the server's answer to an NPSH calculation.
type NPSHResult struct {
	// NPSHAvailable in m.
	NPSHAvailable float64 `json:"npshAvailable"`
	// NPSHRequired in m.
	NPSHRequired float64 `json:"npshRequired"`
	// Margin between available and required, in m.
	Margin float64 `json:"margin"`
	// IsCavitationRisk flags an insufficient margin.
	IsCavitationRisk bool `json:"isCavitationRisk"`
}

// Performance calculates hydraulic power, brake power, and specific
// speed for the given duty point.
func (s *PumpsService) Performance(ctx context.Context, in PumpPerformanceInput) (*PumpPerformanceResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/pumps/performance", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[PumpPerformanceResult](data)
}

// NPSH calculates the net positive suction head and cavitation margin
// for the given suction conditions.
func (s *PumpsService) NPSH(ctx context.Context, in NPSHInput) (*NPSHResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/pumps/npsh", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[NPSHResult](data)
}
