package engivault

import (
	"context"
	"net/http"
)

// FluidMechanicsService exposes open channel, compressible, boundary
// layer, and external flow calculations.
type FluidMechanicsService struct {
	t *transport
}

// GasProperties describes the working gas for compressible flow
// calculations.
type GasProperties struct {
	// Gamma is the specific heat ratio.
	Gamma float64 `json:"gamma" validate:"gt=0"`
	// GasConstant is the specific gas constant in J/kg·K.
	GasConstant float64 `json:"gasConstant" validate:"gt=0"`
	// MolecularWeight in g/mol. Optional.
	MolecularWeight float64 `json:"molecularWeight,omitempty" validate:"omitempty,gt=0"`
}

// FluidProperties describes the working fluid for boundary layer and
// external flow calculations.
type FluidProperties struct {
	// Density in kg/m³.
	Density float64 `json:"density" validate:"gt=0"`
	// Viscosity is the dynamic viscosity in Pa·s.
	Viscosity float64 `json:"viscosity" validate:"gt=0"`
	// KinematicViscosity in m²/s. Optional; derived server-side when
	// absent.
	KinematicViscosity float64 `json:"kinematicViscosity,omitempty" validate:"omitempty,gt=0"`
}

// OpenChannelFlowInput holds the parameters for a Manning's equation
// open channel calculation.
type OpenChannelFlowInput struct {
	// FlowRate is the volumetric flow rate in m³/s.
	FlowRate float64 `json:"flowRate" validate:"gt=0"`
	// ChannelWidth in m.
	ChannelWidth float64 `json:"channelWidth" validate:"gt=0"`
	// ChannelSlope is the bed slope, dimensionless.
	ChannelSlope float64 `json:"channelSlope" validate:"gt=0"`
	// ManningSCoeff is Manning's roughness coefficient.
	ManningSCoeff float64 `json:"manningSCoeff" validate:"gt=0"`
	// ChannelShape is one of "rectangular", "trapezoidal", or
	// "circular". Empty means rectangular.
	ChannelShape string `json:"channelShape" validate:"oneof=rectangular trapezoidal circular"`
	// SideSlope is the trapezoidal side slope (m:1). Zero for
	// rectangular channels.
	SideSlope float64 `json:"sideSlope" validate:"gte=0"`
}

func (in *OpenChannelFlowInput) applyDefaults() {
	if in.ChannelShape == "" {
		in.ChannelShape = "rectangular"
	}
}

// OpenChannelFlowResult is the server's answer to an open channel flow
// calculation.
type OpenChannelFlowResult struct {
	// NormalDepth in m.
	NormalDepth float64 `json:"normalDepth"`
	// CriticalDepth in m.
	CriticalDepth float64 `json:"criticalDepth"`
	// Velocity is the average velocity in m/s.
	Velocity float64 `json:"velocity"`
	// FroudeNumber, dimensionless.
	FroudeNumber float64 `json:"froudeNumber"`
	// FlowRegime, e.g. "subcritical" or "supercritical".
	FlowRegime string `json:"flowRegime"`
	// HydraulicRadius in m.
	HydraulicRadius float64 `json:"hydraulicRadius"`
	// WettedPerimeter in m.
	WettedPerimeter float64 `json:"wettedPerimeter"`
	// TopWidth in m.
	TopWidth float64 `json:"topWidth"`
}

// CompressibleFlowInput holds the parameters for an isentropic
// compressible flow calculation. Exactly one of MachNumber or Velocity
// must be set.
type CompressibleFlowInput struct {
	// MachNumber, if known. Otherwise supply Velocity.
	MachNumber *float64 `json:"machNumber,omitempty" validate:"omitempty,gt=0"`
	// Velocity in m/s, if the Mach number is unknown.
	Velocity *float64 `json:"velocity,omitempty" validate:"omitempty,gt=0"`
	// Temperature is the static temperature in K.
	Temperature float64 `json:"temperature" validate:"gt=0"`
	// Pressure is the static pressure in Pa.
	Pressure float64 `json:"pressure" validate:"gt=0"`
	// GasProperties of the working gas.
	GasProperties GasProperties `json:"gasProperties"`
	// FlowType is one of "isentropic", "fanno", or "rayleigh". Empty
	// means isentropic.
	FlowType string `json:"flowType" validate:"oneof=isentropic fanno rayleigh"`
}

func (in *CompressibleFlowInput) applyDefaults() {
	if in.FlowType == "" {
		in.FlowType = "isentropic"
	}
}

// CompressibleFlowResult is the server's answer to a compressible flow
// calculation.
type CompressibleFlowResult struct {
	// MachNumber, dimensionless.
	MachNumber float64 `json:"machNumber"`
	// Velocity in m/s.
	Velocity float64 `json:"velocity"`
	// SpeedOfSound in m/s.
	SpeedOfSound float64 `json:"speedOfSound"`
	// StagnationTemperature in K.
	StagnationTemperature float64 `json:"stagnationTemperature"`
	// StagnationPressure in Pa.
	StagnationPressure float64 `json:"stagnationPressure"`
	// Density in kg/m³.
	Density float64 `json:"density"`
	// FlowRegime, e.g. "subsonic" or "supersonic".
	FlowRegime string `json:"flowRegime"`
	// PressureRatio p/p₀.
	PressureRatio float64 `json:"pressureRatio"`
	// TemperatureRatio T/T₀.
	TemperatureRatio float64 `json:"temperatureRatio"`
	// DensityRatio ρ/ρ₀.
	DensityRatio float64 `json:"densityRatio"`
}

// BoundaryLayerInput holds the parameters for a flat plate boundary
// layer calculation.
type BoundaryLayerInput struct {
	// Velocity is the free stream velocity in m/s.
	Velocity float64 `json:"velocity" validate:"gt=0"`
	// Distance from the leading edge in m.
	Distance float64 `json:"distance" validate:"gt=0"`
	// FluidProperties of the working fluid.
	FluidProperties FluidProperties `json:"fluidProperties"`
	// SurfaceRoughness in m. Optional.
	SurfaceRoughness *float64 `json:"surfaceRoughness,omitempty" validate:"omitempty,gt=0"`
	// PlateLength is the total plate length in m. Optional.
	PlateLength *float64 `json:"plateLength,omitempty" validate:"omitempty,gt=0"`
}

// BoundaryLayerResult is the server's answer to a boundary layer
// calculation.
type BoundaryLayerResult struct {
	// ReynoldsNumber at the given distance.
	ReynoldsNumber float64 `json:"reynoldsNumber"`
	// BoundaryLayerThickness in m.
	BoundaryLayerThickness float64 `json:"boundaryLayerThickness"`
	// DisplacementThickness in m.
	DisplacementThickness float64 `json:"displacementThickness"`
	// MomentumThickness in m.
	MomentumThickness float64 `json:"momentumThickness"`
	// SkinFrictionCoefficient, dimensionless.
	SkinFrictionCoefficient float64 `json:"skinFrictionCoefficient"`
	// WallShearStress in Pa.
	WallShearStress float64 `json:"wallShearStress"`
	// FlowRegime, e.g. "laminar" or "turbulent".
	FlowRegime string `json:"flowRegime"`
}

// ExternalFlowInput holds the parameters for drag and lift over an
// immersed body.
type ExternalFlowInput struct {
	// Velocity is the free stream velocity in m/s.
	Velocity float64 `json:"velocity" validate:"gt=0"`
	// CharacteristicLength of the body in m.
	CharacteristicLength float64 `json:"characteristicLength" validate:"gt=0"`
	// FluidProperties of the working fluid.
	FluidProperties FluidProperties `json:"fluidProperties"`
	// Geometry is one of "sphere", "cylinder", "flat_plate", or
	// "airfoil". Required.
	Geometry string `json:"geometry" validate:"required,oneof=sphere cylinder flat_plate airfoil"`
	// AngleOfAttack in degrees, for airfoils. Optional.
	AngleOfAttack *float64 `json:"angleOfAttack,omitempty"`
}

// ExternalFlowResult is the server's answer to an external flow
// calculation. Lift fields are only present for geometries that
// generate lift.
type ExternalFlowResult struct {
	// ReynoldsNumber, dimensionless.
	ReynoldsNumber float64 `json:"reynoldsNumber"`
	// DragCoefficient, dimensionless.
	DragCoefficient float64 `json:"dragCoefficient"`
	// LiftCoefficient, when applicable.
	LiftCoefficient *float64 `json:"liftCoefficient,omitempty"`
	// DragForce in N.
	DragForce float64 `json:"dragForce"`
	// LiftForce in N, when applicable.
	LiftForce *float64 `json:"liftForce,omitempty"`
	// PressureCoefficient, dimensionless.
	PressureCoefficient float64 `json:"pressureCoefficient"`
}

// NormalShockInput holds the parameters for a normal shock wave
// calculation.
type NormalShockInput struct {
	// MachNumber1 is the upstream Mach number; the flow must be
	// supersonic.
	MachNumber1 float64 `json:"machNumber1" validate:"gt=1"`
	// Gamma is the specific heat ratio. Zero means 1.4 (air).
	Gamma float64 `json:"gamma" validate:"gt=1"`
}

func (in *NormalShockInput) applyDefaults() {
	if in.Gamma == 0 {
		in.Gamma = 1.4
	}
}

// NormalShockResult is the server's answer to a normal shock
// calculation.
type NormalShockResult struct {
	// MachNumber2 is the downstream Mach number.
	MachNumber2 float64 `json:"machNumber2"`
	// PressureRatio p₂/p₁ across the shock.
	PressureRatio float64 `json:"pressureRatio"`
	// TemperatureRatio T₂/T₁, when reported.
	TemperatureRatio *float64 `json:"temperatureRatio,omitempty"`
	// DensityRatio ρ₂/ρ₁, when reported.
	DensityRatio *float64 `json:"densityRatio,omitempty"`
	// StagnationPressureRatio p₀₂/p₀₁, when reported.
	StagnationPressureRatio *float64 `json:"stagnationPressureRatio,omitempty"`
}

// ChokedFlowInput holds the parameters for a choked flow (critical
// conditions) calculation.
type ChokedFlowInput struct {
	// StagnationTemperature in K.
	StagnationTemperature float64 `json:"stagnationTemperature" validate:"gt=0"`
	// StagnationPressure in Pa.
	StagnationPressure float64 `json:"stagnationPressure" validate:"gt=0"`
	// Gamma is the specific heat ratio. Zero means 1.4 (air).
	Gamma float64 `json:"gamma" validate:"gt=1"`
	// GasConstant in J/kg·K. Zero means 287 (air).
	GasConstant float64 `json:"gasConstant" validate:"gt=0"`
}

func (in *ChokedFlowInput) applyDefaults() {
	if in.Gamma == 0 {
		in.Gamma = 1.4
	}
	if in.GasConstant == 0 {
		in.GasConstant = 287
	}
}

// ChokedFlowResult is the server's answer to a choked flow
// calculation.
type ChokedFlowResult struct {
	// CriticalTemperature in K.
	CriticalTemperature float64 `json:"criticalTemperature"`
	// CriticalPressure in Pa.
	CriticalPressure float64 `json:"criticalPressure"`
	// CriticalDensity in kg/m³.
	CriticalDensity float64 `json:"criticalDensity"`
	// CriticalVelocity in m/s.
	CriticalVelocity float64 `json:"criticalVelocity"`
	// MassFlowRate per unit area in kg/s·m².
	MassFlowRate float64 `json:"massFlowRate"`
}

// OpenChannelFlow solves Manning's equation for the given channel.
func (s *FluidMechanicsService) OpenChannelFlow(ctx context.Context, in OpenChannelFlowInput) (*OpenChannelFlowResult, error) {
	in.applyDefaults()
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/fluid-mechanics/open-channel-flow", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[OpenChannelFlowResult](data)
}

// CompressibleFlow calculates compressible flow properties from
// isentropic relations. One of MachNumber or Velocity must be set.
func (s *FluidMechanicsService) CompressibleFlow(ctx context.Context, in CompressibleFlowInput) (*CompressibleFlowResult, error) {
	if in.MachNumber == nil && in.Velocity == nil {
		return nil, FieldErrors{{
			Field: "mach_number",
			Err:   "either mach_number or velocity must be provided",
		}}
	}

	in.applyDefaults()
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/fluid-mechanics/compressible-flow", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[CompressibleFlowResult](data)
}

// BoundaryLayer calculates flat plate boundary layer properties.
func (s *FluidMechanicsService) BoundaryLayer(ctx context.Context, in BoundaryLayerInput) (*BoundaryLayerResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/fluid-mechanics/boundary-layer", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[BoundaryLayerResult](data)
}

// ExternalFlow calculates drag and lift over an immersed body.
func (s *FluidMechanicsService) ExternalFlow(ctx context.Context, in ExternalFlowInput) (*ExternalFlowResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/fluid-mechanics/external-flow", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[ExternalFlowResult](data)
}

// NormalShock calculates property ratios across a normal shock wave.
func (s *FluidMechanicsService) NormalShock(ctx context.Context, in NormalShockInput) (*NormalShockResult, error) {
	in.applyDefaults()
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/fluid-mechanics/normal-shock", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[NormalShockResult](data)
}

// ChokedFlow calculates critical conditions for choked flow.
func (s *FluidMechanicsService) ChokedFlow(ctx context.Context, in ChokedFlowInput) (*ChokedFlowResult, error) {
	in.applyDefaults()
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/fluid-mechanics/choked-flow", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[ChokedFlowResult](data)
}
