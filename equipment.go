package engivault

import (
	"context"
	"net/http"
)

// EquipmentService exposes equipment sizing calculations for pumps,
// heat exchangers, vessels, and piping. Sizing results carry
// server-defined payloads (selected equipment, design references, and
// standards citations) whose schema varies per equipment class, so
// they are returned as generic objects rather than typed structs.
type EquipmentService struct {
	t *transport
}

// PumpSizingInput holds the hydraulic requirements for sizing a pump.
type PumpSizingInput struct {
	// FlowRate is the volumetric flow rate in m³/s.
	FlowRate float64 `json:"flowRate" validate:"gt=0"`
	// Head is the required pump head in m.
	Head float64 `json:"head" validate:"gt=0"`
	// FluidDensity in kg/m³.
	FluidDensity float64 `json:"fluidDensity" validate:"gt=0"`
	// FluidViscosity is the dynamic viscosity in Pa·s.
	FluidViscosity float64 `json:"fluidViscosity" validate:"gt=0"`
	// NPSHAvailable at the installation in m.
	NPSHAvailable float64 `json:"npshAvailable" validate:"gt=0"`
	// EfficiencyTarget in (0, 1]. Optional.
	EfficiencyTarget *float64 `json:"efficiencyTarget,omitempty" validate:"omitempty,gt=0,lte=1"`
	// PumpType is one of "centrifugal", "positive_displacement", or
	// "specialty". Optional.
	PumpType string `json:"pumpType,omitempty" validate:"omitempty,oneof=centrifugal positive_displacement specialty"`
	// OperatingHours per year. Optional.
	OperatingHours *float64 `json:"operatingHours,omitempty" validate:"omitempty,gt=0"`
	// DesignTemperature in K. Optional.
	DesignTemperature *float64 `json:"designTemperature,omitempty" validate:"omitempty,gt=0"`
	// DesignPressure in Pa. Optional.
	DesignPressure *float64 `json:"designPressure,omitempty" validate:"omitempty,gt=0"`
}

// ThermalFluidProperties describes one side's fluid for heat exchanger
// sizing.
type ThermalFluidProperties struct {
	// Density in kg/m³.
	Density float64 `json:"density" validate:"gt=0"`
	// Viscosity is the dynamic viscosity in Pa·s.
	Viscosity float64 `json:"viscosity" validate:"gt=0"`
	// ThermalConductivity in W/m·K.
	ThermalConductivity float64 `json:"thermalConductivity" validate:"gt=0"`
	// SpecificHeat in J/kg·K.
	SpecificHeat float64 `json:"specificHeat" validate:"gt=0"`
}

// HeatExchangerSizingInput holds the thermal requirements for sizing a
// heat exchanger.
type HeatExchangerSizingInput struct {
	// HeatDuty in W.
	HeatDuty float64 `json:"heatDuty" validate:"gt=0"`
	// HotFluidInlet temperature in K; must exceed HotFluidOutlet.
	HotFluidInlet float64 `json:"hotFluidInlet" validate:"gt=0,gtfield=HotFluidOutlet"`
	// HotFluidOutlet temperature in K.
	HotFluidOutlet float64 `json:"hotFluidOutlet" validate:"gt=0"`
	// ColdFluidInlet temperature in K.
	ColdFluidInlet float64 `json:"coldFluidInlet" validate:"gt=0"`
	// ColdFluidOutlet temperature in K; must exceed ColdFluidInlet.
	ColdFluidOutlet float64 `json:"coldFluidOutlet" validate:"gt=0,gtfield=ColdFluidInlet"`
	// HotFlowRate in kg/s.
	HotFlowRate float64 `json:"hotFlowRate" validate:"gt=0"`
	// ColdFlowRate in kg/s.
	ColdFlowRate float64 `json:"coldFlowRate" validate:"gt=0"`
	// DesignPressure in Pa.
	DesignPressure float64 `json:"designPressure" validate:"gt=0"`
	// DesignTemperature in K.
	DesignTemperature float64 `json:"designTemperature" validate:"gt=0"`
	// HotFluidProperties of the hot side.
	HotFluidProperties ThermalFluidProperties `json:"hotFluidProperties"`
	// ColdFluidProperties of the cold side.
	ColdFluidProperties ThermalFluidProperties `json:"coldFluidProperties"`
	// ExchangerType is one of "shell_tube", "plate", "air_cooled", or
	// "compact". Optional.
	ExchangerType string `json:"exchangerType,omitempty" validate:"omitempty,oneof=shell_tube plate air_cooled compact"`
	// FlowArrangement is one of "counterflow", "parallel", or
	// "crossflow". Optional.
	FlowArrangement string `json:"flowArrangement,omitempty" validate:"omitempty,oneof=counterflow parallel crossflow"`
}

// VesselSizingInput holds the requirements for sizing a vessel.
type VesselSizingInput struct {
	// Volume in m³.
	Volume float64 `json:"volume" validate:"gt=0"`
	// DesignPressure in Pa.
	DesignPressure float64 `json:"designPressure" validate:"gt=0"`
	// DesignTemperature in K.
	DesignTemperature float64 `json:"designTemperature" validate:"gt=0"`
	// VesselType is one of "storage_tank", "pressure_vessel",
	// "separator", or "reactor". Required.
	VesselType string `json:"vesselType" validate:"required,oneof=storage_tank pressure_vessel separator reactor"`
	// Material is one of "carbon_steel", "stainless_steel", or
	// "aluminum". Optional.
	Material string `json:"material,omitempty" validate:"omitempty,oneof=carbon_steel stainless_steel aluminum"`
	// Diameter in m. Optional.
	Diameter *float64 `json:"diameter,omitempty" validate:"omitempty,gt=0"`
	// Length in m. Optional.
	Length *float64 `json:"length,omitempty" validate:"omitempty,gt=0"`
	// Height in m. Optional.
	Height *float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
	// OperatingConditions passed through to the server. Optional.
	OperatingConditions map[string]float64 `json:"operatingConditions,omitempty"`
	// Standards lists applicable design standards. Optional.
	Standards []string `json:"standards,omitempty"`
}

// PipingFitting describes one fitting entry for piping sizing.
type PipingFitting struct {
	// Type of the fitting, e.g. "elbow_90" or "gate_valve".
	Type string `json:"type" validate:"required"`
	// Count of this fitting in the run.
	Count int `json:"count" validate:"gt=0"`
}

// PipingSizingInput holds the requirements for sizing a pipe run.
type PipingSizingInput struct {
	// FlowRate is the volumetric flow rate in m³/s.
	FlowRate float64 `json:"flowRate" validate:"gt=0"`
	// FluidDensity in kg/m³.
	FluidDensity float64 `json:"fluidDensity" validate:"gt=0"`
	// FluidViscosity is the dynamic viscosity in Pa·s.
	FluidViscosity float64 `json:"fluidViscosity" validate:"gt=0"`
	// PressureDrop is the allowable pressure drop in Pa. Optional.
	PressureDrop *float64 `json:"pressureDrop,omitempty" validate:"omitempty,gt=0"`
	// VelocityLimit is the maximum velocity in m/s. Optional.
	VelocityLimit *float64 `json:"velocityLimit,omitempty" validate:"omitempty,gt=0"`
	// PipeMaterial, e.g. "carbon_steel". Optional.
	PipeMaterial string `json:"pipeMaterial,omitempty"`
	// PipeSchedule, e.g. "40". Optional.
	PipeSchedule string `json:"pipeSchedule,omitempty"`
	// DesignPressure in Pa. Optional.
	DesignPressure *float64 `json:"designPressure,omitempty" validate:"omitempty,gt=0"`
	// DesignTemperature in K. Optional.
	DesignTemperature *float64 `json:"designTemperature,omitempty" validate:"omitempty,gt=0"`
	// PipeLength in m. Optional.
	PipeLength *float64 `json:"pipeLength,omitempty" validate:"omitempty,gt=0"`
	// Fittings in the run. Optional.
	Fittings []PipingFitting `json:"fittings,omitempty" validate:"omitempty,dive"`
}

// SizePump sizes a pump for the given hydraulic requirements.
func (s *EquipmentService) SizePump(ctx context.Context, in PumpSizingInput) (map[string]any, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/equipment/pumps/sizing", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeObject(data)
}

// SizeHeatExchanger sizes a heat exchanger for the given thermal
// requirements.
func (s *EquipmentService) SizeHeatExchanger(ctx context.Context, in HeatExchangerSizingInput) (map[string]any, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/equipment/heat-exchangers/sizing", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeObject(data)
}

// SizeVessel sizes a vessel for the given volume and pressure
// requirements.
func (s *EquipmentService) SizeVessel(ctx context.Context, in VesselSizingInput) (map[string]any, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/equipment/vessels/sizing", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeObject(data)
}

// SizePiping sizes a pipe run for the given flow and limits.
func (s *EquipmentService) SizePiping(ctx context.Context, in PipingSizingInput) (map[string]any, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/equipment/piping/sizing", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeObject(data)
}
