package engivault

import (
	"context"
	"net/http"
)

// HeatTransferService exposes heat exchanger calculations.
type HeatTransferService struct {
	t *transport
}

// LMTDInput holds the terminal temperatures for a log mean temperature
// difference calculation.
type LMTDInput struct {
	// THotIn is the hot fluid inlet temperature in K.
	THotIn float64 `json:"tHotIn" validate:"required"`
	// THotOut is the hot fluid outlet temperature in K.
	THotOut float64 `json:"tHotOut" validate:"required"`
	// TColdIn is the cold fluid inlet temperature in K.
	TColdIn float64 `json:"tColdIn" validate:"required"`
	// TColdOut is the cold fluid outlet temperature in K.
	TColdOut float64 `json:"tColdOut" validate:"required"`
	// FlowArrangement is one of "counterflow" or "parallel". Empty
	// means counterflow.
	FlowArrangement string `json:"flowArrangement" validate:"oneof=counterflow parallel"`
}

func (in *LMTDInput) applyDefaults() {
	if in.FlowArrangement == "" {
		in.FlowArrangement = "counterflow"
	}
}

// LMTDResult is the server's answer to an LMTD calculation.
type LMTDResult struct {
	// LMTD is the log mean temperature difference in K.
	LMTD float64 `json:"lmtd"`
}

// HeatExchangerInput holds the parameters for sizing a heat exchanger
// area by the LMTD method.
type HeatExchangerInput struct {
	// HeatDuty is the heat transfer rate in W.
	HeatDuty float64 `json:"heatDuty" validate:"gt=0"`
	// OverallU is the overall heat transfer coefficient in W/m²·K.
	OverallU float64 `json:"overallU" validate:"gt=0"`
	// THotIn is the hot fluid inlet temperature in K.
	THotIn float64 `json:"tHotIn" validate:"gt=0"`
	// THotOut is the hot fluid outlet temperature in K.
	THotOut float64 `json:"tHotOut" validate:"gt=0"`
	// TColdIn is the cold fluid inlet temperature in K.
	TColdIn float64 `json:"tColdIn" validate:"gt=0"`
	// TColdOut is the cold fluid outlet temperature in K.
	TColdOut float64 `json:"tColdOut" validate:"gt=0"`
	// FlowArrangement is one of "counterflow", "parallel", or
	// "crossflow". Empty means counterflow.
	FlowArrangement string `json:"flowArrangement" validate:"oneof=counterflow parallel crossflow"`
}

func (in *HeatExchangerInput) applyDefaults() {
	if in.FlowArrangement == "" {
		in.FlowArrangement = "counterflow"
	}
}

// HeatExchangerResult is the server's answer to a heat exchanger area
// calculation.
type HeatExchangerResult struct {
	// Area is the required heat transfer area in m².
	Area float64 `json:"area"`
	// LMTD is the log mean temperature difference in K.
	LMTD float64 `json:"lmtd"`
	// Effectiveness of the exchanger, in (0, 1].
	Effectiveness float64 `json:"effectiveness"`
	// NTU is the number of transfer units.
	NTU float64 `json:"ntu"`
	// CapacityRatio is Cmin/Cmax.
	CapacityRatio float64 `json:"capacityRatio"`
}

// EffectivenessNTUInput holds the parameters for an effectiveness-NTU
// calculation.
type EffectivenessNTUInput struct {
	// NTU is the number of transfer units.
	NTU float64 `json:"ntu" validate:"gt=0"`
	// CapacityRatio is Cmin/Cmax, in [0, 1].
	CapacityRatio float64 `json:"capacityRatio" validate:"gte=0,lte=1"`
	// FlowArrangement is one of "counterflow", "parallel", or
	// "crossflow_unmixed". Required.
	FlowArrangement string `json:"flowArrangement" validate:"required,oneof=counterflow parallel crossflow_unmixed"`
}

// EffectivenessNTUResult is the server's answer to an
// effectiveness-NTU calculation.
type EffectivenessNTUResult struct {
	// Effectiveness of the exchanger, in (0, 1].
	Effectiveness float64 `json:"effectiveness"`
	// MaxHeatTransfer is the maximum possible heat transfer factor.
	MaxHeatTransfer float64 `json:"maxHeatTransfer"`
}

// LMTD calculates the log mean temperature difference for the given
// terminal temperatures.
func (s *HeatTransferService) LMTD(ctx context.Context, in LMTDInput) (*LMTDResult, error) {
	in.applyDefaults()
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/heat-transfer/lmtd", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[LMTDResult](data)
}

// HeatExchangerArea sizes the heat transfer area by the LMTD method.
func (s *HeatTransferService) HeatExchangerArea(ctx context.Context, in HeatExchangerInput) (*HeatExchangerResult, error) {
	in.applyDefaults()
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/heat-transfer/heat-exchanger-area", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[HeatExchangerResult](data)
}

// EffectivenessNTU calculates heat exchanger effectiveness by the NTU
// method.
func (s *HeatTransferService) EffectivenessNTU(ctx context.Context, in EffectivenessNTUInput) (*EffectivenessNTUResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	data, err := s.t.request(ctx, http.MethodPost, "/api/v1/heat-transfer/effectiveness-ntu", in, nil)
	if err != nil {
		return nil, err
	}

	return decodeResult[EffectivenessNTUResult](data)
}
