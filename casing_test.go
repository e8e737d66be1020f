package engivault

import (
	"reflect"
	"strings"
	"testing"
)

func TestToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"flowRate", "flow_rate"},
		{"pipeDiameter", "pipe_diameter"},
		{"fluidViscosity", "fluid_viscosity"},
		{"lmtd", "lmtd"},
		{"manningSCoeff", "manning_s_coeff"},
		{"machNumber1", "mach_number1"},
		{"npshAvailable", "npsh_available"},
		{"remainingRequestsThisMonth", "remaining_requests_this_month"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := toSnake(tt.in); got != tt.want {
			t.Errorf("toSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"flow_rate", "flowRate"},
		{"pipe_roughness", "pipeRoughness"},
		{"lmtd", "lmtd"},
		{"manning_s_coeff", "manningSCoeff"},
		{"mach_number1", "machNumber1"},
		{"npsh_available", "npshAvailable"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := toCamel(tt.in); got != tt.want {
			t.Errorf("toCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Every wire tag declared by this package must survive a camel → snake
// → camel round trip, so validation errors always name a field that
// maps back onto the wire.
func TestCasingRoundTripOverWireTags(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeOf(PressureDropInput{}),
		reflect.TypeOf(PressureDropResult{}),
		reflect.TypeOf(FlowRateInput{}),
		reflect.TypeOf(FlowRateResult{}),
		reflect.TypeOf(PumpPerformanceInput{}),
		reflect.TypeOf(PumpPerformanceResult{}),
		reflect.TypeOf(NPSHInput{}),
		reflect.TypeOf(NPSHResult{}),
		reflect.TypeOf(LMTDInput{}),
		reflect.TypeOf(LMTDResult{}),
		reflect.TypeOf(HeatExchangerInput{}),
		reflect.TypeOf(HeatExchangerResult{}),
		reflect.TypeOf(EffectivenessNTUInput{}),
		reflect.TypeOf(EffectivenessNTUResult{}),
		reflect.TypeOf(GasProperties{}),
		reflect.TypeOf(FluidProperties{}),
		reflect.TypeOf(OpenChannelFlowInput{}),
		reflect.TypeOf(OpenChannelFlowResult{}),
		reflect.TypeOf(CompressibleFlowInput{}),
		reflect.TypeOf(CompressibleFlowResult{}),
		reflect.TypeOf(BoundaryLayerInput{}),
		reflect.TypeOf(BoundaryLayerResult{}),
		reflect.TypeOf(ExternalFlowInput{}),
		reflect.TypeOf(ExternalFlowResult{}),
		reflect.TypeOf(NormalShockInput{}),
		reflect.TypeOf(NormalShockResult{}),
		reflect.TypeOf(ChokedFlowInput{}),
		reflect.TypeOf(ChokedFlowResult{}),
		reflect.TypeOf(PumpSizingInput{}),
		reflect.TypeOf(ThermalFluidProperties{}),
		reflect.TypeOf(HeatExchangerSizingInput{}),
		reflect.TypeOf(VesselSizingInput{}),
		reflect.TypeOf(PipingFitting{}),
		reflect.TypeOf(PipingSizingInput{}),
		reflect.TypeOf(UsageStats{}),
		reflect.TypeOf(SubscriptionLimits{}),
	}

	for _, typ := range types {
		for i := 0; i < typ.NumField(); i++ {
			tag := strings.SplitN(typ.Field(i).Tag.Get("json"), ",", 2)[0]
			if tag == "" || tag == "-" {
				continue
			}
			if got := toCamel(toSnake(tag)); got != tag {
				t.Errorf("%s.%s: round trip of %q yields %q", typ.Name(), typ.Field(i).Name, tag, got)
			}
		}
	}
}
