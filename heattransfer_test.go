package engivault_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	engivault "github.com/Luqman-Ismat/engivault-go"
)

func TestHeatTransfer_LMTD(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		writeEnvelope(t, w, map[string]any{"lmtd": 24.6})
	}))

	got, err := c.HeatTransfer.LMTD(t.Context(), engivault.LMTDInput{
		THotIn:   353.15,
		THotOut:  323.15,
		TColdIn:  293.15,
		TColdOut: 313.15,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if gotPath != "/api/v1/heat-transfer/lmtd" {
		t.Errorf("path = %q, want /api/v1/heat-transfer/lmtd", gotPath)
	}
	if got.LMTD != 24.6 {
		t.Errorf("LMTD = %v, want 24.6", got.LMTD)
	}

	// Empty arrangement serializes as the counterflow default.
	if gotBody["flowArrangement"] != "counterflow" {
		t.Errorf("flowArrangement = %v, want counterflow", gotBody["flowArrangement"])
	}
}

func TestHeatTransfer_LMTDInvalidArrangement(t *testing.T) {
	var calls int
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	_, err := c.HeatTransfer.LMTD(t.Context(), engivault.LMTDInput{
		THotIn:          353.15,
		THotOut:         323.15,
		TColdIn:         293.15,
		TColdOut:        313.15,
		FlowArrangement: "sideways",
	})

	var fields engivault.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got: %v", err)
	}
	if !slices.Contains(fields.Fields(), "flow_arrangement") {
		t.Errorf("offending fields %v do not include flow_arrangement", fields.Fields())
	}
	// The message names the allowed set so callers can self-correct.
	if !strings.Contains(err.Error(), "counterflow") {
		t.Errorf("error %q does not name the allowed values", err.Error())
	}
	if calls != 0 {
		t.Errorf("validation failure must not reach the network, got %d calls", calls)
	}
}

func TestHeatTransfer_HeatExchangerArea(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeEnvelope(t, w, map[string]any{
			"area":          12.4,
			"lmtd":          24.6,
			"effectiveness": 0.62,
			"ntu":           1.4,
			"capacityRatio": 0.5,
		})
	}))

	got, err := c.HeatTransfer.HeatExchangerArea(t.Context(), engivault.HeatExchangerInput{
		HeatDuty:        150000,
		OverallU:        500,
		THotIn:          353.15,
		THotOut:         323.15,
		TColdIn:         293.15,
		TColdOut:        313.15,
		FlowArrangement: "crossflow",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if gotPath != "/api/v1/heat-transfer/heat-exchanger-area" {
		t.Errorf("path = %q, want /api/v1/heat-transfer/heat-exchanger-area", gotPath)
	}

	want := &engivault.HeatExchangerResult{
		Area:          12.4,
		LMTD:          24.6,
		Effectiveness: 0.62,
		NTU:           1.4,
		CapacityRatio: 0.5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestHeatTransfer_EffectivenessNTU(t *testing.T) {
	tests := []struct {
		name    string
		in      engivault.EffectivenessNTUInput
		wantErr string // offending field, empty for success
	}{
		{
			"valid counterflow",
			engivault.EffectivenessNTUInput{NTU: 2, CapacityRatio: 0.5, FlowArrangement: "counterflow"},
			"",
		},
		{
			"zero capacity ratio allowed",
			engivault.EffectivenessNTUInput{NTU: 2, FlowArrangement: "parallel"},
			"",
		},
		{
			"missing arrangement",
			engivault.EffectivenessNTUInput{NTU: 2, CapacityRatio: 0.5},
			"flow_arrangement",
		},
		{
			"capacity ratio above one",
			engivault.EffectivenessNTUInput{NTU: 2, CapacityRatio: 1.5, FlowArrangement: "counterflow"},
			"capacity_ratio",
		},
		{
			"plain crossflow not accepted here",
			engivault.EffectivenessNTUInput{NTU: 2, CapacityRatio: 0.5, FlowArrangement: "crossflow"},
			"flow_arrangement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, map[string]any{
					"effectiveness":   0.8,
					"maxHeatTransfer": 1.0,
				})
			}))

			got, err := c.HeatTransfer.EffectivenessNTU(t.Context(), tt.in)
			if tt.wantErr != "" {
				var fields engivault.FieldErrors
				if !errors.As(err, &fields) {
					t.Fatalf("expected FieldErrors, got: %v", err)
				}
				if !slices.Contains(fields.Fields(), tt.wantErr) {
					t.Errorf("offending fields %v do not include %q", fields.Fields(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got.Effectiveness != 0.8 {
				t.Errorf("Effectiveness = %v, want 0.8", got.Effectiveness)
			}
		})
	}
}
