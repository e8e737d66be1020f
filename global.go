package engivault

import (
	"context"
	"fmt"
	"sync"
)

// The process-wide client exists for script-style call sites. It is
// deliberately test-hostile shared state: tests using it must call
// [Reset] between cases, and callers must not assume a previously
// retrieved reference stays authoritative once Init runs again.
var (
	defaultMu     sync.RWMutex
	defaultClient *Client
)

// Init builds a client from the given options and stores it as the
// process-wide default used by the package-level shortcuts. A later
// Init replaces the stored client; last one wins.
func Init(optFns ...Option) (*Client, error) {
	c, err := New(optFns...)
	if err != nil {
		return nil, err
	}

	defaultMu.Lock()
	defaultClient = c
	defaultMu.Unlock()

	return c, nil
}

// Default returns the client stored by [Init], or [ErrNotInitialized]
// if Init has not been called.
func Default() (*Client, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	if defaultClient == nil {
		return nil, fmt.Errorf("%w: call engivault.Init first", ErrNotInitialized)
	}

	return defaultClient, nil
}

// Reset clears the process-wide client. Intended for test isolation.
func Reset() {
	defaultMu.Lock()
	defaultClient = nil
	defaultMu.Unlock()
}

// PressureDrop calls [HydraulicsService.PressureDrop] on the default
// client.
func PressureDrop(ctx context.Context, in PressureDropInput) (*PressureDropResult, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Hydraulics.PressureDrop(ctx, in)
}

// FlowRate calls [HydraulicsService.FlowRate] on the default client.
func FlowRate(ctx context.Context, in FlowRateInput) (*FlowRateResult, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Hydraulics.FlowRate(ctx, in)
}

// PumpPerformance calls [PumpsService.Performance] on the default
// client.
func PumpPerformance(ctx context.Context, in PumpPerformanceInput) (*PumpPerformanceResult, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Pumps.Performance(ctx, in)
}

// NPSH calls [PumpsService.NPSH] on the default client.
func NPSH(ctx context.Context, in NPSHInput) (*NPSHResult, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Pumps.NPSH(ctx, in)
}

// LMTD calls [HeatTransferService.LMTD] on the default client.
func LMTD(ctx context.Context, in LMTDInput) (*LMTDResult, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.HeatTransfer.LMTD(ctx, in)
}

// HeatExchangerArea calls [HeatTransferService.HeatExchangerArea] on
// the default client.
func HeatExchangerArea(ctx context.Context, in HeatExchangerInput) (*HeatExchangerResult, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.HeatTransfer.HeatExchangerArea(ctx, in)
}

// OpenChannelFlow calls [FluidMechanicsService.OpenChannelFlow] on the
// default client.
func OpenChannelFlow(ctx context.Context, in OpenChannelFlowInput) (*OpenChannelFlowResult, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.FluidMechanics.OpenChannelFlow(ctx, in)
}
