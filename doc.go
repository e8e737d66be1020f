// Package engivault is the official Go SDK for the EngiVault
// engineering calculations API. It covers hydraulics, pumps, heat
// transfer, fluid mechanics, equipment sizing, and usage analytics.
// All formulas are evaluated server-side; this package validates
// inputs, performs the authenticated round trip, and returns typed
// results.
//
// # Building a Client
//
// Use [New] with functional options. Exactly one credential is
// required; a bearer token takes precedence when both are supplied:
//
//	c, err := engivault.New(
//		engivault.WithAPIKey("your-api-key"),
//		engivault.WithTimeout(10*time.Second),
//	)
//
// # Calling the API
//
// Calculations hang off per-domain services sharing one transport:
//
//	result, err := c.Hydraulics.PressureDrop(ctx, engivault.PressureDropInput{
//		FlowRate:       0.1,
//		PipeDiameter:   0.1,
//		PipeLength:     100,
//		FluidDensity:   1000,
//		FluidViscosity: 0.001,
//	})
//
// Inputs are validated locally before anything is sent; a violation
// returns [FieldErrors] and no network call is made.
//
// # Script-style Usage
//
// For short scripts, [Init] stores a process-wide client and the
// package-level shortcuts use it:
//
//	engivault.Init(engivault.WithAPIKey("your-api-key"))
//	result, err := engivault.PressureDrop(ctx, in)
//
// The stored client is replaced by a later Init and cleared by
// [Reset]; tests that use it must call Reset between cases.
//
// # Errors
//
// Every failure maps onto one sentinel in the taxonomy
// ([ErrConfiguration], [ErrValidation], [ErrNetwork],
// [ErrAuthentication], [ErrRateLimit], [ErrAPI]) and can be tested
// with [errors.Is]. HTTP-level failures additionally carry the status
// code and raw body via [*APIError]:
//
//	var apiErr *engivault.APIError
//	if errors.As(err, &apiErr) {
//		log.Println(apiErr.StatusCode, apiErr.Body)
//	}
package engivault
