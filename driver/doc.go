// Package driver provides the single orchestration entry point that
// wraps a calculator.Calculator invocation: it resolves the call, wraps
// any error exactly once, and converts an internal panic (a calculator
// invariant violation) into a recoverable
// calculator.ErrInternal with a diagnostic dump attached, rather than
// letting it cross the package boundary as a crash.
package driver
