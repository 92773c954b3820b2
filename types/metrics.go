package types

// This file defines how the cache reports what it is doing.

/*
Metrics is the set of events the cache reports.
Each method is called synchronously on the operation that caused it, so
implementations must be cheap.
*/
type Metrics interface {

	// Hit is called when Get or Has finds a live entry.
	Hit()

	// Miss is called when Get or Has finds nothing, or finds an expired entry.
	Miss()

	// Expire is called when an expired entry is removed, lazily on read or by Prune.
	Expire()

	// Write is called for every stored entry.
	Write()

	// Delete is called for every explicit Delete, whether or not the key was present.
	Delete()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

It lets the engine always hold a non-nil Metrics, so the cache never needs
a nil check on the hot path.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()    {}
func (NoopMetrics) Miss()   {}
func (NoopMetrics) Expire() {}
func (NoopMetrics) Write()  {}
func (NoopMetrics) Delete() {}
