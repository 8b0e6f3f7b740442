// Package batch applies linmath operations to many values concurrently.
//
// A typical use is transforming every vertex of a mesh by one matrix:
//
//	out, err := batch.Transform(ctx, m, vertices, batch.WithConcurrency(8))
//
// Results keep the order of the input. The first failing item cancels the rest
// of the batch and is reported as an *ItemError carrying its index. Inputs are
// never modified.
//
// Every call logs a single summary line and records a single metrics sample,
// see WithLogger and WithMetricsCollector.
package batch
