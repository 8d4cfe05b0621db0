// Package pipeline fans jobs out to a pool of workers running a Processor
// and hands results to a visit callback in input order.
//
// The only contract to implement is Processor (Process).
// This keeps the pipeline swappable and testable.
package pipeline
