// Package orchestrator wires the source → barcodes file → form model →
// renderer pipeline, providing dependency injection friendly helpers for
// consumers that prefer a single entry point.
package orchestrator
