// Package orchestrator selects a renderer variant by execution method and
// composes the blocks it renders, providing dependency injection friendly
// helpers for consumers that prefer a single entry point.
package orchestrator
