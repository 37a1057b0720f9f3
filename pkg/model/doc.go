// Package model defines the barcode form model consumed by renderers. A form
// is an ordered list of sets; constant sets own an ordered list of barcodes.
// Set letters (A, B, …) and barcode letters (a, b, …) are assigned from the
// last entry of each list using the letters package, so the model, not the
// rendered markup, decides what comes next. Types live in internal/model and
// are re-exported here.
package model
