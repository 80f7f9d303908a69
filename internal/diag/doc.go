// Package diag defines the diagnostic model the scanner reports through.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a short
// Message, the Primary span it points at and optional Notes. Producers emit
// through a Reporter, usually a BagReporter that collects into a Bag with a
// per-file limit; the Bag sorts and deduplicates for deterministic output.
//
// Package diag does no formatting or IO. Rendering lives in internal/diagfmt.
package diag
