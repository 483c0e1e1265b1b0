// Package idgen produces the globally unique textual identifiers carried by
// processes. It lives under `internal` so that callers treat identifiers as
// opaque strings; tests swap NewFunc for a deterministic generator.
package idgen
