// Package dbgir implements the Debug Builder Interface (spec.md §2.3,
// §4.4): creating file, compile-unit, subprogram, lexical-block, and
// location debug metadata and attaching a location to a range of
// instructions.
//
// Grounded on the same narrow-facade discipline as llir.Builder (see
// llir/builder.go) — the dispatch core never constructs debug metadata
// structs directly, only through this interface, so a second
// implementation backed by a real external debug-info emitter can stand
// in without the dispatch core changing.
package dbgir
