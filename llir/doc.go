// Package llir defines the low-level, LLVM-flavored SSA intermediate
// representation the translator emits: types, constants, global variables,
// functions, basic blocks, and instructions.
//
// The arena/handle idiom (a slice of values plus a uint32 Handle index into
// it) and the structural deduplication of types/constants by a byte-key
// follow the teacher's ir package (ir.Module, ir.TypeRegistry) — adapted
// here from a shader expression graph to a straight-line SSA instruction
// list, since the translator's source language (SPIR-V) is itself SSA.
//
// Types/constants/functions/blocks are exposed only through the Builder
// interface (§2.3 of the component design); translator never constructs
// llir values by touching Module's slices directly, so the concrete
// builder implementation can be swapped for one backed by a real external
// IR library without touching the dispatch core.
package llir
