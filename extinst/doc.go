// Package extinst implements the Extended-Instruction Handler Registry
// (spec.md §2.3, §4.4): resolving an OpExtInstImport name to a handler,
// and dispatching an OpExtInst's inner instruction number to that
// handler without the dispatch core inspecting the handler's internals.
//
// Grounded on the teacher's extended-instruction-set handling in
// spirv/spirv.go (a single numeric GLSL.std.450 table, the wrong set
// for an OpenCL kernel translator but the same "numeric opcode within
// an imported set maps to an emitter" shape) generalized to a registry
// of sets rather than one hardcoded set, since this spec names four.
package extinst
