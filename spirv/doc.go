// Package spirv defines the SPIR-V wire-format vocabulary consumed by the
// translator: opcode numbers, the enumerations that appear as instruction
// operands, and the OpcodeRecord view over a single decoded instruction.
//
// This package owns no translation logic and no I/O. It is the shared
// vocabulary between the binary reader (package spirvbin, an external
// collaborator per the core's contract) and the dispatch core (package
// translator). Keeping the vocabulary separate from both means a future
// reader (e.g. one that parses SPIR-V assembly text instead of the binary
// word stream) can produce the same OpcodeRecord values translator already
// knows how to consume.
//
// # Layout
//
//   - ids.go: SpvId, Opcode, OpcodeRecord
//   - opcodes.go: the numeric opcode table
//   - enums.go: Capability, Decoration, BuiltIn, StorageClass, execution
//     models/modes, function/loop/selection control masks, image enums
//   - errors.go: ErrorKind and Error, the taxonomy in spec §6-§7
package spirv
