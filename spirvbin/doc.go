// Package spirvbin decodes a raw SPIR-V binary module into a stream of
// spirv.OpcodeRecord values plus the module header (version, generator,
// id bound, schema).
//
// The header-then-instruction-loop shape, and the word-count/opcode
// split of the first word of every instruction, are grounded on
// cmd/spvdis's main(): that tool prints a disassembly as it walks the
// stream; Reader does the identical walk but hands records to a caller
// (translator.Translator) instead of printing them.
package spirvbin
