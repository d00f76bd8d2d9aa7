package spirv

import "fmt"

// SpvId is a 32-bit non-zero identifier naming any SPIR-V entity: a type, a
// value, a label, an extended-instruction-set import, or a decoration
// group. The namespace is flat and shared across all of these.
type SpvId uint32

// Valid reports whether the id is a well-formed (non-zero) SPIR-V id.
func (id SpvId) Valid() bool { return id != 0 }

func (id SpvId) String() string { return fmt.Sprintf("%%%d", uint32(id)) }

// Opcode is a SPIR-V instruction opcode, the low 16 bits of an
// instruction's leading word.
type Opcode uint16

// Name returns the canonical "Op..." spelling of the opcode, or a numeric
// placeholder ("Op1234") if the core has no name on file for it.
func (op Opcode) Name() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op%d", uint16(op))
}

func (op Opcode) String() string { return op.Name() }

// OpcodeRecord is an immutable typed view over a single decoded SPIR-V
// instruction: the opcode, the declared word count, and the raw operand
// words following the leading (wordCount<<16)|opcode word. Readers (the
// binary word-stream segmenter is an external collaborator, see
// package spirvbin) produce these; the dispatch core reads them mostly
// through the accessors below, and slices Operands directly where it
// takes a trailing run of literal words.
type OpcodeRecord struct {
	Op       Opcode
	Words    uint16  // declared word count, including the leading word
	Operands []uint32 // every word after the leading opcode/wordcount word
}

// NewOpcodeRecord builds a record from an already-decoded opcode and its
// operand words (word count is derived, not trusted from the caller).
func NewOpcodeRecord(op Opcode, operands []uint32) OpcodeRecord {
	return OpcodeRecord{Op: op, Words: uint16(len(operands) + 1), Operands: operands}
}

// Len returns the number of operand words (excluding the leading word).
func (r OpcodeRecord) Len() int { return len(r.Operands) }

// Word returns operand word i, or 0 and false if out of range. Used by
// handlers that need to tolerate trailing-optional-operand opcodes
// (OpTypeImage's access qualifier, OpLoopMerge's extra literals, ...).
func (r OpcodeRecord) Word(i int) (uint32, bool) {
	if i < 0 || i >= len(r.Operands) {
		return 0, false
	}
	return r.Operands[i], true
}

// MustWord returns operand word i, or 0 if out of range. Intended for
// positions the caller has already bounds-checked via Len.
func (r OpcodeRecord) MustWord(i int) uint32 {
	w, _ := r.Word(i)
	return w
}

// Id returns operand word i reinterpreted as an SpvId.
func (r OpcodeRecord) Id(i int) SpvId {
	return SpvId(r.MustWord(i))
}

// String decodes a NUL-terminated, word-padded UTF-8 literal string
// starting at operand index i. It returns the decoded string and the
// number of operand words consumed.
func (r OpcodeRecord) String(i int) (string, int) {
	var b []byte
	consumed := 0
	for j := i; j < len(r.Operands); j++ {
		w := r.Operands[j]
		consumed++
		bs := [4]byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
		done := false
		for _, c := range bs {
			if c == 0 {
				done = true
				break
			}
			b = append(b, c)
		}
		if done {
			break
		}
	}
	return string(b), consumed
}

// Known reports whether the opcode number is one the core has on file.
// Unrecognized numbers are malformed input rather than unsupported
// features (spec §4.1).
func (op Opcode) Known() bool {
	_, ok := opcodeNames[op]
	return ok
}
