package llir

// BasicBlock is a straight-line run of Instructions ending in exactly one
// terminator (Branch, CondBranch, Switch, Return, ReturnValue,
// Unreachable, or Kill). Terminators are ordinary Instructions with
// IsTerminator()==true rather than a separate field, matching how the
// dispatch core appends instructions one opcode at a time without
// knowing in advance which one ends the block.
type BasicBlock struct {
	Name  string
	Insts []Instruction

	// Seq is the block's position in the SPIR-V instruction stream (the
	// order OpLabel opened it). BlockHandles index Blocks in creation
	// order, which differs when a branch forward-creates its target, so
	// consumers that care about stream order sort by Seq.
	Seq int

	// Unroll carries the OpLoopMerge unroll hint recorded against this
	// block as a loop's continue target.
	Unroll UnrollHint
}

// UnrollHint is the loop-unrolling metadata OpLoopMerge attaches to the
// continue target ("llvm.loop.unroll.enable" / "...unroll.disable").
type UnrollHint uint8

const (
	UnrollNone UnrollHint = iota
	UnrollEnable
	UnrollDisable
)

// Terminator returns the block's final instruction, or the zero
// Instruction and false if the block is still open (translator.populatePhi
// runs a resolution pass before any block is read back, so callers in
// the dispatch core itself never observe an empty block).
func (b *BasicBlock) Terminator() (Instruction, bool) {
	if len(b.Insts) == 0 || !b.Insts[len(b.Insts)-1].Op.IsTerminator() {
		return Instruction{}, false
	}
	return b.Insts[len(b.Insts)-1], true
}
