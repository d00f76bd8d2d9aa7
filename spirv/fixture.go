package spirv

import (
	"encoding/binary"
	"math"
)

// ModuleBuilder assembles a well-formed SPIR-V binary word by word. It has
// no use in the production translation path (spec.md scopes binary
// *reading* only) but is the concrete tool translator's and spirvbin's
// tests use to hand-construct the synthetic modules named in spec.md's
// scenario table, mirroring the teacher's spirv/writer.go word-builder
// idiom one instruction at a time.
type Instruction struct {
	Opcode Opcode
	Words  []uint32
}

// InstructionBuilder accumulates the operand words of a single instruction.
type InstructionBuilder struct {
	words []uint32
}

func NewInstructionBuilder() *InstructionBuilder {
	return &InstructionBuilder{words: make([]uint32, 0, 8)}
}

func (b *InstructionBuilder) AddWord(word uint32) { b.words = append(b.words, word) }

// AddString appends a NUL-terminated, word-padded UTF-8 literal.
func (b *InstructionBuilder) AddString(s string) {
	bytes := []byte(s)
	if len(bytes) == 0 || bytes[len(bytes)-1] != 0 {
		bytes = append(bytes, 0)
	}
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}
	for i := 0; i < len(bytes); i += 4 {
		word := uint32(bytes[i]) | uint32(bytes[i+1])<<8 | uint32(bytes[i+2])<<16 | uint32(bytes[i+3])<<24
		b.words = append(b.words, word)
	}
}

func (b *InstructionBuilder) Build(opcode Opcode) Instruction {
	return Instruction{Opcode: opcode, Words: b.words}
}

// Encode renders the instruction as its leading (wordCount<<16|opcode) word
// followed by its operand words.
func (i Instruction) Encode() []uint32 {
	wordCount := uint32(len(i.Words) + 1)
	result := make([]uint32, 0, wordCount)
	result = append(result, (wordCount<<16)|uint32(i.Opcode))
	result = append(result, i.Words...)
	return result
}

// ModuleBuilder builds a complete SPIR-V module, section by section in
// the order the spec mandates (capabilities, extensions, ext-inst imports,
// memory model, entry points, execution modes, debug strings/names,
// annotations, types/constants/globals, functions).
type ModuleBuilder struct {
	version   Version
	generator uint32
	bound     uint32
	schema    uint32

	capabilities   []Instruction
	extensions     []Instruction
	extInstImports []Instruction
	memoryModel    *Instruction
	entryPoints    []Instruction
	executionModes []Instruction
	debugSource    []Instruction
	debugStrings   []Instruction
	debugNames     []Instruction
	annotations    []Instruction
	types          []Instruction
	globalVars     []Instruction
	functions      []Instruction

	nextID uint32
}

func NewModuleBuilder(version Version) *ModuleBuilder {
	return &ModuleBuilder{version: version, generator: GeneratorID, nextID: 1}
}

// AllocID hands out the next unused SPIR-V id.
func (b *ModuleBuilder) AllocID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

func (b *ModuleBuilder) AddCapability(capability Capability) {
	ib := NewInstructionBuilder()
	ib.AddWord(uint32(capability))
	b.capabilities = append(b.capabilities, ib.Build(OpCapability))
}

func (b *ModuleBuilder) AddExtension(name string) {
	ib := NewInstructionBuilder()
	ib.AddString(name)
	b.extensions = append(b.extensions, ib.Build(OpExtension))
}

func (b *ModuleBuilder) AddExtInstImport(name string) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddString(name)
	b.extInstImports = append(b.extInstImports, ib.Build(OpExtInstImport))
	return id
}

func (b *ModuleBuilder) SetMemoryModel(addressing AddressingModel, memory MemoryModel) {
	ib := NewInstructionBuilder()
	ib.AddWord(uint32(addressing))
	ib.AddWord(uint32(memory))
	inst := ib.Build(OpMemoryModel)
	b.memoryModel = &inst
}

func (b *ModuleBuilder) AddEntryPoint(execModel ExecutionModel, funcID uint32, name string, interfaces []uint32) {
	ib := NewInstructionBuilder()
	ib.AddWord(uint32(execModel))
	ib.AddWord(funcID)
	ib.AddString(name)
	for _, iface := range interfaces {
		ib.AddWord(iface)
	}
	b.entryPoints = append(b.entryPoints, ib.Build(OpEntryPoint))
}

func (b *ModuleBuilder) AddExecutionMode(entryPoint uint32, mode ExecutionMode, params ...uint32) {
	ib := NewInstructionBuilder()
	ib.AddWord(entryPoint)
	ib.AddWord(uint32(mode))
	for _, p := range params {
		ib.AddWord(p)
	}
	b.executionModes = append(b.executionModes, ib.Build(OpExecutionMode))
}

// AddSource records OpSource, used by kernel modules to name OpenCL_C as
// the originating language (magic number 3 per the SPIR-V source-language
// enum; kept as a literal here since callers rarely need it symbolically).
func (b *ModuleBuilder) AddSource(sourceLanguage uint32, version uint32) {
	ib := NewInstructionBuilder()
	ib.AddWord(sourceLanguage)
	ib.AddWord(version)
	b.debugSource = append(b.debugSource, ib.Build(OpSource))
}

func (b *ModuleBuilder) AddString(text string) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddString(text)
	b.debugStrings = append(b.debugStrings, ib.Build(OpString))
	return id
}

func (b *ModuleBuilder) AddName(id uint32, name string) {
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddString(name)
	b.debugNames = append(b.debugNames, ib.Build(OpName))
}

func (b *ModuleBuilder) AddMemberName(structID, member uint32, name string) {
	ib := NewInstructionBuilder()
	ib.AddWord(structID)
	ib.AddWord(member)
	ib.AddString(name)
	b.debugNames = append(b.debugNames, ib.Build(OpMemberName))
}

func (b *ModuleBuilder) AddDecorate(id uint32, decoration Decoration, params ...uint32) {
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddWord(uint32(decoration))
	for _, p := range params {
		ib.AddWord(p)
	}
	b.annotations = append(b.annotations, ib.Build(OpDecorate))
}

func (b *ModuleBuilder) AddMemberDecorate(structID, member uint32, decoration Decoration, params ...uint32) {
	ib := NewInstructionBuilder()
	ib.AddWord(structID)
	ib.AddWord(member)
	ib.AddWord(uint32(decoration))
	for _, p := range params {
		ib.AddWord(p)
	}
	b.annotations = append(b.annotations, ib.Build(OpMemberDecorate))
}

func (b *ModuleBuilder) AddTypeVoid() uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	b.types = append(b.types, ib.Build(OpTypeVoid))
	return id
}

func (b *ModuleBuilder) AddTypeBool() uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	b.types = append(b.types, ib.Build(OpTypeBool))
	return id
}

func (b *ModuleBuilder) AddTypeFloat(width uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddWord(width)
	b.types = append(b.types, ib.Build(OpTypeFloat))
	return id
}

func (b *ModuleBuilder) AddTypeInt(width uint32, signed bool) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddWord(width)
	if signed {
		ib.AddWord(1)
	} else {
		ib.AddWord(0)
	}
	b.types = append(b.types, ib.Build(OpTypeInt))
	return id
}

func (b *ModuleBuilder) AddTypeVector(componentType, count uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddWord(componentType)
	ib.AddWord(count)
	b.types = append(b.types, ib.Build(OpTypeVector))
	return id
}

func (b *ModuleBuilder) AddTypeArray(elementType, lengthConstID uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddWord(elementType)
	ib.AddWord(lengthConstID)
	b.types = append(b.types, ib.Build(OpTypeArray))
	return id
}

func (b *ModuleBuilder) AddTypeRuntimeArray(elementType uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddWord(elementType)
	b.types = append(b.types, ib.Build(OpTypeRuntimeArray))
	return id
}

func (b *ModuleBuilder) AddTypePointer(storageClass StorageClass, baseType uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddWord(uint32(storageClass))
	ib.AddWord(baseType)
	b.types = append(b.types, ib.Build(OpTypePointer))
	return id
}

// AddTypeForwardPointer reserves a pointer id ahead of its OpTypePointer
// definition, for self-referential (linked-list-style) struct layouts.
func (b *ModuleBuilder) AddTypeForwardPointer(ptrID uint32, storageClass StorageClass) {
	ib := NewInstructionBuilder()
	ib.AddWord(ptrID)
	ib.AddWord(uint32(storageClass))
	b.types = append(b.types, ib.Build(OpTypeForwardPointer))
}

func (b *ModuleBuilder) AddTypeFunction(returnType uint32, paramTypes ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	ib.AddWord(returnType)
	for _, p := range paramTypes {
		ib.AddWord(p)
	}
	b.types = append(b.types, ib.Build(OpTypeFunction))
	return id
}

func (b *ModuleBuilder) AddTypeStruct(memberTypes ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	for _, m := range memberTypes {
		ib.AddWord(m)
	}
	b.types = append(b.types, ib.Build(OpTypeStruct))
	return id
}

func (b *ModuleBuilder) AddConstant(typeID uint32, values ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(typeID)
	ib.AddWord(id)
	for _, v := range values {
		ib.AddWord(v)
	}
	b.types = append(b.types, ib.Build(OpConstant))
	return id
}

func (b *ModuleBuilder) AddConstantFloat32(typeID uint32, value float32) uint32 {
	return b.AddConstant(typeID, math.Float32bits(value))
}

func (b *ModuleBuilder) AddConstantFloat64(typeID uint32, value float64) uint32 {
	bits := math.Float64bits(value)
	return b.AddConstant(typeID, uint32(bits&0xFFFFFFFF), uint32(bits>>32))
}

func (b *ModuleBuilder) AddConstantComposite(typeID uint32, constituents ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(typeID)
	ib.AddWord(id)
	for _, c := range constituents {
		ib.AddWord(c)
	}
	b.types = append(b.types, ib.Build(OpConstantComposite))
	return id
}

// AddSpecConstant adds OpSpecConstant, a scalar spec constant with a
// default value and an attached SpecId decoration (spec.md §4.5).
func (b *ModuleBuilder) AddSpecConstant(typeID uint32, specID uint32, defaultValues ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(typeID)
	ib.AddWord(id)
	for _, v := range defaultValues {
		ib.AddWord(v)
	}
	b.types = append(b.types, ib.Build(OpSpecConstant))
	b.AddDecorate(id, DecorationSpecId, specID)
	return id
}

// AddSpecConstantOp adds a deferred OpSpecConstantOp: the operand opcode
// and its operands, to be folded against resolved spec-constant values by
// the consumer (spec.md §4.5's deferred queue).
func (b *ModuleBuilder) AddSpecConstantOp(resultType uint32, innerOp Opcode, operands ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	ib.AddWord(uint32(innerOp))
	for _, o := range operands {
		ib.AddWord(o)
	}
	b.types = append(b.types, ib.Build(OpSpecConstantOp))
	return id
}

func (b *ModuleBuilder) AddVariable(pointerType uint32, storageClass StorageClass) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(pointerType)
	ib.AddWord(id)
	ib.AddWord(uint32(storageClass))
	b.globalVars = append(b.globalVars, ib.Build(OpVariable))
	return id
}

func (b *ModuleBuilder) AddVariableWithInit(pointerType uint32, storageClass StorageClass, initID uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(pointerType)
	ib.AddWord(id)
	ib.AddWord(uint32(storageClass))
	ib.AddWord(initID)
	b.globalVars = append(b.globalVars, ib.Build(OpVariable))
	return id
}

// AddFunction opens a function body, allocating its result id up front so
// callers can construct forward references (OpFunctionCall to a
// not-yet-defined function, scenario C) before Build is called.
func (b *ModuleBuilder) AddFunction(funcType, returnType uint32, control FunctionControl) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(returnType)
	ib.AddWord(id)
	ib.AddWord(uint32(control))
	ib.AddWord(funcType)
	b.functions = append(b.functions, ib.Build(OpFunction))
	return id
}

// ReserveID allocates an id without emitting an instruction, for forward
// references that will be defined later in the stream.
func (b *ModuleBuilder) ReserveID() uint32 { return b.AllocID() }

func (b *ModuleBuilder) AddFunctionParameter(typeID uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(typeID)
	ib.AddWord(id)
	b.functions = append(b.functions, ib.Build(OpFunctionParameter))
	return id
}

func (b *ModuleBuilder) AddLabel() uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(id)
	b.functions = append(b.functions, ib.Build(OpLabel))
	return id
}

func (b *ModuleBuilder) AddReturn() {
	b.functions = append(b.functions, NewInstructionBuilder().Build(OpReturn))
}

func (b *ModuleBuilder) AddReturnValue(valueID uint32) {
	ib := NewInstructionBuilder()
	ib.AddWord(valueID)
	b.functions = append(b.functions, ib.Build(OpReturnValue))
}

func (b *ModuleBuilder) AddFunctionEnd() {
	b.functions = append(b.functions, NewInstructionBuilder().Build(OpFunctionEnd))
}

func (b *ModuleBuilder) AddFunctionCall(resultType uint32, function uint32, args ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	ib.AddWord(function)
	for _, a := range args {
		ib.AddWord(a)
	}
	b.functions = append(b.functions, ib.Build(OpFunctionCall))
	return id
}

func (b *ModuleBuilder) AddBinaryOp(opcode Opcode, resultType, left, right uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	ib.AddWord(left)
	ib.AddWord(right)
	b.functions = append(b.functions, ib.Build(opcode))
	return id
}

func (b *ModuleBuilder) AddUnaryOp(opcode Opcode, resultType, operand uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	ib.AddWord(operand)
	b.functions = append(b.functions, ib.Build(opcode))
	return id
}

func (b *ModuleBuilder) AddLoad(resultType, pointer uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	ib.AddWord(pointer)
	b.functions = append(b.functions, ib.Build(OpLoad))
	return id
}

func (b *ModuleBuilder) AddStore(pointer, value uint32) {
	ib := NewInstructionBuilder()
	ib.AddWord(pointer)
	ib.AddWord(value)
	b.functions = append(b.functions, ib.Build(OpStore))
}

func (b *ModuleBuilder) AddAccessChain(resultType, base uint32, indices ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	ib.AddWord(base)
	for _, idx := range indices {
		ib.AddWord(idx)
	}
	b.functions = append(b.functions, ib.Build(OpAccessChain))
	return id
}

// AddArrayLength adds OpArrayLength (supplemented feature, SPEC_FULL.md).
func (b *ModuleBuilder) AddArrayLength(resultType, structPointer, arrayMember uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	ib.AddWord(structPointer)
	ib.AddWord(arrayMember)
	b.functions = append(b.functions, ib.Build(OpArrayLength))
	return id
}

func (b *ModuleBuilder) AddCompositeConstruct(resultType uint32, constituents ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	for _, c := range constituents {
		ib.AddWord(c)
	}
	b.functions = append(b.functions, ib.Build(OpCompositeConstruct))
	return id
}

func (b *ModuleBuilder) AddSelect(resultType, condition, accept, reject uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	ib.AddWord(condition)
	ib.AddWord(accept)
	ib.AddWord(reject)
	b.functions = append(b.functions, ib.Build(OpSelect))
	return id
}

func (b *ModuleBuilder) AddSelectionMerge(mergeLabel uint32, control SelectionControl) {
	ib := NewInstructionBuilder()
	ib.AddWord(mergeLabel)
	ib.AddWord(uint32(control))
	b.functions = append(b.functions, ib.Build(OpSelectionMerge))
}

func (b *ModuleBuilder) AddLoopMerge(mergeLabel, continueLabel uint32, control LoopControl) {
	ib := NewInstructionBuilder()
	ib.AddWord(mergeLabel)
	ib.AddWord(continueLabel)
	ib.AddWord(uint32(control))
	b.functions = append(b.functions, ib.Build(OpLoopMerge))
}

func (b *ModuleBuilder) AddBranch(target uint32) {
	ib := NewInstructionBuilder()
	ib.AddWord(target)
	b.functions = append(b.functions, ib.Build(OpBranch))
}

func (b *ModuleBuilder) AddBranchConditional(condition, trueLabel, falseLabel uint32) {
	ib := NewInstructionBuilder()
	ib.AddWord(condition)
	ib.AddWord(trueLabel)
	ib.AddWord(falseLabel)
	b.functions = append(b.functions, ib.Build(OpBranchConditional))
}

// AddPhi adds OpPhi. pairs alternates value id, predecessor-block id.
func (b *ModuleBuilder) AddPhi(resultType uint32, pairs ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	for _, w := range pairs {
		ib.AddWord(w)
	}
	b.functions = append(b.functions, ib.Build(OpPhi))
	return id
}

func (b *ModuleBuilder) AddUndef(resultType uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	b.functions = append(b.functions, ib.Build(OpUndef))
	return id
}

// AddControlBarrier adds OpControlBarrier. scope and memScope may each be
// either a SpvId (a forward reference to a spec-constant scope operand,
// scenario F) or the literal id of an OpConstant, matching the original's
// acceptance of a non-constant scope operand.
func (b *ModuleBuilder) AddControlBarrier(executionScope, memoryScope uint32, semantics uint32) {
	ib := NewInstructionBuilder()
	ib.AddWord(executionScope)
	ib.AddWord(memoryScope)
	ib.AddWord(semantics)
	b.functions = append(b.functions, ib.Build(OpControlBarrier))
}

func (b *ModuleBuilder) AddKill() {
	b.functions = append(b.functions, NewInstructionBuilder().Build(OpKill))
}

func (b *ModuleBuilder) AddExtInst(resultType, extSet, instruction uint32, operands ...uint32) uint32 {
	id := b.AllocID()
	ib := NewInstructionBuilder()
	ib.AddWord(resultType)
	ib.AddWord(id)
	ib.AddWord(extSet)
	ib.AddWord(instruction)
	for _, o := range operands {
		ib.AddWord(o)
	}
	b.functions = append(b.functions, ib.Build(OpExtInst))
	return id
}

// Build serializes the accumulated sections into a binary SPIR-V module in
// spec order, computing the header's id bound from the highest id handed
// out by AllocID.
func (b *ModuleBuilder) Build() []byte {
	b.bound = b.nextID

	totalWords := 5
	totalWords += countWords(b.capabilities)
	totalWords += countWords(b.extensions)
	totalWords += countWords(b.extInstImports)
	if b.memoryModel != nil {
		totalWords += len(b.memoryModel.Encode())
	}
	totalWords += countWords(b.entryPoints)
	totalWords += countWords(b.executionModes)
	totalWords += countWords(b.debugSource)
	totalWords += countWords(b.debugStrings)
	totalWords += countWords(b.debugNames)
	totalWords += countWords(b.annotations)
	totalWords += countWords(b.types)
	totalWords += countWords(b.globalVars)
	totalWords += countWords(b.functions)

	buffer := make([]byte, totalWords*4)
	offset := 0

	binary.LittleEndian.PutUint32(buffer[offset:], MagicNumber)
	offset += 4
	binary.LittleEndian.PutUint32(buffer[offset:], b.version.Word())
	offset += 4
	binary.LittleEndian.PutUint32(buffer[offset:], b.generator)
	offset += 4
	binary.LittleEndian.PutUint32(buffer[offset:], b.bound)
	offset += 4
	binary.LittleEndian.PutUint32(buffer[offset:], b.schema)
	offset += 4

	offset = writeInstructions(buffer, offset, b.capabilities)
	offset = writeInstructions(buffer, offset, b.extensions)
	offset = writeInstructions(buffer, offset, b.extInstImports)
	if b.memoryModel != nil {
		offset = writeInstruction(buffer, offset, *b.memoryModel)
	}
	offset = writeInstructions(buffer, offset, b.entryPoints)
	offset = writeInstructions(buffer, offset, b.executionModes)
	offset = writeInstructions(buffer, offset, b.debugSource)
	offset = writeInstructions(buffer, offset, b.debugStrings)
	offset = writeInstructions(buffer, offset, b.debugNames)
	offset = writeInstructions(buffer, offset, b.annotations)
	offset = writeInstructions(buffer, offset, b.types)
	offset = writeInstructions(buffer, offset, b.globalVars)
	_ = writeInstructions(buffer, offset, b.functions)

	return buffer
}

func countWords(instructions []Instruction) int {
	count := 0
	for _, inst := range instructions {
		count += len(inst.Encode())
	}
	return count
}

func writeInstructions(buffer []byte, offset int, instructions []Instruction) int {
	for _, inst := range instructions {
		offset = writeInstruction(buffer, offset, inst)
	}
	return offset
}

func writeInstruction(buffer []byte, offset int, inst Instruction) int {
	for _, word := range inst.Encode() {
		binary.LittleEndian.PutUint32(buffer[offset:], word)
		offset += 4
	}
	return offset
}
