package translator

import (
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// translateConstant implements spec.md §4.1.3: constants, specialization
// constants, and module-scope constant expressions.
func (t *Translator) translateConstant(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	case spirv.OpConstantTrue, spirv.OpConstantFalse:
		ty, err := t.state.requireType(rec.Id(0))
		if err != nil {
			return err
		}
		t.bindConst(rec, rec.Id(0), rec.Id(1), t.builder.BoolConstant(ty, rec.Op == spirv.OpConstantTrue))
		return nil

	case spirv.OpConstant:
		return t.translateOpConstant(rec)

	case spirv.OpConstantComposite:
		return t.translateConstantComposite(rec, false)

	case spirv.OpConstantSampler:
		return t.translateConstantSampler(rec)

	case spirv.OpConstantNull:
		return t.translateConstantNull(rec)

	case spirv.OpSpecConstantTrue, spirv.OpSpecConstantFalse:
		return t.translateSpecConstantBool(rec)

	case spirv.OpSpecConstant:
		return t.translateSpecConstant(rec)

	case spirv.OpSpecConstantComposite:
		return t.translateConstantComposite(rec, true)

	case spirv.OpSpecConstantOp:
		return t.translateSpecConstantOp(rec)

	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable constant dispatch")
	}
}

// literalBits reassembles an immediate as 32 or 64 bits depending on the
// declared scalar width (spec.md §4.1.3's OpConstant rule).
func literalBits(rec spirv.OpcodeRecord, from int, width uint8) uint64 {
	if width > 32 {
		return uint64(rec.MustWord(from)) | uint64(rec.MustWord(from+1))<<32
	}
	return uint64(rec.MustWord(from))
}

func (t *Translator) translateOpConstant(rec spirv.OpcodeRecord) error {
	tyID, resID := rec.Id(0), rec.Id(1)
	ty, err := t.state.requireType(tyID)
	if err != nil {
		return err
	}
	switch inner := t.builder.Type(ty).Inner.(type) {
	case llir.IntType:
		t.bindConst(rec, tyID, resID, t.builder.IntConstant(ty, literalBits(rec, 2, inner.Width)))
		return nil
	case llir.FloatType:
		t.bindConst(rec, tyID, resID, t.builder.FloatConstant(ty, literalBits(rec, 2, inner.Width)))
		return nil
	default:
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, resID, "OpConstant result type is not a scalar")
	}
}

func (t *Translator) translateConstantComposite(rec spirv.OpcodeRecord, isSpec bool) error {
	tyID, resID := rec.Id(0), rec.Id(1)
	ty, err := t.state.requireType(tyID)
	if err != nil {
		return err
	}
	elems := make([]llir.ConstHandle, 0, rec.Len()-2)
	for i := 2; i < rec.Len(); i++ {
		c, ok := t.constOf(rec.Id(i))
		if !ok {
			return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, rec.Id(i), "composite constituent is not a constant")
		}
		elems = append(elems, c)
	}
	t.bindConst(rec, tyID, resID, t.builder.CompositeConstant(ty, elems))

	if isSpec {
		t.maybeUpdateWorkgroupSizeHint(rec, resID)
	}
	return nil
}

// maybeUpdateWorkgroupSizeHint implements the BuiltIn WorkgroupSize rule
// on OpSpecConstantComposite (spec.md §4.1.3).
func (t *Translator) maybeUpdateWorkgroupSizeHint(rec spirv.OpcodeRecord, resID spirv.SpvId) {
	d, ok := t.state.firstDecoration(resID, spirv.DecorationBuiltIn)
	if !ok || len(d.Operands) == 0 || spirv.BuiltIn(d.Operands[0]) != spirv.BuiltInWorkgroupSize {
		return
	}
	if rec.Len() != 5 {
		return
	}
	var dims [3]uint32
	for i := 0; i < 3; i++ {
		v, ok := t.intConstValue(rec.Id(2 + i))
		if !ok {
			return
		}
		dims[i] = uint32(v)
	}
	t.state.workgroupSizeHint = dims
	t.state.hasWorkgroupSizeHint = true
}

// OpenCL sampler field encodings (spec.md §4.1.3's enumerated values).
const (
	samplerAddressNone           = 0
	samplerAddressClampToEdge    = 2
	samplerAddressClamp          = 4
	samplerAddressRepeat         = 6
	samplerAddressMirroredRepeat = 8
	samplerNormalizedCoordsTrue  = 1
	samplerFilterNearest         = 0x10
	samplerFilterLinear          = 0x20
)

func (t *Translator) translateConstantSampler(rec spirv.OpcodeRecord) error {
	tyID, resID := rec.Id(0), rec.Id(1)

	var bits uint32
	switch spirv.SamplerAddressingMode(rec.MustWord(2)) {
	case spirv.SamplerAddressingNone:
		bits |= samplerAddressNone
	case spirv.SamplerAddressingClampToEdge:
		bits |= samplerAddressClampToEdge
	case spirv.SamplerAddressingClamp:
		bits |= samplerAddressClamp
	case spirv.SamplerAddressingRepeat:
		bits |= samplerAddressRepeat
	case spirv.SamplerAddressingRepeatMirrored:
		bits |= samplerAddressMirroredRepeat
	default:
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, resID, "unknown sampler addressing mode")
	}
	if rec.MustWord(3) == 1 {
		bits |= samplerNormalizedCoordsTrue
	}
	switch spirv.SamplerFilterMode(rec.MustWord(4)) {
	case spirv.SamplerFilterNearest:
		bits |= samplerFilterNearest
	case spirv.SamplerFilterLinear:
		bits |= samplerFilterLinear
	default:
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, resID, "unknown sampler filter mode")
	}

	// The true sampler type is materialized lazily at the OpSampledImage
	// use site; until then the sampler is a plain i32 literal.
	i32 := t.builder.IntType(32, false)
	t.bindTypedValueConst(rec, tyID, i32, resID, t.builder.IntConstant(i32, uint64(bits)))
	return nil
}

// bindTypedValueConst binds a constant whose IR type intentionally
// differs from the declared SPIR-V result type (the sampler literal).
func (t *Translator) bindTypedValueConst(rec spirv.OpcodeRecord, tyID spirv.SpvId, ty llir.TypeHandle, id spirv.SpvId, c llir.ConstHandle) {
	t.state.bind(id, &binding{Op: rec.Op, Rec: rec, TypeID: tyID, ValueType: ty, Const: c, HasConst: true})
}

func (t *Translator) translateConstantNull(rec spirv.OpcodeRecord) error {
	tyID, resID := rec.Id(0), rec.Id(1)
	ty, err := t.state.requireType(tyID)
	if err != nil {
		return err
	}
	switch t.builder.Type(ty).Inner.(type) {
	case llir.IntType, llir.FloatType, llir.VectorType, llir.MatrixType,
		llir.ArrayType, llir.StructType, llir.PointerType, llir.EventType:
		t.bindConst(rec, tyID, resID, t.builder.NullConstant(ty))
		return nil
	default:
		return spirv.NewErrorId(spirv.UnsupportedOpcode, rec.Op, resID, "OpConstantNull of this type is not supported")
	}
}

// specOverride consults the specialization-info provider for the SpecId
// decorating resID (spec.md §4.1.3, §6).
func (t *Translator) specOverride(resID spirv.SpvId) (uint64, bool) {
	if t.state.SpecInfo == nil {
		return 0, false
	}
	d, ok := t.state.firstDecoration(resID, spirv.DecorationSpecId)
	if !ok || len(d.Operands) == 0 {
		return 0, false
	}
	return t.state.SpecInfo.SpecConstantOverride(d.Operands[0])
}

func (t *Translator) translateSpecConstantBool(rec spirv.OpcodeRecord) error {
	tyID, resID := rec.Id(0), rec.Id(1)
	ty, err := t.state.requireType(tyID)
	if err != nil {
		return err
	}
	v := rec.Op == spirv.OpSpecConstantTrue
	if raw, ok := t.specOverride(resID); ok {
		v = raw != 0
	}
	specID, hasID := t.specIDOf(resID)
	t.bindConst(rec, tyID, resID, t.builder.SpecConstant(ty, llir.BoolConst{Value: v}, specID, hasID))
	return nil
}

func (t *Translator) specIDOf(resID spirv.SpvId) (uint32, bool) {
	d, ok := t.state.firstDecoration(resID, spirv.DecorationSpecId)
	if !ok || len(d.Operands) == 0 {
		return 0, false
	}
	return d.Operands[0], true
}

func (t *Translator) translateSpecConstant(rec spirv.OpcodeRecord) error {
	tyID, resID := rec.Id(0), rec.Id(1)
	ty, err := t.state.requireType(tyID)
	if err != nil {
		return err
	}
	specID, hasID := t.specIDOf(resID)

	switch inner := t.builder.Type(ty).Inner.(type) {
	case llir.IntType:
		bits := literalBits(rec, 2, inner.Width)
		if raw, ok := t.specOverride(resID); ok {
			bits = raw
		}
		t.bindConst(rec, tyID, resID, t.builder.SpecConstant(ty, llir.IntConst{Bits: bits}, specID, hasID))
		return nil
	case llir.FloatType:
		bits := literalBits(rec, 2, inner.Width)
		if raw, ok := t.specOverride(resID); ok {
			bits = raw
		}
		t.bindConst(rec, tyID, resID, t.builder.SpecConstant(ty, llir.FloatConst{Bits: bits}, specID, hasID))
		return nil
	default:
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, resID, "OpSpecConstant result type is not a scalar")
	}
}

// translateSpecConstantOp executes the inner opcode over already-
// resolved constant operands; all-integer operand sets fold eagerly,
// anything else is carried symbolically as a spec-constant-op constant.
// OpFRem/OpFMod need a function-scope builtin call and are deferred to
// the first basic block of a function (spec.md §4.5).
func (t *Translator) translateSpecConstantOp(rec spirv.OpcodeRecord) error {
	tyID, resID := rec.Id(0), rec.Id(1)
	ty, err := t.state.requireType(tyID)
	if err != nil {
		return err
	}
	inner := spirv.Opcode(rec.MustWord(2))

	if inner == spirv.OpFRem || inner == spirv.OpFMod {
		t.deferredSpecOps = append(t.deferredSpecOps, deferredSpecOp{Rec: rec})
		t.state.deferredSpecConstantOps = append(t.state.deferredSpecConstantOps, resID)
		return nil
	}

	if !specConstantOpSupported(inner) {
		return spirv.NewErrorf(spirv.UnsupportedOpcode, rec.Op, "inner opcode %s is not valid in OpSpecConstantOp", inner)
	}

	operands := make([]llir.ConstHandle, 0, rec.Len()-3)
	for i := 3; i < rec.Len(); i++ {
		// Composite-manipulation inner opcodes carry literal indices
		// after their constant operands; those stay in the symbolic
		// representation's operand list as i32 constants.
		if c, ok := t.constOf(rec.Id(i)); ok {
			operands = append(operands, c)
		} else {
			i32 := t.builder.IntType(32, false)
			operands = append(operands, t.builder.IntConstant(i32, uint64(rec.MustWord(i))))
		}
	}

	if folded, ok := t.foldSpecConstantOp(ty, inner, operands); ok {
		t.bindConst(rec, tyID, resID, folded)
		return nil
	}
	t.bindConst(rec, tyID, resID, t.builder.SpecConstantOp(ty, uint16(inner), operands))
	return nil
}

func specConstantOpSupported(op spirv.Opcode) bool {
	switch op {
	case spirv.OpSNegate, spirv.OpNot, spirv.OpIAdd, spirv.OpISub, spirv.OpIMul,
		spirv.OpUDiv, spirv.OpSDiv, spirv.OpUMod, spirv.OpSRem, spirv.OpSMod,
		spirv.OpShiftRightLogical, spirv.OpShiftRightArithmetic, spirv.OpShiftLeftLogical,
		spirv.OpBitwiseOr, spirv.OpBitwiseXor, spirv.OpBitwiseAnd,
		spirv.OpLogicalOr, spirv.OpLogicalAnd, spirv.OpLogicalNot,
		spirv.OpLogicalEqual, spirv.OpLogicalNotEqual,
		spirv.OpIEqual, spirv.OpINotEqual,
		spirv.OpULessThan, spirv.OpSLessThan, spirv.OpUGreaterThan, spirv.OpSGreaterThan,
		spirv.OpULessThanEqual, spirv.OpSLessThanEqual,
		spirv.OpUGreaterThanEqual, spirv.OpSGreaterThanEqual,
		spirv.OpSelect, spirv.OpConvertFToU, spirv.OpConvertFToS,
		spirv.OpConvertSToF, spirv.OpConvertUToF, spirv.OpUConvert, spirv.OpSConvert,
		spirv.OpFConvert, spirv.OpConvertPtrToU, spirv.OpConvertUToPtr, spirv.OpBitcast,
		spirv.OpQuantizeToF16, spirv.OpFNegate, spirv.OpFAdd, spirv.OpFSub,
		spirv.OpFMul, spirv.OpFDiv,
		spirv.OpVectorShuffle, spirv.OpCompositeExtract, spirv.OpCompositeInsert,
		spirv.OpAccessChain, spirv.OpInBoundsAccessChain,
		spirv.OpPtrAccessChain, spirv.OpInBoundsPtrAccessChain:
		return true
	default:
		return false
	}
}

// foldSpecConstantOp evaluates the integer/boolean subset eagerly.
func (t *Translator) foldSpecConstantOp(ty llir.TypeHandle, op spirv.Opcode, operands []llir.ConstHandle) (llir.ConstHandle, bool) {
	vals := make([]uint64, len(operands))
	for i, c := range operands {
		bits, ok := constIntBits(t.builder.Const(c).Value)
		if !ok {
			return 0, false
		}
		vals[i] = bits
	}
	width, ok := t.intWidth(ty)
	if !ok {
		return 0, false
	}
	mask := ^uint64(0)
	if width < 64 {
		mask = (uint64(1) << width) - 1
	}
	sext := func(v uint64) int64 {
		shift := 64 - uint(width)
		return int64(v<<shift) >> shift
	}
	boolBit := func(b bool) uint64 {
		if b {
			return 1
		}
		return 0
	}

	var r uint64
	switch {
	case op == spirv.OpSNegate && len(vals) == 1:
		r = uint64(-sext(vals[0]))
	case op == spirv.OpNot && len(vals) == 1:
		r = ^vals[0]
	case op == spirv.OpLogicalNot && len(vals) == 1:
		r = boolBit(vals[0] == 0)
	case len(vals) == 2:
		a, b := vals[0], vals[1]
		switch op {
		case spirv.OpIAdd:
			r = a + b
		case spirv.OpISub:
			r = a - b
		case spirv.OpIMul:
			r = a * b
		case spirv.OpUDiv:
			if b == 0 {
				return 0, false
			}
			r = (a & mask) / (b & mask)
		case spirv.OpSDiv:
			if b == 0 {
				return 0, false
			}
			r = uint64(sext(a) / sext(b))
		case spirv.OpUMod:
			if b == 0 {
				return 0, false
			}
			r = (a & mask) % (b & mask)
		case spirv.OpSRem:
			if b == 0 {
				return 0, false
			}
			r = uint64(sext(a) % sext(b))
		case spirv.OpShiftLeftLogical:
			r = a << (b & 63)
		case spirv.OpShiftRightLogical:
			r = (a & mask) >> (b & 63)
		case spirv.OpShiftRightArithmetic:
			r = uint64(sext(a) >> (b & 63))
		case spirv.OpBitwiseAnd, spirv.OpLogicalAnd:
			r = a & b
		case spirv.OpBitwiseOr, spirv.OpLogicalOr:
			r = a | b
		case spirv.OpBitwiseXor:
			r = a ^ b
		case spirv.OpIEqual, spirv.OpLogicalEqual:
			r = boolBit(a&mask == b&mask)
		case spirv.OpINotEqual, spirv.OpLogicalNotEqual:
			r = boolBit(a&mask != b&mask)
		case spirv.OpULessThan:
			r = boolBit(a&mask < b&mask)
		case spirv.OpUGreaterThan:
			r = boolBit(a&mask > b&mask)
		case spirv.OpULessThanEqual:
			r = boolBit(a&mask <= b&mask)
		case spirv.OpUGreaterThanEqual:
			r = boolBit(a&mask >= b&mask)
		case spirv.OpSLessThan:
			r = boolBit(sext(a) < sext(b))
		case spirv.OpSGreaterThan:
			r = boolBit(sext(a) > sext(b))
		case spirv.OpSLessThanEqual:
			r = boolBit(sext(a) <= sext(b))
		case spirv.OpSGreaterThanEqual:
			r = boolBit(sext(a) >= sext(b))
		default:
			return 0, false
		}
	case op == spirv.OpSelect && len(vals) == 3:
		if vals[0] != 0 {
			r = vals[1]
		} else {
			r = vals[2]
		}
	default:
		return 0, false
	}

	if width == 1 {
		return t.builder.BoolConstant(ty, r&1 != 0), true
	}
	return t.builder.IntConstant(ty, r&mask), true
}

// drainDeferredSpecOps materializes the queued OpFRem/OpFMod spec-ops as
// instructions at the top of the first basic block (spec.md §4.5).
func (t *Translator) drainDeferredSpecOps() error {
	if t.deferredDrained || len(t.deferredSpecOps) == 0 {
		t.deferredDrained = true
		return nil
	}
	t.deferredDrained = true
	for _, d := range t.deferredSpecOps {
		rec := d.Rec
		tyID, resID := rec.Id(0), rec.Id(1)
		inner := spirv.Opcode(rec.MustWord(2))
		ty, err := t.state.requireType(tyID)
		if err != nil {
			return err
		}
		a, err := t.value(rec.Id(3))
		if err != nil {
			return err
		}
		b, err := t.value(rec.Id(4))
		if err != nil {
			return err
		}
		var v llir.ValueHandle
		if inner == spirv.OpFRem {
			v, err = t.emitFRem(ty, a, b)
		} else {
			v, err = t.emitFMod(ty, a, b)
		}
		if err != nil {
			return err
		}
		t.bindValue(rec, tyID, resID, v)
	}
	t.deferredSpecOps = nil
	return nil
}
