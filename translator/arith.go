package translator

import (
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// translateArith implements spec.md §4.1.6: the arithmetic, bitwise,
// logical, comparison, and conversion table.
func (t *Translator) translateArith(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	// Unary.
	case spirv.OpSNegate:
		return t.emitUnary(rec, llir.OpNeg)
	case spirv.OpFNegate:
		return t.emitUnary(rec, llir.OpFNeg)
	case spirv.OpNot, spirv.OpLogicalNot:
		return t.emitUnary(rec, llir.OpNot)

	// Integer arithmetic; NoSignedWrap/NoUnsignedWrap decorations are
	// honored on add/sub/mul/shl.
	case spirv.OpIAdd:
		return t.emitBinary(rec, llir.OpAdd, true)
	case spirv.OpISub:
		return t.emitBinary(rec, llir.OpSub, true)
	case spirv.OpIMul:
		return t.emitBinary(rec, llir.OpMul, true)
	case spirv.OpUDiv:
		return t.emitBinary(rec, llir.OpUDiv, false)
	case spirv.OpSDiv:
		return t.emitBinary(rec, llir.OpSDiv, false)
	case spirv.OpUMod:
		return t.emitBinary(rec, llir.OpURem, false)
	case spirv.OpSRem:
		return t.emitBinary(rec, llir.OpSRem, false)
	case spirv.OpSMod:
		return t.translateSMod(rec)

	// Float arithmetic.
	case spirv.OpFAdd:
		return t.emitBinary(rec, llir.OpFAdd, false)
	case spirv.OpFSub:
		return t.emitBinary(rec, llir.OpFSub, false)
	case spirv.OpFMul:
		return t.emitBinary(rec, llir.OpFMul, false)
	case spirv.OpFDiv:
		return t.emitBinary(rec, llir.OpFDiv, false)
	case spirv.OpFRem, spirv.OpFMod:
		return t.translateFRemMod(rec)

	// Shifts.
	case spirv.OpShiftRightLogical:
		return t.emitBinary(rec, llir.OpLShr, false)
	case spirv.OpShiftRightArithmetic:
		return t.emitBinary(rec, llir.OpAShr, false)
	case spirv.OpShiftLeftLogical:
		return t.emitBinary(rec, llir.OpShl, true)

	// Bitwise and logical (logical ops operate on i1 shapes).
	case spirv.OpBitwiseOr, spirv.OpLogicalOr:
		return t.emitBinary(rec, llir.OpOr, false)
	case spirv.OpBitwiseXor:
		return t.emitBinary(rec, llir.OpXor, false)
	case spirv.OpBitwiseAnd, spirv.OpLogicalAnd:
		return t.emitBinary(rec, llir.OpAnd, false)
	case spirv.OpLogicalEqual:
		return t.emitBinary(rec, llir.OpICmpEq, false)
	case spirv.OpLogicalNotEqual:
		return t.emitBinary(rec, llir.OpICmpNe, false)

	// Integer comparisons.
	case spirv.OpIEqual:
		return t.emitBinary(rec, llir.OpICmpEq, false)
	case spirv.OpINotEqual:
		return t.emitBinary(rec, llir.OpICmpNe, false)
	case spirv.OpUGreaterThan:
		return t.emitBinary(rec, llir.OpICmpUGT, false)
	case spirv.OpSGreaterThan:
		return t.emitBinary(rec, llir.OpICmpSGT, false)
	case spirv.OpUGreaterThanEqual:
		return t.emitBinary(rec, llir.OpICmpUGE, false)
	case spirv.OpSGreaterThanEqual:
		return t.emitBinary(rec, llir.OpICmpSGE, false)
	case spirv.OpULessThan:
		return t.emitBinary(rec, llir.OpICmpULT, false)
	case spirv.OpSLessThan:
		return t.emitBinary(rec, llir.OpICmpSLT, false)
	case spirv.OpULessThanEqual:
		return t.emitBinary(rec, llir.OpICmpULE, false)
	case spirv.OpSLessThanEqual:
		return t.emitBinary(rec, llir.OpICmpSLE, false)

	// Float comparisons.
	case spirv.OpFOrdEqual:
		return t.emitBinary(rec, llir.OpFCmpOEQ, false)
	case spirv.OpFUnordEqual:
		return t.emitBinary(rec, llir.OpFCmpUEQ, false)
	case spirv.OpFOrdNotEqual:
		return t.emitBinary(rec, llir.OpFCmpONE, false)
	case spirv.OpFUnordNotEqual:
		return t.emitBinary(rec, llir.OpFCmpUNE, false)
	case spirv.OpFOrdLessThan, spirv.OpFUnordLessThan:
		return t.emitBinary(rec, llir.OpFCmpOLT, false)
	case spirv.OpFOrdGreaterThan, spirv.OpFUnordGreaterThan:
		return t.emitBinary(rec, llir.OpFCmpOGT, false)
	case spirv.OpFOrdLessThanEqual, spirv.OpFUnordLessThanEqual:
		return t.emitBinary(rec, llir.OpFCmpOLE, false)
	case spirv.OpFOrdGreaterThanEqual, spirv.OpFUnordGreaterThanEqual:
		return t.emitBinary(rec, llir.OpFCmpOGE, false)

	case spirv.OpSelect:
		return t.translateSelect(rec)

	// Relational builtins.
	case spirv.OpIsNan:
		return t.translateRelational(rec, "isnan")
	case spirv.OpIsInf:
		return t.translateRelational(rec, "isinf")
	case spirv.OpIsFinite:
		return t.translateRelational(rec, "isfinite")
	case spirv.OpIsNormal:
		return t.translateRelational(rec, "isnormal")
	case spirv.OpSignBitSet:
		return t.translateRelational(rec, "signbit")
	case spirv.OpLessOrGreater:
		return t.translateRelational(rec, "islessgreater")
	case spirv.OpOrdered:
		return t.translateRelational(rec, "isordered")
	case spirv.OpUnordered:
		return t.translateRelational(rec, "isunordered")

	case spirv.OpAny:
		return t.translateAnyAll(rec, "any")
	case spirv.OpAll:
		return t.translateAnyAll(rec, "all")

	// Extended-precision arithmetic.
	case spirv.OpIAddCarry:
		return t.translateCarryBorrow(rec, "llvm.uadd.with.overflow", llir.OpAdd)
	case spirv.OpISubBorrow:
		return t.translateCarryBorrow(rec, "llvm.usub.with.overflow", llir.OpSub)
	case spirv.OpUMulExtended, spirv.OpSMulExtended:
		return t.translateMulExtended(rec)

	// Bit manipulation.
	case spirv.OpBitFieldInsert:
		return t.translateBitFieldInsert(rec)
	case spirv.OpBitFieldSExtract:
		return t.translateBitFieldExtract(rec, true)
	case spirv.OpBitFieldUExtract:
		return t.translateBitFieldExtract(rec, false)
	case spirv.OpBitCount:
		return t.translateBitCount(rec)
	case spirv.OpBitReverse:
		// Recognized, not implemented at this level.
		t.bindMarker(rec, rec.Id(1))
		return nil

	// Vector/matrix algebra.
	case spirv.OpVectorTimesScalar:
		return t.translateVectorTimesScalar(rec)
	case spirv.OpDot:
		return t.translateDot(rec)
	case spirv.OpMatrixTimesScalar, spirv.OpVectorTimesMatrix, spirv.OpMatrixTimesVector,
		spirv.OpMatrixTimesMatrix, spirv.OpOuterProduct, spirv.OpTranspose:
		// Matrix algebra is recognized but produces no IR at this level.
		t.bindMarker(rec, rec.Id(1))
		return nil

	// Conversions.
	case spirv.OpSConvert:
		return t.translateIntConvert(rec, true)
	case spirv.OpUConvert:
		return t.translateIntConvert(rec, false)
	case spirv.OpFConvert:
		return t.translateConvertBuiltin(rec, "", nil)
	case spirv.OpConvertFToU:
		return t.translateConvertBuiltin(rec, "", forceUnsigned)
	case spirv.OpConvertFToS:
		return t.translateConvertBuiltin(rec, "", forceSigned)
	case spirv.OpConvertSToF:
		return t.translateConvertBuiltin(rec, "", forceSigned)
	case spirv.OpConvertUToF:
		return t.translateConvertBuiltin(rec, "", forceUnsigned)
	case spirv.OpSatConvertSToU:
		return t.translateConvertBuiltin(rec, "_sat", forceSigned)
	case spirv.OpSatConvertUToS:
		return t.translateConvertBuiltin(rec, "_sat", forceUnsigned)
	case spirv.OpQuantizeToF16:
		return t.translateQuantize(rec)
	case spirv.OpConvertPtrToU:
		return t.emitCast(rec, llir.OpPtrToInt)
	case spirv.OpConvertUToPtr:
		return t.emitCast(rec, llir.OpIntToPtr)
	case spirv.OpBitcast, spirv.OpPtrCastToGeneric, spirv.OpGenericCastToPtr,
		spirv.OpGenericCastToPtrExplicit:
		// Address-space transitions in both directions are plain pointer
		// casts at this level.
		return t.emitCast(rec, llir.OpBitcast)

	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable arithmetic dispatch")
	}
}

func (t *Translator) emitUnary(rec spirv.OpcodeRecord, op llir.Op) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	a, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	v, err := t.appendInst(llir.Instruction{Op: op, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{a}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) emitBinary(rec spirv.OpcodeRecord, op llir.Op, wrapDecorations bool) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	a, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	b, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	inst := llir.Instruction{Op: op, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{a, b}}
	if wrapDecorations {
		inst.NoSignedWrap = t.state.hasDecoration(resID, spirv.DecorationNoSignedWrap)
		inst.NoUnsignedWrap = t.state.hasDecoration(resID, spirv.DecorationNoUnsignedWrap)
	}
	v, err := t.appendInst(inst)
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) emitCast(rec spirv.OpcodeRecord, op llir.Op) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	a, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	v, err := t.appendInst(llir.Instruction{Op: op, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{a}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// translateSMod computes a sign-following modulo from srem: the
// remainder is adjusted by the divisor when the signs disagree.
func (t *Translator) translateSMod(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	a, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	b, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	rem, err := t.appendInst(llir.Instruction{Op: llir.OpSRem, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{a, b}})
	if err != nil {
		return err
	}
	adjusted, err := t.appendInst(llir.Instruction{Op: llir.OpAdd, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{rem, b}})
	if err != nil {
		return err
	}
	boolTy := t.boolShapeOf(resTy)
	zero := t.zeroOf(resTy)
	xor, err := t.appendInst(llir.Instruction{Op: llir.OpXor, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{a, b}})
	if err != nil {
		return err
	}
	signsDiffer, err := t.appendInst(llir.Instruction{Op: llir.OpICmpSLT, HasResult: true, Type: boolTy, Operands: []llir.ValueHandle{xor, zero}})
	if err != nil {
		return err
	}
	remNonZero, err := t.appendInst(llir.Instruction{Op: llir.OpICmpNe, HasResult: true, Type: boolTy, Operands: []llir.ValueHandle{rem, zero}})
	if err != nil {
		return err
	}
	needFix, err := t.appendInst(llir.Instruction{Op: llir.OpAnd, HasResult: true, Type: boolTy, Operands: []llir.ValueHandle{signsDiffer, remNonZero}})
	if err != nil {
		return err
	}
	v, err := t.appendInst(llir.Instruction{Op: llir.OpSelect, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{needFix, adjusted, rem}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// translateFRemMod lowers float remainders through the fmod builtin;
// OpFMod additionally sign-corrects toward the divisor via copysign.
func (t *Translator) translateFRemMod(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	a, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	b, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	var v llir.ValueHandle
	if rec.Op == spirv.OpFRem {
		v, err = t.emitFRem(resTy, a, b)
	} else {
		v, err = t.emitFMod(resTy, a, b)
	}
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) emitFRem(ty llir.TypeHandle, a, b llir.ValueHandle) (llir.ValueHandle, error) {
	at := t.argTypeOf(ty, nil, false)
	return t.callBuiltin(ty, true, "fmod", []mangler.ArgType{at, at}, []llir.ValueHandle{a, b})
}

func (t *Translator) emitFMod(ty llir.TypeHandle, a, b llir.ValueHandle) (llir.ValueHandle, error) {
	r, err := t.emitFRem(ty, a, b)
	if err != nil {
		return 0, err
	}
	at := t.argTypeOf(ty, nil, false)
	return t.callBuiltin(ty, true, "copysign", []mangler.ArgType{at, at}, []llir.ValueHandle{r, b})
}

func (t *Translator) translateSelect(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	cond, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	tv, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	fv, err := t.value(rec.Id(4))
	if err != nil {
		return err
	}
	v, err := t.appendInst(llir.Instruction{Op: llir.OpSelect, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{cond, tv, fv}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// i32ShapeOf maps a bool shape to the i32 shape the relational builtins
// return (scalar i32, or a vector of i32 with matching lane count).
func (t *Translator) i32ShapeOf(ty llir.TypeHandle) llir.TypeHandle {
	i32 := t.builder.IntType(32, true)
	if _, count := t.scalarOf(ty); count > 0 {
		return t.builder.VectorType(i32, count)
	}
	return i32
}

// boolShapeOf maps any scalar/vector type to its i1 counterpart.
func (t *Translator) boolShapeOf(ty llir.TypeHandle) llir.TypeHandle {
	i1 := t.builder.IntType(1, false)
	if _, count := t.scalarOf(ty); count > 0 {
		return t.builder.VectorType(i1, count)
	}
	return i1
}

// zeroOf returns the zero constant of a scalar/vector integer type.
func (t *Translator) zeroOf(ty llir.TypeHandle) llir.ValueHandle {
	return llir.ConstValue(t.builder.NullConstant(ty))
}

// translateRelational calls the matching math builtin with the result
// shape mangled as signed i32s, then truncates back to the bool shape
// (spec.md §4.1.6).
func (t *Translator) translateRelational(rec spirv.OpcodeRecord, base string) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	args, err := t.values(rec, 2)
	if err != nil {
		return err
	}
	argTypes := make([]mangler.ArgType, len(args))
	for i := 2; i < rec.Len(); i++ {
		ty, err := t.valueType(rec.Id(i))
		if err != nil {
			return err
		}
		argTypes[i-2] = t.argTypeOf(ty, forceSigned, false)
	}
	wide := t.i32ShapeOf(resTy)
	v, err := t.callBuiltin(wide, true, base, argTypes, args)
	if err != nil {
		return err
	}
	tr, err := t.appendInst(llir.Instruction{Op: llir.OpTrunc, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{v}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, tr)
	return nil
}

// translateAnyAll sign-extends the i1 vector to i32 lanes, calls the
// any/all builtin against that shape, and truncates back to i1 — the
// first of the two documented forced-shape mangling paths (spec.md §4.3).
func (t *Translator) translateAnyAll(rec spirv.OpcodeRecord, base string) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	src, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	srcTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	_, count := t.scalarOf(srcTy)
	i32 := t.builder.IntType(32, true)
	wideTy := i32
	var argType mangler.ArgType
	if count > 0 {
		wideTy = t.builder.VectorType(i32, count)
		argType = mangler.Vector(mangler.KindInt, 32, count)
	} else {
		argType = mangler.Int(32, true)
	}
	wide, err := t.appendInst(llir.Instruction{Op: llir.OpSExt, HasResult: true, Type: wideTy, Operands: []llir.ValueHandle{src}})
	if err != nil {
		return err
	}
	v, err := t.callBuiltin(i32, true, base, []mangler.ArgType{argType}, []llir.ValueHandle{wide})
	if err != nil {
		return err
	}
	tr, err := t.appendInst(llir.Instruction{Op: llir.OpTrunc, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{v}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, tr)
	return nil
}

// ensureOverflowIntrinsic declares llvm.u{add,sub}.with.overflow.iN on
// demand (spec.md §4.1.6) and returns its {iN, i1} result struct type.
func (t *Translator) ensureOverflowIntrinsic(base string, operandTy llir.TypeHandle) (string, llir.TypeHandle) {
	name := base + "." + t.muxTypeSuffix(operandTy)
	i1 := t.builder.IntType(1, false)
	retTy := t.builder.DeclareStructType("")
	t.builder.ResolveStructType(retTy, []llir.TypeHandle{operandTy, i1}, false)
	if _, ok := t.overflowIntrinsics[name]; !ok {
		fn := t.builder.BeginFunction(llir.Function{
			Name:          name,
			Conv:          llir.CallSPIRFunc,
			Linkage:       llir.LinkageExternal,
			RetType:       retTy,
			Params:        []llir.Param{{Type: operandTy}, {Type: operandTy}},
			IsDeclaration: true,
		})
		t.builder.EndFunction(fn)
		t.overflowIntrinsics[name] = fn
	}
	return name, retTy
}

// translateCarryBorrow lowers OpIAddCarry/OpISubBorrow through the
// overflow intrinsic, adapting the {iN, i1} return to the {iN, iN}
// convention by sign-extending the flag (spec.md §4.1.6).
func (t *Translator) translateCarryBorrow(rec spirv.OpcodeRecord, intrinsic string, _ llir.Op) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	st, ok := t.builder.Type(resTy).Inner.(llir.StructType)
	if !ok || len(st.Members) != 2 {
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, resID, "result type is not a two-member struct")
	}
	operandTy := st.Members[0]
	a, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	b, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	name, intrinsicRet := t.ensureOverflowIntrinsic(intrinsic, operandTy)
	pair, err := t.appendInst(llir.Instruction{
		Op: llir.OpCall, HasResult: true, Type: intrinsicRet,
		Callee: name, Operands: []llir.ValueHandle{a, b},
	})
	if err != nil {
		return err
	}
	val, err := t.appendInst(llir.Instruction{Op: llir.OpExtractValue, HasResult: true, Type: operandTy, Operands: []llir.ValueHandle{pair}, Indices: []uint32{0}})
	if err != nil {
		return err
	}
	i1 := t.builder.IntType(1, false)
	flag, err := t.appendInst(llir.Instruction{Op: llir.OpExtractValue, HasResult: true, Type: i1, Operands: []llir.ValueHandle{pair}, Indices: []uint32{1}})
	if err != nil {
		return err
	}
	wideFlag, err := t.appendInst(llir.Instruction{Op: llir.OpSExt, HasResult: true, Type: operandTy, Operands: []llir.ValueHandle{flag}})
	if err != nil {
		return err
	}
	seed := llir.ConstValue(t.builder.UndefConstant(resTy))
	s1, err := t.appendInst(llir.Instruction{Op: llir.OpInsertValue, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{seed, val}, Indices: []uint32{0}})
	if err != nil {
		return err
	}
	s2, err := t.appendInst(llir.Instruction{Op: llir.OpInsertValue, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{s1, wideFlag}, Indices: []uint32{1}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, s2)
	return nil
}

// translateMulExtended splits a plain multiply into low/high-order
// halves with bit masks; the full double-width product is not required
// at this level (spec.md §4.1.6).
func (t *Translator) translateMulExtended(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	st, ok := t.builder.Type(resTy).Inner.(llir.StructType)
	if !ok || len(st.Members) != 2 {
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, resID, "result type is not a two-member struct")
	}
	operandTy := st.Members[0]
	a, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	b, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	mul, err := t.appendInst(llir.Instruction{Op: llir.OpMul, HasResult: true, Type: operandTy, Operands: []llir.ValueHandle{a, b}})
	if err != nil {
		return err
	}
	width, _ := t.intWidth(operandTy)
	mask := (uint64(1) << (width / 2)) - 1
	loMask := llir.ConstValue(t.builder.IntConstant(operandTy, mask))
	hiMask := llir.ConstValue(t.builder.IntConstant(operandTy, ^mask))
	lo, err := t.appendInst(llir.Instruction{Op: llir.OpAnd, HasResult: true, Type: operandTy, Operands: []llir.ValueHandle{mul, loMask}})
	if err != nil {
		return err
	}
	hi, err := t.appendInst(llir.Instruction{Op: llir.OpAnd, HasResult: true, Type: operandTy, Operands: []llir.ValueHandle{mul, hiMask}})
	if err != nil {
		return err
	}
	seed := llir.ConstValue(t.builder.UndefConstant(resTy))
	s1, err := t.appendInst(llir.Instruction{Op: llir.OpInsertValue, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{seed, lo}, Indices: []uint32{0}})
	if err != nil {
		return err
	}
	s2, err := t.appendInst(llir.Instruction{Op: llir.OpInsertValue, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{s1, hi}, Indices: []uint32{1}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, s2)
	return nil
}

// splat broadcasts a scalar across a vector type's lanes.
func (t *Translator) splat(vecTy llir.TypeHandle, scalar llir.ValueHandle) (llir.ValueHandle, error) {
	vt, ok := t.builder.Type(vecTy).Inner.(llir.VectorType)
	if !ok {
		return scalar, nil
	}
	operands := make([]llir.ValueHandle, vt.Count)
	for i := range operands {
		operands[i] = scalar
	}
	return t.appendInst(llir.Instruction{Op: llir.OpCompositeConstruct, HasResult: true, Type: vecTy, Operands: operands})
}

func (t *Translator) translateVectorTimesScalar(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	vec, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	scalar, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	splatted, err := t.splat(resTy, scalar)
	if err != nil {
		return err
	}
	v, err := t.appendInst(llir.Instruction{Op: llir.OpFMul, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{vec, splatted}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateDot(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	a, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	b, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	aTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	at := t.argTypeOf(aTy, nil, false)
	v, err := t.callBuiltin(resTy, true, "dot", []mangler.ArgType{at, at}, []llir.ValueHandle{a, b})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// translateIntConvert handles SConvert/UConvert: widen with the matching
// extension, narrow with trunc, same width binds directly.
func (t *Translator) translateIntConvert(rec spirv.OpcodeRecord, signed bool) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	src, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	srcTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	dstW, ok1 := t.intWidth(resTy)
	srcW, ok2 := t.intWidth(srcTy)
	if !ok1 || !ok2 {
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, resID, "integer conversion on non-integer operands")
	}
	var op llir.Op
	switch {
	case dstW == srcW:
		t.bindTypedValue(rec, resTyID, resTy, resID, src)
		return nil
	case dstW < srcW:
		op = llir.OpTrunc
	case signed:
		op = llir.OpSExt
	default:
		op = llir.OpZExt
	}
	v, err := t.appendInst(llir.Instruction{Op: op, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{src}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// translateConvertBuiltin lowers the float/int conversion family through
// the convert_<type>[_sat] builtin, with the signedness hint applied to
// the integer side of the conversion (spec.md §4.1.6).
func (t *Translator) translateConvertBuiltin(rec spirv.OpcodeRecord, suffix string, hint *signHint) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	src, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	srcTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	base := "convert_" + t.openclTypeName(resTy) + suffix
	at := t.argTypeOf(srcTy, hint, false)
	v, err := t.callBuiltin(resTy, true, base, []mangler.ArgType{at}, []llir.ValueHandle{src})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateQuantize(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	src, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	at := t.argTypeOf(resTy, nil, false)
	v, err := t.callBuiltin(resTy, true, "quantizeToF16", []mangler.ArgType{at}, []llir.ValueHandle{src})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateBitCount(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	src, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	srcTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	at := t.argTypeOf(srcTy, nil, false)
	v, err := t.callBuiltin(resTy, true, "popcount", []mangler.ArgType{at}, []llir.ValueHandle{src})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// broadcastIfVector splats offset/count operands up to the base type's
// lane count for the vector bitfield forms (spec.md §4.1.6).
func (t *Translator) broadcastIfVector(baseTy llir.TypeHandle, v llir.ValueHandle, vTy llir.TypeHandle) (llir.ValueHandle, error) {
	if _, count := t.scalarOf(baseTy); count > 0 {
		if _, vCount := t.scalarOf(vTy); vCount == 0 {
			return t.splat(baseTy, v)
		}
	}
	return v, nil
}

func (t *Translator) translateBitFieldInsert(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	base, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	insert, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	offset, err := t.value(rec.Id(4))
	if err != nil {
		return err
	}
	count, err := t.value(rec.Id(5))
	if err != nil {
		return err
	}
	offTy, _ := t.valueType(rec.Id(4))
	cntTy, _ := t.valueType(rec.Id(5))
	if offset, err = t.broadcastIfVector(resTy, offset, offTy); err != nil {
		return err
	}
	if count, err = t.broadcastIfVector(resTy, count, cntTy); err != nil {
		return err
	}

	elemTy, lanes := t.scalarOf(resTy)
	oneV := llir.ValueHandle(llir.ConstValue(t.builder.IntConstant(elemTy, 1)))
	if lanes > 0 {
		if oneV, err = t.splat(resTy, oneV); err != nil {
			return err
		}
	}
	shifted, err := t.appendInst(llir.Instruction{Op: llir.OpShl, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{oneV, count}})
	if err != nil {
		return err
	}
	ones, err := t.appendInst(llir.Instruction{Op: llir.OpSub, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{shifted, oneV}})
	if err != nil {
		return err
	}
	mask, err := t.appendInst(llir.Instruction{Op: llir.OpShl, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{ones, offset}})
	if err != nil {
		return err
	}
	notMask, err := t.appendInst(llir.Instruction{Op: llir.OpNot, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{mask}})
	if err != nil {
		return err
	}
	cleared, err := t.appendInst(llir.Instruction{Op: llir.OpAnd, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{base, notMask}})
	if err != nil {
		return err
	}
	shiftedIns, err := t.appendInst(llir.Instruction{Op: llir.OpShl, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{insert, offset}})
	if err != nil {
		return err
	}
	maskedIns, err := t.appendInst(llir.Instruction{Op: llir.OpAnd, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{shiftedIns, mask}})
	if err != nil {
		return err
	}
	v, err := t.appendInst(llir.Instruction{Op: llir.OpOr, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{cleared, maskedIns}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateBitFieldExtract(rec spirv.OpcodeRecord, signed bool) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	base, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	offset, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	count, err := t.value(rec.Id(4))
	if err != nil {
		return err
	}
	offTy, _ := t.valueType(rec.Id(3))
	cntTy, _ := t.valueType(rec.Id(4))
	if offset, err = t.broadcastIfVector(resTy, offset, offTy); err != nil {
		return err
	}
	if count, err = t.broadcastIfVector(resTy, count, cntTy); err != nil {
		return err
	}

	elemTy, lanes := t.scalarOf(resTy)
	width, _ := t.intWidth(resTy)
	widthV := llir.ValueHandle(llir.ConstValue(t.builder.IntConstant(elemTy, uint64(width))))
	if lanes > 0 {
		if widthV, err = t.splat(resTy, widthV); err != nil {
			return err
		}
	}
	topBits, err := t.appendInst(llir.Instruction{Op: llir.OpAdd, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{offset, count}})
	if err != nil {
		return err
	}
	leftAmt, err := t.appendInst(llir.Instruction{Op: llir.OpSub, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{widthV, topBits}})
	if err != nil {
		return err
	}
	left, err := t.appendInst(llir.Instruction{Op: llir.OpShl, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{base, leftAmt}})
	if err != nil {
		return err
	}
	rightAmt, err := t.appendInst(llir.Instruction{Op: llir.OpSub, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{widthV, count}})
	if err != nil {
		return err
	}
	shiftOp := llir.OpLShr
	if signed {
		shiftOp = llir.OpAShr
	}
	v, err := t.appendInst(llir.Instruction{Op: shiftOp, HasResult: true, Type: resTy, Operands: []llir.ValueHandle{left, rightAmt}})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}
