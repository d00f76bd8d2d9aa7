package translator

import "github.com/oneapi-go/spirv-ll/spirv"

// The classification functions below partition the opcode space the way
// spec.md §4.1's subsections do, so translator.go's dispatch switch reads
// as one family lookup per opcode rather than one giant flat switch.

func isMetadataOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpNop, spirv.OpSourceExtension, spirv.OpModuleProcessed,
		spirv.OpMemberName, spirv.OpDecorationGroup, spirv.OpSelectionMerge,
		spirv.OpSource, spirv.OpSourceContinued, spirv.OpName, spirv.OpString,
		spirv.OpExtension, spirv.OpCapability, spirv.OpExtInstImport, spirv.OpExtInst,
		spirv.OpDecorate, spirv.OpMemberDecorate, spirv.OpGroupDecorate,
		spirv.OpGroupMemberDecorate, spirv.OpMemoryModel, spirv.OpEntryPoint,
		spirv.OpExecutionMode:
		return true
	default:
		return false
	}
}

func isTypeOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpTypeVoid, spirv.OpTypeBool, spirv.OpTypeInt, spirv.OpTypeFloat,
		spirv.OpTypeVector, spirv.OpTypeMatrix, spirv.OpTypeArray, spirv.OpTypeRuntimeArray,
		spirv.OpTypeFunction, spirv.OpTypePointer, spirv.OpTypeForwardPointer,
		spirv.OpTypeEvent, spirv.OpTypeImage, spirv.OpTypeSampler, spirv.OpTypeOpaque,
		spirv.OpTypeStruct, spirv.OpTypeSampledImage, spirv.OpTypeDeviceEvent,
		spirv.OpTypeQueue, spirv.OpTypeReserveId, spirv.OpTypePipe:
		return true
	default:
		return false
	}
}

func isConstantOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpConstantTrue, spirv.OpConstantFalse, spirv.OpConstant,
		spirv.OpConstantComposite, spirv.OpConstantSampler, spirv.OpConstantNull,
		spirv.OpSpecConstantTrue, spirv.OpSpecConstantFalse, spirv.OpSpecConstant,
		spirv.OpSpecConstantComposite, spirv.OpSpecConstantOp:
		return true
	default:
		return false
	}
}

func isFunctionOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpFunction, spirv.OpFunctionParameter, spirv.OpFunctionEnd, spirv.OpFunctionCall:
		return true
	default:
		return false
	}
}

func isMemoryOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpVariable, spirv.OpLoad, spirv.OpStore, spirv.OpCopyMemory,
		spirv.OpCopyMemorySized, spirv.OpAccessChain, spirv.OpInBoundsAccessChain,
		spirv.OpPtrAccessChain, spirv.OpInBoundsPtrAccessChain, spirv.OpArrayLength,
		spirv.OpCopyObject, spirv.OpGenericPtrMemSemantics, spirv.OpImageTexelPointer:
		return true
	default:
		return false
	}
}

func isControlFlowOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpLabel, spirv.OpBranch, spirv.OpBranchConditional, spirv.OpSwitch,
		spirv.OpLoopMerge, spirv.OpReturn, spirv.OpReturnValue, spirv.OpUnreachable,
		spirv.OpKill, spirv.OpPhi, spirv.OpLifetimeStart, spirv.OpLifetimeStop:
		return true
	default:
		return false
	}
}

func isAtomicOrGroupOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpControlBarrier, spirv.OpMemoryBarrier,
		spirv.OpAtomicLoad, spirv.OpAtomicStore, spirv.OpAtomicExchange,
		spirv.OpAtomicCompareExchange, spirv.OpAtomicCompareExchangeWeak,
		spirv.OpAtomicIIncrement, spirv.OpAtomicIDecrement,
		spirv.OpAtomicIAdd, spirv.OpAtomicISub, spirv.OpAtomicSMin, spirv.OpAtomicUMin,
		spirv.OpAtomicSMax, spirv.OpAtomicUMax, spirv.OpAtomicAnd, spirv.OpAtomicOr,
		spirv.OpAtomicXor, spirv.OpAtomicFlagTestAndSet, spirv.OpAtomicFlagClear,
		spirv.OpAtomicFMinEXT, spirv.OpAtomicFMaxEXT, spirv.OpAtomicFAddEXT,
		spirv.OpGroupAsyncCopy, spirv.OpGroupWaitEvents,
		spirv.OpGroupAll, spirv.OpGroupAny, spirv.OpGroupBroadcast,
		spirv.OpGroupIAdd, spirv.OpGroupFAdd, spirv.OpGroupFMin, spirv.OpGroupUMin,
		spirv.OpGroupSMin, spirv.OpGroupFMax, spirv.OpGroupUMax, spirv.OpGroupSMax,
		spirv.OpGroupIMulKHR, spirv.OpGroupFMulKHR,
		spirv.OpGroupBitwiseAndKHR, spirv.OpGroupBitwiseOrKHR, spirv.OpGroupBitwiseXorKHR,
		spirv.OpGroupLogicalAndKHR, spirv.OpGroupLogicalOrKHR, spirv.OpGroupLogicalXorKHR,
		spirv.OpSubgroupShuffleINTEL, spirv.OpSubgroupShuffleUpINTEL,
		spirv.OpSubgroupShuffleDownINTEL, spirv.OpSubgroupShuffleXorINTEL:
		return true
	default:
		return false
	}
}

func isCompositeOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpVectorExtractDynamic, spirv.OpVectorInsertDynamic, spirv.OpVectorShuffle,
		spirv.OpCompositeConstruct, spirv.OpCompositeExtract, spirv.OpCompositeInsert:
		return true
	default:
		return false
	}
}

func isImageOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpSampledImage, spirv.OpImageSampleExplicitLod, spirv.OpImageRead,
		spirv.OpImageWrite, spirv.OpImage, spirv.OpImageQueryFormat, spirv.OpImageQueryOrder,
		spirv.OpImageQuerySizeLod, spirv.OpImageQuerySize, spirv.OpImageQueryLod,
		spirv.OpImageQueryLevels, spirv.OpImageQuerySamples:
		return true
	default:
		return spirv.ShaderOnlyOpcodes[op]
	}
}

func isDebugOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpLine, spirv.OpNoLine:
		return true
	default:
		return false
	}
}

func isArithOpcode(op spirv.Opcode) bool {
	switch op {
	case spirv.OpSNegate, spirv.OpFNegate, spirv.OpIAdd, spirv.OpFAdd, spirv.OpISub,
		spirv.OpFSub, spirv.OpIMul, spirv.OpFMul, spirv.OpUDiv, spirv.OpSDiv, spirv.OpFDiv,
		spirv.OpUMod, spirv.OpSRem, spirv.OpSMod, spirv.OpFRem, spirv.OpFMod,
		spirv.OpVectorTimesScalar, spirv.OpMatrixTimesScalar, spirv.OpVectorTimesMatrix,
		spirv.OpMatrixTimesVector, spirv.OpMatrixTimesMatrix, spirv.OpOuterProduct, spirv.OpDot,
		spirv.OpIAddCarry, spirv.OpISubBorrow, spirv.OpUMulExtended, spirv.OpSMulExtended,
		spirv.OpAny, spirv.OpAll, spirv.OpIsNan, spirv.OpIsInf, spirv.OpIsFinite,
		spirv.OpIsNormal, spirv.OpSignBitSet, spirv.OpLessOrGreater, spirv.OpOrdered, spirv.OpUnordered,
		spirv.OpLogicalEqual, spirv.OpLogicalNotEqual, spirv.OpLogicalOr, spirv.OpLogicalAnd, spirv.OpLogicalNot,
		spirv.OpSelect, spirv.OpIEqual, spirv.OpINotEqual, spirv.OpUGreaterThan, spirv.OpSGreaterThan,
		spirv.OpUGreaterThanEqual, spirv.OpSGreaterThanEqual, spirv.OpULessThan, spirv.OpSLessThan,
		spirv.OpULessThanEqual, spirv.OpSLessThanEqual,
		spirv.OpFOrdEqual, spirv.OpFUnordEqual, spirv.OpFOrdNotEqual, spirv.OpFUnordNotEqual,
		spirv.OpFOrdLessThan, spirv.OpFUnordLessThan, spirv.OpFOrdGreaterThan, spirv.OpFUnordGreaterThan,
		spirv.OpFOrdLessThanEqual, spirv.OpFUnordLessThanEqual, spirv.OpFOrdGreaterThanEqual, spirv.OpFUnordGreaterThanEqual,
		spirv.OpShiftRightLogical, spirv.OpShiftRightArithmetic, spirv.OpShiftLeftLogical,
		spirv.OpBitwiseOr, spirv.OpBitwiseXor, spirv.OpBitwiseAnd, spirv.OpNot,
		spirv.OpBitFieldInsert, spirv.OpBitFieldSExtract, spirv.OpBitFieldUExtract,
		spirv.OpBitReverse, spirv.OpBitCount,
		spirv.OpConvertFToU, spirv.OpConvertFToS, spirv.OpConvertSToF, spirv.OpConvertUToF,
		spirv.OpUConvert, spirv.OpSConvert, spirv.OpFConvert, spirv.OpQuantizeToF16,
		spirv.OpConvertPtrToU, spirv.OpSatConvertSToU, spirv.OpSatConvertUToS, spirv.OpConvertUToPtr,
		spirv.OpPtrCastToGeneric, spirv.OpGenericCastToPtr, spirv.OpGenericCastToPtrExplicit,
		spirv.OpBitcast, spirv.OpTranspose:
		return true
	default:
		return false
	}
}
