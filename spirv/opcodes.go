package spirv

// Opcode numbers, grounded on the Khronos SPIR-V unified1 grammar. The
// table mirrors cmd/spvdis's disassembler lookup (package main in the
// teacher repo), promoted from untyped map[uint16]string debug labels to
// named Opcode constants so the dispatch core can switch on them directly
// instead of comparing against the name string.
const (
	OpNop               Opcode = 0
	OpUndef             Opcode = 1
	OpSourceContinued   Opcode = 2
	OpSource            Opcode = 3
	OpSourceExtension   Opcode = 4
	OpName              Opcode = 5
	OpMemberName        Opcode = 6
	OpString            Opcode = 7
	OpLine              Opcode = 8
	OpNoLine            Opcode = 317
	OpExtension         Opcode = 10
	OpExtInstImport     Opcode = 11
	OpExtInst           Opcode = 12
	OpMemoryModel       Opcode = 14
	OpEntryPoint        Opcode = 15
	OpExecutionMode     Opcode = 16
	OpCapability        Opcode = 17
	OpTypeVoid          Opcode = 19
	OpTypeBool          Opcode = 20
	OpTypeInt           Opcode = 21
	OpTypeFloat         Opcode = 22
	OpTypeVector        Opcode = 23
	OpTypeMatrix        Opcode = 24
	OpTypeImage         Opcode = 25
	OpTypeSampler       Opcode = 26
	OpTypeSampledImage  Opcode = 27
	OpTypeArray         Opcode = 28
	OpTypeRuntimeArray  Opcode = 29
	OpTypeStruct        Opcode = 30
	OpTypeOpaque        Opcode = 31
	OpTypePointer       Opcode = 32
	OpTypeFunction      Opcode = 33
	OpTypeEvent         Opcode = 34
	OpTypeDeviceEvent   Opcode = 35
	OpTypeReserveId     Opcode = 36
	OpTypeQueue         Opcode = 37
	OpTypePipe          Opcode = 38
	OpTypeForwardPointer Opcode = 39
	OpConstantTrue          Opcode = 41
	OpConstantFalse         Opcode = 42
	OpConstant              Opcode = 43
	OpConstantComposite     Opcode = 44
	OpConstantSampler       Opcode = 45
	OpConstantNull          Opcode = 46
	OpSpecConstantTrue      Opcode = 48
	OpSpecConstantFalse     Opcode = 49
	OpSpecConstant          Opcode = 50
	OpSpecConstantComposite Opcode = 51
	OpSpecConstantOp        Opcode = 52
	OpFunction          Opcode = 54
	OpFunctionParameter Opcode = 55
	OpFunctionEnd       Opcode = 56
	OpFunctionCall      Opcode = 57
	OpVariable               Opcode = 59
	OpImageTexelPointer      Opcode = 60
	OpLoad                   Opcode = 61
	OpStore                  Opcode = 62
	OpCopyMemory             Opcode = 63
	OpCopyMemorySized        Opcode = 64
	OpAccessChain            Opcode = 65
	OpInBoundsAccessChain    Opcode = 66
	OpPtrAccessChain         Opcode = 67
	OpArrayLength            Opcode = 68
	OpGenericPtrMemSemantics Opcode = 69
	OpInBoundsPtrAccessChain Opcode = 70
	OpDecorate               Opcode = 71
	OpMemberDecorate         Opcode = 72
	OpDecorationGroup        Opcode = 73
	OpGroupDecorate          Opcode = 74
	OpGroupMemberDecorate    Opcode = 75
	OpVectorExtractDynamic Opcode = 77
	OpVectorInsertDynamic  Opcode = 78
	OpVectorShuffle        Opcode = 79
	OpCompositeConstruct   Opcode = 80
	OpCompositeExtract     Opcode = 81
	OpCompositeInsert      Opcode = 82
	OpCopyObject           Opcode = 83
	OpTranspose            Opcode = 84
	OpSampledImage                   Opcode = 86
	OpImageSampleImplicitLod         Opcode = 87
	OpImageSampleExplicitLod         Opcode = 88
	OpImageSampleDrefImplicitLod     Opcode = 89
	OpImageSampleDrefExplicitLod     Opcode = 90
	OpImageSampleProjImplicitLod     Opcode = 91
	OpImageSampleProjExplicitLod     Opcode = 92
	OpImageSampleProjDrefImplicitLod Opcode = 93
	OpImageSampleProjDrefExplicitLod Opcode = 94
	OpImageFetch                     Opcode = 95
	OpImageGather                    Opcode = 96
	OpImageDrefGather                Opcode = 97
	OpImageRead                      Opcode = 98
	OpImageWrite                     Opcode = 99
	OpImage                          Opcode = 100
	OpImageQueryFormat               Opcode = 101
	OpImageQueryOrder                Opcode = 102
	OpImageQuerySizeLod              Opcode = 103
	OpImageQuerySize                 Opcode = 104
	OpImageQueryLod                  Opcode = 105
	OpImageQueryLevels               Opcode = 106
	OpImageQuerySamples              Opcode = 107
	OpConvertFToU          Opcode = 109
	OpConvertFToS          Opcode = 110
	OpConvertSToF          Opcode = 111
	OpConvertUToF          Opcode = 112
	OpUConvert             Opcode = 113
	OpSConvert             Opcode = 114
	OpFConvert             Opcode = 115
	OpQuantizeToF16        Opcode = 116
	OpConvertPtrToU        Opcode = 117
	OpSatConvertSToU       Opcode = 118
	OpSatConvertUToS       Opcode = 119
	OpConvertUToPtr        Opcode = 120
	OpPtrCastToGeneric     Opcode = 121
	OpGenericCastToPtr     Opcode = 122
	OpGenericCastToPtrExplicit Opcode = 123
	OpBitcast              Opcode = 124
	OpSNegate            Opcode = 126
	OpFNegate            Opcode = 127
	OpIAdd               Opcode = 128
	OpFAdd               Opcode = 129
	OpISub               Opcode = 130
	OpFSub               Opcode = 131
	OpIMul               Opcode = 132
	OpFMul               Opcode = 133
	OpUDiv               Opcode = 134
	OpSDiv               Opcode = 135
	OpFDiv               Opcode = 136
	OpUMod               Opcode = 137
	OpSRem               Opcode = 138
	OpSMod               Opcode = 139
	OpFRem               Opcode = 140
	OpFMod               Opcode = 141
	OpVectorTimesScalar  Opcode = 142
	OpMatrixTimesScalar  Opcode = 143
	OpVectorTimesMatrix  Opcode = 144
	OpMatrixTimesVector  Opcode = 145
	OpMatrixTimesMatrix  Opcode = 146
	OpOuterProduct       Opcode = 147
	OpDot                Opcode = 148
	OpIAddCarry          Opcode = 149
	OpISubBorrow         Opcode = 150
	OpUMulExtended       Opcode = 151
	OpSMulExtended       Opcode = 152
	OpAny                  Opcode = 154
	OpAll                  Opcode = 155
	OpIsNan                Opcode = 156
	OpIsInf                Opcode = 157
	OpIsFinite             Opcode = 158
	OpIsNormal             Opcode = 159
	OpSignBitSet           Opcode = 160
	OpLessOrGreater        Opcode = 161
	OpOrdered              Opcode = 162
	OpUnordered            Opcode = 163
	OpLogicalEqual         Opcode = 164
	OpLogicalNotEqual      Opcode = 165
	OpLogicalOr            Opcode = 166
	OpLogicalAnd           Opcode = 167
	OpLogicalNot           Opcode = 168
	OpSelect               Opcode = 169
	OpIEqual               Opcode = 170
	OpINotEqual            Opcode = 171
	OpUGreaterThan         Opcode = 172
	OpSGreaterThan         Opcode = 173
	OpUGreaterThanEqual    Opcode = 174
	OpSGreaterThanEqual    Opcode = 175
	OpULessThan            Opcode = 176
	OpSLessThan            Opcode = 177
	OpULessThanEqual       Opcode = 178
	OpSLessThanEqual       Opcode = 179
	OpFOrdEqual            Opcode = 180
	OpFUnordEqual          Opcode = 181
	OpFOrdNotEqual         Opcode = 182
	OpFUnordNotEqual       Opcode = 183
	OpFOrdLessThan         Opcode = 184
	OpFUnordLessThan       Opcode = 185
	OpFOrdGreaterThan      Opcode = 186
	OpFUnordGreaterThan    Opcode = 187
	OpFOrdLessThanEqual    Opcode = 188
	OpFUnordLessThanEqual  Opcode = 189
	OpFOrdGreaterThanEqual Opcode = 190
	OpFUnordGreaterThanEqual Opcode = 191
	OpShiftRightLogical    Opcode = 194
	OpShiftRightArithmetic Opcode = 195
	OpShiftLeftLogical     Opcode = 196
	OpBitwiseOr            Opcode = 197
	OpBitwiseXor           Opcode = 198
	OpBitwiseAnd           Opcode = 199
	OpNot                  Opcode = 200
	OpBitFieldInsert       Opcode = 201
	OpBitFieldSExtract     Opcode = 202
	OpBitFieldUExtract     Opcode = 203
	OpBitReverse           Opcode = 204
	OpBitCount             Opcode = 205
	OpDPdx         Opcode = 207
	OpDPdy         Opcode = 208
	OpFwidth       Opcode = 209
	OpDPdxFine     Opcode = 210
	OpDPdyFine     Opcode = 211
	OpFwidthFine   Opcode = 212
	OpDPdxCoarse   Opcode = 213
	OpDPdyCoarse   Opcode = 214
	OpFwidthCoarse Opcode = 215
	OpControlBarrier Opcode = 224
	OpMemoryBarrier  Opcode = 225
	OpAtomicLoad            Opcode = 227
	OpAtomicStore           Opcode = 228
	OpAtomicExchange        Opcode = 229
	OpAtomicCompareExchange Opcode = 230
	OpAtomicCompareExchangeWeak Opcode = 231
	OpAtomicIIncrement      Opcode = 232
	OpAtomicIDecrement      Opcode = 233
	OpAtomicIAdd            Opcode = 234
	OpAtomicISub            Opcode = 235
	OpAtomicSMin            Opcode = 236
	OpAtomicUMin            Opcode = 237
	OpAtomicSMax            Opcode = 238
	OpAtomicUMax            Opcode = 239
	OpAtomicAnd             Opcode = 240
	OpAtomicOr              Opcode = 241
	OpAtomicXor             Opcode = 242
	OpAtomicFlagTestAndSet  Opcode = 318
	OpAtomicFlagClear       Opcode = 319
	OpAtomicFMinEXT         Opcode = 5614
	OpAtomicFMaxEXT         Opcode = 5615
	OpAtomicFAddEXT         Opcode = 6035
	OpPhi               Opcode = 245
	OpLoopMerge         Opcode = 246
	OpSelectionMerge    Opcode = 247
	OpLabel             Opcode = 248
	OpBranch            Opcode = 249
	OpBranchConditional Opcode = 250
	OpSwitch            Opcode = 251
	OpKill              Opcode = 252
	OpReturn            Opcode = 253
	OpReturnValue       Opcode = 254
	OpUnreachable       Opcode = 255
	OpLifetimeStart     Opcode = 256
	OpLifetimeStop      Opcode = 257
	OpGroupAsyncCopy                Opcode = 259
	OpGroupWaitEvents               Opcode = 260
	OpGroupAll                      Opcode = 261
	OpGroupAny                      Opcode = 262
	OpGroupBroadcast                Opcode = 263
	OpGroupIAdd                     Opcode = 264
	OpGroupFAdd                     Opcode = 265
	OpGroupFMin                     Opcode = 266
	OpGroupUMin                     Opcode = 267
	OpGroupSMin                     Opcode = 268
	OpGroupFMax                     Opcode = 269
	OpGroupUMax                     Opcode = 270
	OpGroupSMax                     Opcode = 271
	OpReadPipe                      Opcode = 274
	OpWritePipe                     Opcode = 275
	OpModuleProcessed               Opcode = 330
	OpGroupNonUniformBallot         Opcode = 339
	OpSubgroupShuffleINTEL          Opcode = 5571
	OpSubgroupShuffleUpINTEL        Opcode = 5572
	OpSubgroupShuffleDownINTEL      Opcode = 5573
	OpSubgroupShuffleXorINTEL       Opcode = 5574
	OpGroupIMulKHR                  Opcode = 6401
	OpGroupFMulKHR                  Opcode = 6402
	OpGroupBitwiseAndKHR            Opcode = 6403
	OpGroupBitwiseOrKHR             Opcode = 6404
	OpGroupBitwiseXorKHR            Opcode = 6405
	OpGroupLogicalAndKHR            Opcode = 6406
	OpGroupLogicalOrKHR             Opcode = 6407
	OpGroupLogicalXorKHR            Opcode = 6408
)

// opcodeNames mirrors cmd/spvdis's opcodeNames lookup table, inverted from
// Opcode -> string so Opcode.Name() can render a human-readable message for
// error text (spec §7: "the offending opcode name").
var opcodeNames = map[Opcode]string{
	OpNop: "OpNop", OpUndef: "OpUndef", OpSourceContinued: "OpSourceContinued",
	OpSource: "OpSource", OpSourceExtension: "OpSourceExtension", OpName: "OpName",
	OpMemberName: "OpMemberName", OpString: "OpString", OpLine: "OpLine", OpNoLine: "OpNoLine",
	OpExtension: "OpExtension", OpExtInstImport: "OpExtInstImport", OpExtInst: "OpExtInst",
	OpMemoryModel: "OpMemoryModel", OpEntryPoint: "OpEntryPoint",
	OpExecutionMode: "OpExecutionMode", OpCapability: "OpCapability",
	OpTypeVoid: "OpTypeVoid", OpTypeBool: "OpTypeBool", OpTypeInt: "OpTypeInt",
	OpTypeFloat: "OpTypeFloat", OpTypeVector: "OpTypeVector", OpTypeMatrix: "OpTypeMatrix",
	OpTypeImage: "OpTypeImage", OpTypeSampler: "OpTypeSampler",
	OpTypeSampledImage: "OpTypeSampledImage", OpTypeArray: "OpTypeArray",
	OpTypeRuntimeArray: "OpTypeRuntimeArray", OpTypeStruct: "OpTypeStruct",
	OpTypeOpaque: "OpTypeOpaque", OpTypePointer: "OpTypePointer",
	OpTypeFunction: "OpTypeFunction", OpTypeEvent: "OpTypeEvent",
	OpTypeDeviceEvent: "OpTypeDeviceEvent", OpTypeReserveId: "OpTypeReserveId",
	OpTypeQueue: "OpTypeQueue", OpTypePipe: "OpTypePipe",
	OpTypeForwardPointer: "OpTypeForwardPointer",
	OpConstantTrue: "OpConstantTrue", OpConstantFalse: "OpConstantFalse",
	OpConstant: "OpConstant", OpConstantComposite: "OpConstantComposite",
	OpConstantSampler: "OpConstantSampler", OpConstantNull: "OpConstantNull",
	OpSpecConstantTrue: "OpSpecConstantTrue", OpSpecConstantFalse: "OpSpecConstantFalse",
	OpSpecConstant: "OpSpecConstant", OpSpecConstantComposite: "OpSpecConstantComposite",
	OpSpecConstantOp: "OpSpecConstantOp",
	OpFunction: "OpFunction", OpFunctionParameter: "OpFunctionParameter",
	OpFunctionEnd: "OpFunctionEnd", OpFunctionCall: "OpFunctionCall",
	OpVariable: "OpVariable", OpImageTexelPointer: "OpImageTexelPointer",
	OpLoad: "OpLoad", OpStore: "OpStore", OpCopyMemory: "OpCopyMemory",
	OpCopyMemorySized: "OpCopyMemorySized", OpAccessChain: "OpAccessChain",
	OpInBoundsAccessChain: "OpInBoundsAccessChain", OpPtrAccessChain: "OpPtrAccessChain",
	OpArrayLength: "OpArrayLength", OpGenericPtrMemSemantics: "OpGenericPtrMemSemantics",
	OpInBoundsPtrAccessChain: "OpInBoundsPtrAccessChain", OpDecorate: "OpDecorate",
	OpMemberDecorate: "OpMemberDecorate", OpDecorationGroup: "OpDecorationGroup",
	OpGroupDecorate: "OpGroupDecorate", OpGroupMemberDecorate: "OpGroupMemberDecorate",
	OpVectorExtractDynamic: "OpVectorExtractDynamic", OpVectorInsertDynamic: "OpVectorInsertDynamic",
	OpVectorShuffle: "OpVectorShuffle", OpCompositeConstruct: "OpCompositeConstruct",
	OpCompositeExtract: "OpCompositeExtract", OpCompositeInsert: "OpCompositeInsert",
	OpCopyObject: "OpCopyObject", OpTranspose: "OpTranspose",
	OpSampledImage: "OpSampledImage", OpImageSampleImplicitLod: "OpImageSampleImplicitLod",
	OpImageSampleExplicitLod: "OpImageSampleExplicitLod",
	OpImageSampleDrefImplicitLod: "OpImageSampleDrefImplicitLod",
	OpImageSampleDrefExplicitLod: "OpImageSampleDrefExplicitLod",
	OpImageSampleProjImplicitLod: "OpImageSampleProjImplicitLod",
	OpImageSampleProjExplicitLod: "OpImageSampleProjExplicitLod",
	OpImageSampleProjDrefImplicitLod: "OpImageSampleProjDrefImplicitLod",
	OpImageSampleProjDrefExplicitLod: "OpImageSampleProjDrefExplicitLod",
	OpImageFetch: "OpImageFetch", OpImageGather: "OpImageGather",
	OpImageDrefGather: "OpImageDrefGather", OpImageRead: "OpImageRead",
	OpImageWrite: "OpImageWrite", OpImage: "OpImage",
	OpImageQueryFormat: "OpImageQueryFormat", OpImageQueryOrder: "OpImageQueryOrder",
	OpImageQuerySizeLod: "OpImageQuerySizeLod", OpImageQuerySize: "OpImageQuerySize",
	OpImageQueryLod: "OpImageQueryLod", OpImageQueryLevels: "OpImageQueryLevels",
	OpImageQuerySamples: "OpImageQuerySamples",
	OpConvertFToU: "OpConvertFToU", OpConvertFToS: "OpConvertFToS",
	OpConvertSToF: "OpConvertSToF", OpConvertUToF: "OpConvertUToF",
	OpUConvert: "OpUConvert", OpSConvert: "OpSConvert", OpFConvert: "OpFConvert",
	OpQuantizeToF16: "OpQuantizeToF16", OpConvertPtrToU: "OpConvertPtrToU",
	OpSatConvertSToU: "OpSatConvertSToU", OpSatConvertUToS: "OpSatConvertUToS",
	OpConvertUToPtr: "OpConvertUToPtr", OpPtrCastToGeneric: "OpPtrCastToGeneric",
	OpGenericCastToPtr: "OpGenericCastToPtr",
	OpGenericCastToPtrExplicit: "OpGenericCastToPtrExplicit", OpBitcast: "OpBitcast",
	OpSNegate: "OpSNegate", OpFNegate: "OpFNegate", OpIAdd: "OpIAdd", OpFAdd: "OpFAdd",
	OpISub: "OpISub", OpFSub: "OpFSub", OpIMul: "OpIMul", OpFMul: "OpFMul",
	OpUDiv: "OpUDiv", OpSDiv: "OpSDiv", OpFDiv: "OpFDiv", OpUMod: "OpUMod",
	OpSRem: "OpSRem", OpSMod: "OpSMod", OpFRem: "OpFRem", OpFMod: "OpFMod",
	OpVectorTimesScalar: "OpVectorTimesScalar", OpMatrixTimesScalar: "OpMatrixTimesScalar",
	OpVectorTimesMatrix: "OpVectorTimesMatrix", OpMatrixTimesVector: "OpMatrixTimesVector",
	OpMatrixTimesMatrix: "OpMatrixTimesMatrix", OpOuterProduct: "OpOuterProduct", OpDot: "OpDot",
	OpIAddCarry: "OpIAddCarry", OpISubBorrow: "OpISubBorrow",
	OpUMulExtended: "OpUMulExtended", OpSMulExtended: "OpSMulExtended",
	OpAny: "OpAny", OpAll: "OpAll", OpIsNan: "OpIsNan", OpIsInf: "OpIsInf",
	OpIsFinite: "OpIsFinite", OpIsNormal: "OpIsNormal", OpSignBitSet: "OpSignBitSet",
	OpLessOrGreater: "OpLessOrGreater", OpOrdered: "OpOrdered", OpUnordered: "OpUnordered",
	OpLogicalEqual: "OpLogicalEqual", OpLogicalNotEqual: "OpLogicalNotEqual",
	OpLogicalOr: "OpLogicalOr", OpLogicalAnd: "OpLogicalAnd", OpLogicalNot: "OpLogicalNot",
	OpSelect: "OpSelect", OpIEqual: "OpIEqual", OpINotEqual: "OpINotEqual",
	OpUGreaterThan: "OpUGreaterThan", OpSGreaterThan: "OpSGreaterThan",
	OpUGreaterThanEqual: "OpUGreaterThanEqual", OpSGreaterThanEqual: "OpSGreaterThanEqual",
	OpULessThan: "OpULessThan", OpSLessThan: "OpSLessThan",
	OpULessThanEqual: "OpULessThanEqual", OpSLessThanEqual: "OpSLessThanEqual",
	OpFOrdEqual: "OpFOrdEqual", OpFUnordEqual: "OpFUnordEqual",
	OpFOrdNotEqual: "OpFOrdNotEqual", OpFUnordNotEqual: "OpFUnordNotEqual",
	OpFOrdLessThan: "OpFOrdLessThan", OpFUnordLessThan: "OpFUnordLessThan",
	OpFOrdGreaterThan: "OpFOrdGreaterThan", OpFUnordGreaterThan: "OpFUnordGreaterThan",
	OpFOrdLessThanEqual: "OpFOrdLessThanEqual", OpFUnordLessThanEqual: "OpFUnordLessThanEqual",
	OpFOrdGreaterThanEqual: "OpFOrdGreaterThanEqual",
	OpFUnordGreaterThanEqual: "OpFUnordGreaterThanEqual",
	OpShiftRightLogical: "OpShiftRightLogical", OpShiftRightArithmetic: "OpShiftRightArithmetic",
	OpShiftLeftLogical: "OpShiftLeftLogical", OpBitwiseOr: "OpBitwiseOr",
	OpBitwiseXor: "OpBitwiseXor", OpBitwiseAnd: "OpBitwiseAnd", OpNot: "OpNot",
	OpBitFieldInsert: "OpBitFieldInsert", OpBitFieldSExtract: "OpBitFieldSExtract",
	OpBitFieldUExtract: "OpBitFieldUExtract", OpBitReverse: "OpBitReverse",
	OpBitCount: "OpBitCount",
	OpDPdx: "OpDPdx", OpDPdy: "OpDPdy", OpFwidth: "OpFwidth",
	OpDPdxFine: "OpDPdxFine", OpDPdyFine: "OpDPdyFine", OpFwidthFine: "OpFwidthFine",
	OpDPdxCoarse: "OpDPdxCoarse", OpDPdyCoarse: "OpDPdyCoarse", OpFwidthCoarse: "OpFwidthCoarse",
	OpControlBarrier: "OpControlBarrier", OpMemoryBarrier: "OpMemoryBarrier",
	OpAtomicLoad: "OpAtomicLoad", OpAtomicStore: "OpAtomicStore",
	OpAtomicExchange: "OpAtomicExchange", OpAtomicCompareExchange: "OpAtomicCompareExchange",
	OpAtomicCompareExchangeWeak: "OpAtomicCompareExchangeWeak",
	OpAtomicIIncrement: "OpAtomicIIncrement", OpAtomicIDecrement: "OpAtomicIDecrement",
	OpAtomicIAdd: "OpAtomicIAdd", OpAtomicISub: "OpAtomicISub",
	OpAtomicSMin: "OpAtomicSMin", OpAtomicUMin: "OpAtomicUMin",
	OpAtomicSMax: "OpAtomicSMax", OpAtomicUMax: "OpAtomicUMax",
	OpAtomicAnd: "OpAtomicAnd", OpAtomicOr: "OpAtomicOr", OpAtomicXor: "OpAtomicXor",
	OpAtomicFlagTestAndSet: "OpAtomicFlagTestAndSet", OpAtomicFlagClear: "OpAtomicFlagClear",
	OpAtomicFMinEXT: "OpAtomicFMinEXT", OpAtomicFMaxEXT: "OpAtomicFMaxEXT", OpAtomicFAddEXT: "OpAtomicFAddEXT",
	OpPhi: "OpPhi", OpLoopMerge: "OpLoopMerge", OpSelectionMerge: "OpSelectionMerge",
	OpLabel: "OpLabel", OpBranch: "OpBranch", OpBranchConditional: "OpBranchConditional",
	OpSwitch: "OpSwitch", OpKill: "OpKill", OpReturn: "OpReturn",
	OpReturnValue: "OpReturnValue", OpUnreachable: "OpUnreachable",
	OpLifetimeStart: "OpLifetimeStart", OpLifetimeStop: "OpLifetimeStop",
	OpGroupAsyncCopy: "OpGroupAsyncCopy", OpGroupWaitEvents: "OpGroupWaitEvents",
	OpGroupAll: "OpGroupAll", OpGroupAny: "OpGroupAny", OpGroupBroadcast: "OpGroupBroadcast",
	OpGroupIAdd: "OpGroupIAdd", OpGroupFAdd: "OpGroupFAdd",
	OpGroupFMin: "OpGroupFMin", OpGroupUMin: "OpGroupUMin", OpGroupSMin: "OpGroupSMin",
	OpGroupFMax: "OpGroupFMax", OpGroupUMax: "OpGroupUMax", OpGroupSMax: "OpGroupSMax",
	OpReadPipe: "OpReadPipe", OpWritePipe: "OpWritePipe",
	OpModuleProcessed: "OpModuleProcessed",
	OpGroupNonUniformBallot: "OpGroupNonUniformBallot",
	OpSubgroupShuffleINTEL: "OpSubgroupShuffleINTEL",
	OpSubgroupShuffleUpINTEL: "OpSubgroupShuffleUpINTEL",
	OpSubgroupShuffleDownINTEL: "OpSubgroupShuffleDownINTEL",
	OpSubgroupShuffleXorINTEL: "OpSubgroupShuffleXorINTEL",
	OpGroupIMulKHR: "OpGroupIMulKHR", OpGroupFMulKHR: "OpGroupFMulKHR",
	OpGroupBitwiseAndKHR: "OpGroupBitwiseAndKHR", OpGroupBitwiseOrKHR: "OpGroupBitwiseOrKHR",
	OpGroupBitwiseXorKHR: "OpGroupBitwiseXorKHR", OpGroupLogicalAndKHR: "OpGroupLogicalAndKHR",
	OpGroupLogicalOrKHR: "OpGroupLogicalOrKHR", OpGroupLogicalXorKHR: "OpGroupLogicalXorKHR",
}

// Shader-capability-only image sampling, fetch, gather and derivative
// opcodes. The dispatch core recognizes them as image opcodes and binds
// their result ids without emitting any IR; pipe and device-enqueue
// opcodes are not in this set and are rejected elsewhere.
var ShaderOnlyOpcodes = map[Opcode]bool{
	OpImageSampleImplicitLod:         true,
	OpImageSampleDrefImplicitLod:     true,
	OpImageSampleDrefExplicitLod:     true,
	OpImageSampleProjImplicitLod:     true,
	OpImageSampleProjExplicitLod:     true,
	OpImageSampleProjDrefImplicitLod: true,
	OpImageSampleProjDrefExplicitLod: true,
	OpImageFetch:                     true,
	OpImageGather:                    true,
	OpImageDrefGather:                true,
	OpDPdx: true, OpDPdy: true, OpFwidth: true,
	OpDPdxFine: true, OpDPdyFine: true, OpFwidthFine: true,
	OpDPdxCoarse: true, OpDPdyCoarse: true, OpFwidthCoarse: true,
}
