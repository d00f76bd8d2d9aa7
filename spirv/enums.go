package spirv

// Capability gates which opcodes, types, and storage classes a module is
// permitted to use. The translator checks each OpCapability as it is
// dispatched, against its own allowlist of supported capabilities.
type Capability uint32

const (
	CapabilityMatrix              Capability = 0
	CapabilityShader              Capability = 1
	CapabilityGeometry            Capability = 2
	CapabilityTessellation        Capability = 3
	CapabilityAddresses           Capability = 4
	CapabilityLinkage             Capability = 5
	CapabilityKernel              Capability = 6
	CapabilityVector16            Capability = 7
	CapabilityFloat16Buffer       Capability = 8
	CapabilityFloat16             Capability = 9
	CapabilityFloat64             Capability = 10
	CapabilityInt64               Capability = 11
	CapabilityInt64Atomics        Capability = 12
	CapabilityImageBasic          Capability = 13
	CapabilityImageReadWrite      Capability = 14
	CapabilityImageMipmap         Capability = 15
	CapabilityPipes               Capability = 17
	CapabilityGroups              Capability = 18
	CapabilityDeviceEnqueue       Capability = 19
	CapabilityLiteralSampler      Capability = 20
	CapabilityAtomicStorage       Capability = 21
	CapabilityInt16               Capability = 22
	CapabilityTessellationPointSize Capability = 23
	CapabilityGeometryPointSize   Capability = 24
	CapabilityImageGatherExtended Capability = 25
	CapabilityStorageImageMultisample Capability = 27
	CapabilityUniformBufferArrayDynamicIndexing Capability = 28
	CapabilitySampledImageArrayDynamicIndexing  Capability = 29
	CapabilityStorageBufferArrayDynamicIndexing Capability = 30
	CapabilityStorageImageArrayDynamicIndexing  Capability = 31
	CapabilityClipDistance        Capability = 32
	CapabilityCullDistance        Capability = 33
	CapabilityGenericPointer      Capability = 38
	CapabilityInt8                Capability = 39
	CapabilitySparseResidency     Capability = 43
	CapabilityMinLod              Capability = 44
	CapabilitySampled1D           Capability = 45
	CapabilityImage1D             Capability = 46
	CapabilitySampledCubeArray    Capability = 47
	CapabilitySampledBuffer       Capability = 49
	CapabilityImageBuffer         Capability = 50
	CapabilityImageMSArray        Capability = 51
	CapabilityStorageImageExtendedFormats Capability = 52
	CapabilityImageQuery          Capability = 53
	CapabilityDerivativeControl  Capability = 54
	CapabilityInterpolationFunction Capability = 55
	CapabilityTransformFeedback   Capability = 56
	CapabilityGeometryStreams     Capability = 57
	CapabilityStorageImageReadWithoutFormat  Capability = 58
	CapabilityStorageImageWriteWithoutFormat Capability = 59
	CapabilitySubgroupDispatch    Capability = 58
	CapabilityNamedBarrier        Capability = 59
	CapabilityPipeStorage         Capability = 60
	CapabilityGroupNonUniform     Capability = 61
	CapabilityGroupNonUniformVote Capability = 62
	CapabilityGroupNonUniformArithmetic Capability = 63
	CapabilityGroupNonUniformBallot Capability = 64
	CapabilityGroupNonUniformShuffle Capability = 65
	CapabilityGroupNonUniformShuffleRelative Capability = 66
	CapabilityGroupNonUniformClustered Capability = 67
	CapabilityGroupNonUniformQuad  Capability = 68
	CapabilitySubgroupBallotKHR    Capability = 4423
	CapabilityFunctionFloatControlINTEL Capability = 5821
	CapabilityOptNoneINTEL        Capability = 6094
)

// capabilityNames mirrors cmd/spvdis's capabilities lookup map.
var capabilityNames = map[Capability]string{
	CapabilityMatrix: "Matrix", CapabilityShader: "Shader",
	CapabilityGeometry: "Geometry", CapabilityTessellation: "Tessellation",
	CapabilityAddresses: "Addresses", CapabilityLinkage: "Linkage",
	CapabilityKernel: "Kernel", CapabilityVector16: "Vector16",
	CapabilityFloat16Buffer: "Float16Buffer", CapabilityFloat16: "Float16",
	CapabilityFloat64: "Float64", CapabilityInt64: "Int64",
	CapabilityInt64Atomics: "Int64Atomics", CapabilityImageBasic: "ImageBasic",
	CapabilityImageReadWrite: "ImageReadWrite", CapabilityImageMipmap: "ImageMipmap",
	CapabilityPipes: "Pipes", CapabilityGroups: "Groups",
	CapabilityDeviceEnqueue: "DeviceEnqueue", CapabilityLiteralSampler: "LiteralSampler",
	CapabilityAtomicStorage: "AtomicStorage", CapabilityInt16: "Int16",
	CapabilityGenericPointer: "GenericPointer", CapabilityInt8: "Int8",
	CapabilitySparseResidency: "SparseResidency", CapabilityMinLod: "MinLod",
	CapabilitySampled1D: "Sampled1D", CapabilityImage1D: "Image1D",
	CapabilitySampledBuffer: "SampledBuffer", CapabilityImageBuffer: "ImageBuffer",
	CapabilityImageQuery: "ImageQuery",
	CapabilityPipeStorage: "PipeStorage", CapabilityGroupNonUniform: "GroupNonUniform",
	CapabilitySubgroupBallotKHR: "SubgroupBallotKHR",
	CapabilityFunctionFloatControlINTEL: "FunctionFloatControlINTEL",
	CapabilityOptNoneINTEL: "OptNoneINTEL",
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return "UnknownCapability"
}

// Decoration is an OpDecorate/OpMemberDecorate annotation kind.
type Decoration uint32

const (
	DecorationRelaxedPrecision  Decoration = 0
	DecorationSpecId            Decoration = 1
	DecorationBlock             Decoration = 2
	DecorationBufferBlock       Decoration = 3
	DecorationRowMajor          Decoration = 4
	DecorationColMajor          Decoration = 5
	DecorationArrayStride       Decoration = 6
	DecorationMatrixStride      Decoration = 7
	DecorationGLSLShared        Decoration = 8
	DecorationGLSLPacked        Decoration = 9
	DecorationCPacked           Decoration = 10
	DecorationBuiltIn           Decoration = 11
	DecorationNoPerspective     Decoration = 13
	DecorationFlat              Decoration = 14
	DecorationPatch             Decoration = 15
	DecorationCentroid          Decoration = 16
	DecorationSample            Decoration = 17
	DecorationInvariant         Decoration = 18
	DecorationRestrict          Decoration = 19
	DecorationAliased           Decoration = 20
	DecorationVolatile          Decoration = 21
	DecorationConstant          Decoration = 22
	DecorationCoherent          Decoration = 23
	DecorationNonWritable       Decoration = 24
	DecorationNonReadable       Decoration = 25
	DecorationUniform           Decoration = 26
	DecorationSaturatedConversion Decoration = 28
	DecorationStream            Decoration = 29
	DecorationLocation          Decoration = 30
	DecorationComponent         Decoration = 31
	DecorationIndex             Decoration = 32
	DecorationBinding           Decoration = 33
	DecorationDescriptorSet     Decoration = 34
	DecorationOffset            Decoration = 35
	DecorationXfbBuffer         Decoration = 36
	DecorationXfbStride         Decoration = 37
	DecorationFuncParamAttr     Decoration = 38
	DecorationFPRoundingMode    Decoration = 39
	DecorationFPFastMathMode    Decoration = 40
	DecorationLinkageAttributes Decoration = 41
	DecorationNoContraction     Decoration = 42
	DecorationInputAttachmentIndex Decoration = 43
	DecorationAlignment         Decoration = 44
	DecorationMaxByteOffset     Decoration = 45
	DecorationAlignmentId       Decoration = 46
	DecorationMaxByteOffsetId   Decoration = 47
)

var decorationNames = map[Decoration]string{
	DecorationRelaxedPrecision: "RelaxedPrecision", DecorationSpecId: "SpecId",
	DecorationBlock: "Block", DecorationBufferBlock: "BufferBlock",
	DecorationRowMajor: "RowMajor", DecorationColMajor: "ColMajor",
	DecorationArrayStride: "ArrayStride", DecorationMatrixStride: "MatrixStride",
	DecorationCPacked: "CPacked", DecorationBuiltIn: "BuiltIn",
	DecorationVolatile: "Volatile", DecorationConstant: "Constant",
	DecorationCoherent: "Coherent", DecorationNonWritable: "NonWritable",
	DecorationNonReadable: "NonReadable", DecorationRestrict: "Restrict",
	DecorationAliased: "Aliased",
	DecorationLocation: "Location", DecorationIndex: "Index",
	DecorationBinding: "Binding", DecorationDescriptorSet: "DescriptorSet",
	DecorationOffset: "Offset", DecorationFuncParamAttr: "FuncParamAttr",
	DecorationFPRoundingMode: "FPRoundingMode", DecorationFPFastMathMode: "FPFastMathMode",
	DecorationLinkageAttributes: "LinkageAttributes",
	DecorationAlignment: "Alignment", DecorationMaxByteOffset: "MaxByteOffset",
}

func (d Decoration) String() string {
	if name, ok := decorationNames[d]; ok {
		return name
	}
	return "UnknownDecoration"
}

// BuiltIn names a well-known variable or value the execution environment
// supplies, attached via DecorationBuiltIn.
type BuiltIn uint32

const (
	BuiltInPosition             BuiltIn = 0
	BuiltInPointSize            BuiltIn = 1
	BuiltInClipDistance         BuiltIn = 3
	BuiltInCullDistance         BuiltIn = 4
	BuiltInVertexId             BuiltIn = 5
	BuiltInInstanceId           BuiltIn = 6
	BuiltInPrimitiveId          BuiltIn = 7
	BuiltInInvocationId         BuiltIn = 8
	BuiltInLayer                BuiltIn = 9
	BuiltInViewportIndex        BuiltIn = 10
	BuiltInTessLevelOuter       BuiltIn = 11
	BuiltInTessLevelInner       BuiltIn = 12
	BuiltInTessCoord            BuiltIn = 13
	BuiltInPatchVertices        BuiltIn = 14
	BuiltInFragCoord            BuiltIn = 15
	BuiltInPointCoord           BuiltIn = 16
	BuiltInFrontFacing          BuiltIn = 17
	BuiltInSampleId             BuiltIn = 18
	BuiltInSamplePosition       BuiltIn = 19
	BuiltInSampleMask           BuiltIn = 20
	BuiltInFragDepth            BuiltIn = 22
	BuiltInHelperInvocation     BuiltIn = 23
	BuiltInNumWorkgroups        BuiltIn = 24
	BuiltInWorkgroupSize        BuiltIn = 25
	BuiltInWorkgroupId          BuiltIn = 26
	BuiltInLocalInvocationId    BuiltIn = 27
	BuiltInGlobalInvocationId   BuiltIn = 28
	BuiltInLocalInvocationIndex BuiltIn = 29
	BuiltInWorkDim              BuiltIn = 30
	BuiltInGlobalSize           BuiltIn = 31
	BuiltInEnqueuedWorkgroupSize BuiltIn = 32
	BuiltInGlobalOffset         BuiltIn = 33
	BuiltInGlobalLinearId       BuiltIn = 34
	BuiltInSubgroupSize         BuiltIn = 36
	BuiltInSubgroupMaxSize      BuiltIn = 37
	BuiltInNumSubgroups         BuiltIn = 38
	BuiltInNumEnqueuedSubgroups BuiltIn = 39
	BuiltInSubgroupId           BuiltIn = 40
	BuiltInSubgroupLocalInvocationId BuiltIn = 41
	BuiltInVertexIndex          BuiltIn = 42
	BuiltInInstanceIndex        BuiltIn = 43
)

var builtInNames = map[BuiltIn]string{
	BuiltInWorkDim: "WorkDim", BuiltInGlobalSize: "GlobalSize",
	BuiltInEnqueuedWorkgroupSize: "EnqueuedWorkgroupSize",
	BuiltInGlobalOffset: "GlobalOffset", BuiltInGlobalLinearId: "GlobalLinearId",
	BuiltInNumWorkgroups: "NumWorkgroups", BuiltInWorkgroupSize: "WorkgroupSize",
	BuiltInWorkgroupId: "WorkgroupId", BuiltInLocalInvocationId: "LocalInvocationId",
	BuiltInGlobalInvocationId: "GlobalInvocationId",
	BuiltInLocalInvocationIndex: "LocalInvocationIndex",
	BuiltInSubgroupSize: "SubgroupSize", BuiltInSubgroupMaxSize: "SubgroupMaxSize",
	BuiltInNumSubgroups: "NumSubgroups", BuiltInNumEnqueuedSubgroups: "NumEnqueuedSubgroups",
	BuiltInSubgroupId: "SubgroupId",
	BuiltInSubgroupLocalInvocationId: "SubgroupLocalInvocationId",
}

func (b BuiltIn) String() string {
	if name, ok := builtInNames[b]; ok {
		return name
	}
	return "UnknownBuiltIn"
}

// StorageClass names the address space a pointer type or variable lives in.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

func (s StorageClass) String() string {
	switch s {
	case StorageClassUniformConstant:
		return "UniformConstant"
	case StorageClassInput:
		return "Input"
	case StorageClassUniform:
		return "Uniform"
	case StorageClassOutput:
		return "Output"
	case StorageClassWorkgroup:
		return "Workgroup"
	case StorageClassCrossWorkgroup:
		return "CrossWorkgroup"
	case StorageClassPrivate:
		return "Private"
	case StorageClassFunction:
		return "Function"
	case StorageClassGeneric:
		return "Generic"
	case StorageClassPushConstant:
		return "PushConstant"
	case StorageClassAtomicCounter:
		return "AtomicCounter"
	case StorageClassImage:
		return "Image"
	case StorageClassStorageBuffer:
		return "StorageBuffer"
	default:
		return "UnknownStorageClass"
	}
}

// AddressingModel selects the pointer-width discipline of the module, set
// by the single OpMemoryModel instruction.
type AddressingModel uint32

const (
	AddressingModelLogical         AddressingModel = 0
	AddressingModelPhysical32      AddressingModel = 1
	AddressingModelPhysical64      AddressingModel = 2
	AddressingModelPhysicalStorageBuffer64 AddressingModel = 5348
)

// MemoryModel selects the consistency model of the module.
type MemoryModel uint32

const (
	MemoryModelSimple   MemoryModel = 0
	MemoryModelGLSL450  MemoryModel = 1
	MemoryModelOpenCL   MemoryModel = 2
	MemoryModelVulkan   MemoryModel = 3
)

// ExecutionModel names the shader/kernel stage an OpEntryPoint targets.
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

// ExecutionMode refines the behavior of an entry point (workgroup size,
// rounding mode, etc).
type ExecutionMode uint32

const (
	ExecutionModeInvocations              ExecutionMode = 0
	ExecutionModeSpacingEqual             ExecutionMode = 1
	ExecutionModeSpacingFractionalEven    ExecutionMode = 2
	ExecutionModeSpacingFractionalOdd     ExecutionMode = 3
	ExecutionModeVertexOrderCw            ExecutionMode = 4
	ExecutionModeVertexOrderCcw           ExecutionMode = 5
	ExecutionModePixelCenterInteger       ExecutionMode = 6
	ExecutionModeOriginUpperLeft          ExecutionMode = 7
	ExecutionModeOriginLowerLeft          ExecutionMode = 8
	ExecutionModeEarlyFragmentTests       ExecutionMode = 9
	ExecutionModePointMode                ExecutionMode = 10
	ExecutionModeXfb                      ExecutionMode = 11
	ExecutionModeDepthReplacing           ExecutionMode = 12
	ExecutionModeDepthGreater             ExecutionMode = 14
	ExecutionModeDepthLess                ExecutionMode = 15
	ExecutionModeDepthUnchanged           ExecutionMode = 16
	ExecutionModeLocalSize                ExecutionMode = 17
	ExecutionModeLocalSizeHint            ExecutionMode = 18
	ExecutionModeInputPoints              ExecutionMode = 19
	ExecutionModeInputLines               ExecutionMode = 20
	ExecutionModeInputLinesAdjacency      ExecutionMode = 21
	ExecutionModeTriangles                ExecutionMode = 22
	ExecutionModeInputTrianglesAdjacency  ExecutionMode = 23
	ExecutionModeQuads                    ExecutionMode = 24
	ExecutionModeIsolines                 ExecutionMode = 25
	ExecutionModeOutputVertices           ExecutionMode = 26
	ExecutionModeOutputPoints             ExecutionMode = 27
	ExecutionModeOutputLineStrip          ExecutionMode = 28
	ExecutionModeOutputTriangleStrip      ExecutionMode = 29
	ExecutionModeVecTypeHint              ExecutionMode = 30
	ExecutionModeContractionOff           ExecutionMode = 31
	ExecutionModeInitializer              ExecutionMode = 33
	ExecutionModeFinalizer                ExecutionMode = 34
	ExecutionModeSubgroupSize             ExecutionMode = 35
	ExecutionModeSubgroupsPerWorkgroup    ExecutionMode = 36
	ExecutionModeSubgroupsPerWorkgroupId  ExecutionMode = 37
	ExecutionModeLocalSizeId              ExecutionMode = 38
	ExecutionModeLocalSizeHintId          ExecutionMode = 39
	ExecutionModeRoundingModeRTE          ExecutionMode = 4460
	ExecutionModeRoundingModeRTZ          ExecutionMode = 4462
)

// FunctionControl is a bitmask of hints attached to OpFunction.
type FunctionControl uint32

const (
	FunctionControlNone         FunctionControl = 0
	FunctionControlInline       FunctionControl = 1 << 0
	FunctionControlDontInline   FunctionControl = 1 << 1
	FunctionControlPure         FunctionControl = 1 << 2
	FunctionControlConst        FunctionControl = 1 << 3
	FunctionControlOptNoneINTEL FunctionControl = 1 << 16
)

// SelectionControl is a bitmask of hints attached to OpSelectionMerge.
type SelectionControl uint32

const (
	SelectionControlNone  SelectionControl = 0
	SelectionControlFlatten SelectionControl = 1 << 0
	SelectionControlDontFlatten SelectionControl = 1 << 1
)

// LoopControl is a bitmask of hints attached to OpLoopMerge.
type LoopControl uint32

const (
	LoopControlNone       LoopControl = 0
	LoopControlUnroll     LoopControl = 1 << 0
	LoopControlDontUnroll LoopControl = 1 << 1
)

// Dim names the dimensionality of an OpTypeImage.
type Dim uint32

const (
	Dim1D        Dim = 0
	Dim2D        Dim = 1
	Dim3D        Dim = 2
	DimCube      Dim = 3
	DimRect      Dim = 4
	DimBuffer    Dim = 5
	DimSubpassData Dim = 6
)

// ImageFormat names the texel layout of an OpTypeImage.
type ImageFormat uint32

const (
	ImageFormatUnknown ImageFormat = 0
	ImageFormatRgba32f ImageFormat = 1
	ImageFormatRgba16f ImageFormat = 2
	ImageFormatR32f    ImageFormat = 3
	ImageFormatRgba8   ImageFormat = 4
	ImageFormatRgba8Snorm ImageFormat = 5
	ImageFormatRg32f   ImageFormat = 6
	ImageFormatRg16f   ImageFormat = 7
	ImageFormatR11fG11fB10f ImageFormat = 8
	ImageFormatR16f    ImageFormat = 9
	ImageFormatRgba16  ImageFormat = 10
	ImageFormatRgb10A2 ImageFormat = 11
	ImageFormatRg16    ImageFormat = 12
	ImageFormatRg8     ImageFormat = 13
	ImageFormatR16     ImageFormat = 14
	ImageFormatR8      ImageFormat = 15
	ImageFormatRgba32i ImageFormat = 21
	ImageFormatRgba16i ImageFormat = 22
	ImageFormatRgba8i  ImageFormat = 23
	ImageFormatR32i    ImageFormat = 24
	ImageFormatRg32i   ImageFormat = 25
	ImageFormatRg16i   ImageFormat = 26
	ImageFormatRg8i    ImageFormat = 27
	ImageFormatR16i    ImageFormat = 28
	ImageFormatR8i     ImageFormat = 29
	ImageFormatRgba32ui ImageFormat = 30
	ImageFormatRgba16ui ImageFormat = 31
	ImageFormatRgba8ui  ImageFormat = 32
	ImageFormatR32ui    ImageFormat = 33
	ImageFormatRgb10a2ui ImageFormat = 34
	ImageFormatRg32ui   ImageFormat = 35
	ImageFormatRg16ui   ImageFormat = 36
	ImageFormatRg8ui    ImageFormat = 37
	ImageFormatR16ui    ImageFormat = 38
	ImageFormatR8ui     ImageFormat = 39
)

// LinkageType is the operand of the LinkageAttributes decoration, mapping
// a module-scope function or variable to an external symbol.
type LinkageType uint32

const (
	LinkageTypeExport     LinkageType = 0
	LinkageTypeImport     LinkageType = 1
	LinkageTypeLinkOnceODR LinkageType = 2
)

func (l LinkageType) String() string {
	switch l {
	case LinkageTypeExport:
		return "Export"
	case LinkageTypeImport:
		return "Import"
	case LinkageTypeLinkOnceODR:
		return "LinkOnceODR"
	default:
		return "UnknownLinkageType"
	}
}

// FuncParamAttr is the operand of the FuncParamAttr decoration, mapping a
// kernel argument onto an LLVM-style parameter attribute.
type FuncParamAttr uint32

const (
	FuncParamAttrZext     FuncParamAttr = 0
	FuncParamAttrSext     FuncParamAttr = 1
	FuncParamAttrByVal    FuncParamAttr = 2
	FuncParamAttrSret     FuncParamAttr = 3
	FuncParamAttrNoAlias  FuncParamAttr = 4
	FuncParamAttrNoCapture FuncParamAttr = 5
	FuncParamAttrNoWrite  FuncParamAttr = 6
	FuncParamAttrNoReadWrite FuncParamAttr = 7
)

// Scope names the set of invocations a memory/control barrier or group
// operation applies to.
type Scope uint32

const (
	ScopeCrossDevice   Scope = 0
	ScopeDevice        Scope = 1
	ScopeWorkgroup     Scope = 2
	ScopeSubgroup      Scope = 3
	ScopeInvocation    Scope = 4
	ScopeQueueFamily   Scope = 5
)

// MemorySemantics is a bitmask refining the ordering/visibility guarantee
// of an atomic or barrier operation.
type MemorySemantics uint32

const (
	MemorySemanticsRelaxed             MemorySemantics = 0
	MemorySemanticsAcquire             MemorySemantics = 1 << 1
	MemorySemanticsRelease             MemorySemantics = 1 << 2
	MemorySemanticsAcquireRelease      MemorySemantics = 1 << 3
	MemorySemanticsSequentiallyConsistent MemorySemantics = 1 << 4
	MemorySemanticsUniformMemory       MemorySemantics = 1 << 6
	MemorySemanticsSubgroupMemory      MemorySemantics = 1 << 7
	MemorySemanticsWorkgroupMemory     MemorySemantics = 1 << 8
	MemorySemanticsCrossWorkgroupMemory MemorySemantics = 1 << 9
	MemorySemanticsAtomicCounterMemory MemorySemantics = 1 << 10
	MemorySemanticsImageMemory         MemorySemantics = 1 << 11
)

// MemoryAccess is a bitmask of qualifiers on OpLoad/OpStore/OpCopyMemory.
type MemoryAccess uint32

const (
	MemoryAccessNone     MemoryAccess = 0
	MemoryAccessVolatile MemoryAccess = 1 << 0
	MemoryAccessAligned  MemoryAccess = 1 << 1
	MemoryAccessNontemporal MemoryAccess = 1 << 2
)

// GroupOperation selects the reduction flavor of a group collective
// (OpGroupIAdd and friends).
type GroupOperation uint32

const (
	GroupOperationReduce        GroupOperation = 0
	GroupOperationInclusiveScan GroupOperation = 1
	GroupOperationExclusiveScan GroupOperation = 2
)

// Name returns the builtin-library operation segment a group collective
// wrapper embeds ("reduce" / "scan_inclusive" / "scan_exclusive").
func (g GroupOperation) Name() string {
	switch g {
	case GroupOperationReduce:
		return "reduce"
	case GroupOperationInclusiveScan:
		return "scan_inclusive"
	case GroupOperationExclusiveScan:
		return "scan_exclusive"
	default:
		return "unknown"
	}
}

// AccessQualifier is OpTypeImage's optional trailing operand under the
// Kernel capability.
type AccessQualifier uint32

const (
	AccessQualifierReadOnly  AccessQualifier = 0
	AccessQualifierWriteOnly AccessQualifier = 1
	AccessQualifierReadWrite AccessQualifier = 2
)

func (a AccessQualifier) String() string {
	switch a {
	case AccessQualifierReadOnly:
		return "read_only"
	case AccessQualifierWriteOnly:
		return "write_only"
	case AccessQualifierReadWrite:
		return "read_write"
	default:
		return "none"
	}
}

// SamplerAddressingMode / SamplerFilterMode are OpConstantSampler's
// operands, in SPIR-V's own numbering (the translator re-encodes them
// into the OpenCL sampler bit layout).
type SamplerAddressingMode uint32

const (
	SamplerAddressingNone           SamplerAddressingMode = 0
	SamplerAddressingClampToEdge    SamplerAddressingMode = 1
	SamplerAddressingClamp          SamplerAddressingMode = 2
	SamplerAddressingRepeat         SamplerAddressingMode = 3
	SamplerAddressingRepeatMirrored SamplerAddressingMode = 4
)

type SamplerFilterMode uint32

const (
	SamplerFilterNearest SamplerFilterMode = 0
	SamplerFilterLinear  SamplerFilterMode = 1
)

// SPV_KHR_no_integer_wrap_decoration.
const (
	DecorationNoSignedWrap   Decoration = 4469
	DecorationNoUnsignedWrap Decoration = 4470
)

// SourceLanguage is OpSource's first operand.
type SourceLanguage uint32

const (
	SourceLanguageUnknown    SourceLanguage = 0
	SourceLanguageESSL       SourceLanguage = 1
	SourceLanguageGLSL       SourceLanguage = 2
	SourceLanguageOpenCLC    SourceLanguage = 3
	SourceLanguageOpenCLCPP  SourceLanguage = 4
	SourceLanguageHLSL       SourceLanguage = 5
)

func (s SourceLanguage) String() string {
	switch s {
	case SourceLanguageESSL:
		return "ESSL"
	case SourceLanguageGLSL:
		return "GLSL"
	case SourceLanguageOpenCLC:
		return "OpenCL C"
	case SourceLanguageOpenCLCPP:
		return "OpenCL C++"
	case SourceLanguageHLSL:
		return "HLSL"
	default:
		return "Unknown"
	}
}

// Intel vendor execution modes.
const (
	ExecutionModeMaxWorkDimINTEL ExecutionMode = 5893
)
