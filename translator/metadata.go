package translator

import "github.com/oneapi-go/spirv-ll/spirv"

// translateMetadata implements spec.md §4.1.1: module-level bookkeeping
// opcodes that either have no IR effect or only populate ModuleState.
func (t *Translator) translateMetadata(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	case spirv.OpNop, spirv.OpSourceExtension, spirv.OpModuleProcessed, spirv.OpSelectionMerge:
		return nil

	case spirv.OpMemberName:
		structID := rec.Id(0)
		member := rec.MustWord(1)
		name, _ := rec.String(2)
		t.state.memberNames[memberKey{id: structID, member: member}] = name
		return nil

	case spirv.OpDecorationGroup:
		id := rec.Id(0)
		t.state.bind(id, &binding{Op: rec.Op})
		return nil

	case spirv.OpSource:
		t.state.sourceLang = spirv.SourceLanguage(rec.MustWord(0))
		t.state.sourceVersion = rec.MustWord(1)
		if rec.Len() > 2 {
			t.state.sourceFile = rec.Id(2)
		}
		if rec.Len() > 3 {
			text, _ := rec.String(3)
			t.state.sourceText = text
		}
		t.state.hasSource = true
		return nil

	case spirv.OpSourceContinued:
		// SUPPLEMENTED FEATURES: thread every continuation onto the same
		// source string rather than only the first (original_source
		// behavior spec.md's distillation dropped).
		text, _ := rec.String(0)
		t.state.sourceText += text
		return nil

	case spirv.OpName:
		id := rec.Id(0)
		name, _ := rec.String(1)
		t.state.names[id] = name
		return nil

	case spirv.OpString:
		id := rec.Id(0)
		text, _ := rec.String(1)
		t.state.debugStrings[id] = text
		return nil

	case spirv.OpExtension:
		name, _ := rec.String(0)
		if _, ok := knownExtensions[name]; !ok {
			return spirv.NewErrorf(spirv.UnsupportedExtension, rec.Op, "extension %q is not recognized", name)
		}
		t.state.extensions[name] = true
		return nil

	case spirv.OpCapability:
		cap := spirv.Capability(rec.MustWord(0))
		if !supportedCapabilities[cap] {
			return spirv.NewErrorf(spirv.UnsupportedCapability, rec.Op, "capability %s is not supported", cap)
		}
		t.state.capabilities[cap] = true
		return nil

	case spirv.OpExtInstImport:
		id := rec.Id(0)
		name, _ := rec.String(1)
		set, ok := extinstSetFromName(name)
		if !ok {
			return spirv.NewErrorf(spirv.UnsupportedExtInstSet, rec.Op, "extended instruction set %q is not recognized", name)
		}
		t.state.extInstSets[id] = set
		if set.IsDebugSet() {
			t.state.implicitDebugScopesEnabled = false
		}
		t.state.bind(id, &binding{Op: rec.Op})
		return nil

	case spirv.OpExtInst:
		return t.translateExtInst(rec)

	case spirv.OpDecorate:
		id := rec.Id(0)
		kind := spirv.Decoration(rec.MustWord(1))
		t.state.addDecoration(id, DecorationRecord{Kind: kind, Operands: append([]uint32(nil), rec.Operands[2:]...)})
		return nil

	case spirv.OpMemberDecorate:
		id := rec.Id(0)
		member := rec.MustWord(1)
		kind := spirv.Decoration(rec.MustWord(2))
		t.state.addMemberDecoration(id, member, DecorationRecord{Kind: kind, Operands: append([]uint32(nil), rec.Operands[3:]...)})
		return nil

	case spirv.OpGroupDecorate:
		return t.translateGroupDecorate(rec)

	case spirv.OpGroupMemberDecorate:
		return t.translateGroupMemberDecorate(rec)

	case spirv.OpMemoryModel:
		model := spirv.AddressingModel(rec.MustWord(0))
		return t.setAddressingModel(model)

	case spirv.OpEntryPoint:
		model := spirv.ExecutionModel(rec.MustWord(0))
		fn := rec.Id(1)
		name, _ := rec.String(2)
		t.state.entryPoints[fn] = EntryPointInfo{Model: model, Name: name}
		return nil

	case spirv.OpExecutionMode:
		fn := rec.Id(0)
		mode := spirv.ExecutionMode(rec.MustWord(1))
		operands := append([]uint32(nil), rec.Operands[2:]...)
		t.state.executionModes[fn] = append(t.state.executionModes[fn], ExecutionModeRecord{Mode: mode, Operands: operands})
		if mode == spirv.ExecutionModeLocalSize && len(operands) >= 3 {
			t.state.workgroupSizeHint = [3]uint32{operands[0], operands[1], operands[2]}
			t.state.hasWorkgroupSizeHint = true
		}
		return nil

	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable metadata dispatch")
	}
}

// translateGroupDecorate replays a decoration group's own decorations
// onto each listed target, in the order the group id's decorations were
// attached (SUPPLEMENTED FEATURES: spec.md only says "replay").
func (t *Translator) translateGroupDecorate(rec spirv.OpcodeRecord) error {
	group := rec.Id(0)
	decs := t.state.decorations[group]
	for i := 1; i < rec.Len(); i++ {
		target := rec.Id(i)
		for _, d := range decs {
			t.state.addDecoration(target, d)
		}
	}
	return nil
}

func (t *Translator) translateGroupMemberDecorate(rec spirv.OpcodeRecord) error {
	group := rec.Id(0)
	decs := t.state.decorations[group]
	for i := 1; i+1 < rec.Len()+1 && i < rec.Len(); i += 2 {
		target := rec.Id(i)
		member := rec.MustWord(i + 1)
		for _, d := range decs {
			t.state.addMemberDecoration(target, member, d)
		}
	}
	return nil
}

func (t *Translator) setAddressingModel(model spirv.AddressingModel) error {
	var bits uint32
	switch model {
	case spirv.AddressingModelLogical:
		bits = t.state.Device.AddressBits
	case spirv.AddressingModelPhysical32:
		bits = 32
	case spirv.AddressingModelPhysical64, spirv.AddressingModelPhysicalStorageBuffer64:
		bits = 64
	default:
		return spirv.NewErrorf(spirv.UnsupportedAddressingModel, spirv.OpMemoryModel, "addressing model %d is not supported", model)
	}
	if bits != 32 && bits != 64 {
		return spirv.NewError(spirv.UnsupportedAddressingModel, spirv.OpMemoryModel, "device descriptor does not declare a 32 or 64 bit address width")
	}
	t.state.addressingModel = model
	t.state.addressingBits = bits
	if bits == 64 {
		t.builder.Module().TargetTriple = "unknown-unknown-unknown"
		t.builder.Module().DataLayout = dataLayout64
	} else {
		t.builder.Module().TargetTriple = "unknown-unknown-unknown"
		t.builder.Module().DataLayout = dataLayout32
	}
	return nil
}

const (
	dataLayout32 = "e-p:32:32-i64:64-v16:16-v24:32-v32:32-v48:64-v96:128-v192:256-v256:256-v512:512-v1024:1024-n8:16:32:64"
	dataLayout64 = "e-i64:64-v16:16-v24:32-v32:32-v48:64-v96:128-v192:256-v256:256-v512:512-v1024:1024-n8:16:32:64"
)

// supportedCapabilities/knownExtensions are the membership tests for
// OpCapability/OpExtension; the device descriptor only carries the bits
// relevant to addressing (§6), so the core keeps
// its own fixed allowlist of capabilities/extensions an OpenCL kernel
// translator recognizes, matching the original's assertion-list shape.
var supportedCapabilities = map[spirv.Capability]bool{
	spirv.CapabilityKernel: true, spirv.CapabilityAddresses: true,
	spirv.CapabilityLinkage: true, spirv.CapabilityVector16: true,
	spirv.CapabilityFloat16Buffer: true, spirv.CapabilityFloat16: true,
	spirv.CapabilityFloat64: true, spirv.CapabilityInt64: true,
	spirv.CapabilityInt16: true, spirv.CapabilityInt8: true,
	spirv.CapabilityImageBasic: true, spirv.CapabilityGenericPointer: true,
	spirv.CapabilityGroups: true, spirv.CapabilityAtomicStorage: true,
	spirv.CapabilitySubgroupDispatch: true,
}

var knownExtensions = map[string]bool{
	"SPV_KHR_no_integer_wrap_decoration": true,
	"SPV_KHR_linkonce_odr":               true,
	"SPV_INTEL_function_pointers":        true,
	"SPV_KHR_expect_assume":              true,
}
