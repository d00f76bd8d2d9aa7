package translator

import (
	"fmt"

	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// translateFunction implements spec.md §4.1.4: function definition,
// parameter binding, kernel wrapper synthesis, and (forward) calls.
func (t *Translator) translateFunction(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	case spirv.OpFunction:
		return t.translateOpFunction(rec)
	case spirv.OpFunctionParameter:
		return t.translateFunctionParameter(rec)
	case spirv.OpFunctionEnd:
		return t.translateFunctionEnd(rec)
	case spirv.OpFunctionCall:
		return t.translateFunctionCall(rec)
	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable function dispatch")
	}
}

// decodeLiteralString reads a NUL-terminated literal out of decoration
// operand words (LinkageAttributes carries the linkage name this way).
func decodeLiteralString(words []uint32) (string, int) {
	var b []byte
	consumed := 0
	for _, w := range words {
		consumed++
		for _, c := range [4]byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)} {
			if c == 0 {
				return string(b), consumed
			}
			b = append(b, c)
		}
	}
	return string(b), consumed
}

// linkageInfo is the resolved linkage decision for one OpFunction.
type linkageInfo struct {
	Linkage       llir.Linkage
	NameOverride  string
	IsDeclaration bool
}

// resolveLinkage applies spec.md §4.1.4's precedence: LinkageAttributes
// overrides the FunctionControl Inline hint, which overrides the
// internal default.
func (t *Translator) resolveLinkage(id spirv.SpvId, control spirv.FunctionControl) linkageInfo {
	info := linkageInfo{Linkage: llir.LinkageInternal}
	if control&spirv.FunctionControlInline != 0 {
		info.Linkage = llir.LinkageLinkOnceODR
	}
	if d, ok := t.state.firstDecoration(id, spirv.DecorationLinkageAttributes); ok && len(d.Operands) >= 2 {
		name, consumed := decodeLiteralString(d.Operands)
		info.NameOverride = name
		switch spirv.LinkageType(d.Operands[consumed]) {
		case spirv.LinkageTypeExport:
			info.Linkage = llir.LinkageExternal
		case spirv.LinkageTypeImport:
			info.Linkage = llir.LinkageImport
			info.IsDeclaration = true
		case spirv.LinkageTypeLinkOnceODR:
			info.Linkage = llir.LinkageLinkOnceODR
		}
	}
	return info
}

func (t *Translator) translateOpFunction(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	control := spirv.FunctionControl(rec.MustWord(2))
	fnTypeID := rec.Id(3)

	retTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	fnTy, err := t.state.requireType(fnTypeID)
	if err != nil {
		return err
	}
	ft, ok := t.builder.Type(fnTy).Inner.(llir.FunctionType)
	if !ok {
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, fnTypeID, "OpFunction type is not a function type")
	}

	if control&spirv.FunctionControlOptNoneINTEL != 0 &&
		!t.state.capabilities[spirv.CapabilityOptNoneINTEL] {
		return spirv.NewError(spirv.UnsupportedCapability, rec.Op,
			"FunctionControl OptNoneINTEL requires the OptNoneINTEL capability")
	}

	link := t.resolveLinkage(resID, control)
	name := link.NameOverride
	if name == "" {
		name = t.state.names[resID]
	}
	if name == "" {
		name = fmt.Sprintf("spv.fn.%d", uint32(resID))
	}

	params := make([]llir.Param, len(ft.Params))
	for i, p := range ft.Params {
		params[i] = llir.Param{Type: p}
	}

	if entry, isEntry := t.state.entryPoints[resID]; isEntry {
		if entry.Model != spirv.ExecutionModelKernel {
			return spirv.NewErrorf(spirv.UnsupportedExecutionMode, rec.Op,
				"execution model %d is not supported (compute kernels only)", entry.Model)
		}
		return t.beginKernel(rec, entry, retTy, ft, params, control)
	}

	// The printf workaround: a non-variadic declaration named "printf"
	// with one parameter is rewritten variadic so producers that call it
	// with extra arguments still link (spec.md §4.1.4).
	variadic := link.IsDeclaration && name == "printf" && len(params) == 1

	fn := t.builder.BeginFunction(llir.Function{
		Name:          name,
		Conv:          llir.CallSPIRFunc,
		Linkage:       link.Linkage,
		RetType:       retTy,
		Params:        params,
		IsDeclaration: link.IsDeclaration,
		Variadic:      variadic,
	})
	if control&spirv.FunctionControlOptNoneINTEL != 0 {
		t.builder.AddFuncAttr(fn, llir.FuncAttrOptimizeNone)
		t.builder.AddFuncAttr(fn, llir.FuncAttrNoInline)
	}
	t.openFunction(rec, resID, fnTypeID, fn, link.IsDeclaration)
	return nil
}

// beginKernel creates the SPIR_KERNEL wrapper plus the SPIR_FUNC body a
// kernel entry point lowers to (spec.md §4.1.4).
func (t *Translator) beginKernel(rec spirv.OpcodeRecord, entry EntryPointInfo, retTy llir.TypeHandle, ft llir.FunctionType, params []llir.Param, control spirv.FunctionControl) error {
	resID := rec.Id(1)
	fnTypeID := rec.Id(3)

	// On a name collision the preexisting function is renamed with an
	// ".old" suffix so the kernel keeps its declared name.
	if existing, ok := t.builder.FindFunction(entry.Name); ok {
		t.builder.SetFunctionName(existing, t.state.nextRenameSuffix(entry.Name))
	}

	wrapperParams := make([]llir.Param, len(params))
	for i := range params {
		wrapperParams[i] = llir.Param{Type: params[i].Type, Attrs: []llir.ParamAttr{llir.ParamAttrNoUndef}}
	}
	wrapper := t.builder.BeginFunction(llir.Function{
		Name:    entry.Name,
		Conv:    llir.CallSPIRKernel,
		Linkage: llir.LinkageExternal,
		RetType: t.builder.VoidType(),
		Params:  wrapperParams,
	})
	t.builder.SetKernelArgs(wrapper, make([]llir.KernelArgInfo, len(params)))

	if err := t.applyExecutionModes(resID, wrapper); err != nil {
		return err
	}

	bodyName := t.state.names[resID]
	if bodyName == "" || bodyName == entry.Name {
		bodyName = entry.Name + ".body"
	}
	bodyLink := llir.LinkageInternal
	if control&spirv.FunctionControlInline != 0 {
		bodyLink = llir.LinkageLinkOnceODR
	}
	body := t.builder.BeginFunction(llir.Function{
		Name:    bodyName,
		Conv:    llir.CallSPIRFunc,
		Linkage: bodyLink,
		RetType: retTy,
		Params:  params,
	})
	if control&spirv.FunctionControlOptNoneINTEL != 0 {
		t.builder.AddFuncAttr(body, llir.FuncAttrOptimizeNone)
		t.builder.AddFuncAttr(body, llir.FuncAttrNoInline)
	}

	// One-block wrapper body forwarding every argument, then a void
	// return; the insertion cursor is cleared afterwards so the kernel
	// body's own OpLabel opens the next block.
	entryBlk := t.builder.CreateBlock(wrapper, "entry")
	args := make([]llir.ValueHandle, len(wrapperParams))
	for i := range wrapperParams {
		args[i] = t.builder.Param(wrapper, i).Value
	}
	callInst := llir.Instruction{Op: llir.OpCall, Callee: bodyName, Operands: args}
	if _, isVoid := t.builder.Type(retTy).Inner.(llir.VoidType); !isVoid {
		callInst.HasResult = true
		callInst.Type = retTy
	}
	t.builder.AppendInst(wrapper, entryBlk, callInst)
	t.builder.AppendInst(wrapper, entryBlk, llir.Instruction{Op: llir.OpRet})
	t.builder.EndFunction(wrapper)

	t.wrapperOf[body] = wrapper
	t.openFunction(rec, resID, fnTypeID, body, false)
	return nil
}

func (t *Translator) openFunction(rec spirv.OpcodeRecord, resID, fnTypeID spirv.SpvId, fn llir.FuncHandle, isDecl bool) {
	t.hasCurrentFunc = true
	t.currentFunc = fn
	t.currentFuncID = resID
	t.currentFuncTypeID = fnTypeID
	t.currentIsDecl = isDecl
	t.hasCurrentBlock = false
	t.blockIDs[fn] = make(map[spirv.SpvId]llir.BlockHandle)
	t.nextParam[fn] = 0
	t.bindFunc(rec, resID, fn, false)
}

// applyExecutionModes walks the entry point's recorded modes and attaches
// the corresponding kernel metadata (spec.md §4.1.4).
func (t *Translator) applyExecutionModes(resID spirv.SpvId, wrapper llir.FuncHandle) error {
	for _, em := range t.state.executionModes[resID] {
		switch em.Mode {
		case spirv.ExecutionModeLocalSize:
			if len(em.Operands) >= 3 {
				f := t.builder.Function(wrapper)
				f.WorkgroupSize = [3]uint32{em.Operands[0], em.Operands[1], em.Operands[2]}
				f.HasWorkgroupSize = true
				t.setFunction(wrapper, f)
			}
		case spirv.ExecutionModeLocalSizeHint:
			if len(em.Operands) >= 3 {
				f := t.builder.Function(wrapper)
				f.WorkgroupSizeHint = [3]uint32{em.Operands[0], em.Operands[1], em.Operands[2]}
				f.HasSizeHint = true
				t.setFunction(wrapper, f)
			}
		case spirv.ExecutionModeVecTypeHint:
			if len(em.Operands) >= 1 {
				hint, err := t.vecTypeHint(em.Operands[0])
				if err != nil {
					return err
				}
				f := t.builder.Function(wrapper)
				f.VecTypeHint = hint
				f.HasVecTypeHint = true
				t.setFunction(wrapper, f)
			}
		case spirv.ExecutionModeContractionOff:
			f := t.builder.Function(wrapper)
			f.NoContraction = true
			t.setFunction(wrapper, f)
		case spirv.ExecutionModeSubgroupSize:
			if len(em.Operands) >= 1 {
				f := t.builder.Function(wrapper)
				f.ReqdSubgroupSize = em.Operands[0]
				f.HasSubgroupSize = true
				t.setFunction(wrapper, f)
			}
		case spirv.ExecutionModeMaxWorkDimINTEL:
			if len(em.Operands) >= 1 {
				f := t.builder.Function(wrapper)
				f.MaxWorkDim = em.Operands[0]
				f.HasMaxWorkDim = true
				t.setFunction(wrapper, f)
			}
		case spirv.ExecutionModeSubgroupsPerWorkgroup, spirv.ExecutionModeSubgroupsPerWorkgroupId:
			return spirv.NewError(spirv.UnsupportedExecutionMode, spirv.OpExecutionMode,
				"SubgroupsPerWorkgroup is not supported")
		}
	}
	return nil
}

// setFunction writes a modified Function value back through the builder.
func (t *Translator) setFunction(fn llir.FuncHandle, f llir.Function) {
	// The concrete builder returns Function by value; name/attr/params
	// have dedicated mutators, the metadata fields go through this one.
	t.builder.SetFunctionMeta(fn, f)
}

// vecTypeHint decodes the 16-low-bits data type + 16-high-bits component
// count encoding into an IR type (spec.md §4.1.4).
func (t *Translator) vecTypeHint(word uint32) (llir.TypeHandle, error) {
	dataType := word & 0xFFFF
	count := word >> 16

	var elem llir.TypeHandle
	switch dataType {
	case 0:
		elem = t.builder.IntType(8, true)
	case 1:
		elem = t.builder.IntType(16, true)
	case 2:
		elem = t.builder.IntType(32, true)
	case 3:
		elem = t.builder.IntType(64, true)
	case 4:
		elem = t.builder.FloatType(16)
	case 5:
		elem = t.builder.FloatType(32)
	case 6:
		elem = t.builder.FloatType(64)
	default:
		return 0, spirv.NewErrorf(spirv.UnsupportedExecutionMode, spirv.OpExecutionMode,
			"VecTypeHint data type code %d is not recognized", dataType)
	}
	switch count {
	case 0, 1:
		return elem, nil
	case 2, 3, 4, 8, 16:
		return t.builder.VectorType(elem, count), nil
	default:
		return 0, spirv.NewErrorf(spirv.UnsupportedExecutionMode, spirv.OpExecutionMode,
			"VecTypeHint component count %d is not recognized", count)
	}
}

func (t *Translator) translateFunctionParameter(rec spirv.OpcodeRecord) error {
	if !t.hasCurrentFunc {
		return spirv.NewError(spirv.MalformedInstruction, rec.Op, "OpFunctionParameter outside a function")
	}
	tyID, resID := rec.Id(0), rec.Id(1)
	idx := t.nextParam[t.currentFunc]
	if idx >= t.builder.NumParams(t.currentFunc) {
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, resID, "more parameters than the function type declares")
	}
	t.nextParam[t.currentFunc] = idx + 1
	t.paramIDs[t.currentFunc] = append(t.paramIDs[t.currentFunc], resID)

	p := t.builder.Param(t.currentFunc, idx)
	p.Name = t.state.names[resID]

	if t.state.capabilities[spirv.CapabilityKernel] {
		if err := t.applyParamDecorations(resID, &p); err != nil {
			return err
		}
	}
	t.builder.SetParam(t.currentFunc, idx, p)
	t.bindValue(rec, tyID, resID, p.Value)
	return nil
}

// applyParamDecorations honors FuncParamAttr/MaxByteOffset/NonReadable/
// NonWritable against the parameter's shape (spec.md §4.1.4), rejecting
// attribute/shape mismatches.
func (t *Translator) applyParamDecorations(resID spirv.SpvId, p *llir.Param) error {
	inner := t.builder.Type(p.Type).Inner
	_, isPtr := inner.(llir.PointerType)
	_, isInt := inner.(llir.IntType)
	_, isImage := inner.(llir.ImageType)

	for _, d := range t.state.allDecorations(resID, spirv.DecorationFuncParamAttr) {
		if len(d.Operands) == 0 {
			continue
		}
		attr := spirv.FuncParamAttr(d.Operands[0])
		switch attr {
		case spirv.FuncParamAttrZext, spirv.FuncParamAttrSext:
			if !isInt {
				return spirv.NewErrorId(spirv.InvalidFunctionParameterAttribute, spirv.OpFunctionParameter, resID,
					"Zext/Sext on a non-integer parameter")
			}
			if attr == spirv.FuncParamAttrZext {
				p.Attrs = append(p.Attrs, llir.ParamAttrZext)
			} else {
				p.Attrs = append(p.Attrs, llir.ParamAttrSext)
			}
		case spirv.FuncParamAttrByVal, spirv.FuncParamAttrSret, spirv.FuncParamAttrNoAlias,
			spirv.FuncParamAttrNoCapture, spirv.FuncParamAttrNoWrite, spirv.FuncParamAttrNoReadWrite:
			if !isPtr {
				return spirv.NewErrorId(spirv.InvalidFunctionParameterAttribute, spirv.OpFunctionParameter, resID,
					"pointer attribute on a non-pointer parameter")
			}
			p.Attrs = append(p.Attrs, paramAttrFor(attr))
		}
	}

	if d, ok := t.state.firstDecoration(resID, spirv.DecorationMaxByteOffset); ok && len(d.Operands) > 0 {
		if !isPtr {
			return spirv.NewErrorId(spirv.InvalidFunctionParameterAttribute, spirv.OpFunctionParameter, resID,
				"MaxByteOffset on a non-pointer parameter")
		}
		p.DereferenceableBytes = d.Operands[0]
		p.HasDereferenceable = true
	}

	if isImage {
		if t.state.hasDecoration(resID, spirv.DecorationNonReadable) {
			p.Attrs = append(p.Attrs, llir.ParamAttrReadNone)
		}
		if t.state.hasDecoration(resID, spirv.DecorationNonWritable) {
			p.Attrs = append(p.Attrs, llir.ParamAttrNoWrite)
		}
	}
	return nil
}

func paramAttrFor(attr spirv.FuncParamAttr) llir.ParamAttr {
	switch attr {
	case spirv.FuncParamAttrByVal:
		return llir.ParamAttrByVal
	case spirv.FuncParamAttrSret:
		return llir.ParamAttrSret
	case spirv.FuncParamAttrNoAlias:
		return llir.ParamAttrNoAlias
	case spirv.FuncParamAttrNoCapture:
		return llir.ParamAttrNoCapture
	case spirv.FuncParamAttrNoWrite:
		return llir.ParamAttrNoWrite
	case spirv.FuncParamAttrNoReadWrite:
		return llir.ParamAttrNoReadWrite
	default:
		return llir.ParamAttrNone
	}
}

func (t *Translator) translateFunctionEnd(rec spirv.OpcodeRecord) error {
	if !t.hasCurrentFunc {
		return spirv.NewError(spirv.MalformedInstruction, rec.Op, "OpFunctionEnd outside a function")
	}
	t.closeScope()

	fn := t.currentFunc
	t.builder.EndFunction(fn)

	// A function that never opened a block is a declaration-only
	// external symbol.
	if f := t.builder.Function(fn); len(f.Blocks) == 0 && !f.IsDeclaration {
		f.IsDeclaration = true
		t.builder.SetFunctionMeta(fn, f)
	}

	if wrapper, isKernel := t.wrapperOf[fn]; isKernel {
		if err := t.synthesizeKernelArgMetadata(fn, wrapper); err != nil {
			return err
		}
	}

	// A forward reference to this function resolves now: call sites are
	// rewired onto the real definition with its parameter attributes
	// mirrored, and the placeholder is deleted (spec.md §4.1.4).
	if placeholder, ok := t.forwardPlaceholders[t.currentFuncID]; ok {
		oldName := t.builder.FunctionName(placeholder)
		t.builder.RetargetCalls(oldName, t.builder.FunctionName(fn), t.mirrorParamAttrs(fn))
		t.builder.DeleteFunction(placeholder)
		delete(t.forwardPlaceholders, t.currentFuncID)
		delete(t.state.forwardFuncRefs, t.currentFuncID)
		t.bindFunc(rec, t.currentFuncID, fn, false)
	}

	t.hasCurrentFunc = false
	t.hasCurrentBlock = false
	t.currentIsDecl = false
	return nil
}

// mirrorParamAttrs copies the pointer-shaped and integer-shaped
// parameter attribute kinds of fn onto a per-argument list suitable for
// a call site (spec.md §4.1.4's mirroring rule). Typed attributes keep
// their pointee through the parameter's own type.
func (t *Translator) mirrorParamAttrs(fn llir.FuncHandle) [][]llir.ParamAttr {
	n := t.builder.NumParams(fn)
	out := make([][]llir.ParamAttr, n)
	for i := 0; i < n; i++ {
		for _, a := range t.builder.Param(fn, i).Attrs {
			switch a {
			case llir.ParamAttrByVal, llir.ParamAttrSret, llir.ParamAttrNoAlias,
				llir.ParamAttrNoCapture, llir.ParamAttrNoWrite, llir.ParamAttrNoReadWrite,
				llir.ParamAttrZext, llir.ParamAttrSext:
				out[i] = append(out[i], a)
			}
		}
	}
	return out
}

func (t *Translator) translateFunctionCall(rec spirv.OpcodeRecord) error {
	resTyID, resID, calleeID := rec.Id(0), rec.Id(1), rec.Id(2)
	retTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	args, err := t.values(rec, 3)
	if err != nil {
		return err
	}

	var callee llir.FuncHandle
	if b, ok := t.state.lookup(calleeID); ok && b.HasFunc {
		callee = b.Func
	} else {
		// Forward function reference: synthesize a placeholder typed
		// from this call site (spec.md §4.1.4).
		params := make([]llir.Param, len(args))
		for i := 3; i < rec.Len(); i++ {
			ty, err := t.valueType(rec.Id(i))
			if err != nil {
				return err
			}
			params[i-3] = llir.Param{Type: ty}
		}
		callee = t.builder.BeginFunction(llir.Function{
			Name:          fmt.Sprintf("spv.fwd.%d", uint32(calleeID)),
			Conv:          llir.CallSPIRFunc,
			Linkage:       llir.LinkageExternal,
			RetType:       retTy,
			Params:        params,
			IsDeclaration: true,
		})
		t.builder.EndFunction(callee)
		t.bindFunc(rec, calleeID, callee, true)
		t.state.forwardFuncRefs[calleeID] = true
		t.forwardPlaceholders[calleeID] = callee
	}

	inst := llir.Instruction{
		Op:         llir.OpCall,
		Callee:     t.builder.FunctionName(callee),
		Operands:   args,
		ParamAttrs: t.mirrorParamAttrs(callee),
	}
	_, isVoid := t.builder.Type(retTy).Inner.(llir.VoidType)
	if !isVoid {
		inst.HasResult = true
		inst.Type = retTy
	}
	v, err := t.appendInst(inst)
	if err != nil {
		return err
	}
	if isVoid {
		t.bindMarker(rec, resID)
	} else {
		t.bindValue(rec, resTyID, resID, v)
	}
	return nil
}
