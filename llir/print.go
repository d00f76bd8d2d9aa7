package llir

import (
	"fmt"
	"sort"
	"strings"
)

// Dump renders the module as a stable, diffable text form. The layout is
// LLVM-flavored but deliberately simplified: it exists for golden tests
// and the CLI tools, not for re-parsing.
func (m *Module) Dump() string {
	var b strings.Builder
	if m.TargetTriple != "" {
		fmt.Fprintf(&b, "target triple = %q\n", m.TargetTriple)
	}
	if m.DataLayout != "" {
		fmt.Fprintf(&b, "target datalayout = %q\n", m.DataLayout)
	}
	if m.TargetTriple != "" || m.DataLayout != "" {
		b.WriteByte('\n')
	}

	for i := range m.Globals {
		g := &m.Globals[i]
		fmt.Fprintf(&b, "@%s = %s addrspace(%d) %s%s", globalName(g, i), linkageName(g.Linkage),
			g.AddressSpace, globalQual(g), m.typeName(g.Type))
		if g.HasInit {
			fmt.Fprintf(&b, " %s", m.constName(g.Init))
		}
		if g.Align != 0 {
			fmt.Fprintf(&b, ", align %d", g.Align)
		}
		b.WriteByte('\n')
	}
	if len(m.Globals) > 0 {
		b.WriteByte('\n')
	}

	for i := range m.Functions {
		f := &m.Functions[i]
		if f.Dead {
			continue
		}
		m.dumpFunction(&b, f)
		b.WriteByte('\n')
	}
	return b.String()
}

func globalName(g *Global, i int) string {
	if g.Name != "" {
		return g.Name
	}
	return fmt.Sprintf("g%d", i)
}

func globalQual(g *Global) string {
	var q string
	if g.UnnamedAddr {
		q += "unnamed_addr "
	}
	if g.Constant {
		q += "constant "
	} else {
		q += "global "
	}
	return q
}

func linkageName(l Linkage) string {
	switch l {
	case LinkageInternal:
		return "internal"
	case LinkagePrivate:
		return "private"
	case LinkageLinkOnceODR:
		return "linkonce_odr"
	case LinkageImport:
		return "external"
	default:
		return "external"
	}
}

func convName(c CallingConvention) string {
	if c == CallSPIRKernel {
		return "spir_kernel"
	}
	return "spir_func"
}

func attrName(a FuncAttr) string {
	switch a {
	case FuncAttrOptimizeNone:
		return "optnone"
	case FuncAttrNoInline:
		return "noinline"
	case FuncAttrAlwaysInline:
		return "alwaysinline"
	case FuncAttrConvergent:
		return "convergent"
	default:
		return "?"
	}
}

func paramAttrName(a ParamAttr) string {
	switch a {
	case ParamAttrZext:
		return "zeroext"
	case ParamAttrSext:
		return "signext"
	case ParamAttrByVal:
		return "byval"
	case ParamAttrSret:
		return "sret"
	case ParamAttrNoAlias:
		return "noalias"
	case ParamAttrNoCapture:
		return "nocapture"
	case ParamAttrNoWrite:
		return "readonly"
	case ParamAttrNoReadWrite:
		return "writeonly"
	case ParamAttrNoUndef:
		return "noundef"
	case ParamAttrReadNone:
		return "readnone"
	default:
		return "?"
	}
}

func (m *Module) typeName(h TypeHandle) string {
	t := &m.Types[h]
	switch inner := t.Inner.(type) {
	case VoidType:
		return "void"
	case IntType:
		return fmt.Sprintf("i%d", inner.Width)
	case FloatType:
		switch inner.Width {
		case 16:
			return "half"
		case 64:
			return "double"
		default:
			return "float"
		}
	case VectorType:
		return fmt.Sprintf("<%d x %s>", inner.Count, m.typeName(inner.Elem))
	case MatrixType:
		return fmt.Sprintf("[%d x %s]", inner.Columns, m.typeName(inner.Column))
	case ArrayType:
		return fmt.Sprintf("[%d x %s]", inner.Length, m.typeName(inner.Elem))
	case PointerType:
		if inner.Incomplete {
			return fmt.Sprintf("ptr addrspace(%d) opaque", inner.AddressSpace)
		}
		return fmt.Sprintf("%s addrspace(%d)*", m.typeName(inner.Pointee), inner.AddressSpace)
	case FunctionType:
		params := make([]string, len(inner.Params))
		for i, p := range inner.Params {
			params[i] = m.typeName(p)
		}
		return fmt.Sprintf("%s (%s)", m.typeName(inner.Return), strings.Join(params, ", "))
	case StructType:
		if t.Name != "" {
			return "%" + t.Name
		}
		members := make([]string, len(inner.Members))
		for i, mem := range inner.Members {
			members[i] = m.typeName(mem)
		}
		body := "{ " + strings.Join(members, ", ") + " }"
		if inner.Packed {
			return "<" + body + ">"
		}
		return body
	case ImageType:
		names := map[ImageKind]string{
			Image1D: "image1d_t", Image1DArray: "image1d_array_t",
			Image2D: "image2d_t", Image2DArray: "image2d_array_t",
			Image3D: "image3d_t", Image1DBuffer: "image1d_buffer_t",
		}
		return names[inner.Kind]
	case SamplerType:
		return "sampler_t"
	case EventType:
		return "event_t"
	case OpaqueType:
		return "%" + inner.Name
	default:
		return "?"
	}
}

func (m *Module) constName(h ConstHandle) string {
	c := &m.Constants[h]
	switch v := c.Value.(type) {
	case IntConst:
		return fmt.Sprintf("%d", v.Bits)
	case FloatConst:
		return fmt.Sprintf("0x%X", v.Bits)
	case BoolConst:
		if v.Value {
			return "true"
		}
		return "false"
	case NullConst:
		return "zeroinitializer"
	case UndefConst:
		return "undef"
	case CompositeConst:
		elems := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = m.constName(e)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case SpecConst:
		return fmt.Sprintf("spec(%s)", constValueText(v.Inner))
	case SpecConstantOp:
		return fmt.Sprintf("specop(%d)", v.InnerOp)
	default:
		return "?"
	}
}

func constValueText(v ConstPayload) string {
	switch cv := v.(type) {
	case IntConst:
		return fmt.Sprintf("%d", cv.Bits)
	case FloatConst:
		return fmt.Sprintf("0x%X", cv.Bits)
	case BoolConst:
		if cv.Value {
			return "true"
		}
		return "false"
	default:
		return "?"
	}
}

func (m *Module) valueName(v ValueHandle) string {
	if c, ok := v.AsConst(); ok {
		return m.constName(c)
	}
	if g, ok := v.AsGlobal(); ok {
		return "@" + globalName(&m.Globals[g], int(g))
	}
	return fmt.Sprintf("%%v%d", uint32(v))
}

func (m *Module) dumpFunction(b *strings.Builder, f *Function) {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		s := m.typeName(p.Type)
		for _, a := range p.Attrs {
			s += " " + paramAttrName(a)
		}
		if p.HasDereferenceable {
			s += fmt.Sprintf(" dereferenceable(%d)", p.DereferenceableBytes)
		}
		s += " " + m.valueName(p.Value)
		params[i] = s
	}
	variadic := ""
	if f.Variadic {
		variadic = ", ..."
	}
	kw := "define"
	if f.IsDeclaration {
		kw = "declare"
	}
	fmt.Fprintf(b, "%s %s %s %s @%s(%s%s)", kw, linkageName(f.Linkage), convName(f.Conv),
		m.typeName(f.RetType), f.Name, strings.Join(params, ", "), variadic)
	for _, a := range f.Attrs {
		fmt.Fprintf(b, " %s", attrName(a))
	}
	if f.HasWorkgroupSize {
		fmt.Fprintf(b, " !reqd_work_group_size [%d, %d, %d]", f.WorkgroupSize[0], f.WorkgroupSize[1], f.WorkgroupSize[2])
	}
	if f.HasSizeHint {
		fmt.Fprintf(b, " !work_group_size_hint [%d, %d, %d]", f.WorkgroupSizeHint[0], f.WorkgroupSizeHint[1], f.WorkgroupSizeHint[2])
	}
	if f.HasVecTypeHint {
		fmt.Fprintf(b, " !vec_type_hint %s", m.typeName(f.VecTypeHint))
	}
	if f.HasSubgroupSize {
		fmt.Fprintf(b, " !intel_reqd_sub_group_size %d", f.ReqdSubgroupSize)
	}
	if f.HasMaxWorkDim {
		fmt.Fprintf(b, " !max_work_dim %d", f.MaxWorkDim)
	}
	if f.KernelArgs != nil {
		names := make([]string, len(f.KernelArgs))
		for i, ka := range f.KernelArgs {
			names[i] = fmt.Sprintf("{%d %q %q %q %q %q}", ka.AddrSpace, ka.AccessQual, ka.TypeName, ka.BaseTypeName, ka.TypeQual, ka.ArgName)
		}
		fmt.Fprintf(b, " !kernel_args [%s]", strings.Join(names, ", "))
	}
	if f.IsDeclaration {
		b.WriteString("\n")
		return
	}
	b.WriteString(" {\n")

	order := make([]int, len(f.Blocks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, c int) bool { return f.Blocks[order[a]].Seq < f.Blocks[order[c]].Seq })
	for _, bi := range order {
		blk := &f.Blocks[bi]
		fmt.Fprintf(b, "%s:", blk.Name)
		if blk.Unroll == UnrollEnable {
			b.WriteString(" ; llvm.loop.unroll.enable")
		} else if blk.Unroll == UnrollDisable {
			b.WriteString(" ; llvm.loop.unroll.disable")
		}
		b.WriteByte('\n')
		for ii := range blk.Insts {
			m.dumpInst(b, f, &blk.Insts[ii])
		}
	}
	b.WriteString("}\n")
}

func opText(op Op) string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpUDiv:
		return "udiv"
	case OpSDiv:
		return "sdiv"
	case OpFDiv:
		return "fdiv"
	case OpURem:
		return "urem"
	case OpSRem:
		return "srem"
	case OpFRem:
		return "frem"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpShl:
		return "shl"
	case OpLShr:
		return "lshr"
	case OpAShr:
		return "ashr"
	case OpFAdd:
		return "fadd"
	case OpFSub:
		return "fsub"
	case OpFMul:
		return "fmul"
	case OpNeg:
		return "neg"
	case OpFNeg:
		return "fneg"
	case OpNot:
		return "not"
	case OpAlloca:
		return "alloca"
	case OpLoad:
		return "load"
	case OpStore:
		return "store"
	case OpMemCpy:
		return "memcpy"
	case OpMemSet:
		return "memset"
	case OpLifetimeStart:
		return "lifetime.start"
	case OpLifetimeStop:
		return "lifetime.end"
	case OpGEP:
		return "getelementptr"
	case OpArrayLength:
		return "arraylength"
	case OpBitcast:
		return "bitcast"
	case OpTrunc:
		return "trunc"
	case OpZExt:
		return "zext"
	case OpSExt:
		return "sext"
	case OpFPTrunc:
		return "fptrunc"
	case OpFPExt:
		return "fpext"
	case OpFPToUI:
		return "fptoui"
	case OpFPToSI:
		return "fptosi"
	case OpUIToFP:
		return "uitofp"
	case OpSIToFP:
		return "sitofp"
	case OpPtrToInt:
		return "ptrtoint"
	case OpIntToPtr:
		return "inttoptr"
	case OpICmpEq:
		return "icmp eq"
	case OpICmpNe:
		return "icmp ne"
	case OpICmpUGT:
		return "icmp ugt"
	case OpICmpUGE:
		return "icmp uge"
	case OpICmpULT:
		return "icmp ult"
	case OpICmpULE:
		return "icmp ule"
	case OpICmpSGT:
		return "icmp sgt"
	case OpICmpSGE:
		return "icmp sge"
	case OpICmpSLT:
		return "icmp slt"
	case OpICmpSLE:
		return "icmp sle"
	case OpFCmpOEQ:
		return "fcmp oeq"
	case OpFCmpONE:
		return "fcmp one"
	case OpFCmpOGT:
		return "fcmp ogt"
	case OpFCmpOGE:
		return "fcmp oge"
	case OpFCmpOLT:
		return "fcmp olt"
	case OpFCmpOLE:
		return "fcmp ole"
	case OpFCmpUEQ:
		return "fcmp ueq"
	case OpFCmpUNE:
		return "fcmp une"
	case OpSelect:
		return "select"
	case OpExtractValue:
		return "extractvalue"
	case OpInsertValue:
		return "insertvalue"
	case OpExtractElement:
		return "extractelement"
	case OpInsertElement:
		return "insertelement"
	case OpShuffleVector:
		return "shufflevector"
	case OpCompositeConstruct:
		return "compositeconstruct"
	case OpCall, OpCallExt:
		return "call"
	case OpAtomicLoad:
		return "atomic load"
	case OpAtomicStore:
		return "atomic store"
	case OpControlBarrier:
		return "control.barrier"
	case OpMemoryBarrier:
		return "memory.barrier"
	case OpUndef:
		return "undef"
	case OpPhi:
		return "phi"
	case OpBr:
		return "br"
	case OpCondBr:
		return "br i1"
	case OpSwitch:
		return "switch"
	case OpRet:
		return "ret void"
	case OpRetValue:
		return "ret"
	case OpUnreachable:
		return "unreachable"
	case OpKill:
		return "unreachable"
	default:
		return fmt.Sprintf("op%d", op)
	}
}

func (m *Module) dumpInst(b *strings.Builder, f *Function, inst *Instruction) {
	b.WriteString("  ")
	if inst.HasResult {
		fmt.Fprintf(b, "%s = ", m.valueName(inst.Result))
	}
	b.WriteString(opText(inst.Op))
	if inst.NoUnsignedWrap {
		b.WriteString(" nuw")
	}
	if inst.NoSignedWrap {
		b.WriteString(" nsw")
	}
	if inst.Volatile {
		b.WriteString(" volatile")
	}
	if inst.InBounds {
		b.WriteString(" inbounds")
	}
	if inst.Op == OpCall || inst.Op == OpCallExt {
		fmt.Fprintf(b, " @%s", inst.Callee)
	}
	if inst.HasResult {
		fmt.Fprintf(b, " %s", m.typeName(inst.Type))
	}
	for i, o := range inst.Operands {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(m.valueName(o))
		if attrs := instParamAttrs(inst, i); attrs != "" {
			b.WriteString(attrs)
		}
	}
	if len(inst.Indices) > 0 {
		fmt.Fprintf(b, " indices %v", inst.Indices)
	}
	for _, tgt := range inst.Targets {
		fmt.Fprintf(b, " label %%%s", f.Blocks[tgt].Name)
	}
	if inst.Op == OpSwitch {
		fmt.Fprintf(b, " default %%%s", f.Blocks[inst.Default].Name)
		for _, cs := range inst.Cases {
			fmt.Fprintf(b, " [%d -> %%%s]", cs.Literal, f.Blocks[cs.Target].Name)
		}
	}
	if inst.Op == OpPhi {
		for _, in := range inst.Incoming {
			fmt.Fprintf(b, " [%s, %%%s]", m.valueName(in.Value), f.Blocks[in.Block].Name)
		}
	}
	if inst.MemSize != 0 {
		fmt.Fprintf(b, " size %d", inst.MemSize)
	}
	if inst.Aligned && inst.Alignment != 0 {
		fmt.Fprintf(b, ", align %d", inst.Alignment)
	}
	for _, a := range inst.CallAttrs {
		switch a {
		case CallAttrNoMerge:
			b.WriteString(" nomerge")
		case CallAttrNoDuplicate:
			b.WriteString(" noduplicate")
		case CallAttrConvergent:
			b.WriteString(" convergent")
		}
	}
	if inst.HasBranchWeights {
		fmt.Fprintf(b, " !branch_weights [%d, %d]", inst.BranchWeights[0], inst.BranchWeights[1])
	}
	if inst.HasLoc {
		fmt.Fprintf(b, " !dbg !%d", inst.Loc)
	}
	b.WriteByte('\n')
}

func instParamAttrs(inst *Instruction, i int) string {
	if i >= len(inst.ParamAttrs) || len(inst.ParamAttrs[i]) == 0 {
		return ""
	}
	var s string
	for _, a := range inst.ParamAttrs[i] {
		s += " " + paramAttrName(a)
	}
	return s
}
