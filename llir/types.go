package llir

import (
	"bytes"
	"fmt"
	"strconv"
)

// Type is a named or anonymous entry in the module's type arena.
type Type struct {
	Name  string
	Inner TypeInner
}

// TypeInner is the structural payload of a Type. Each concrete kind below
// mirrors one family of SPIR-V type opcodes (spec.md §4.1.2).
type TypeInner interface{ typeInner() }

type VoidType struct{}

func (VoidType) typeInner() {}

// IntType is also used for OpTypeBool (Width==1).
type IntType struct {
	Width  uint8
	Signed bool
}

func (IntType) typeInner() {}

type FloatType struct{ Width uint8 }

func (FloatType) typeInner() {}

type VectorType struct {
	Elem  TypeHandle
	Count uint32
}

func (VectorType) typeInner() {}

// MatrixType is an array of column vectors, per spec.md §4.1.2.
type MatrixType struct {
	Column  TypeHandle
	Columns uint32
}

func (MatrixType) typeInner() {}

type ArrayType struct {
	Elem   TypeHandle
	Length uint32 // 0 for OpTypeRuntimeArray
}

func (ArrayType) typeInner() {}

type PointerType struct {
	Pointee      TypeHandle
	AddressSpace AddressSpace
	// Incomplete is true while the pointee has not yet been fully
	// resolved (a forward pointer awaiting its OpTypePointer target).
	Incomplete bool
}

func (PointerType) typeInner() {}

// AddressSpace mirrors the LLVM-style address space numbering the
// original assigns from SPIR-V StorageClass (spec.md §4.1.5).
type AddressSpace uint32

const (
	AddressSpacePrivate        AddressSpace = 0
	AddressSpaceCrossWorkgroup AddressSpace = 1
	AddressSpaceUniformConstant AddressSpace = 2
	AddressSpaceWorkgroup      AddressSpace = 3
	AddressSpaceGeneric        AddressSpace = 4
)

type FunctionType struct {
	Return TypeHandle
	Params []TypeHandle
}

func (FunctionType) typeInner() {}

type StructType struct {
	Members []TypeHandle
	Packed  bool
	// Incomplete is true for an empty named aggregate emitted ahead of a
	// forward-declared member pointer being resolved (spec.md §4.1.2).
	Incomplete bool
}

func (StructType) typeInner() {}

// ImageKind enumerates the collapsed dim+arrayed product spec.md §4.1.2
// requires (one of image1d, image1d_array, image2d, image2d_array,
// image3d, image1d_buffer).
type ImageKind uint8

const (
	Image1D ImageKind = iota
	Image1DArray
	Image2D
	Image2DArray
	Image3D
	Image1DBuffer
)

type ImageType struct{ Kind ImageKind }

func (ImageType) typeInner() {}

type SamplerType struct{}

func (SamplerType) typeInner() {}

type EventType struct{}

func (EventType) typeInner() {}

// OpaqueType covers OpTypeOpaque and the unsupported-but-representable
// OpTypeQueue/OpTypeReserveId/OpTypePipe/OpTypeDeviceEvent shapes, kept
// distinct by Name so a later consumer can special-case them.
type OpaqueType struct{ Name string }

func (OpaqueType) typeInner() {}

// TypeTable deduplicates types by a structural key, the same arrangement
// as ir.TypeRegistry.normalizeType: a reusable byte buffer for the hot,
// cheaply-serializable cases and fmt.Sprintf for the cold ones.
type TypeTable struct {
	m       *Module
	byKey   map[string]TypeHandle
	keyBuf  bytes.Buffer
}

func newTypeTable(m *Module) *TypeTable {
	return &TypeTable{m: m, byKey: make(map[string]TypeHandle)}
}

// GetOrCreate returns the existing handle for an identical type, or
// appends a new Type and returns its handle. Incomplete struct/pointer
// types are never deduplicated (each forward declaration is distinct
// until resolved), matching spec.md's struct/pointer forward-reference
// handling in §3 and §4.1.2.
func (t *TypeTable) GetOrCreate(name string, inner TypeInner) TypeHandle {
	if !dedupable(inner) {
		t.m.Types = append(t.m.Types, Type{Name: name, Inner: inner})
		return TypeHandle(len(t.m.Types) - 1)
	}
	key := t.normalizeType(name, inner)
	if h, ok := t.byKey[key]; ok {
		return h
	}
	t.m.Types = append(t.m.Types, Type{Name: name, Inner: inner})
	h := TypeHandle(len(t.m.Types) - 1)
	t.byKey[key] = h
	return h
}

func dedupable(inner TypeInner) bool {
	switch v := inner.(type) {
	case PointerType:
		return !v.Incomplete
	case StructType:
		return !v.Incomplete
	default:
		return true
	}
}

func (t *TypeTable) normalizeType(name string, inner TypeInner) string {
	t.keyBuf.Reset()
	t.keyBuf.WriteString(name)
	t.keyBuf.WriteByte(0)
	switch v := inner.(type) {
	case VoidType:
		t.keyBuf.WriteString("void")
	case IntType:
		t.keyBuf.WriteString("int")
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.Width), 10))
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendBool(nil, v.Signed))
	case FloatType:
		t.keyBuf.WriteString("float")
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.Width), 10))
	case VectorType:
		t.keyBuf.WriteString("vector")
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.Elem), 10))
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.Count), 10))
	case MatrixType:
		t.keyBuf.WriteString("matrix")
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.Column), 10))
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.Columns), 10))
	case ArrayType:
		t.keyBuf.WriteString("array")
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.Elem), 10))
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.Length), 10))
	case PointerType:
		t.keyBuf.WriteString("pointer")
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.Pointee), 10))
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.AddressSpace), 10))
	case FunctionType:
		return fmt.Sprintf("function\x00%s\x00%d\x00%v", name, v.Return, v.Params)
	case StructType:
		return fmt.Sprintf("struct\x00%s\x00%v\x00%v", name, v.Members, v.Packed)
	case ImageType:
		t.keyBuf.WriteString("image")
		t.keyBuf.WriteByte(0)
		t.keyBuf.Write(strconv.AppendUint(nil, uint64(v.Kind), 10))
	case SamplerType:
		t.keyBuf.WriteString("sampler")
	case EventType:
		t.keyBuf.WriteString("event")
	case OpaqueType:
		return fmt.Sprintf("opaque\x00%s", v.Name)
	default:
		return fmt.Sprintf("unknown\x00%s\x00%#v", name, inner)
	}
	return t.keyBuf.String()
}

// Count reports the number of distinct types registered so far.
func (t *TypeTable) Count() int { return len(t.m.Types) }
