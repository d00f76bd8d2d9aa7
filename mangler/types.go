package mangler

// Kind enumerates the scalar/vector/pointer shapes a mangled builtin
// argument can take.
type Kind uint8

const (
	KindVoid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindVector
	KindPointer
)

// AddressSpace mirrors llir.AddressSpace; restated here so mangler has
// no dependency on the IR package (only translator imports both).
type AddressSpace uint32

const (
	AddressSpacePrivate        AddressSpace = 0
	AddressSpaceGlobal         AddressSpace = 1
	AddressSpaceConstant       AddressSpace = 2
	AddressSpaceLocal          AddressSpace = 3
	AddressSpaceGeneric        AddressSpace = 4
)

// ArgType is one argument's mangling-relevant shape. Width is in bits
// for KindInt/KindFloat, and is the element width for KindVector.
type ArgType struct {
	Kind  Kind
	Width uint8
	Signed bool // KindInt only; OpenCL has no unsigned float

	// KindVector only.
	ElemKind  Kind
	ElemCount uint32

	// KindPointer only.
	Pointee  *ArgType
	AddrSpace AddressSpace
	Const     bool
	Volatile  bool
}

// Int builds a scalar integer argument type.
func Int(width uint8, signed bool) ArgType { return ArgType{Kind: KindInt, Width: width, Signed: signed} }

// Float builds a scalar floating-point argument type.
func Float(width uint8) ArgType { return ArgType{Kind: KindFloat, Width: width} }

// Bool builds the scalar OpenCL bool argument type.
func Bool() ArgType { return ArgType{Kind: KindBool} }

// Vector builds a fixed-width vector argument type.
func Vector(elemKind Kind, elemWidth uint8, count uint32) ArgType {
	return ArgType{Kind: KindVector, ElemKind: elemKind, Width: elemWidth, ElemCount: count}
}

// Pointer builds a pointer argument type.
func Pointer(pointee ArgType, as AddressSpace, constQual, volatileQual bool) ArgType {
	return ArgType{Kind: KindPointer, Pointee: &pointee, AddrSpace: as, Const: constQual, Volatile: volatileQual}
}
