package llir

import (
	"fmt"
	"math"
)

// Const is one entry in the module's constant arena (spec.md §4.1.3).
type Const struct {
	Type  TypeHandle
	Value ConstPayload
}

// ConstPayload is the structural payload of a Const.
type ConstPayload interface{ constValue() }

type IntConst struct{ Bits uint64 } // sign-extended/truncated by consumers against the paired Type

func (IntConst) constValue() {}

type FloatConst struct{ Bits uint64 } // raw IEEE-754 bit pattern, width given by the paired Type

func (FloatConst) constValue() {}

type BoolConst struct{ Value bool }

func (BoolConst) constValue() {}

// NullConst is OpConstantNull: the type-appropriate zero value.
type NullConst struct{}

func (NullConst) constValue() {}

// CompositeConst is OpConstantComposite: a vector/matrix/array/struct
// built from other constants already in the arena.
type CompositeConst struct{ Elems []ConstHandle }

func (CompositeConst) constValue() {}

// UndefConst is OpUndef materialized as a constant, per the supplemented
// poison/undef base case (spec.md SUPPLEMENTED FEATURES).
type UndefConst struct{}

func (UndefConst) constValue() {}

// SpecConst marks a value as an OpSpecConstant (or OpSpecConstantTrue/
// False): it carries a default Inner value plus the SpecId decoration
// used to identify it to a device.SpecInfoProvider at link time.
type SpecConst struct {
	Inner  ConstPayload
	SpecID uint32
	HasID  bool
}

func (SpecConst) constValue() {}

// SpecConstantOp is OpSpecConstantOp: the result is computed by a real
// instruction opcode over other (possibly also spec) constant operands,
// deferred until every operand constant exists (spec.md §4.5).
type SpecConstantOp struct {
	InnerOp  uint16 // spirv.Opcode value, kept untyped here to avoid an import cycle
	Operands []ConstHandle
}

func (SpecConstantOp) constValue() {}

// ConstTable deduplicates scalar and composite constants by a structural
// key, mirroring TypeTable.normalizeType. Spec constants and
// spec-constant-ops are never deduplicated: each may be independently
// overridden at link time and so must keep a distinct identity even when
// two happen to share a default value.
type ConstTable struct {
	m     *Module
	byKey map[string]ConstHandle
}

func newConstTable(m *Module) *ConstTable {
	return &ConstTable{m: m, byKey: make(map[string]ConstHandle)}
}

func (t *ConstTable) GetOrCreate(typ TypeHandle, value ConstPayload) ConstHandle {
	if !constDedupable(value) {
		t.m.Constants = append(t.m.Constants, Const{Type: typ, Value: value})
		return ConstHandle(len(t.m.Constants) - 1)
	}
	key := t.normalizeConst(typ, value)
	if h, ok := t.byKey[key]; ok {
		return h
	}
	t.m.Constants = append(t.m.Constants, Const{Type: typ, Value: value})
	h := ConstHandle(len(t.m.Constants) - 1)
	t.byKey[key] = h
	return h
}

func constDedupable(value ConstPayload) bool {
	switch value.(type) {
	case SpecConst, SpecConstantOp:
		return false
	default:
		return true
	}
}

func (t *ConstTable) normalizeConst(typ TypeHandle, value ConstPayload) string {
	switch v := value.(type) {
	case IntConst:
		return fmt.Sprintf("int\x00%d\x00%d", typ, v.Bits)
	case FloatConst:
		return fmt.Sprintf("float\x00%d\x00%d", typ, v.Bits)
	case BoolConst:
		return fmt.Sprintf("bool\x00%d\x00%v", typ, v.Value)
	case NullConst:
		return fmt.Sprintf("null\x00%d", typ)
	case CompositeConst:
		return fmt.Sprintf("composite\x00%d\x00%v", typ, v.Elems)
	case UndefConst:
		return fmt.Sprintf("undef\x00%d", typ)
	default:
		return fmt.Sprintf("unknown\x00%d\x00%#v", typ, value)
	}
}

// Float32Bits packs a float32 into the bit pattern FloatConst stores.
func Float32Bits(f float32) uint64 { return uint64(math.Float32bits(f)) }

// Float64Bits packs a float64 into the bit pattern FloatConst stores.
func Float64Bits(f float64) uint64 { return math.Float64bits(f) }
