package translator

import (
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// undefShuffleLane is the literal marking an "undef lane" in an
// OpVectorShuffle mask (spec.md §4.1.9).
const undefShuffleLane = 0xFFFFFFFF

// translateComposite implements spec.md §4.1.9: vectors use
// extract/insert-element, structs and arrays use extract/insert-value.
func (t *Translator) translateComposite(rec spirv.OpcodeRecord) error {
	switch rec.Op {
	case spirv.OpVectorExtractDynamic:
		return t.translateVectorExtract(rec)
	case spirv.OpVectorInsertDynamic:
		return t.translateVectorInsert(rec)
	case spirv.OpVectorShuffle:
		return t.translateVectorShuffle(rec)
	case spirv.OpCompositeConstruct:
		return t.translateCompositeConstruct(rec)
	case spirv.OpCompositeExtract:
		return t.translateCompositeExtract(rec)
	case spirv.OpCompositeInsert:
		return t.translateCompositeInsert(rec)
	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable composite dispatch")
	}
}

func (t *Translator) translateVectorExtract(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	vec, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	idx, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	v, err := t.appendInst(llir.Instruction{
		Op: llir.OpExtractElement, HasResult: true, Type: resTy,
		Operands: []llir.ValueHandle{vec, idx},
	})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateVectorInsert(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	vec, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	elem, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	idx, err := t.value(rec.Id(4))
	if err != nil {
		return err
	}
	v, err := t.appendInst(llir.Instruction{
		Op: llir.OpInsertElement, HasResult: true, Type: resTy,
		Operands: []llir.ValueHandle{vec, elem, idx},
	})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateVectorShuffle(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	v1, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	v2, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	mask := make([]uint32, 0, rec.Len()-4)
	for i := 4; i < rec.Len(); i++ {
		mask = append(mask, rec.MustWord(i))
	}
	v, err := t.appendInst(llir.Instruction{
		Op: llir.OpShuffleVector, HasResult: true, Type: resTy,
		Operands: []llir.ValueHandle{v1, v2},
		Indices:  mask,
	})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

// translateCompositeConstruct seeds from an undef value of the result
// type and inserts constituents in order (spec.md §4.1.9).
func (t *Translator) translateCompositeConstruct(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	constituents, err := t.values(rec, 2)
	if err != nil {
		return err
	}

	if _, isVec := t.builder.Type(resTy).Inner.(llir.VectorType); isVec {
		v, err := t.appendInst(llir.Instruction{
			Op: llir.OpCompositeConstruct, HasResult: true, Type: resTy,
			Operands: constituents,
		})
		if err != nil {
			return err
		}
		t.bindValue(rec, resTyID, resID, v)
		return nil
	}

	acc := llir.ConstValue(t.builder.UndefConstant(resTy))
	for i, c := range constituents {
		next, err := t.appendInst(llir.Instruction{
			Op: llir.OpInsertValue, HasResult: true, Type: resTy,
			Operands: []llir.ValueHandle{acc, c},
			Indices:  []uint32{uint32(i)},
		})
		if err != nil {
			return err
		}
		acc = next
	}
	t.bindValue(rec, resTyID, resID, acc)
	return nil
}

func (t *Translator) translateCompositeExtract(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	agg, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	aggTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	indices := make([]uint32, 0, rec.Len()-3)
	for i := 3; i < rec.Len(); i++ {
		indices = append(indices, rec.MustWord(i))
	}

	if _, isVec := t.builder.Type(aggTy).Inner.(llir.VectorType); isVec && len(indices) == 1 {
		i32 := t.builder.IntType(32, false)
		idx := llir.ConstValue(t.builder.IntConstant(i32, uint64(indices[0])))
		v, err := t.appendInst(llir.Instruction{
			Op: llir.OpExtractElement, HasResult: true, Type: resTy,
			Operands: []llir.ValueHandle{agg, idx},
		})
		if err != nil {
			return err
		}
		t.bindValue(rec, resTyID, resID, v)
		return nil
	}

	v, err := t.appendInst(llir.Instruction{
		Op: llir.OpExtractValue, HasResult: true, Type: resTy,
		Operands: []llir.ValueHandle{agg},
		Indices:  indices,
	})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateCompositeInsert(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	obj, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	agg, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	indices := make([]uint32, 0, rec.Len()-4)
	for i := 4; i < rec.Len(); i++ {
		indices = append(indices, rec.MustWord(i))
	}

	if _, isVec := t.builder.Type(resTy).Inner.(llir.VectorType); isVec && len(indices) == 1 {
		i32 := t.builder.IntType(32, false)
		idx := llir.ConstValue(t.builder.IntConstant(i32, uint64(indices[0])))
		v, err := t.appendInst(llir.Instruction{
			Op: llir.OpInsertElement, HasResult: true, Type: resTy,
			Operands: []llir.ValueHandle{agg, obj, idx},
		})
		if err != nil {
			return err
		}
		t.bindValue(rec, resTyID, resID, v)
		return nil
	}

	v, err := t.appendInst(llir.Instruction{
		Op: llir.OpInsertValue, HasResult: true, Type: resTy,
		Operands: []llir.ValueHandle{agg, obj},
		Indices:  indices,
	})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}
