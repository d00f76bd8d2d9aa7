package translator

import (
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/mangler"
	"github.com/oneapi-go/spirv-ll/spirv"
)

// samplerInitializer is the well-known builtin that turns a literal
// sampler bit pattern into a real sampler value (spec.md §4.1.3,
// §4.1.10).
const samplerInitializer = "__translate_sampler_initializer"

// translateImage implements spec.md §4.1.10: sampled-image pairing,
// reads/writes, and queries. Shader-only image opcodes are recognized
// but emit no IR.
func (t *Translator) translateImage(rec spirv.OpcodeRecord) error {
	if spirv.ShaderOnlyOpcodes[rec.Op] {
		if rec.Len() > 1 {
			t.bindMarker(rec, rec.Id(1))
		}
		return nil
	}
	switch rec.Op {
	case spirv.OpSampledImage:
		return t.translateSampledImage(rec)
	case spirv.OpImage:
		return t.translateOpImage(rec)
	case spirv.OpImageSampleExplicitLod:
		return t.translateImageSample(rec)
	case spirv.OpImageRead:
		return t.translateImageRead(rec)
	case spirv.OpImageWrite:
		return t.translateImageWrite(rec)
	case spirv.OpImageQuerySize, spirv.OpImageQuerySizeLod:
		return t.translateImageQuerySize(rec)
	case spirv.OpImageQueryFormat:
		return t.translateImageQuery(rec, "get_image_channel_data_type")
	case spirv.OpImageQueryOrder:
		return t.translateImageQuery(rec, "get_image_channel_order")
	case spirv.OpImageQueryLod, spirv.OpImageQueryLevels, spirv.OpImageQuerySamples:
		// Mip/multisample queries need Shader or ImageMipmap features
		// the kernel environment does not carry.
		t.bindMarker(rec, rec.Id(1))
		return nil
	default:
		return spirv.NewError(spirv.UnsupportedOpcode, rec.Op, "unreachable image dispatch")
	}
}

// translateSampledImage pairs an image with a sampler. A literal
// sampler (from OpConstantSampler) is materialized through the
// initializer builtin first (spec.md §4.1.10).
func (t *Translator) translateSampledImage(rec spirv.OpcodeRecord) error {
	resID := rec.Id(1)
	imageID, samplerID := rec.Id(2), rec.Id(3)
	image, err := t.value(imageID)
	if err != nil {
		return err
	}
	sampler, err := t.value(samplerID)
	if err != nil {
		return err
	}
	if _, isLiteral := t.intConstValue(samplerID); isLiteral {
		samplerTy := t.builder.SamplerType()
		i32 := mangler.Int(32, true)
		sampler, err = t.callBuiltin(samplerTy, true, samplerInitializer,
			[]mangler.ArgType{i32}, []llir.ValueHandle{sampler})
		if err != nil {
			return err
		}
	}
	t.state.sampledImages[resID] = sampledImagePair{Image: image, Sampler: sampler}
	t.bindMarker(rec, resID)
	return nil
}

// translateOpImage unpacks the stored pair and yields the image.
func (t *Translator) translateOpImage(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	pair, ok := t.state.sampledImages[rec.Id(2)]
	if !ok {
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, rec.Id(2), "operand is not a sampled image")
	}
	imgTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	t.bindTypedValue(rec, resTyID, imgTy, resID, pair.Image)
	return nil
}

func (t *Translator) imageArgType(ty llir.TypeHandle) mangler.ArgType {
	// Images mangle as opaque pointers into the global address space.
	return mangler.Pointer(mangler.ArgType{Kind: mangler.KindVoid}, mangler.AddressSpaceGlobal, false, false)
}

func (t *Translator) translateImageSample(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	pair, ok := t.state.sampledImages[rec.Id(2)]
	if !ok {
		return spirv.NewErrorId(spirv.MalformedInstruction, rec.Op, rec.Id(2), "operand is not a sampled image")
	}
	coord, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	coordTy, err := t.valueType(rec.Id(3))
	if err != nil {
		return err
	}
	samplerAT := mangler.Pointer(mangler.ArgType{Kind: mangler.KindVoid}, mangler.AddressSpaceConstant, false, false)
	argTypes := []mangler.ArgType{
		t.imageArgType(resTy),
		samplerAT,
		t.argTypeOf(coordTy, forceSigned, false),
	}
	v, err := t.callBuiltin(resTy, true, "read_image", argTypes,
		[]llir.ValueHandle{pair.Image, pair.Sampler, coord})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateImageRead(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	image, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	imageTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	coord, err := t.value(rec.Id(3))
	if err != nil {
		return err
	}
	coordTy, err := t.valueType(rec.Id(3))
	if err != nil {
		return err
	}
	argTypes := []mangler.ArgType{
		t.imageArgType(imageTy),
		t.argTypeOf(coordTy, forceSigned, false),
	}
	v, err := t.callBuiltin(resTy, true, "read_image", argTypes, []llir.ValueHandle{image, coord})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}

func (t *Translator) translateImageWrite(rec spirv.OpcodeRecord) error {
	image, err := t.value(rec.Id(0))
	if err != nil {
		return err
	}
	imageTy, err := t.valueType(rec.Id(0))
	if err != nil {
		return err
	}
	coord, err := t.value(rec.Id(1))
	if err != nil {
		return err
	}
	coordTy, err := t.valueType(rec.Id(1))
	if err != nil {
		return err
	}
	texel, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	texelTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	argTypes := []mangler.ArgType{
		t.imageArgType(imageTy),
		t.argTypeOf(coordTy, forceSigned, false),
		t.argTypeOf(texelTy, nil, false),
	}
	_, err = t.callBuiltin(t.builder.VoidType(), false, "write_image", argTypes,
		[]llir.ValueHandle{image, coord, texel})
	return err
}

// translateImageQuerySize composes per-dimension get_image_* queries
// into the result shape (spec.md §4.1.10).
func (t *Translator) translateImageQuerySize(rec spirv.OpcodeRecord) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	image, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	imageTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	imgArg := []mangler.ArgType{t.imageArgType(imageTy)}
	i32 := t.builder.IntType(32, true)

	elem, lanes := t.scalarOf(resTy)
	if lanes == 0 {
		v, err := t.callBuiltin(resTy, true, "get_image_width", imgArg, []llir.ValueHandle{image})
		if err != nil {
			return err
		}
		t.bindValue(rec, resTyID, resID, v)
		return nil
	}

	queries := []string{"get_image_width", "get_image_height", "get_image_depth"}
	kind, isImg := t.builder.Type(imageTy).Inner.(llir.ImageType)
	if isImg && (kind.Kind == llir.Image1DArray || kind.Kind == llir.Image2DArray) {
		queries[int(lanes)-1] = "get_image_array_size"
	}
	acc := llir.ConstValue(t.builder.UndefConstant(resTy))
	for i := uint32(0); i < lanes && int(i) < len(queries); i++ {
		q, err := t.callBuiltin(i32, true, queries[i], imgArg, []llir.ValueHandle{image})
		if err != nil {
			return err
		}
		dimVal := q
		if elem != i32 {
			if dimVal, err = t.appendInst(llir.Instruction{Op: llir.OpZExt, HasResult: true, Type: elem, Operands: []llir.ValueHandle{q}}); err != nil {
				return err
			}
		}
		idx := llir.ConstValue(t.builder.IntConstant(t.builder.IntType(32, false), uint64(i)))
		if acc, err = t.appendInst(llir.Instruction{
			Op: llir.OpInsertElement, HasResult: true, Type: resTy,
			Operands: []llir.ValueHandle{acc, dimVal, idx},
		}); err != nil {
			return err
		}
	}
	t.bindValue(rec, resTyID, resID, acc)
	return nil
}

func (t *Translator) translateImageQuery(rec spirv.OpcodeRecord, base string) error {
	resTyID, resID := rec.Id(0), rec.Id(1)
	resTy, err := t.state.requireType(resTyID)
	if err != nil {
		return err
	}
	image, err := t.value(rec.Id(2))
	if err != nil {
		return err
	}
	imageTy, err := t.valueType(rec.Id(2))
	if err != nil {
		return err
	}
	v, err := t.callBuiltin(resTy, true, base,
		[]mangler.ArgType{t.imageArgType(imageTy)}, []llir.ValueHandle{image})
	if err != nil {
		return err
	}
	t.bindValue(rec, resTyID, resID, v)
	return nil
}
