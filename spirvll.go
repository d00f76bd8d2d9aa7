// Package spirvll translates binary SPIR-V compute modules into a typed,
// SSA-form low-level IR plus debug metadata, for consumption by a
// backend code generator.
//
// The package follows the same front-door convention as the rest of the
// repository's internals: Translate is a thin composition of the binary
// reader (spirvbin), the dispatch core (translator), and the IR arena
// (llir); callers needing finer control use those packages directly.
package spirvll

import (
	"github.com/oneapi-go/spirv-ll/device"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirv"
	"github.com/oneapi-go/spirv-ll/spirvbin"
	"github.com/oneapi-go/spirv-ll/translator"
)

// Options carries everything a translation consults besides the module
// words themselves: the target device description and the optional
// link-time specialization constant overrides.
type Options struct {
	Device   device.DeviceDescriptor
	SpecInfo device.SpecInfoProvider
}

// DefaultOptions targets a 64-bit device with no specialization info.
func DefaultOptions() Options {
	return Options{Device: device.DeviceDescriptor{AddressBits: 64}}
}

// Result is a completed translation: the IR module and the translator
// whose ModuleState/DebugBuilder remain readable for downstream
// consumers (kernel metadata, debug locations).
type Result struct {
	Module     *llir.Module
	Translator *translator.Translator
}

// Translate decodes and translates a binary SPIR-V module.
func Translate(binary []byte, opts Options) (*Result, error) {
	r, err := spirvbin.NewReader(binary)
	if err != nil {
		return nil, err
	}
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return TranslateRecords(records, opts)
}

// TranslateRecords translates an already-decoded opcode-record stream,
// the entry point spec.md §2 defines for the dispatch core proper.
func TranslateRecords(records []spirv.OpcodeRecord, opts Options) (*Result, error) {
	tr := translator.New(opts.Device, opts.SpecInfo)
	mod, err := tr.Translate(records)
	if err != nil {
		return nil, err
	}
	return &Result{Module: mod, Translator: tr}, nil
}
