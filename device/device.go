// Package device describes the target OpenCL device the translator
// compiles a kernel against: its addressing width and the override
// values a link step may supply for specialization constants.
//
// Grounded on the teacher's wgsl.Capabilities-style "what does the
// target support" struct (consulted by the WGSL front end before
// lowering, the same role DeviceDescriptor plays here before the
// dispatch core resolves OpSpecConstant default values, spec.md §6).
package device

// DeviceDescriptor is the subset of target information the translator
// consults outside the module itself: the pointer width used when the
// module declares the Logical addressing model (Physical32/Physical64
// fix their own width), and whether device-side generic addressing is
// available.
type DeviceDescriptor struct {
	AddressBits    uint32 // 32 or 64
	HasGenericAddressSpace bool
}

// SpecInfoProvider supplies the caller-provided override for a
// specialization constant's SpecId, used by the translator in place of
// the module's own default literal when resolving OpSpecConstant/
// OpSpecConstantTrue/OpSpecConstantFalse (spec.md §4.5). A nil provider, or a miss reported via the second return
// value, means "use the module's default".
type SpecInfoProvider interface {
	SpecConstantOverride(specID uint32) (value uint64, ok bool)
}

// StaticSpecInfo is the simplest SpecInfoProvider: a fixed map of
// overrides supplied up front, the shape most callers use for a single
// compile (no SpecInfoProvider in the corpus; modeled directly on
// spec.md §6's description of the link-time override table).
type StaticSpecInfo map[uint32]uint64

func (s StaticSpecInfo) SpecConstantOverride(specID uint32) (uint64, bool) {
	v, ok := s[specID]
	return v, ok
}
