package dbgir

import "github.com/oneapi-go/spirv-ll/llir"

// Handle types, one per debug metadata arena, following the same
// uint32-arena-index idiom llir's TypeHandle/FuncHandle family uses (see
// llir/module.go) so a llir.Instruction's opaque Loc field can carry one
// of these without llir importing this package.
type (
	FileHandle       uint32
	CompileUnitHandle uint32
	SubprogramHandle uint32
	LexicalBlockHandle uint32
	LocationHandle   uint32
)

// File is OpSource's file/filename pairing, materialized as debug
// metadata (spec.md §4.1.1, §4.1.11).
type File struct {
	Name      string
	Directory string
}

// CompileUnit is the top-level debug-info node for the module: source
// language, producer string, and the primary File.
type CompileUnit struct {
	File     FileHandle
	Language uint32
	Producer string
}

// Subprogram is a function-scope debug-info node, lazily created either
// by the DebugInfo/OpenCL.DebugInfo.100 handler or, in implicit mode, by
// the first OpLine range closed inside the function (spec.md §4.1.11).
type Subprogram struct {
	Name string
	File FileHandle
	Line uint32
	Unit CompileUnitHandle
}

// LexicalBlock scopes a basic block within a Subprogram (spec.md §4.1.11:
// "create a lexical block for the new basic block").
type LexicalBlock struct {
	Parent uint32 // Subprogram or LexicalBlock handle, scope-kind-tagged by Kind
	ParentKind ScopeKind
	File   FileHandle
	Line   uint32
}

// ScopeKind tags which arena a LexicalBlock.Parent / Location.Scope
// handle indexes, since both Subprogram and LexicalBlock handles are
// plain uint32s.
type ScopeKind uint8

const (
	ScopeKindNone ScopeKind = iota
	ScopeKindSubprogram
	ScopeKindLexicalBlock
)

// Location is one (line, column, scope, inlined-at) debug location node,
// the concrete node behind a llir.Instruction's Loc handle.
type Location struct {
	Line      uint32
	Column    uint32
	Scope     uint32
	ScopeKind ScopeKind
	InlinedAt LocationHandle
	HasInlinedAt bool
}

// Builder is the narrow facade the translator uses to create debug
// metadata and attach it to instructions, mirroring llir.Builder's
// discipline (spec.md §2.3's Debug Builder Interface).
type Builder interface {
	CreateFile(name, directory string) FileHandle
	CreateCompileUnit(file FileHandle, language uint32, producer string) CompileUnitHandle
	CreateSubprogram(name string, file FileHandle, line uint32, unit CompileUnitHandle) SubprogramHandle
	CreateLexicalBlock(parent uint32, parentKind ScopeKind, file FileHandle, line uint32) LexicalBlockHandle
	CreateLocation(line, column uint32, scope uint32, scopeKind ScopeKind, inlinedAt LocationHandle, hasInlinedAt bool) LocationHandle

	// AttachLocation stamps loc onto every instruction in [start, end) of
	// blk — the "attach a location to every instruction in the range"
	// step spec.md §4.1.11 requires at range/scope close. It goes through
	// the IR builder because the range usually closes while the function
	// is still being assembled.
	AttachLocation(ir llir.Builder, fn llir.FuncHandle, blk llir.BlockHandle, start, end int, loc LocationHandle)
}

// concreteBuilder is the Builder implementation backing cmd/spirv-llc and
// the translator's tests: plain Go slices standing in for the external
// debug-info emitter's real metadata nodes.
type concreteBuilder struct {
	files        []File
	units        []CompileUnit
	subprograms  []Subprogram
	lexicalBlocks []LexicalBlock
	locations    []Location
}

// NewBuilder creates the concrete Builder used outside of a real external
// debug-info emitter.
func NewBuilder() Builder { return &concreteBuilder{} }

func (b *concreteBuilder) CreateFile(name, directory string) FileHandle {
	b.files = append(b.files, File{Name: name, Directory: directory})
	return FileHandle(len(b.files) - 1)
}

func (b *concreteBuilder) CreateCompileUnit(file FileHandle, language uint32, producer string) CompileUnitHandle {
	b.units = append(b.units, CompileUnit{File: file, Language: language, Producer: producer})
	return CompileUnitHandle(len(b.units) - 1)
}

func (b *concreteBuilder) CreateSubprogram(name string, file FileHandle, line uint32, unit CompileUnitHandle) SubprogramHandle {
	b.subprograms = append(b.subprograms, Subprogram{Name: name, File: file, Line: line, Unit: unit})
	return SubprogramHandle(len(b.subprograms) - 1)
}

func (b *concreteBuilder) CreateLexicalBlock(parent uint32, parentKind ScopeKind, file FileHandle, line uint32) LexicalBlockHandle {
	b.lexicalBlocks = append(b.lexicalBlocks, LexicalBlock{Parent: parent, ParentKind: parentKind, File: file, Line: line})
	return LexicalBlockHandle(len(b.lexicalBlocks) - 1)
}

func (b *concreteBuilder) CreateLocation(line, column uint32, scope uint32, scopeKind ScopeKind, inlinedAt LocationHandle, hasInlinedAt bool) LocationHandle {
	b.locations = append(b.locations, Location{
		Line: line, Column: column, Scope: scope, ScopeKind: scopeKind,
		InlinedAt: inlinedAt, HasInlinedAt: hasInlinedAt,
	})
	return LocationHandle(len(b.locations) - 1)
}

func (b *concreteBuilder) AttachLocation(ir llir.Builder, fn llir.FuncHandle, blk llir.BlockHandle, start, end int, loc LocationHandle) {
	if n := ir.BlockLen(fn, blk); end > n {
		end = n
	}
	for i := start; i < end; i++ {
		ir.SetInstLoc(fn, blk, i, uint32(loc))
	}
}

// Location resolves a handle back to its node, for a consumer (e.g. the
// textual IR dumper in cmd/spirv-llc) that wants to render actual
// line/column/scope information rather than an opaque handle.
func (b *concreteBuilder) Location(h LocationHandle) Location { return b.locations[h] }
