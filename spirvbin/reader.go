package spirvbin

import (
	"encoding/binary"
	"fmt"

	"github.com/oneapi-go/spirv-ll/spirv"
)

const headerWords = 5

// Header is the fixed five-word SPIR-V module header (SPIR-V spec §2.3).
type Header struct {
	Version   spirv.Version
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// Reader walks a decoded SPIR-V binary one instruction at a time. It
// performs no semantic validation beyond what is needed to safely slice
// the byte stream into words — capability/extension/opcode legality is
// the dispatch core's job (spec.md §3, §7).
type Reader struct {
	data   []byte
	offset int
	Header Header
}

// NewReader validates the 20-byte module header and returns a Reader
// positioned at the first instruction, mirroring cmd/spvdis's inline
// magic/bound/schema checks in main() but returning a spirv.Error
// instead of printing to stderr and exiting.
func NewReader(data []byte) (*Reader, error) {
	if len(data) < headerWords*4 {
		return nil, spirv.NewError(spirv.MalformedInstruction, 0, "file too small for a SPIR-V header")
	}
	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != spirv.MagicNumber {
		return nil, spirv.NewErrorf(spirv.MalformedInstruction, 0, "invalid SPIR-V magic: 0x%08X", magic)
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	generator := binary.LittleEndian.Uint32(data[8:12])
	bound := binary.LittleEndian.Uint32(data[12:16])
	schema := binary.LittleEndian.Uint32(data[16:20])

	return &Reader{
		data:   data,
		offset: headerWords * 4,
		Header: Header{
			Version:   spirv.VersionFromWord(version),
			Generator: generator,
			Bound:     bound,
			Schema:    schema,
		},
	}, nil
}

// Next decodes the instruction at the current offset and advances past
// it. It returns (record, true, nil) on success, (zero, false, nil) at
// clean end of stream, and (zero, false, err) on a malformed word count.
func (r *Reader) Next() (spirv.OpcodeRecord, bool, error) {
	if r.offset >= len(r.data) {
		return spirv.OpcodeRecord{}, false, nil
	}
	if r.offset+4 > len(r.data) {
		return spirv.OpcodeRecord{}, false, spirv.NewError(spirv.MalformedInstruction, 0, "truncated instruction header")
	}

	word := binary.LittleEndian.Uint32(r.data[r.offset:])
	op := spirv.Opcode(word & 0xFFFF)
	wordCount := int(word >> 16)

	if wordCount == 0 || r.offset+wordCount*4 > len(r.data) {
		return spirv.OpcodeRecord{}, false, spirv.NewErrorf(spirv.MalformedInstruction, op,
			"invalid word count %d at byte offset 0x%X", wordCount, r.offset)
	}

	operands := make([]uint32, wordCount-1)
	for i := range operands {
		operands[i] = binary.LittleEndian.Uint32(r.data[r.offset+4+i*4:])
	}

	r.offset += wordCount * 4
	return spirv.NewOpcodeRecord(op, operands), true, nil
}

// ByteOffset reports the current stream position, useful for error
// messages that need to point at a specific instruction.
func (r *Reader) ByteOffset() int { return r.offset }

// ReadAll decodes every remaining instruction into a slice. It is what
// the command-line tools and tests use; Next remains available for a
// caller that wants to decode one instruction at a time.
func (r *Reader) ReadAll() ([]spirv.OpcodeRecord, error) {
	var records []spirv.OpcodeRecord
	for {
		rec, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *Reader) String() string {
	return fmt.Sprintf("spirvbin.Reader{version=%s, bound=%d, offset=%d/%d}",
		r.Header.Version, r.Header.Bound, r.offset, len(r.data))
}
