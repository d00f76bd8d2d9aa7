package spirv

import "fmt"

// ErrorKind classifies why the translator rejected a module. Ok is never
// carried by an Error value; a nil error from a translation function means
// Ok, matching the rest of the ambient error-handling convention (modeled
// on wgsl.SourceError's Span-carrying errors in the teacher).
type ErrorKind int

const (
	Ok ErrorKind = iota
	UnsupportedExtension
	UnsupportedCapability
	UnsupportedAddressingModel
	UnsupportedExtInstSet
	UnsupportedOpcode
	UnsupportedExecutionMode
	InvalidFunctionParameterAttribute
	InvalidStorageClass
	ForwardReferenceUnresolved
	MalformedInstruction
)

func (k ErrorKind) String() string {
	switch k {
	case Ok:
		return "Ok"
	case UnsupportedExtension:
		return "UnsupportedExtension"
	case UnsupportedCapability:
		return "UnsupportedCapability"
	case UnsupportedAddressingModel:
		return "UnsupportedAddressingModel"
	case UnsupportedExtInstSet:
		return "UnsupportedExtInstSet"
	case UnsupportedOpcode:
		return "UnsupportedOpcode"
	case UnsupportedExecutionMode:
		return "UnsupportedExecutionMode"
	case InvalidFunctionParameterAttribute:
		return "InvalidFunctionParameterAttribute"
	case InvalidStorageClass:
		return "InvalidStorageClass"
	case ForwardReferenceUnresolved:
		return "ForwardReferenceUnresolved"
	case MalformedInstruction:
		return "MalformedInstruction"
	default:
		return "UnknownErrorKind"
	}
}

// Error is the typed error value every translation-facing function in this
// module returns. It names the opcode and result/operand id involved (when
// known) so a caller can point a user at the offending instruction, the way
// wgsl.SourceError points at a source Span.
type Error struct {
	Kind    ErrorKind
	Op      Opcode
	Id      SpvId
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
	if e.Id.Valid() {
		return fmt.Sprintf("%s: %s (%s): %s", e.Kind, e.Op, e.Id, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Detail)
}

// NewError builds an Error with no associated result id, for instructions
// decoded before a result id is known (e.g. OpCapability, OpExtension).
func NewError(kind ErrorKind, op Opcode, detail string) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail}
}

// NewErrorf is NewError with a formatted Detail.
func NewErrorf(kind ErrorKind, op Opcode, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Detail: fmt.Sprintf(format, args...)}
}

// NewErrorId builds an Error tied to a specific result id, for instructions
// whose failure should be reported against the value/type they define.
func NewErrorId(kind ErrorKind, op Opcode, id SpvId, detail string) *Error {
	return &Error{Kind: kind, Op: op, Id: id, Detail: detail}
}
