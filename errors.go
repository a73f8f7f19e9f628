package gensyn

import "errors"

// Registration errors. A failed registration leaves the registry unchanged.
var (
	ErrEmptyName          = errors.New("empty name")
	ErrDuplicateName      = errors.New("duplicate name")
	ErrTooManySlots       = errors.New("too many connection slots")
	ErrTooManyParams      = errors.New("too many parameters")
	ErrDuplicateSlotName  = errors.New("duplicate slot name")
	ErrDuplicateParamName = errors.New("duplicate parameter name")
	ErrMissingHook        = errors.New("missing create, process or destroy hook")
)

// Graph mutation errors.
var (
	ErrUnknownGate       = errors.New("unknown gate")
	ErrUnknownSlot       = errors.New("unknown slot")
	ErrOutDegreeExceeded = errors.New("too many outbound connections")
)

// ErrInsufficientInput is the soft failure of a gate whose process hook could
// not produce output for the last block. It never stops rendering; the gate
// holds its previous output and is flagged inactive.
var ErrInsufficientInput = errors.New("insufficient input")
