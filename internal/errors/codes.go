package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"

	// Game-domain codes
	CodeGenerationFailed Code = "GENERATION_FAILED"
	CodePositionOccupied Code = "POSITION_OCCUPIED"
	CodeOutOfBounds      Code = "OUT_OF_BOUNDS"
	CodeInvalidMove      Code = "INVALID_MOVE"
	CodeInvalidTarget    Code = "INVALID_TARGET"
	CodeInvalidAction    Code = "INVALID_ACTION"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Retryable reports whether the failure is worth retrying with different
// inputs. Generation failures retry with a reroll; the rest are caller bugs
// or hard state conflicts.
func (c Code) Retryable() bool {
	return c == CodeGenerationFailed
}
