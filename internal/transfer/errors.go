package transfer

// ValidationError carries the user-facing rejection message. It is
// surfaced inline, never raised further; the form keeps its contents
// so the user can correct and retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrFieldsRequired rejects empty required fields and amounts that
	// do not parse to a positive number.
	ErrFieldsRequired = &ValidationError{Message: "Please fill all fields with valid values"}

	// ErrInsufficientFunds rejects amounts above the current balance.
	// An amount equal to the balance is allowed.
	ErrInsufficientFunds = &ValidationError{Message: "Insufficient funds for this demo transfer"}
)
