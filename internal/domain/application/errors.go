package application

import "errors"

var (
	// ErrMissingRequiredFields: custNo, custName or appNo absent/empty.
	ErrMissingRequiredFields = errors.New("missing required fields in newApplication")
	// ErrStoreUnavailable: no connection/transaction could be obtained.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// StatementError is a failed INSERT, enriched with what the operator needs
// to find it in the database logs.
type StatementError struct {
	Table    string
	SQL      string
	Code     uint16 // MySQL error number, 0 when the driver is not MySQL
	SQLState string
	Err      error
}

func (e *StatementError) Error() string { return e.Err.Error() }
func (e *StatementError) Unwrap() error { return e.Err }
