package reporting

import (
	"errors"
	"fmt"
)

// ErrUnknownReport is returned by the catalog for a report ID that was
// never registered.
var ErrUnknownReport = errors.New("unknown report")

// DataAccessError wraps a failure from the underlying store: the database is
// unreachable, the query failed, or a referenced column/table is absent. It
// is not recoverable inside the reporting layer and always surfaces to the
// caller.
type DataAccessError struct {
	ReportID string
	Err      error
}

func (e *DataAccessError) Error() string {
	if e.ReportID == "" {
		return fmt.Sprintf("data access: %v", e.Err)
	}
	return fmt.Sprintf("data access (%s): %v", e.ReportID, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// WrapDataAccess wraps a store error for the given report. A nil err
// passes through so repo call sites can wrap unconditionally.
func WrapDataAccess(reportID string, err error) error {
	if err == nil {
		return nil
	}
	return &DataAccessError{ReportID: reportID, Err: err}
}

// InvalidParameterError reports a caller-supplied parameter outside its
// domain. Services return it before issuing any query.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// InvalidParam builds an InvalidParameterError.
func InvalidParam(param, format string, args ...interface{}) error {
	return &InvalidParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidParameter reports whether err is (or wraps) an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var ipe *InvalidParameterError
	return errors.As(err, &ipe)
}

// IsDataAccess reports whether err is (or wraps) a DataAccessError.
func IsDataAccess(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae)
}
