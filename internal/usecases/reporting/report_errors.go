package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

var (
	ErrInvalidRange        = errors.New("invalid date range")
	ErrStoreUnavailable    = errors.New("order store unavailable")
	ErrEmptyFieldSelection = errors.New("no report fields selected")
	ErrSettingsUnavailable = errors.New("report settings unavailable")
)

var errorCodes = map[error]string{
	ErrInvalidRange:        apiErrors.ErrInvalidFormat,
	ErrStoreUnavailable:    apiErrors.ErrDatabaseOperation,
	ErrEmptyFieldSelection: apiErrors.ErrMissingRequiredData,
	ErrSettingsUnavailable: apiErrors.ErrDatabaseOperation,
}

// ReportError carries the API error code of a failed report operation
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError wraps one of the package sentinels, picking its API code
func NewReportError(err error, details string) *ReportError {
	code, ok := errorCodes[err]
	if !ok {
		code = apiErrors.ErrInternalServer
	}

	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
