package usecase

import "errors"

const (
	CodeNoData         = "NO_DATA"
	CodeEmailRequired  = "EMAIL_REQUIRED"
	CodeInvalidEmail   = "INVALID_EMAIL"
	CodeCRMRejected    = "CRM_REJECTED"
	CodeUpdateFailed   = "UPDATE_FAILED"
	CodeCRMUnavailable = "CRM_UNAVAILABLE"
	CodeCRMTimeout     = "CRM_TIMEOUT"
	CodeNetworkError   = "NETWORK_ERROR"
)

// DomainError is a problem with what the caller sent. Message is safe to
// return to the client.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// TechnicalError is a failure on our side or the CRM's. Message is safe to
// return to the client, Err is for logs only.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var techErr *TechnicalError
	return errors.As(err, &techErr)
}

// NoDataError is returned when the request body is missing or empty.
func NoDataError() *DomainError {
	return &DomainError{Code: CodeNoData, Message: "No data provided"}
}
