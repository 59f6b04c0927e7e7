package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// External Design API Errors
var (
	ErrDesignAPIAuth    = errors.New("design API authorization failed")
	ErrDesignAPIRequest = errors.New("design API request failed")
	ErrExportFailed     = errors.New("design export failed")
	ErrExportTimeout    = errors.New("design export timed out")
)

func NewDesignAPIAuthError(details string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrDesignAPIAuth,
		Details:    details,
		Field:      "design_api",
	}
}

func NewDesignAPIError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrDesignAPIRequest,
		Details:    fmt.Sprintf("Failed to %s", operation),
		Cause:      cause,
		Field:      "design_api",
	}
}

func NewExportTimeoutError(attempts int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusGatewayTimeout,
		err:        ErrExportTimeout,
		Details:    fmt.Sprintf("Export did not complete after %d polls", attempts),
		Field:      "design_api",
	}
}

// External Design API Error Type Checkers
func IsDesignAPIAuthError(err error) bool {
	return errors.Is(err, ErrDesignAPIAuth)
}

func IsDesignAPIError(err error) bool {
	return errors.Is(err, ErrDesignAPIRequest)
}

func IsExportTimeoutError(err error) bool {
	return errors.Is(err, ErrExportTimeout)
}
