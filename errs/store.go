package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrStoreQuery       = errors.New("record store query failed")
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// NewStoreError wraps a record-store failure with the operation and collection
// it happened on. The store's own message is kept as the cause so the admin
// surface can show it for diagnostics.
func NewStoreError(operation, collection string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, collection)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "could not be found") || strings.Contains(errStr, "not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", collection, ErrNotFound),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "already exists"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists", collection),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection") || strings.Contains(errStr, "timeout"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrStoreUnavailable,
				Details:    details,
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStoreQuery,
		Details:    details,
		Cause:      cause,
	}
}
