package utils

import (
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/exceptions"
	"context"
	"errors"
)

// IsAborted reports whether err comes from a request that was cancelled by its
// caller, either because the client went away or a newer request superseded it.
// Deadlines are not aborts and are reported like any other failure.
func IsAborted(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode == constvars.StatusClientClosedRequest
	}
	return false
}
