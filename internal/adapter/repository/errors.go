package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gomarket/pkg/errors"
)

// mapStoreError classifies Firestore failures into the application
// taxonomy. Transient infrastructure conditions become STORE_UNAVAILABLE
// so callers can roll back optimistic state instead of assuming success.
func mapStoreError(resource string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return errors.NotFound(resource, err)
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return errors.Unavailable("Store is temporarily unavailable", err)
	case codes.Unauthenticated, codes.PermissionDenied:
		return errors.Unauthorized("Store rejected credentials", err)
	default:
		return errors.Internal("Store operation failed", err)
	}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
