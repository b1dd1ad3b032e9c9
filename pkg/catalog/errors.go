package catalog

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsPermissionDenied reports whether err carries codes.PermissionDenied.
// Data Catalog answers PermissionDenied for reads of missing resources
// in projects the caller can write to.
func IsPermissionDenied(err error) bool {
	return err != nil && status.Code(err) == codes.PermissionDenied
}

// IsFailedPrecondition reports whether err carries codes.FailedPrecondition.
func IsFailedPrecondition(err error) bool {
	return err != nil && status.Code(err) == codes.FailedPrecondition
}

// IsNotFound reports whether err carries codes.NotFound.
func IsNotFound(err error) bool {
	return err != nil && status.Code(err) == codes.NotFound
}

// IsAlreadyExists reports whether err carries codes.AlreadyExists.
func IsAlreadyExists(err error) bool {
	return err != nil && status.Code(err) == codes.AlreadyExists
}
