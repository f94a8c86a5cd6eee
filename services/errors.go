package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate them
// to HTTP statuses with errors.Is; everything else maps to a 500.
var (
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation failed")
	ErrConflict             = errors.New("conflict")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrUnsupportedTopicType = errors.New("unsupported topic type")
	ErrInternal             = errors.New("internal error")
)
