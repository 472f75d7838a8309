package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrSelfShare is returned when a user attempts to share a note with
	// themselves.
	ErrSelfShare = errors.New("cannot share a note with yourself")

	// ErrPageNotFound is returned when a listing request names a page past
	// the end of the result set, or a page number below 1.
	ErrPageNotFound = errors.New("invalid page")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
