package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrMissingField will throw if a required field is absent from the payload
	ErrMissingField = errors.New("payload does not contain needed property")
	// ErrInvalidType will throw if a payload field does not meet the expected data type
	ErrInvalidType = errors.New("payload does not meet data type specification")
	// ErrForbidden will throw if the actor does not own the resource
	ErrForbidden = errors.New("you are not allowed to access this resource")
	// ErrCacheMiss will throw if the requested key is absent from the cache
	ErrCacheMiss = errors.New("cache miss")
)
