package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingFields = errors.New("required fields missing")

// ErrStoreUnavailable is returned by every repository operation when the
// document store could not be reached at startup. The process keeps
// serving so probes and the client page stay up, but data operations
// degrade to this error instead of faulting mid-request.
var ErrStoreUnavailable = errors.New("storage unavailable")
