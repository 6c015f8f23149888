package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrOffline indicates that an operation requiring connectivity was requested
// while the device is known to be offline.
var ErrOffline = errors.New("device is offline")

// ErrSyncInProgress indicates that a sync pass is already running. At most one
// pass executes at a time; additional triggers are dropped, not queued.
var ErrSyncInProgress = errors.New("sync already in progress")
