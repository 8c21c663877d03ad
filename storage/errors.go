package storage

import "errors"

// ErrNotFound is returned when an update targets an identifier that
// does not exist in the collection. Callers distinguish it from
// validation failures with errors.Is.
var ErrNotFound = errors.New("record not found")
