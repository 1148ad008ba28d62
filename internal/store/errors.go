package store

import "errors"

// ErrNotFound is returned when an operation targets a row that does not
// exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")
