package db

import "errors"

// ErrNoRows is returned by delete operations when the target row no longer
// exists. Lookups report a missing row as a nil entity with a nil error.
var ErrNoRows = errors.New("no rows affected")
