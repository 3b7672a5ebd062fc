package interfaces

import "errors"

// ErrConflict is returned by repositories when a conditional write finds an existing record.
var ErrConflict = errors.New("record already exists")
