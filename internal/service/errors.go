package service

import "errors"

// ErrNotFound is returned by every service when the requested row does
// not exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")
