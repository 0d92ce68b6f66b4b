package repository

import "errors"

// ErrNotFound is the typed outcome for a well-formed id that matches nothing.
// It is never used for control flow inside the repositories; the controllers
// are the single place mapping it to a 404.
var ErrNotFound = errors.New("not found")
