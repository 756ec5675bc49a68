package ident

import "errors"

// ErrInvalidArgument is returned when a requested prefix or hex length
// fails validation. Call sites wrap it with detail; match with errors.Is.
var ErrInvalidArgument = errors.New("ident: invalid argument")
