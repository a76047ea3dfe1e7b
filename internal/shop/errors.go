package shop

import "errors"

// ErrInvalidInput flags a mapping that cannot build a model: a required key
// is missing or a value has the wrong dynamic type. Wrapped errors carry the
// key; test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
