package data

import "errors"

var (
	ErrUnknownType    = errors.New("unknown type")
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
)
