package entities

import "errors"

// Build-time errors.
var (
	// ErrSourceNotFound is returned when the source table cannot be located or read.
	ErrSourceNotFound = errors.New("source not found")
	// ErrSourceFormat is returned when the source table cannot be parsed into rows at all.
	ErrSourceFormat = errors.New("source format error")
)

// Query-time load errors.
var (
	// ErrGraphNotFound is returned when the graph artifact is absent.
	ErrGraphNotFound = errors.New("graph not found")
	// ErrGraphFormat is returned when the graph artifact is present but unparseable.
	ErrGraphFormat = errors.New("graph format error")
)
