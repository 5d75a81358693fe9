package huffman

import (
	"errors"
)

// ErrInvalidArgument is returned when an input cannot be used at all: an
// empty frequency map, a nil queue entry, or a character other than '0' or
// '1' in a bit string.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrEmptyContainer is returned when popping from an empty PriorityQueue.
var ErrEmptyContainer = errors.New("empty container")

// ErrTruncatedInput is returned when a bit string ends in the middle of a
// code.
var ErrTruncatedInput = errors.New("truncated input")

// ErrInconsistentCodeTable is returned when a code table is not a prefix
// code, or when a bit string names a path that its code tree lacks.
var ErrInconsistentCodeTable = errors.New("inconsistent code table")
