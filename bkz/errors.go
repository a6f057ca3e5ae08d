package bkz

import "errors"

// ErrInvalidBlockSize is returned by ReduceBKZ when blockSize < 2
// (spec.md §6: "block size β ≥ 2").
var ErrInvalidBlockSize = errors.New("bkz: block size must be >= 2")
