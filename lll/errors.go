package lll

import "errors"

// ErrInvalidParams is returned by Reduce when Params fails validation
// (spec.md §7's "invalid parameter" error class). Wrapped with
// fmt.Errorf so callers can match it with errors.Is.
var ErrInvalidParams = errors.New("lll: invalid params")
