// Package edgelist: sentinel errors of the record decoder. Callers
// branch with errors.Is; decode sites attach the record and position.
package edgelist

import "errors"

// ErrEmptyInput is returned when the input holds no records at all.
var ErrEmptyInput = errors.New("edgelist: empty input")

// ErrMalformedRecord is returned when a record does not match the
// two-letter-nodes-plus-latency format. The wrapped message names the
// offending record and its 1-based position.
var ErrMalformedRecord = errors.New("edgelist: malformed record")
