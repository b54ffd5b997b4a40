package rs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decoding-error taxonomy of spec.md §7. Each one
// names a single pipeline stage's failure mode; ReedSolomonError wraps
// exactly one of these together with the stage name (and, once the codec
// facade has attributed it to a chunk, the chunk index) for diagnosis.
var (
	ErrMessageTooLong        = errors.New("rs: message too long for field capacity")
	ErrTooManyErasures       = errors.New("rs: erasure count exceeds nsym")
	ErrTooManyErrors         = errors.New("rs: too many errors to correct (Singleton bound exceeded)")
	ErrChienMismatch         = errors.New("rs: chien search found an unexpected number of roots")
	ErrForneyDegenerate      = errors.New("rs: forney error-locator derivative is zero")
	ErrUncorrectableResidual = errors.New("rs: residual syndrome nonzero after correction")
)

// ReedSolomonError reports a decode failure together with the pipeline
// stage that detected it and, once attributed by the codec facade, the
// chunk index it occurred in. Chunk is -1 until attributed.
type ReedSolomonError struct {
	Stage string
	Chunk int
	Err   error
}

func newStageError(stage string, err error) *ReedSolomonError {
	return &ReedSolomonError{Stage: stage, Chunk: -1, Err: err}
}

func (e *ReedSolomonError) Error() string {
	if e.Chunk < 0 {
		return fmt.Sprintf("rs: decode failed at stage %q: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("rs: decode failed at stage %q (chunk %d): %v", e.Stage, e.Chunk, e.Err)
}

func (e *ReedSolomonError) Unwrap() error { return e.Err }
