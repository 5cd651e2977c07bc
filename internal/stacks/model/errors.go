package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned at the transport edge for absent entities.
var ErrNotFound = errors.New("not found")

// DecodeError reports a malformed node payload or transaction.
type DecodeError struct {
	What string
	Err  error
}

// NewDecodeError wraps err as a DecodeError for the named payload part.
func NewDecodeError(what string, err error) *DecodeError {
	return &DecodeError{What: what, Err: err}
}

// DecodeErrorf builds a DecodeError from a format string.
func DecodeErrorf(what, format string, args ...any) *DecodeError {
	return &DecodeError{What: what, Err: fmt.Errorf(format, args...)}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ChainConsistencyError reports chain data that violates the canonical
// chain invariants. The update that hit it is rolled back and not retried.
type ChainConsistencyError struct {
	IndexBlockHash string
	BlockHeight    uint64
	Reason         string
}

// NewChainConsistencyError builds a ChainConsistencyError.
func NewChainConsistencyError(indexBlockHash string, height uint64, format string, args ...any) *ChainConsistencyError {
	return &ChainConsistencyError{
		IndexBlockHash: indexBlockHash,
		BlockHeight:    height,
		Reason:         fmt.Sprintf(format, args...),
	}
}

func (e *ChainConsistencyError) Error() string {
	if e.IndexBlockHash == "" {
		return "chain consistency: " + e.Reason
	}
	return fmt.Sprintf("chain consistency at block %s (height %d): %s", e.IndexBlockHash, e.BlockHeight, e.Reason)
}

// StorageError reports a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError wraps err as a StorageError for op.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err wraps a DecodeError.
func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// IsChainConsistencyError reports whether err wraps a ChainConsistencyError.
func IsChainConsistencyError(err error) bool {
	var target *ChainConsistencyError
	return errors.As(err, &target)
}

// IsStorageError reports whether err wraps a StorageError.
func IsStorageError(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}
