package domain

import "errors"

var (
	// ErrNotFound is returned when the ledger reports an unknown or
	// malformed identifier (asset, address, pool, or transaction)
	ErrNotFound = errors.New("not found")

	// ErrConfirmTimeout is returned when a transaction does not reach
	// block inclusion within the watcher's attempt ceiling
	ErrConfirmTimeout = errors.New("transaction confirmation timed out")

	// ErrInvalidTransition is returned when a swap event is not legal
	// from the swap's current state
	ErrInvalidTransition = errors.New("invalid swap state transition")

	// ErrSwapNotFound is returned when a swap record does not exist
	ErrSwapNotFound = errors.New("swap not found")

	// ErrSnapshotFinalized is returned when modifying an entry snapshot
	// that has already been finalized
	ErrSnapshotFinalized = errors.New("entry snapshot already finalized")
)
