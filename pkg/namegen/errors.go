package namegen

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/nameforge/pkg/theme"
)

var (
	// ErrEmptyPool is returned when a slot has no fragments to choose from.
	ErrEmptyPool = errors.New("no fragments available for slot")
	// ErrScoringFailed is returned when every candidate in a slot's pool
	// produced an unusable score.
	ErrScoringFailed = errors.New("no candidate produced a usable score")

	// ErrInvalidWeights is returned when vibe and compatibility weights are
	// negative or do not sum to 1.
	ErrInvalidWeights = errors.New("scoring weights must be non-negative and sum to 1")
	// ErrInvalidTopN is returned for a non-positive selection pool size.
	ErrInvalidTopN = errors.New("top-n must be at least 1")
	// ErrInvalidThreshold is returned for a low-score threshold outside [0, 100].
	ErrInvalidThreshold = errors.New("low-score threshold must be within [0, 100]")
	// ErrInvalidBlockCount is returned for a block count outside {2, 3, 4}.
	ErrInvalidBlockCount = errors.New("block count must be 2, 3, or 4")
)

// SlotError reports which structural slot a generation failure occurred in.
type SlotError struct {
	Slot theme.Role
	Err  error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s slot: %v", e.Slot, e.Err)
}

func (e *SlotError) Unwrap() error { return e.Err }
