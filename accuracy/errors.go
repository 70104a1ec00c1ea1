// SPDX-License-Identifier: MIT

package accuracy

import "errors"

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("accuracy: input sequences must be non-empty")

	// ErrLengthMismatch indicates point metrics were asked for on series of
	// different lengths.
	ErrLengthMismatch = errors.New("accuracy: sequences differ in length")

	// ErrBadWindow indicates a Window below -1.
	ErrBadWindow = errors.New("accuracy: window must be >= -1")

	// ErrBadPenalty indicates a negative or non-finite slope penalty.
	ErrBadPenalty = errors.New("accuracy: slope penalty must be finite and >= 0")

	// ErrPathNeedsMatrix indicates that path recovery was requested without
	// the full DP matrix.
	ErrPathNeedsMatrix = errors.New("accuracy: ReturnPath requires MemoryMode=FullMatrix")
)
