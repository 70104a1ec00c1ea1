// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrNoJobs indicates a job file without any jobs.
	ErrNoJobs = errors.New("config: job file lists no jobs")

	// ErrUnknownModel indicates a model name outside the supported set.
	ErrUnknownModel = errors.New("config: unknown model")

	// ErrDuplicateName indicates two jobs sharing a name.
	ErrDuplicateName = errors.New("config: duplicate job name")

	// ErrInvalidJob indicates missing or out-of-range job fields.
	ErrInvalidJob = errors.New("config: invalid job")
)
