// SPDX-License-Identifier: MIT

package job

import "errors"

// ErrNonFinite indicates a job produced NaN or ±Inf, which JSON cannot carry.
var ErrNonFinite = errors.New("job: result is not finite")
