// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package simkernel

import "errors"

// ErrInvalidDelay is returned when a negative delay is passed to
// (*Event).Trigger or a negative duration to (*Simulation).AdvanceBy.
// (*Simulation).Timeout panics with it on a negative delay.
var ErrInvalidDelay = errors.New("simkernel: delay must be non-negative")
