// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package simkernel

import (
	"io"
	"log/slog"
)

// DefaultLogger is used by every Simulation created without an explicit
// WithLogger option. It discards output; callers that want visibility into
// scheduling/dispatch (handy when debugging an any_of/all_of composite)
// pass their own *slog.Logger.
var DefaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
