// SPDX-License-Identifier: MIT
package matrix

import "github.com/katalvlaran/lalg/trace"

// TracerSnapshot_TestOnly returns the tracer gatherOptions settles on.
func TracerSnapshot_TestOnly(opts ...Option) trace.Tracer {
	return gatherOptions(opts...).tracer
}
