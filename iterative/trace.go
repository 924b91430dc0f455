// SPDX-License-Identifier: MIT

package iterative

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvsparse.iterative'
func tracer() tracing.Trace {
	return tracing.Select("lvsparse.iterative")
}
