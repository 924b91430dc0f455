// SPDX-License-Identifier: MIT

package sparse

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvsparse.sparse'
func tracer() tracing.Trace {
	return tracing.Select("lvsparse.sparse")
}
