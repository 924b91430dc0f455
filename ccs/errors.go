// SPDX-License-Identifier: MIT

package ccs

import "errors"

// ErrMalformed reports a Matrix whose pointers, indices or storage lengths
// violate the compressed-column layout.
var ErrMalformed = errors.New("ccs: malformed compressed-column storage")
