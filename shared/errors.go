// SPDX-License-Identifier: MIT

package shared

import "errors"

// ErrNoClone is the panic value (wrapped with the type name) raised when a
// Ptr would hand out a live alias: T is a slice, map, pointer, channel or
// interface type, has no Clone() T method, and no WithClone was supplied.
var ErrNoClone = errors.New("shared: reference-kind value needs WithClone or a Clone method")
