// SPDX-License-Identifier: MIT
// Package invcache: sentinel error set.
// Solver failures (matrix.ErrSingular, matrix.ErrDimensionMismatch, ...) are
// NOT redeclared here: Solve returns them exactly as the matrix package
// produced them, so callers match with errors.Is against matrix sentinels.

package invcache

import "errors"

// ErrNilCache indicates that a nil *Cache was passed to a package-level
// function. Methods on Cache do not guard the receiver; constructing via New
// is the supported path.
var ErrNilCache = errors.New("invcache: nil cache")
