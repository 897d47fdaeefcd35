// SPDX-License-Identifier: MIT
// Package: tessera/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w; sentinels are never reformatted.

package builder

import "errors"

// ErrTooFewCells indicates a size parameter (n, cols, rows) below the
// constructor's minimum.
var ErrTooFewCells = errors.New("builder: parameter too small")
