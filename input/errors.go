// SPDX-License-Identifier: MIT

package input

import "errors"

var (
	// ErrNonNumeric is returned for an empty or non-numeric cell.
	ErrNonNumeric = errors.New("input: non-numeric value")

	// ErrInvalidDocument is returned when a document fails structural validation
	// (missing a/b, row count outside the supported range, bad option values).
	ErrInvalidDocument = errors.New("input: invalid document")

	// ErrEmptyDocument is returned when a source contains no system at all.
	ErrEmptyDocument = errors.New("input: empty document")

	// ErrUnsupportedFormat is returned by Load for an unknown file extension.
	ErrUnsupportedFormat = errors.New("input: unsupported format")
)
