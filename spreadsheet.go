// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package reporttable renders a record set as a table report:
// an HTML fragment, an xlsx workbook or a PDF document.
//
// The format neutral part lives here: the Table model over the records,
// the Report request (file name, banner headings, date) and the Exporter
// interface the format packages (html, xlsx, pdf) implement.
package reporttable

import (
	"errors"
	"io"
)

// Exporter renders a Report into one output format.
type Exporter interface {
	// Ext is the file name extension, with the leading dot.
	Ext() string
	// ContentType is the MIME type of the artifact.
	ContentType() string
	// Disposition returns the Content-Disposition header value
	// for the given file name, or "" if none should be sent.
	Disposition(filename string) string
	// Export writes the artifact to w.
	Export(w io.Writer, rep *Report) error
}

// Align is a horizontal alignment.
type Align string

const (
	AlignDefault = Align("")
	AlignLeft    = Align("left")
	AlignCenter  = Align("center")
)

// Style is a style for a column/row/cell.
type Style struct {
	// Align is the horizontal alignment
	Align Align
	// FontBold is true if the font is bold
	FontBold bool
	// Wrap is true if the text should be wrapped
	Wrap bool
}

// IsZero reports whether the style is the default one.
func (s Style) IsZero() bool { return s == Style{} }

var (
	// ErrMissingWidth is returned when a column has no width override.
	ErrMissingWidth = errors.New("missing column width")
	// ErrZeroWidth is returned when the total width of the columns is zero.
	ErrZeroWidth = errors.New("zero total width")
	// ErrColumnIndex is returned for out of range row/column indexes.
	ErrColumnIndex = errors.New("index out of range")
	// ErrUnknownColumn is returned by the extractors for columns they cannot resolve.
	ErrUnknownColumn = errors.New("unknown column")

	ErrTooManyRows = errors.New("too many rows")
)
