// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package html renders a reporttable.Table as an HTML table.
package html

//go:generate qtc -file=table.qtpl

import (
	"io"

	"github.com/UNO-SOFT/reporttable"
)

var _ = (reporttable.Exporter)(Exporter{})

// Options of the rendering.
type Options struct {
	// Attributes are inserted verbatim into the opening table tag,
	// such as ` id='tb' class='report'`.
	Attributes string
}

// layout is the resolved table: all cells and the widths, if given.
type layout struct {
	grid  [][]string
	pcts  []float64
	total int
}

func newLayout(t *reporttable.Table) (layout, error) {
	var lay layout
	if t.HasWidths() {
		var err error
		if lay.total, err = t.TotalWidth(); err != nil {
			return lay, err
		}
		if lay.pcts, err = t.WidthPercents(); err != nil {
			return lay, err
		}
	}
	var err error
	lay.grid, err = t.Grid()
	return lay, err
}

// Fragment returns the HTML table of t.
//
// Without widths no width attributes are emitted. A partial width
// mapping is an error (reporttable.ErrMissingWidth).
func Fragment(t *reporttable.Table, opts Options) (string, error) {
	lay, err := newLayout(t)
	if err != nil {
		return "", err
	}
	return tableMarkup(lay, opts), nil
}

// WriteFragment writes the HTML table of t to w.
func WriteFragment(w io.Writer, t *reporttable.Table, opts Options) error {
	lay, err := newLayout(t)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, tableMarkup(lay, opts))
	return err
}
