// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package reporttable

import (
	"fmt"
	"strconv"
)

const (
	// SerialColumn is the column id of the serial number column,
	// usable as key in the label and width overrides.
	SerialColumn = "_serial_"
	// SerialLabel is the default header of the serial number column.
	SerialLabel = "S.No."
)

// Table is a read-only grid of display strings over Records.
//
// Row 0 is the header, row i is the (i-1)th record.
// If serial numbering is on, column 0 is the 1-based row number.
type Table struct {
	records Records
	extract Extractor
	labels  map[string]string
	widths  map[string]int
	columns []string
	serial  bool
}

// Option configures a Table.
type Option func(*Table)

// WithSerial prepends the serial number column.
func WithSerial() Option { return func(t *Table) { t.serial = true } }

// WithLabels sets the header label overrides (column id -> label).
func WithLabels(labels map[string]string) Option {
	return func(t *Table) { t.labels = labels }
}

// WithWidths sets the column widths (column id -> width).
//
// The widths are pixel-like units: the HTML and PDF output use them
// proportionally, the xlsx output scales them.
func WithWidths(widths map[string]int) Option {
	return func(t *Table) { t.widths = widths }
}

// WithExtractor sets the function returning the value of a column
// of a record, for computed columns. The default is FieldExtractor.
func WithExtractor(extract Extractor) Option {
	return func(t *Table) { t.extract = extract }
}

// New returns a new Table over the records with the given columns.
func New(records Records, columns []string, options ...Option) *Table {
	t := Table{records: records, columns: columns, extract: FieldExtractor}
	for _, o := range options {
		o(&t)
	}
	if t.extract == nil {
		t.extract = FieldExtractor
	}
	return &t
}

// Records returns the underlying records.
func (t *Table) Records() Records { return t.records }

// Serial reports whether the serial number column is on.
func (t *Table) Serial() bool { return t.serial }

// NumColumns returns the number of columns, including the serial number column.
func (t *Table) NumColumns() int {
	if t.serial {
		return len(t.columns) + 1
	}
	return len(t.columns)
}

// NumRows returns the number of rows, including the header.
func (t *Table) NumRows() int {
	if t.records == nil {
		return 1
	}
	return t.records.Len() + 1
}

// HasWidths reports whether any column width is given.
func (t *Table) HasWidths() bool { return len(t.widths) != 0 }

// columnID returns the column id of the column index.
func (t *Table) columnID(col int) (string, error) {
	if t.serial {
		if col == 0 {
			return SerialColumn, nil
		}
		col--
	}
	if col < 0 || col >= len(t.columns) {
		return "", fmt.Errorf("column %d of %d: %w", col, len(t.columns), ErrColumnIndex)
	}
	return t.columns[col], nil
}

// ColumnWidth returns the width of the column.
func (t *Table) ColumnWidth(col int) (int, error) {
	id, err := t.columnID(col)
	if err != nil {
		return 0, err
	}
	w, ok := t.widths[id]
	if !ok {
		return 0, fmt.Errorf("%q: %w", id, ErrMissingWidth)
	}
	return w, nil
}

// TotalWidth returns the sum of the column widths.
func (t *Table) TotalWidth() (int, error) {
	var total int
	for i := range t.NumColumns() {
		w, err := t.ColumnWidth(i)
		if err != nil {
			return 0, err
		}
		total += w
	}
	return total, nil
}

// ColumnWidthPercent returns the width of the column as percentage of the total width.
func (t *Table) ColumnWidthPercent(col int) (float64, error) {
	w, err := t.ColumnWidth(col)
	if err != nil {
		return 0, err
	}
	total, err := t.TotalWidth()
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, ErrZeroWidth
	}
	return float64(w*100) / float64(total), nil
}

// WidthPercents returns ColumnWidthPercent for each column.
func (t *Table) WidthPercents() ([]float64, error) {
	total, err := t.TotalWidth()
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrZeroWidth
	}
	pcts := make([]float64, t.NumColumns())
	for i := range pcts {
		w, err := t.ColumnWidth(i)
		if err != nil {
			return nil, err
		}
		pcts[i] = float64(w*100) / float64(total)
	}
	return pcts, nil
}

// Cell returns the display value of the cell.
func (t *Table) Cell(row, col int) (string, error) {
	if row < 0 || row >= t.NumRows() {
		return "", fmt.Errorf("row %d of %d: %w", row, t.NumRows(), ErrColumnIndex)
	}
	id, err := t.columnID(col)
	if err != nil {
		return "", err
	}
	if row == 0 {
		if t.serial && col == 0 {
			if label, ok := t.labels[SerialColumn]; ok {
				return label, nil
			}
			return SerialLabel, nil
		}
		return t.headerLabel(id), nil
	}
	if t.serial && col == 0 {
		return strconv.Itoa(row), nil
	}
	v, err := t.extract(t.records.Record(row-1), id)
	if err != nil {
		return "", fmt.Errorf("%d/%q: %w", row, id, err)
	}
	return String(v), nil
}

// Row returns the cells of the row.
func (t *Table) Row(row int) ([]string, error) {
	cells := make([]string, t.NumColumns())
	for c := range cells {
		var err error
		if cells[c], err = t.Cell(row, c); err != nil {
			return nil, err
		}
	}
	return cells, nil
}

// Grid returns all the cells, row by row, header first.
func (t *Table) Grid() ([][]string, error) {
	grid := make([][]string, t.NumRows())
	for r := range grid {
		var err error
		if grid[r], err = t.Row(r); err != nil {
			return nil, err
		}
	}
	return grid, nil
}
