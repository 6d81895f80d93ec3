// Copyright 2020, 2023, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx writes a reporttable.Report as an xlsx workbook.
//
// The output is Office Open XML, so the file extension is ".xlsx", not ".xls".
package xlsx

import (
	"fmt"
	"io"
	"log/slog"
	"mime"

	"github.com/UNO-SOFT/reporttable"
	"github.com/xuri/excelize/v2"
)

var _ = (reporttable.Exporter)(Exporter{})

const (
	// MaxRowCount is the number of maximum rows.
	MaxRowCount = 1_048_576

	// SheetName is the name of the one sheet of the workbook.
	SheetName = "Sheet1"

	// WidthUnit converts a column width to 1/256 character units.
	WidthUnit = 35
)

// Writer writes tables into one sheet of an excelize.File.
//
// This writer collects everything in memory, so big sheets may impose problems.
type Writer struct {
	xl     *excelize.File
	styles map[reporttable.Style]int
	Name   string
}

// NewWriter returns a Writer of the named sheet of xl.
func NewWriter(xl *excelize.File, sheet string) *Writer {
	return &Writer{xl: xl, Name: sheet}
}

// File returns the underlying workbook.
func (xlw *Writer) File() *excelize.File { return xlw.xl }

func (xlw *Writer) getStyle(style reporttable.Style) (int, error) {
	if style.IsZero() {
		return 0, nil
	}
	if s, ok := xlw.styles[style]; ok {
		return s, nil
	}
	var st excelize.Style
	if style.FontBold {
		st.Font = &excelize.Font{Bold: true}
	}
	if style.Align != reporttable.AlignDefault || style.Wrap {
		st.Alignment = &excelize.Alignment{Horizontal: string(style.Align), WrapText: style.Wrap}
	}
	s, err := xlw.xl.NewStyle(&st)
	if err != nil {
		return 0, fmt.Errorf("%+v: %w", style, err)
	}
	if xlw.styles == nil {
		xlw.styles = make(map[reporttable.Style]int)
	}
	xlw.styles[style] = s
	return s, nil
}

// setCell writes value into the cell at the 0-based (row, col), with the style.
func (xlw *Writer) setCell(row, col int, value string, style reporttable.Style) (string, error) {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return axis, fmt.Errorf("%d/%d: %w", row, col, err)
	}
	if err = xlw.xl.SetCellStr(xlw.Name, axis, value); err != nil {
		return axis, fmt.Errorf("%s[%s]: %w", xlw.Name, axis, err)
	}
	s, err := xlw.getStyle(style)
	if err != nil || s == 0 {
		return axis, err
	}
	if err = xlw.xl.SetCellStyle(xlw.Name, axis, axis, s); err != nil {
		return axis, fmt.Errorf("%s[%s]: %w", xlw.Name, axis, err)
	}
	return axis, nil
}

// WriteBanner writes the text into the 0-based row, merged over
// width columns from startCol.
func (xlw *Writer) WriteBanner(row, startCol, width int, b reporttable.Banner) error {
	if width <= 0 {
		width = 1
	}
	first, err := xlw.setCell(row, startCol, b.Text, b.Style)
	if err != nil || width == 1 {
		return err
	}
	last, err := excelize.CoordinatesToCellName(startCol+width, row+1)
	if err != nil {
		return err
	}
	if s, _ := xlw.getStyle(b.Style); s != 0 {
		if err = xlw.xl.SetCellStyle(xlw.Name, first, last, s); err != nil {
			return err
		}
	}
	if err = xlw.xl.MergeCell(xlw.Name, first, last); err != nil {
		return fmt.Errorf("merge %s:%s: %w", first, last, err)
	}
	return nil
}

// WriteTable writes the table's cells starting at the 0-based (startRow, startCol),
// the header row in bold.
//
// If the table has widths, then the column widths are set to
// WidthUnit*width*widthRatio 1/256 characters.
// A widthRatio of 0 means 1.
func (xlw *Writer) WriteTable(t *reporttable.Table, startRow, startCol int, widthRatio float64) error {
	if startRow+t.NumRows() > MaxRowCount {
		return reporttable.ErrTooManyRows
	}
	if widthRatio == 0 {
		widthRatio = 1
	}
	if t.HasWidths() {
		for c := range t.NumColumns() {
			w, err := t.ColumnWidth(c)
			if err != nil {
				return err
			}
			col, err := excelize.ColumnNumberToName(startCol + c + 1)
			if err != nil {
				return err
			}
			if err = xlw.xl.SetColWidth(xlw.Name, col, col, ColumnWidth(w, widthRatio)); err != nil {
				return fmt.Errorf("%s width: %w", col, err)
			}
		}
	}

	for r := range t.NumRows() {
		var style reporttable.Style
		if r == 0 {
			style = reporttable.HeaderStyle
		}
		for c := range t.NumColumns() {
			s, err := t.Cell(r, c)
			if err != nil {
				return err
			}
			if _, err = xlw.setCell(startRow+r, startCol+c, s, style); err != nil {
				return err
			}
		}
	}
	return nil
}

// ColumnWidth returns the excelize column width (in characters)
// of the table column width.
func ColumnWidth(width int, widthRatio float64) float64 {
	return float64(int(WidthUnit*float64(width)*widthRatio)) / 256
}

// FreezeRows freezes the first n rows of the sheet.
func (xlw *Writer) FreezeRows(n int) error {
	if n <= 0 {
		return nil
	}
	topLeft, err := excelize.CoordinatesToCellName(1, n+1)
	if err != nil {
		return err
	}
	return xlw.xl.SetPanes(xlw.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      n,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
	})
}

// Generate the workbook of the report: the date and the heading bands,
// merged over all columns, the panes frozen below them, then the table.
//
// A widthRatio of 0 means 1.
func Generate(rep *reporttable.Report, widthRatio float64) (*excelize.File, error) {
	xl := excelize.NewFile()
	xlw := NewWriter(xl, SheetName)
	banners := rep.Banners()
	n := rep.Table.NumColumns()
	for i, b := range banners {
		if err := xlw.WriteBanner(i, 0, n, b); err != nil {
			xl.Close()
			return nil, err
		}
	}
	if err := xlw.FreezeRows(len(banners)); err != nil {
		xl.Close()
		return nil, err
	}
	if err := xlw.WriteTable(rep.Table, len(banners), 0, widthRatio); err != nil {
		xl.Close()
		return nil, err
	}
	return xl, nil
}

// Exporter writes the Report as an xlsx workbook.
type Exporter struct {
	Logger *slog.Logger
	// WidthRatio multiplies the column widths; 0 means 1.
	WidthRatio float64
}

func (Exporter) Ext() string { return ".xlsx" }
func (Exporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (Exporter) Disposition(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}
func (e Exporter) Export(w io.Writer, rep *reporttable.Report) error {
	xl, err := Generate(rep, e.WidthRatio)
	if err != nil {
		return err
	}
	defer xl.Close()
	n, err := xl.WriteTo(w)
	if e.Logger != nil {
		e.Logger.Debug("xlsx written", "file", rep.Filename, "rows", rep.Table.NumRows(), "bytes", n, "error", err)
	}
	return err
}
