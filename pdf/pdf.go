// Copyright 2021, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package pdf renders a reporttable.Report as a PDF document.
package pdf

import (
	"io"
	"log/slog"
	"mime"

	"github.com/UNO-SOFT/reporttable"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var _ = (reporttable.Exporter)(Exporter{})

const (
	// PageWidth is the width of an A4 page, in points.
	PageWidth = 595.2756
	// Margin is the page margin (half inch), in points.
	Margin = 36.0
	// PrintableWidth is the page width without the left and right margins.
	PrintableWidth = PageWidth - 2*Margin

	marginMM    = 12.7
	spacerH     = 5.0
	fontSize    = 10.0
	cellPadding = 1.0
)

var background = &props.Color{Red: 0xef, Green: 0xef, Blue: 0xef}

// ColumnWidths returns the widths of the columns, in points, out of printable.
func ColumnWidths(t *reporttable.Table, printable float64) ([]int, error) {
	pcts, err := t.WidthPercents()
	if err != nil {
		return nil, err
	}
	widths := make([]int, len(pcts))
	for i, p := range pcts {
		if widths[i] = int(printable * p / 100); widths[i] < 1 {
			widths[i] = 1
		}
	}
	return widths, nil
}

// Cell is a cell of the document layout, Size grid units wide.
type Cell struct {
	Text  string
	Align align.Type
	Size  int
	Bold  bool
}

// Row is a row of the document layout.
// Zero Height means the row is as high as its tallest cell.
type Row struct {
	Cells    []Cell
	Height   float64
	Bordered bool
}

// Layout returns the rows of the document and the grid size of a full row:
// the date and the heading bands spanning all the columns, an empty row,
// then the table, bordered, with its header row in bold.
//
// The grid size is the sum of the column widths, so a grid unit is a point.
func Layout(rep *reporttable.Report) ([]Row, int, error) {
	widths, err := ColumnWidths(rep.Table, PrintableWidth)
	if err != nil {
		return nil, 0, err
	}
	grid, err := rep.Table.Grid()
	if err != nil {
		return nil, 0, err
	}
	var maxGrid int
	for _, w := range widths {
		maxGrid += w
	}

	banners := rep.Banners()
	rows := make([]Row, 0, len(banners)+1+len(grid))
	for _, b := range banners {
		a := align.Left
		if b.Style.Align == reporttable.AlignCenter {
			a = align.Center
		}
		rows = append(rows, Row{Cells: []Cell{{Text: b.Text, Size: maxGrid, Align: a, Bold: b.Style.FontBold}}})
	}
	rows = append(rows, Row{Cells: []Cell{{Size: maxGrid}}, Height: spacerH})

	for r, cells := range grid {
		lr := Row{Cells: make([]Cell, len(cells)), Bordered: true}
		for c, s := range cells {
			lr.Cells[c] = Cell{Text: s, Size: widths[c], Align: align.Left, Bold: r == 0}
		}
		rows = append(rows, lr)
	}
	return rows, maxGrid, nil
}

// Generate the document laid out by Layout.
func Generate(rep *reporttable.Report) (core.Document, error) {
	rows, maxGrid, err := Layout(rep)
	if err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(marginMM).
		WithTopMargin(marginMM).
		WithRightMargin(marginMM).
		WithBottomMargin(marginMM).
		WithMaxGridSize(maxGrid).
		Build()
	m := maroto.New(cfg)

	grid := &props.Cell{
		BackgroundColor: background,
		BorderType:      border.Full,
		BorderThickness: 0.3,
	}
	mrows := make([]core.Row, len(rows))
	for i, lr := range rows {
		cols := make([]core.Col, len(lr.Cells))
		for j, c := range lr.Cells {
			cols[j] = col.New(c.Size)
			if c.Text != "" {
				cols[j] = cols[j].Add(text.New(c.Text, textProps(c.Bold, c.Align)))
			}
			if lr.Bordered {
				cols[j] = cols[j].WithStyle(grid)
			}
		}
		if lr.Height > 0 {
			mrows[i] = row.New(lr.Height).Add(cols...)
		} else {
			mrows[i] = row.New().Add(cols...)
		}
	}
	m.AddRows(mrows...)
	return m.Generate()
}

func textProps(bold bool, a align.Type) props.Text {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return props.Text{
		Family: fontfamily.Helvetica,
		Style:  style,
		Size:   fontSize,
		Align:  a,
		Top:    cellPadding,
		Left:   cellPadding,
		Right:  cellPadding,
	}
}

// Exporter writes the Report as a PDF document.
type Exporter struct {
	Logger *slog.Logger
}

func (Exporter) Ext() string         { return ".pdf" }
func (Exporter) ContentType() string { return "application/pdf" }

// Disposition is inline, just naming the file.
func (Exporter) Disposition(filename string) string {
	return mime.FormatMediaType("inline", map[string]string{"filename": filename})
}

func (e Exporter) Export(w io.Writer, rep *reporttable.Report) error {
	doc, err := Generate(rep)
	if err != nil {
		return err
	}
	b := doc.GetBytes()
	if e.Logger != nil {
		e.Logger.Debug("pdf generated", "file", rep.Filename, "rows", rep.Table.NumRows(), "bytes", len(b))
	}
	_, err = w.Write(b)
	return err
}
