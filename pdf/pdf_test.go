// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package pdf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/UNO-SOFT/reporttable"
	"github.com/UNO-SOFT/reporttable/pdf"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string
	Price float64
}

func newTable(options ...reporttable.Option) *reporttable.Table {
	return reporttable.New(reporttable.Slice[item]{
		{Name: "apple", Price: 1.5},
		{Name: "pear", Price: 2},
	}, []string{"name", "price"}, options...)
}

func TestColumnWidths(t *testing.T) {
	tbl := newTable(reporttable.WithSerial(),
		reporttable.WithWidths(map[string]int{reporttable.SerialColumn: 1, "name": 3, "price": 2}))
	widths, err := pdf.ColumnWidths(tbl, pdf.PrintableWidth)
	require.NoError(t, err)
	assert.Equal(t, []int{87, 261, 174}, widths)

	var sum int
	for _, w := range widths {
		sum += w
	}
	assert.LessOrEqual(t, float64(sum), pdf.PrintableWidth)

	tiny := newTable(reporttable.WithWidths(map[string]int{"name": 1, "price": 10000}))
	widths, err = pdf.ColumnWidths(tiny, 100)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 99}, widths)
}

func TestColumnWidthsMissing(t *testing.T) {
	_, err := pdf.ColumnWidths(newTable(), pdf.PrintableWidth)
	assert.ErrorIs(t, err, reporttable.ErrMissingWidth)

	_, err = pdf.Generate(reporttable.NewReport(
		newTable(reporttable.WithWidths(map[string]int{"name": 3})), "x"))
	assert.ErrorIs(t, err, reporttable.ErrMissingWidth)
}

func TestExport(t *testing.T) {
	tbl := newTable(reporttable.WithSerial(),
		reporttable.WithWidths(map[string]int{reporttable.SerialColumn: 1, "name": 3, "price": 2}))
	rep := reporttable.NewReport(tbl, "fruits", "Report A", "Second")

	var e pdf.Exporter
	assert.Equal(t, ".pdf", e.Ext())
	assert.Equal(t, "application/pdf", e.ContentType())
	assert.Equal(t, "inline; filename=fruits.pdf", e.Disposition("fruits.pdf"))

	var buf bytes.Buffer
	require.NoError(t, e.Export(&buf, rep))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	rep.Date, rep.Headings = "", nil
	doc, err := pdf.Generate(rep)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.GetBytes())
}

func TestLayout(t *testing.T) {
	tbl := newTable(reporttable.WithSerial(),
		reporttable.WithWidths(map[string]int{reporttable.SerialColumn: 1, "name": 3, "price": 2}))
	rep := reporttable.NewReport(tbl, "fruits", "Report A", "Second")
	rep.Date = "01/01/2020"

	rows, maxGrid, err := pdf.Layout(rep)
	require.NoError(t, err)
	assert.Equal(t, 87+261+174, maxGrid)
	// date, 2 headings, spacer, header, 2 data rows
	require.Len(t, rows, 7)

	for i, want := range []struct {
		text  string
		align align.Type
	}{
		{"Date : 01/01/2020", align.Left},
		{"Report A", align.Center},
		{"Second", align.Center},
	} {
		r := rows[i]
		require.Len(t, r.Cells, 1)
		assert.Equal(t, want.text, r.Cells[0].Text)
		assert.Equal(t, want.align, r.Cells[0].Align)
		assert.Equal(t, maxGrid, r.Cells[0].Size)
		assert.True(t, r.Cells[0].Bold)
		assert.False(t, r.Bordered)
		assert.Zero(t, r.Height)
	}
	spacer := rows[3]
	assert.False(t, spacer.Bordered)
	assert.Positive(t, spacer.Height)
	assert.Equal(t, maxGrid, spacer.Cells[0].Size)

	header := rows[4]
	assert.True(t, header.Bordered)
	var names []string
	for _, c := range header.Cells {
		assert.True(t, c.Bold)
		names = append(names, c.Text)
	}
	assert.Equal(t, []string{"S.No.", "Name", "Price"}, names)
	for _, r := range rows[5:] {
		assert.True(t, r.Bordered)
		assert.Zero(t, r.Height)
		require.Len(t, r.Cells, 3)
		assert.Equal(t, []int{87, 261, 174}, []int{r.Cells[0].Size, r.Cells[1].Size, r.Cells[2].Size})
		for _, c := range r.Cells {
			assert.False(t, c.Bold)
		}
	}
	assert.Equal(t, "pear", rows[6].Cells[1].Text)
}

func countPages(b []byte) int { return bytes.Count(b, []byte("/Type /Page\n")) }

func TestLongCellsGrowRows(t *testing.T) {
	widths := reporttable.WithWidths(map[string]int{"name": 1, "price": 1})
	short := make(reporttable.Slice[item], 20)
	long := make(reporttable.Slice[item], 20)
	for i := range short {
		short[i] = item{Name: "x", Price: float64(i)}
		long[i] = item{Name: strings.Repeat("lorem ipsum dolor ", 20), Price: float64(i)}
	}
	render := func(recs reporttable.Slice[item]) []byte {
		t.Helper()
		rep := reporttable.NewReport(reporttable.New(recs, []string{"name", "price"}, widths), "x")
		doc, err := pdf.Generate(rep)
		require.NoError(t, err)
		return doc.GetBytes()
	}
	shortPages, longPages := countPages(render(short)), countPages(render(long))
	assert.Equal(t, 1, shortPages)
	// wrapped cells make their rows taller, pushing the table onto more pages
	assert.Greater(t, longPages, shortPages)
}
