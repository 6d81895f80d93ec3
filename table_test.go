// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package reporttable_test

import (
	"database/sql"
	"errors"
	"strconv"
	"testing"

	"github.com/UNO-SOFT/reporttable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name      string `label:"full name"`
	Age       int
	Nick      sql.NullString
	HomeTown  string `table:"town"`
	FirstSeen string
	secret    string
}

func people() reporttable.Slice[person] {
	return reporttable.Slice[person]{
		{Name: "Alice", Age: 31, Nick: sql.NullString{String: "al", Valid: true}, HomeTown: "Bp"},
		{Name: "Bob", Age: 42, FirstSeen: "2020"},
	}
}

func newPeopleTable(options ...reporttable.Option) *reporttable.Table {
	return reporttable.New(people(), []string{"name", "age"}, options...)
}

func TestCounts(t *testing.T) {
	for _, serial := range []bool{false, true} {
		for _, n := range []int{0, 1, 5} {
			recs := make(reporttable.Slice[person], n)
			var opts []reporttable.Option
			want := 2
			if serial {
				opts = append(opts, reporttable.WithSerial())
				want++
			}
			tbl := reporttable.New(recs, []string{"name", "age"}, opts...)
			assert.Equal(t, want, tbl.NumColumns(), "serial=%t", serial)
			assert.Equal(t, n+1, tbl.NumRows(), "n=%d", n)
		}
	}
}

func TestWidthPercent(t *testing.T) {
	tbl := newPeopleTable(
		reporttable.WithSerial(),
		reporttable.WithWidths(map[string]int{reporttable.SerialColumn: 1, "name": 3, "age": 2}),
	)
	require.Equal(t, 3, tbl.NumColumns())
	total, err := tbl.TotalWidth()
	require.NoError(t, err)
	assert.Equal(t, 6, total)

	var sum float64
	for i, want := range []float64{16.67, 50.0, 33.33} {
		p, err := tbl.ColumnWidthPercent(i)
		require.NoError(t, err)
		assert.InDelta(t, want, p, 0.005, "column %d", i)
		sum += p
	}
	assert.InDelta(t, 100, sum, 1e-9)

	pcts, err := tbl.WidthPercents()
	require.NoError(t, err)
	assert.Len(t, pcts, 3)
	assert.InDelta(t, 50.0, pcts[1], 1e-9)

	s, err := tbl.Cell(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", s)
}

func TestWidthErrors(t *testing.T) {
	tbl := newPeopleTable(reporttable.WithWidths(map[string]int{"name": 3}))
	_, err := tbl.ColumnWidth(1)
	assert.ErrorIs(t, err, reporttable.ErrMissingWidth)
	_, err = tbl.ColumnWidthPercent(0)
	assert.ErrorIs(t, err, reporttable.ErrMissingWidth)
	_, err = tbl.TotalWidth()
	assert.ErrorIs(t, err, reporttable.ErrMissingWidth)
	_, err = tbl.ColumnWidth(5)
	assert.ErrorIs(t, err, reporttable.ErrColumnIndex)

	serial := newPeopleTable(reporttable.WithSerial(),
		reporttable.WithWidths(map[string]int{"name": 3, "age": 2}))
	_, err = serial.ColumnWidth(0)
	assert.ErrorIs(t, err, reporttable.ErrMissingWidth)
	w, err := serial.ColumnWidth(2)
	require.NoError(t, err)
	assert.Equal(t, 2, w)

	empty := reporttable.New(people(), nil, reporttable.WithWidths(map[string]int{"x": 1}))
	_, err = empty.ColumnWidthPercent(0)
	assert.ErrorIs(t, err, reporttable.ErrColumnIndex)
	_, err = empty.WidthPercents()
	assert.ErrorIs(t, err, reporttable.ErrZeroWidth)

	zero := newPeopleTable(reporttable.WithWidths(map[string]int{"name": 0, "age": 0}))
	_, err = zero.ColumnWidthPercent(1)
	assert.ErrorIs(t, err, reporttable.ErrZeroWidth)
}

func TestHeader(t *testing.T) {
	tbl := reporttable.New(people(), []string{"name", "age", "town", "first_seen", "computed"},
		reporttable.WithSerial(),
		reporttable.WithLabels(map[string]string{"age": "years"}),
	)
	row, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []string{reporttable.SerialLabel, "Full name", "years", "Town", "First_seen", "Computed"}, row)

	tbl = newPeopleTable(reporttable.WithSerial(),
		reporttable.WithLabels(map[string]string{reporttable.SerialColumn: "#"}))
	s, err := tbl.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "#", s)
}

func TestCells(t *testing.T) {
	tbl := reporttable.New(people(), []string{"name", "age", "nick", "town", "first_seen"},
		reporttable.WithSerial())
	grid, err := tbl.Grid()
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, []string{"1", "Alice", "31", "al", "Bp", ""}, grid[1])
	assert.Equal(t, []string{"2", "Bob", "42", "", "", "2020"}, grid[2])

	for r := 1; r < tbl.NumRows(); r++ {
		s, err := tbl.Cell(r, 0)
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(r), s)
		again, err := tbl.Cell(r, 1)
		require.NoError(t, err)
		once, _ := tbl.Cell(r, 1)
		assert.Equal(t, once, again)
	}

	_, err = tbl.Cell(3, 1)
	assert.ErrorIs(t, err, reporttable.ErrColumnIndex)
}

func TestExtractor(t *testing.T) {
	tbl := newPeopleTable()
	bad := reporttable.New(people(), []string{"secret"})
	_, err := bad.Cell(1, 0)
	assert.ErrorIs(t, err, reporttable.ErrUnknownColumn)

	errBoom := errors.New("boom")
	computed := reporttable.New(people(), []string{"name", "label"},
		reporttable.WithExtractor(func(record any, column string) (any, error) {
			p := record.(person)
			switch column {
			case "label":
				return p.Name + "/" + strconv.Itoa(p.Age), nil
			case "fail":
				return nil, errBoom
			}
			return reporttable.FieldExtractor(record, column)
		}))
	row, err := computed.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Bob/42"}, row)

	s, err := tbl.Cell(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "Bob", s)
}

func TestFieldExtractor(t *testing.T) {
	p := &person{Name: "Carol", Age: 7}
	for _, tc := range []struct {
		record any
		column string
		want   any
	}{
		{p, "name", "Carol"},
		{*p, "AGE", 7},
		{map[string]any{"x": 1.5}, "x", 1.5},
		{map[string]string{"name": "Dave"}, "name", "Dave"},
		{(*person)(nil), "name", nil},
	} {
		got, err := reporttable.FieldExtractor(tc.record, tc.column)
		require.NoError(t, err, "%#v", tc.record)
		assert.Equal(t, tc.want, got)
	}
	for _, record := range []any{nil, 3, map[int]string{1: "a"}, map[string]int{}} {
		_, err := reporttable.FieldExtractor(record, "name")
		assert.ErrorIs(t, err, reporttable.ErrUnknownColumn, "%#v", record)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "", reporttable.String(nil))
	assert.Equal(t, "", reporttable.String(sql.NullInt64{}))
	assert.Equal(t, "12", reporttable.String(sql.NullInt64{Int64: 12, Valid: true}))
	assert.Equal(t, "2.5", reporttable.String(2.5))
	assert.Equal(t, "ab", reporttable.String([]byte("ab")))
}

func TestCapitalize(t *testing.T) {
	for in, want := range map[string]string{
		"":          "",
		"name":      "Name",
		"FULL NAME": "Full name",
		"élet":      "Élet",
	} {
		assert.Equal(t, want, reporttable.Capitalize(in), in)
	}
}
