// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package reporttable

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	}
	if EncName == "" || EncName == "c" || EncName == "posix" {
		EncName = "utf-8"
	}
}

func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

type csvReadCloser struct {
	*csv.Reader
	io.Closer
}

// OpenCsv opens the named file ("" or "-" is stdin) for reading as CSV,
// decoding from the named charset and guessing the field separator.
func OpenCsv(fn, encName string) (csvReadCloser, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return csvReadCloser{}, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return csvReadCloser{}, err
		}
	}
	r := io.ReadCloser(fh)
	if enc != nil {
		r = struct {
			io.Reader
			io.Closer
		}{enc.NewDecoder().Reader(r), r}
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		r.Close()
		return csvReadCloser{}, err
	}
	sep := rune(',')
	for _, r := range string(b) {
		if r == '"' || r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		sep = r
		break
	}

	cr := csv.NewReader(br)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	return csvReadCloser{cr, r}, nil
}

// CSVRecords is Records read from a CSV with a header row.
//
// The column ids are the header texts, which are the field labels, too.
type CSVRecords struct {
	index  map[string]int
	Header []string
	Rows   [][]string
}

var (
	_ = Records((*CSVRecords)(nil))
	_ = FieldLabeler((*CSVRecords)(nil))
)

// ReadCSV reads all the records of cr, the first row being the header.
func ReadCSV(cr *csv.Reader) (*CSVRecords, error) {
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("no header: %w", io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	header = append([]string(nil), header...)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	recs := CSVRecords{Header: header, Rows: rows, index: make(map[string]int, len(header))}
	for i, h := range header {
		if _, ok := recs.index[h]; !ok {
			recs.index[h] = i
		}
	}
	return &recs, nil
}

func (recs *CSVRecords) Len() int         { return len(recs.Rows) }
func (recs *CSVRecords) Record(i int) any { return recs.Rows[i] }

// FieldLabel returns the header text for the known columns.
func (recs *CSVRecords) FieldLabel(column string) (string, bool) {
	_, ok := recs.index[column]
	return column, ok
}

// Extract is an Extractor for the records of recs.
func (recs *CSVRecords) Extract(record any, column string) (any, error) {
	row, ok := record.([]string)
	if !ok {
		return nil, fmt.Errorf("%T is not a CSV row: %w", record, ErrUnknownColumn)
	}
	i, ok := recs.index[column]
	if !ok {
		return nil, fmt.Errorf("%q: %w", column, ErrUnknownColumn)
	}
	if i >= len(row) {
		return "", nil
	}
	return row[i], nil
}
