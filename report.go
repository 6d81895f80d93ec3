// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package reporttable

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DateFormat is the format of the default report date.
const DateFormat = "02/01/2006"

// Report is a Table with the decoration around it: the file name stem,
// the headings above the table and the date.
type Report struct {
	Table *Table
	// Filename is the output file name, without extension.
	Filename string
	// Headings are shown above the table, each in its own full width band.
	Headings []string
	// Date is shown above the headings; empty means no date band.
	Date string
}

// NewReport returns a Report dated today.
func NewReport(t *Table, filename string, headings ...string) *Report {
	return &Report{
		Table:    t,
		Filename: filename,
		Headings: headings,
		Date:     time.Now().Format(DateFormat),
	}
}

// Banner is a full width band above the table.
type Banner struct {
	Text  string
	Style Style
}

var (
	dateStyle    = Style{FontBold: true, Align: AlignLeft, Wrap: true}
	headingStyle = Style{FontBold: true, Align: AlignCenter, Wrap: true}
	// HeaderStyle is the style of the table's header row.
	HeaderStyle = Style{FontBold: true}
)

// Banners returns the date band (if there is a date), then the headings.
func (rep *Report) Banners() []Banner {
	banners := make([]Banner, 0, len(rep.Headings)+1)
	if rep.Date != "" {
		banners = append(banners, Banner{Text: "Date : " + rep.Date, Style: dateStyle})
	}
	for _, h := range rep.Headings {
		banners = append(banners, Banner{Text: h, Style: headingStyle})
	}
	return banners
}

// FileName returns the file name with the given extension.
func (rep *Report) FileName(ext string) string { return rep.Filename + ext }

// Save the report rendered by the Exporter into dir, returning the path of the file.
func Save(e Exporter, rep *Report, dir string) (string, error) {
	fn := filepath.Join(dir, rep.FileName(e.Ext()))
	fh, err := os.Create(fn)
	if err != nil {
		return fn, err
	}
	defer fh.Close()
	if err = e.Export(fh, rep); err != nil {
		return fn, fmt.Errorf("export %q: %w", fn, err)
	}
	return fn, fh.Close()
}

// Respond writes the report rendered by the Exporter as the HTTP response.
//
// The artifact is rendered in memory first, so on error nothing is written to w.
func Respond(w http.ResponseWriter, e Exporter, rep *Report) error {
	var buf bytes.Buffer
	if err := e.Export(&buf, rep); err != nil {
		return err
	}
	h := w.Header()
	h.Set("Content-Type", e.ContentType())
	if d := e.Disposition(rep.FileName(e.Ext())); d != "" {
		h.Set("Content-Disposition", d)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
