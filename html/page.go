// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package html

import (
	"io"

	"github.com/UNO-SOFT/reporttable"
)

// PageAttributes are the table attributes of the full page,
// matching its embedded style rules.
const PageAttributes = ` id='tb' border='1'`

// Exporter renders the Report as a complete HTML page.
type Exporter struct {
	Options
}

func (Exporter) Ext() string               { return ".html" }
func (Exporter) ContentType() string       { return "text/html; charset=utf-8" }
func (Exporter) Disposition(string) string { return "" }
func (e Exporter) Export(w io.Writer, rep *reporttable.Report) error {
	return WritePage(w, rep, e.Options)
}

// WritePage writes the report as a standalone HTML page:
// the date, the headings, then the table.
//
// Empty Options.Attributes means PageAttributes.
func WritePage(w io.Writer, rep *reporttable.Report, opts Options) error {
	lay, err := newLayout(rep.Table)
	if err != nil {
		return err
	}
	if opts.Attributes == "" {
		opts.Attributes = PageAttributes
	}
	_, err = io.WriteString(w, pageMarkup(rep, lay, opts))
	return err
}
