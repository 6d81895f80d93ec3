// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package reporttable

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize returns s with its first letter upper cased and the rest lower cased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) +
		cases.Lower(language.Und).String(s[size:])
}

// headerLabel returns the label of the column for the header row:
// the explicit override, the records' field label, or the capitalized column id.
func (t *Table) headerLabel(column string) string {
	if label, ok := t.labels[column]; ok {
		return label
	}
	if fl, ok := t.records.(FieldLabeler); ok {
		if label, ok := fl.FieldLabel(column); ok && label != "" {
			return Capitalize(label)
		}
	}
	return Capitalize(column)
}
