// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package reporttable

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"
)

// Records is an ordered, indexable set of records, such as a query result.
type Records interface {
	Len() int
	Record(i int) any
}

// FieldLabeler is implemented by Records that know a human readable
// label for (some of) their fields.
type FieldLabeler interface {
	FieldLabel(field string) (string, bool)
}

// Extractor returns the value of the column for the record.
type Extractor func(record any, column string) (any, error)

var (
	_ = Records(Slice[struct{}](nil))
	_ = FieldLabeler(Slice[struct{}](nil))
	_ = Extractor(FieldExtractor)
)

// Slice is a Records over a slice.
//
// For struct (or pointer to struct) elements the `label:"..."` struct tag
// gives the field label, and the `table:"..."` tag names the column id
// the field answers to.
type Slice[T any] []T

func (s Slice[T]) Len() int         { return len(s) }
func (s Slice[T]) Record(i int) any { return s[i] }

// FieldLabel returns the label struct tag of the field matching the column.
func (s Slice[T]) FieldLabel(column string) (string, bool) {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return "", false
	}
	f, ok := fieldByColumn(t, column)
	if !ok {
		return "", false
	}
	label, ok := f.Tag.Lookup("label")
	return label, ok && label != ""
}

// FieldExtractor is the default Extractor.
//
// It returns the struct field answering to the column (see Slice),
// or the value under the column key for maps with string keys.
// Pointers are followed; a nil pointer yields a nil value.
func FieldExtractor(record any, column string) (any, error) {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		if f, ok := fieldByColumn(v.Type(), column); ok {
			fv, err := v.FieldByIndexErr(f.Index)
			if err != nil {
				// nil embedded pointer
				return nil, nil
			}
			return fv.Interface(), nil
		}
	case reflect.Map:
		if kt := v.Type().Key(); kt.Kind() == reflect.String {
			if mv := v.MapIndex(reflect.ValueOf(column).Convert(kt)); mv.IsValid() {
				return mv.Interface(), nil
			}
		}
	}
	return nil, fmt.Errorf("%q in %T: %w", column, record, ErrUnknownColumn)
}

// fieldByColumn finds the exported field tagged with the column name,
// or else named like the column, ignoring case and underscores.
func fieldByColumn(t reflect.Type, column string) (reflect.StructField, bool) {
	fields := reflect.VisibleFields(t)
	for _, f := range fields {
		if !f.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(f.Tag.Get("table"), ","); tag == column {
			return f, true
		}
	}
	want := normalizeName(column)
	for _, f := range fields {
		if !f.IsExported() || f.Anonymous || f.Tag.Get("table") == "-" {
			continue
		}
		if normalizeName(f.Name) == want {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// String returns the display form of v.
//
// nil is the empty string, driver.Valuers (sql.NullString & co.) are
// unwrapped, everything else is formatted with fmt.Sprint.
func String(v any) string {
	if vr, ok := v.(driver.Valuer); ok {
		if vv, err := vr.Value(); err == nil {
			v = vv
		}
	}
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	}
	return fmt.Sprint(v)
}
