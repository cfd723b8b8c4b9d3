package protocol

import (
	"strconv"
	"strings"
)

// Writer builds one wire line. Field methods prepend the tab separator;
// Raw and Tab exist for the few places that manage separators themselves.
type Writer struct {
	b strings.Builder
}

// NewWriter creates a writer for a single line.
func NewWriter() *Writer {
	return &Writer{}
}

// D writes the "d <num> " prefix of a sequenced packet.
func (w *Writer) D(d D) {
	w.b.WriteString("d ")
	w.b.WriteString(d.String())
	w.b.WriteByte(' ')
}

// Tag writes the literal packet tag.
func (w *Writer) Tag(s string) { w.b.WriteString(s) }

// Raw writes s without a separator.
func (w *Writer) Raw(s string) { w.b.WriteString(s) }

// Tab writes a bare field separator.
func (w *Writer) Tab() { w.b.WriteByte('\t') }

// Field writes a tab-separated string field.
func (w *Writer) Field(s string) {
	w.b.WriteByte('\t')
	w.b.WriteString(s)
}

// Int writes a tab-separated decimal field.
func (w *Writer) Int(n int) {
	w.b.WriteByte('\t')
	w.b.WriteString(strconv.Itoa(n))
}

// Bool writes a tab-separated single-character flag.
func (w *Writer) Bool(v bool) {
	w.b.WriteByte('\t')
	if v {
		w.b.WriteByte('t')
	} else {
		w.b.WriteByte('f')
	}
}

// Ints writes a tab-separated list of decimal fields.
func (w *Writer) Ints(ns []int) {
	for _, n := range ns {
		w.Int(n)
	}
}

// End terminates the line and returns it.
func (w *Writer) End() string {
	w.b.WriteByte('\n')
	return w.b.String()
}
