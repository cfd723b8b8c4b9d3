package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Reader is a cursor over one wire line. Methods consume from the current
// position and return descriptive errors on mismatch; the caller backtracks
// by starting over with a fresh Reader.
type Reader struct {
	data string
	pos  int
}

// NewReader creates a reader over a single line.
func NewReader(line string) Reader {
	return Reader{data: line}
}

// Rest returns the unconsumed tail of the line.
func (r *Reader) Rest() string { return r.data[r.pos:] }

// Tag consumes the literal tag.
func (r *Reader) Tag(tag string) error {
	if !strings.HasPrefix(r.data[r.pos:], tag) {
		return fmt.Errorf("Tag: expected %q (pos=%d)", tag, r.pos)
	}
	r.pos += len(tag)
	return nil
}

func (r *Reader) expect(c byte, name string) error {
	if r.pos >= len(r.data) || r.data[r.pos] != c {
		return fmt.Errorf("%s: expected %q (pos=%d)", name, c, r.pos)
	}
	r.pos++
	return nil
}

// Tab consumes a field separator.
func (r *Reader) Tab() error { return r.expect('\t', "Tab") }

// Space consumes a space separator.
func (r *Reader) Space() error { return r.expect(' ', "Space") }

// Caret consumes a user-record component separator.
func (r *Reader) Caret() error { return r.expect('^', "Caret") }

// SkipTab consumes a tab if one is present.
func (r *Reader) SkipTab() bool {
	if r.pos < len(r.data) && r.data[r.pos] == '\t' {
		r.pos++
		return true
	}
	return false
}

// TakeNewline consumes a newline if one is present. Every packet ends with
// an optional newline; sub-records never consume one.
func (r *Reader) TakeNewline() bool {
	if r.pos < len(r.data) && r.data[r.pos] == '\n' {
		r.pos++
		return true
	}
	return false
}

// AtEnd reports whether the cursor sits on a newline or the end of the line.
// Optional trailing fields are absent exactly in that case.
func (r *Reader) AtEnd() bool {
	return r.pos >= len(r.data) || r.data[r.pos] == '\n'
}

// Until reads up to but not including any byte in stops, or to the end of
// the line. The result may be empty.
func (r *Reader) Until(stops string) string {
	start := r.pos
	for r.pos < len(r.data) && !strings.ContainsRune(stops, rune(r.data[r.pos])) {
		r.pos++
	}
	return r.data[start:r.pos]
}

// Field reads one tab-delimited field. Fields never contain tabs or
// newlines; an empty field is valid.
func (r *Reader) Field() string { return r.Until("\t\n") }

// Int reads a signed 32-bit decimal field.
func (r *Reader) Int() (int, error) {
	f := r.Field()
	n, err := strconv.ParseInt(f, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("Int: bad number %q (pos=%d)", f, r.pos)
	}
	return int(n), nil
}

// Uint reads a non-negative decimal field, used for indexes and counts.
func (r *Reader) Uint() (int, error) {
	f := r.Field()
	n, err := strconv.ParseUint(f, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("Uint: bad number %q (pos=%d)", f, r.pos)
	}
	return int(n), nil
}

// Uint8 reads a decimal field in 0..255.
func (r *Reader) Uint8() (int, error) {
	f := r.Field()
	n, err := strconv.ParseUint(f, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("Uint8: bad number %q (pos=%d)", f, r.pos)
	}
	return int(n), nil
}

// Bool reads a single 't' or 'f' byte. The flag is one character, not a
// whole field.
func (r *Reader) Bool() (bool, error) {
	if r.pos < len(r.data) {
		switch r.data[r.pos] {
		case 't':
			r.pos++
			return true, nil
		case 'f':
			r.pos++
			return false, nil
		}
	}
	return false, fmt.Errorf("Bool: expected t or f (pos=%d)", r.pos)
}

// D reads the "d <num> " prefix of a sequenced packet.
func (r *Reader) D() (D, error) {
	if err := r.Tag("d "); err != nil {
		return 0, err
	}
	num := r.Until(" ")
	n, err := strconv.ParseUint(num, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("D: bad packet number %q (pos=%d)", num, r.pos)
	}
	if err := r.Space(); err != nil {
		return 0, err
	}
	return D(n), nil
}

// DTag reads the "d <num> " prefix followed by the packet tag.
func (r *Reader) DTag(tag string) (D, error) {
	d, err := r.D()
	if err != nil {
		return 0, err
	}
	if err := r.Tag(tag); err != nil {
		return 0, err
	}
	return d, nil
}

// TabField consumes a separator and reads the following field.
func (r *Reader) TabField() (string, error) {
	if err := r.Tab(); err != nil {
		return "", err
	}
	return r.Field(), nil
}

// TabInt consumes a separator and reads a signed number field.
func (r *Reader) TabInt() (int, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return r.Int()
}

// TabUint consumes a separator and reads a non-negative number field.
func (r *Reader) TabUint() (int, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return r.Uint()
}

// TabUint8 consumes a separator and reads a number field in 0..255.
func (r *Reader) TabUint8() (int, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return r.Uint8()
}

// TabBool consumes a separator and reads a single-character flag.
func (r *Reader) TabBool() (bool, error) {
	if err := r.Tab(); err != nil {
		return false, err
	}
	return r.Bool()
}

// Ints reads a tab-separated list of at least one signed number. The list
// runs to the first separator not followed by another number.
func (r *Reader) Ints() ([]int, error) {
	n, err := r.Int()
	if err != nil {
		return nil, err
	}
	out := []int{n}
	for {
		save := r.pos
		if !r.SkipTab() {
			return out, nil
		}
		n, err := r.Int()
		if err != nil {
			r.pos = save
			return out, nil
		}
		out = append(out, n)
	}
}

// Fields reads a tab-separated list of at least one field, running to the
// end of the line.
func (r *Reader) Fields() []string {
	out := []string{r.Field()}
	for r.SkipTab() {
		out = append(out, r.Field())
	}
	return out
}
