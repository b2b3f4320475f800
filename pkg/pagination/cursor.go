package pagination

import (
	"fmt"
	"strconv"
)

// CursorWriter collects typed page-state fields in order.
type CursorWriter struct {
	fields []string
}

// NewCursorWriter returns an empty writer.
func NewCursorWriter() *CursorWriter {
	return &CursorWriter{}
}

// String writes v as is.
func (w *CursorWriter) String(v string) *CursorWriter {
	w.fields = append(w.fields, v)
	return w
}

// OptString writes NullField for nil.
func (w *CursorWriter) OptString(v *string) *CursorWriter {
	if v == nil {
		return w.String(NullField)
	}
	return w.String(*v)
}

// Int writes v in base 10.
func (w *CursorWriter) Int(v int) *CursorWriter {
	return w.String(strconv.Itoa(v))
}

// OptInt writes NullField for nil.
func (w *CursorWriter) OptInt(v *int) *CursorWriter {
	if v == nil {
		return w.String(NullField)
	}
	return w.Int(*v)
}

// Int64 writes v in base 10.
func (w *CursorWriter) Int64(v int64) *CursorWriter {
	return w.String(strconv.FormatInt(v, 10))
}

// Bool writes true or false.
func (w *CursorWriter) Bool(v bool) *CursorWriter {
	return w.String(strconv.FormatBool(v))
}

// Encode joins the written fields into a cursor token.
func (w *CursorWriter) Encode() (string, error) {
	return EncodeCursor(w.fields...)
}

// CursorReader reads typed fields back in the order they were written.
// The first failure sticks; every later accessor returns a zero value and Err
// reports the failure as an invalid cursor.
type CursorReader struct {
	fields []string
	pos    int
	err    error
}

// NewCursorReader decodes token and checks it carries exactly arity fields.
func NewCursorReader(token string, arity int) (*CursorReader, error) {
	fields, err := DecodeCursor(token, arity)
	if err != nil {
		return nil, err
	}
	return &CursorReader{fields: fields}, nil
}

func (r *CursorReader) next() (string, bool) {
	if r.err != nil {
		return "", false
	}
	if r.pos >= len(r.fields) {
		r.err = invalidCursor(fmt.Sprintf("field %d is missing", r.pos), nil)
		return "", false
	}
	f := r.fields[r.pos]
	r.pos++
	return f, true
}

func (r *CursorReader) fail(field string, err error) {
	r.err = invalidCursor(fmt.Sprintf("field %d (%q)", r.pos-1, field), err)
}

// String reads a required string; NullField is rejected.
func (r *CursorReader) String() string {
	f, ok := r.next()
	if !ok {
		return ""
	}
	if f == NullField {
		r.err = invalidCursor(fmt.Sprintf("field %d is required", r.pos-1), nil)
		return ""
	}
	return f
}

// OptString reads a string; NullField yields nil.
func (r *CursorReader) OptString() *string {
	f, ok := r.next()
	if !ok || f == NullField {
		return nil
	}
	return &f
}

// Int reads a required base 10 int.
func (r *CursorReader) Int() int {
	f, ok := r.next()
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(f)
	if err != nil {
		r.fail(f, err)
		return 0
	}
	return v
}

// OptInt reads an int; NullField yields nil.
func (r *CursorReader) OptInt() *int {
	f, ok := r.next()
	if !ok || f == NullField {
		return nil
	}
	v, err := strconv.Atoi(f)
	if err != nil {
		r.fail(f, err)
		return nil
	}
	return &v
}

// Int64 reads a required base 10 int64.
func (r *CursorReader) Int64() int64 {
	f, ok := r.next()
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(f, 10, 64)
	if err != nil {
		r.fail(f, err)
		return 0
	}
	return v
}

// Bool reads a required bool in any form strconv.ParseBool accepts.
func (r *CursorReader) Bool() bool {
	f, ok := r.next()
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(f)
	if err != nil {
		r.fail(f, err)
		return false
	}
	return v
}

// Err returns the first failure as an invalid cursor, or nil.
func (r *CursorReader) Err() error {
	return r.err
}
