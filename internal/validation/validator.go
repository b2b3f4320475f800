// Package validation aggregates required-field and mutual-exclusion checks over
// an object graph into a single error.
//
// Every DTO that accepts client input implements Validatable. Validate walks the
// object, every nested Validatable reached through Required, and every member of
// a collection handed to Collection, recording all violations before failing:
//
//	func (c *Clob) ValidateFields(v *validation.Validator) {
//		v.RequiredString(c.OfficeID, "office-id")
//		v.RequiredString(c.ID, "id")
//	}
//
//	if err := validation.Validate(clob); err != nil {
//		return err // *apperr.RequiredFieldError listing every missing field
//	}
package validation

import (
	"errors"
	"reflect"

	"github.com/DjordjeVuckovic/hydro-api/internal/apperr"
)

// Validatable is implemented by objects that declare their required fields.
// Implementations must only read their own state.
type Validatable interface {
	ValidateFields(v *Validator)
}

// Validate runs a fresh Validator over obj.
func Validate(obj Validatable) error {
	v := New()
	obj.ValidateFields(v)
	return v.Finish()
}

// Validator accumulates violations for one validation call. It is not safe for
// concurrent use and must not be reused after Finish.
type Validator struct {
	missing   map[string]struct{}
	exclusive map[string]struct{}
	problems  map[string]error
}

func New() *Validator {
	return &Validator{
		missing:   make(map[string]struct{}),
		exclusive: make(map[string]struct{}),
		problems:  make(map[string]error),
	}
}

// Required records field as missing when value is absent and validates value
// when it is itself Validatable.
func (v *Validator) Required(value any, field string) {
	if absent(value) {
		v.missing[field] = struct{}{}
		return
	}
	if nested, ok := value.(Validatable); ok {
		nested.ValidateFields(v)
	}
}

// RequiredString is Required for plain strings, without boxing.
func (v *Validator) RequiredString(value string, field string) {
	if value == "" {
		v.missing[field] = struct{}{}
	}
}

// Nested validates value when present; absence is not a violation.
func (v *Validator) Nested(value Validatable) {
	if !absent(value) {
		value.ValidateFields(v)
	}
}

// Collection validates every member of items. An empty or nil collection is valid.
func Collection[T Validatable](v *Validator, items []T) {
	for _, item := range items {
		if absent(item) {
			continue
		}
		item.ValidateFields(v)
	}
}

// Field names a value taking part in a multi-field rule.
type Field struct {
	Name  string
	Value any
}

// MutuallyExclusive records the names of all supplied fields when more than one
// of them is set.
func (v *Validator) MutuallyExclusive(fields ...Field) {
	set := supplied(fields)
	if len(set) > 1 {
		for _, name := range set {
			v.exclusive[name] = struct{}{}
		}
	}
}

// RequireOneOf requires exactly one of fields to be set. None set records every
// name as missing; several set records them as mutually exclusive.
func (v *Validator) RequireOneOf(fields ...Field) {
	set := supplied(fields)
	switch {
	case len(set) == 0:
		for _, f := range fields {
			v.missing[f.Name] = struct{}{}
		}
	case len(set) > 1:
		for _, name := range set {
			v.exclusive[name] = struct{}{}
		}
	}
}

// Check records err against field. A nil err is ignored; the first error per
// field wins.
func (v *Validator) Check(field string, err error) {
	if err == nil {
		return
	}
	if _, ok := v.problems[field]; !ok {
		v.problems[field] = err
	}
}

// Finish reports every recorded violation. Violations of different kinds are
// combined with errors.Join.
func (v *Validator) Finish() error {
	var errs []error
	if len(v.missing) > 0 {
		errs = append(errs, apperr.NewRequiredFields(keys(v.missing)...))
	}
	if len(v.exclusive) > 0 {
		errs = append(errs, apperr.NewExclusiveFields(keys(v.exclusive)...))
	}
	if len(v.problems) > 0 {
		problems := make(map[string]error, len(v.problems))
		for k, e := range v.problems {
			problems[k] = e
		}
		errs = append(errs, &apperr.FieldError{Problems: problems})
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

func supplied(fields []Field) []string {
	var set []string
	for _, f := range fields {
		if !absent(f.Value) {
			set = append(set, f.Name)
		}
	}
	return set
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// absent reports nil values, typed nil pointers, nil slices and maps, and empty
// strings. Zero numbers and empty non-nil slices are present.
func absent(value any) bool {
	switch x := value.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case *string:
		return x == nil
	case *int:
		return x == nil
	case *float64:
		return x == nil
	case *bool:
		return x == nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
