// Package forms validates and sanitizes submitted form data.
//
// Each form type carries the raw string values from a submission and exposes
// a Validate method producing either a typed record ready for persistence or
// a Result bundling the collected field errors together with HTML-escaped
// echo values for re-rendering the form.
//
// Rules run in declaration order per field and stop at the first failure for
// that field, but every field is validated so a single re-render can show
// all problems at once.
package forms

import (
	"html"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// isoDateFormat is the accepted calendar-date input format.
const isoDateFormat = "2006-01-02"

// FieldError describes a single validation problem on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating one form submission. Values holds the
// submitted inputs escaped for safe re-rendering; Errors is ordered by field
// declaration.
type Result struct {
	Values map[string]string
	Errors []FieldError
}

// Valid reports whether the submission passed every rule.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// orderedErrors flattens an ozzo-validation error map into a list following
// the form's field declaration order.
func orderedErrors(err error, fieldOrder []string) []FieldError {
	if err == nil {
		return nil
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		// Not field-level: attribute to the form as a whole.
		return []FieldError{{Field: "form", Message: err.Error()}}
	}
	var out []FieldError
	for _, field := range fieldOrder {
		if fieldErr, found := errs[field]; found {
			out = append(out, FieldError{Field: field, Message: fieldErr.Error()})
		}
	}
	return out
}

// escapeValues neutralizes submitted values against markup injection before
// they are echoed back into a re-rendered form.
func escapeValues(raw map[string]string) map[string]string {
	escaped := make(map[string]string, len(raw))
	for field, value := range raw {
		escaped[field] = html.EscapeString(value)
	}
	return escaped
}

// parseDate parses a validated, non-empty ISO-8601 date.
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(isoDateFormat, raw)
	if err != nil {
		return nil
	}
	return &parsed
}

// parseID parses a record identifier submitted as a form value.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
