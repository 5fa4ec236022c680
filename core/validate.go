package core

import (
	"net/mail"
	"net/url"
	"time"
)

// FieldValidator accumulates field-level validation failures for one command.
// Zero value is ready to use.
type FieldValidator struct {
	errs ValidationErrors
}

// Invalid records a failure with a custom message.
func (v *FieldValidator) Invalid(field string, message string) {
	v.errs = append(v.errs, ValidationError{Field: field, Message: message})
}

// Require records a failure when value is empty.
func (v *FieldValidator) Require(field string, value string) {
	if value == "" {
		v.errs = append(v.errs, ValidationError{Field: field, Message: "must not be empty"})
	}
}

// RequireDate records a failure when value is not a YYYY-MM-DD date.
func (v *FieldValidator) RequireDate(field string, value string) {
	if value == "" {
		v.errs = append(v.errs, ValidationError{Field: field, Message: "must not be empty"})
		return
	}

	if _, err := time.Parse(DateLayout, value); err != nil {
		v.errs = append(v.errs, ValidationError{Field: field, Message: "must be a date in format " + DateLayout})
	}
}

// RequireURL records a failure when value is not an absolute http(s) URL.
func (v *FieldValidator) RequireURL(field string, value string) {
	if value == "" {
		v.errs = append(v.errs, ValidationError{Field: field, Message: "must not be empty"})
		return
	}

	parsed, err := url.Parse(value)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		v.errs = append(v.errs, ValidationError{Field: field, Message: "must be an absolute URL"})
	}
}

// RequireEmail records a failure when value is not a parseable email address.
// Uniqueness of addresses is not enforced anywhere.
func (v *FieldValidator) RequireEmail(field string, value string) {
	if value == "" {
		v.errs = append(v.errs, ValidationError{Field: field, Message: "must not be empty"})
		return
	}

	if _, err := mail.ParseAddress(value); err != nil {
		v.errs = append(v.errs, ValidationError{Field: field, Message: "must be a valid email address"})
	}
}

// OptionalDate validates value as a date only when it is non-nil.
func (v *FieldValidator) OptionalDate(field string, value *string) {
	if value == nil {
		return
	}

	v.RequireDate(field, *value)
}

// OptionalURL validates value as a URL only when it is non-nil.
func (v *FieldValidator) OptionalURL(field string, value *string) {
	if value == nil {
		return
	}

	v.RequireURL(field, *value)
}

// OptionalEmail validates value as an email address only when it is non-nil.
func (v *FieldValidator) OptionalEmail(field string, value *string) {
	if value == nil {
		return
	}

	v.RequireEmail(field, *value)
}

// OptionalNonEmpty records a failure when value is non-nil but empty.
func (v *FieldValidator) OptionalNonEmpty(field string, value *string) {
	if value == nil {
		return
	}

	v.Require(field, *value)
}

// Err returns the accumulated failures as an error, or nil when all fields passed.
func (v *FieldValidator) Err() error {
	return v.errs.AsError()
}
