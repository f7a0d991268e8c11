package payoff

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRange            = errors.New("invalid range")
	ErrEmptyChoiceName         = errors.New("empty choice name")
	ErrDuplicateChoiceName     = errors.New("duplicate choice name")
	ErrIncompleteConfiguration = errors.New("incomplete configuration")
	ErrUnknownChoice           = errors.New("unknown choice")
)

// FieldError ties a validation failure to the builder setting that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error { return e.Err }

// BuilderError is returned by Builder.Build and Builder.Options. It holds every
// validation failure found, so errors.Is matches any of them.
type BuilderError struct {
	Fields []FieldError
}

func (e *BuilderError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid game options: " + strings.Join(msgs, "; ")
}

func (e *BuilderError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, f := range e.Fields {
		errs[i] = f
	}
	return errs
}

func (e *BuilderError) add(field string, err error) {
	e.Fields = append(e.Fields, FieldError{Field: field, Err: err})
}

func (e *BuilderError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
