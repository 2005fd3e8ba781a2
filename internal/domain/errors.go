package domain

import (
	"errors"
	"fmt"
	"strings"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError is a user-facing input problem. Msg is shown as-is.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ValidationErrors groups several field problems reported together.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var one ValidationError
	var many ValidationErrors
	return errors.As(err, &one) || errors.As(err, &many)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

// Messages flattens a validation or conflict error into the lines shown to
// the user. Other errors yield nil.
func Messages(err error) []string {
	var many ValidationErrors
	if errors.As(err, &many) {
		out := make([]string, 0, len(many))
		for _, v := range many {
			out = append(out, v.Error())
		}
		return out
	}
	var one ValidationError
	if errors.As(err, &one) {
		return []string{one.Error()}
	}
	var conflict ConflictError
	if errors.As(err, &conflict) {
		return []string{conflict.Error()}
	}
	return nil
}
