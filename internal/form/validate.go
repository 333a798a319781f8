package form

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Validate checks s and returns one SetError per failing field, in field
// order. An empty result means the form may be submitted.
func Validate(s State) []SetError {
	var out []SetError
	if strings.TrimSpace(s.Name) == "" {
		out = append(out, SetError{FieldName, "Name is required"})
	}
	switch {
	case strings.TrimSpace(s.Email) == "":
		out = append(out, SetError{FieldEmail, "Email is required"})
	case !emailPattern.MatchString(s.Email):
		out = append(out, SetError{FieldEmail, "Invalid email format"})
	}
	if utf8.RuneCountInString(s.Password) < minPasswordLen {
		out = append(out, SetError{FieldPassword, "Password must be at least 6 characters"})
	}
	if s.Password != s.ConfirmPassword {
		out = append(out, SetError{FieldConfirmPassword, "Passwords do not match"})
	}
	return out
}

// Submit validates the current form. Failures are dispatched as SetError and
// ok is false. Otherwise the form is reset and the submitted values are
// returned.
func Submit(st *Store) (submitted State, ok bool, err error) {
	s := st.State()
	errs := Validate(s)
	for _, e := range errs {
		if err := st.Dispatch(e); err != nil {
			return State{}, false, err
		}
	}
	if len(errs) > 0 {
		return st.State(), false, nil
	}
	if err := st.Dispatch(ResetForm{}); err != nil {
		return State{}, false, err
	}
	return s, true, nil
}
