package form

import (
	"encoding/json"
	"fmt"

	"github.com/xiaq/persistent/hash"
	"github.com/xiaq/persistent/hashmap"

	"github.com/idilsaglam/tada/internal/store"
)

// Field names one input of the registration form.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Fields lists the inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}

func (f Field) valid() bool {
	switch f {
	case FieldName, FieldEmail, FieldPassword, FieldConfirmPassword:
		return true
	}
	return false
}

// Label is the human name of the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	case FieldConfirmPassword:
		return "Confirm password"
	}
	return string(f)
}

// ParseField accepts the wire names above.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.valid() {
		return "", fmt.Errorf("%w: unknown form field %q", store.ErrInvalidAction, s)
	}
	return f, nil
}

var emptyErrors = hashmap.New(
	func(a, b any) bool { return a == b },
	func(k any) uint32 { return hash.String(string(k.(Field))) },
)

// State is an immutable form snapshot. The zero value is a blank form.
type State struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string

	errors hashmap.Map
}

func Empty() State { return State{errors: emptyErrors} }

func (s State) errs() hashmap.Map {
	if s.errors == nil {
		return emptyErrors
	}
	return s.errors
}

// Value reads a field.
func (s State) Value(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldPassword:
		return s.Password
	case FieldConfirmPassword:
		return s.ConfirmPassword
	}
	return ""
}

// with returns a copy of s with f set to v. f must be valid.
func (s State) with(f Field, v string) State {
	switch f {
	case FieldName:
		s.Name = v
	case FieldEmail:
		s.Email = v
	case FieldPassword:
		s.Password = v
	case FieldConfirmPassword:
		s.ConfirmPassword = v
	}
	return s
}

// Error is the message for f, or "" when the field is fine.
func (s State) Error(f Field) string {
	if v, ok := s.errs().Index(f); ok {
		return v.(string)
	}
	return ""
}

// Errors copies out the non-empty messages.
func (s State) Errors() map[Field]string {
	out := make(map[Field]string, s.errs().Len())
	for it := s.errs().Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		out[k.(Field)] = v.(string)
	}
	return out
}

func (s State) HasErrors() bool { return s.errs().Len() > 0 }

func (s State) Equal(o State) bool {
	if s.Name != o.Name || s.Email != o.Email || s.Password != o.Password || s.ConfirmPassword != o.ConfirmPassword {
		return false
	}
	a, b := s.Errors(), o.Errors()
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func (s State) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, s.errs().Len())
	for f, msg := range s.Errors() {
		m[string(f)] = msg
	}
	return json.Marshal(struct {
		Name            string            `json:"name"`
		Email           string            `json:"email"`
		Password        string            `json:"password"`
		ConfirmPassword string            `json:"confirmPassword"`
		Errors          map[string]string `json:"errors"`
	}{s.Name, s.Email, s.Password, s.ConfirmPassword, m})
}
