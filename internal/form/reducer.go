// Package form is the registration form container. The reducer only stores
// values and error messages; checking the input is Validate's job and the
// view decides when to run it.
package form

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/store"
)

type Action interface {
	ActionType() string
}

type (
	UpdateField struct {
		Field Field
		Value string
	}
	SetError struct {
		Field   Field
		Message string
	}
	ResetForm struct{}
	Unknown   struct{ Type string }
)

const (
	TypeUpdateField = "UPDATE_FIELD"
	TypeSetError    = "SET_ERROR"
	TypeResetForm   = "RESET_FORM"
)

func (UpdateField) ActionType() string { return TypeUpdateField }
func (SetError) ActionType() string    { return TypeSetError }
func (ResetForm) ActionType() string   { return TypeResetForm }
func (u Unknown) ActionType() string   { return u.Type }

type Store = store.Store[State, Action]

func NewStore(opts ...store.Option) *Store {
	return store.New(Reduce, Empty(), append([]store.Option{store.WithName("form")}, opts...)...)
}

// Reduce is the form reducer.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case nil:
		return s, fmt.Errorf("%w: nil form action", store.ErrInvalidAction)

	case UpdateField:
		if !a.Field.valid() {
			return s, fmt.Errorf("%w: update: unknown field %q", store.ErrInvalidAction, a.Field)
		}
		next := s.with(a.Field, a.Value)
		next.errors = s.errs().Dissoc(a.Field)
		return next, nil

	case SetError:
		if !a.Field.valid() {
			return s, fmt.Errorf("%w: set error: unknown field %q", store.ErrInvalidAction, a.Field)
		}
		next := s
		if a.Message == "" {
			next.errors = s.errs().Dissoc(a.Field)
		} else {
			next.errors = s.errs().Assoc(a.Field, a.Message)
		}
		return next, nil

	case ResetForm:
		return Empty(), nil
	}
	return s, nil
}
