package script

import (
	"encoding/json"
	"fmt"

	"github.com/idilsaglam/tada/internal/app"
	"github.com/idilsaglam/tada/internal/cart"
	"github.com/idilsaglam/tada/internal/form"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/theme"
	"github.com/idilsaglam/tada/internal/todo"
)

// Rejection is an action the reducer refused (unknown id, invalid value).
// Replay keeps going after a rejection.
type Rejection struct {
	Container string `json:"container"`
	Index     int    `json:"index"`
	Type      string `json:"type"`
	Err       string `json:"error"`
}

// Result is what a replay leaves behind.
type Result struct {
	Final    app.Snapshot `json:"final"`
	Applied  int          `json:"applied"`
	Rejected []Rejection  `json:"rejected,omitempty"`
}

// Replay decodes and dispatches every action of s into a. Containers are
// replayed cart, todo, form, theme; within one container the script order is
// kept. A malformed action aborts the replay with an error.
func Replay(a *app.App, s Script) (Result, error) {
	var res Result
	todos := todo.Builder{NewID: todo.Sequence("todo-"), Now: a.TodoBuilder().Now}

	run := func(container string, raw []json.RawMessage, dispatch func(store.Envelope) error) error {
		for i, msg := range raw {
			env, err := store.ParseEnvelope(msg)
			if err != nil {
				return fmt.Errorf("%s[%d]: %w", container, i, err)
			}
			if err := dispatch(env); err != nil {
				if _, decode := err.(decodeError); decode {
					return fmt.Errorf("%s[%d]: %w", container, i, err)
				}
				res.Rejected = append(res.Rejected, Rejection{
					Container: container, Index: i, Type: env.Type, Err: err.Error(),
				})
				continue
			}
			res.Applied++
		}
		return nil
	}

	steps := []struct {
		name     string
		raw      []json.RawMessage
		dispatch func(store.Envelope) error
	}{
		{"cart", s.Cart, func(env store.Envelope) error {
			act, err := cart.FromEnvelope(env)
			if err != nil {
				return decodeError{err}
			}
			return a.Cart.Dispatch(act)
		}},
		{"todo", s.Todo, func(env store.Envelope) error {
			act, err := todos.FromEnvelope(env)
			if err != nil {
				return decodeError{err}
			}
			return a.Todo.Dispatch(act)
		}},
		{"form", s.Form, func(env store.Envelope) error {
			act, err := form.FromEnvelope(env)
			if err != nil {
				return decodeError{err}
			}
			return a.Form.Dispatch(act)
		}},
		{"theme", s.Theme, func(env store.Envelope) error {
			act, err := theme.FromEnvelope(env)
			if err != nil {
				return decodeError{err}
			}
			return a.Theme.Dispatch(act)
		}},
	}
	for _, st := range steps {
		if err := run(st.name, st.raw, st.dispatch); err != nil {
			res.Final = a.Snapshot()
			return res, err
		}
	}
	res.Final = a.Snapshot()
	return res, nil
}

type decodeError struct{ err error }

func (e decodeError) Error() string { return e.err.Error() }
func (e decodeError) Unwrap() error { return e.err }
