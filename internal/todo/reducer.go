// Package todo is the todo list container.
//
// The reducer is pure: ids and creation times are fixed when an AddTodo is
// built (see Builder), never inside Reduce, so replaying the same actions
// gives the same list.
package todo

import (
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/xiaq/persistent/vector"

	"github.com/idilsaglam/tada/internal/store"
)

var (
	ErrNotFound    = errors.New("todo not found")
	ErrDuplicateID = errors.New("duplicate todo id")
)

type Action interface {
	ActionType() string
}

type (
	AddTodo struct {
		ID        string
		Text      string
		CreatedAt time.Time
	}
	ToggleTodo struct{ ID string }
	DeleteTodo struct{ ID string }
	EditTodo   struct{ ID, Text string }
	Unknown    struct{ Type string }
)

const (
	TypeAddTodo    = "ADD_TODO"
	TypeToggleTodo = "TOGGLE_TODO"
	TypeDeleteTodo = "DELETE_TODO"
	TypeEditTodo   = "EDIT_TODO"
)

func (AddTodo) ActionType() string    { return TypeAddTodo }
func (ToggleTodo) ActionType() string { return TypeToggleTodo }
func (DeleteTodo) ActionType() string { return TypeDeleteTodo }
func (EditTodo) ActionType() string   { return TypeEditTodo }
func (u Unknown) ActionType() string  { return u.Type }

// Builder stamps new todos. Both funcs are required.
type Builder struct {
	NewID func() string
	Now   func() time.Time
}

// DefaultBuilder uses random UUIDs and the wall clock.
var DefaultBuilder = Builder{NewID: uuid.NewString, Now: time.Now}

// Add builds an AddTodo for text with a fresh id.
func (b Builder) Add(text string) AddTodo {
	return AddTodo{ID: b.NewID(), Text: text, CreatedAt: b.Now()}
}

// Sequence returns an id generator yielding prefix1, prefix2, ... Safe for
// concurrent use.
func Sequence(prefix string) func() string {
	var n atomic.Uint64
	return func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	}
}

// NewAdd is DefaultBuilder.Add.
func NewAdd(text string) AddTodo { return DefaultBuilder.Add(text) }

type Store = store.Store[State, Action]

func NewStore(opts ...store.Option) *Store {
	return store.New(Reduce, Empty(), append([]store.Option{store.WithName("todo")}, opts...)...)
}

// Reduce is the todo reducer.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case nil:
		return s, fmt.Errorf("%w: nil todo action", store.ErrInvalidAction)

	case AddTodo:
		if a.ID == "" {
			return s, fmt.Errorf("%w: add: empty id", store.ErrInvalidAction)
		}
		if s.indexOf(a.ID) >= 0 {
			return s, fmt.Errorf("%w: add %s: %w", store.ErrInvalidAction, a.ID, ErrDuplicateID)
		}
		t := Todo{ID: a.ID, Text: a.Text, CreatedAt: a.CreatedAt}
		return State{todos: s.vec().Cons(t), TotalTodos: s.TotalTodos + 1}, nil

	case ToggleTodo:
		return s.update(a.ID, "toggle", func(t *Todo) { t.Completed = !t.Completed })

	case EditTodo:
		return s.update(a.ID, "edit", func(t *Todo) { t.Text = a.Text })

	case DeleteTodo:
		i := s.indexOf(a.ID)
		if i < 0 {
			return s, fmt.Errorf("delete %s: %w", a.ID, ErrNotFound)
		}
		out := vector.Empty
		j := 0
		for it := s.vec().Iterator(); it.HasElem(); it.Next() {
			if j != i {
				out = out.Cons(it.Elem())
			}
			j++
		}
		return State{todos: out, TotalTodos: out.Len()}, nil
	}
	return s, nil
}

func (s State) update(id, op string, fn func(*Todo)) (State, error) {
	i := s.indexOf(id)
	if i < 0 {
		return s, fmt.Errorf("%s %s: %w", op, id, ErrNotFound)
	}
	t, _ := s.At(i)
	fn(&t)
	return State{todos: s.vec().Assoc(i, t), TotalTodos: s.TotalTodos}, nil
}
