// Package app wires one container of each kind. The containers never talk to
// each other; App only groups them for the views.
package app

import (
	"log"
	"time"

	"github.com/idilsaglam/tada/internal/cart"
	"github.com/idilsaglam/tada/internal/form"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/theme"
	"github.com/idilsaglam/tada/internal/todo"
)

// Config tunes a new App.
type Config struct {
	Theme  string      // initial theme, "" for classic
	Logger *log.Logger // dispatch trace, nil for none
	// Todos stamps new todos. Zero value means todo.DefaultBuilder.
	Todos todo.Builder
}

type App struct {
	Cart  *cart.Store
	Todo  *todo.Store
	Form  *form.Store
	Theme *theme.Store

	todos todo.Builder
}

// Snapshot is every container's state at one point.
type Snapshot struct {
	Cart  cart.State  `json:"cart"`
	Todo  todo.State  `json:"todo"`
	Form  form.State  `json:"form"`
	Theme theme.State `json:"theme"`
}

func New(cfg Config) (*App, error) {
	var opts []store.Option
	if cfg.Logger != nil {
		opts = append(opts, store.WithLogger(cfg.Logger))
	}
	th, err := theme.NewStore(cfg.Theme, opts...)
	if err != nil {
		return nil, err
	}
	b := cfg.Todos
	if b.NewID == nil {
		b.NewID = todo.DefaultBuilder.NewID
	}
	if b.Now == nil {
		b.Now = time.Now
	}
	return &App{
		Cart:  cart.NewStore(opts...),
		Todo:  todo.NewStore(opts...),
		Form:  form.NewStore(opts...),
		Theme: th,
		todos: b,
	}, nil
}

// AddTodo stamps and dispatches a new todo, returning its id.
func (a *App) AddTodo(text string) (string, error) {
	add := a.todos.Add(text)
	if err := a.Todo.Dispatch(add); err != nil {
		return "", err
	}
	return add.ID, nil
}

// TodoBuilder is the builder new todos are stamped with.
func (a *App) TodoBuilder() todo.Builder { return a.todos }

func (a *App) Snapshot() Snapshot {
	return Snapshot{
		Cart:  a.Cart.State(),
		Todo:  a.Todo.State(),
		Form:  a.Form.State(),
		Theme: a.Theme.State(),
	}
}
