// Package theme is a small container for the active color theme. Views
// subscribe to it and repaint.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idilsaglam/tada/internal/store"
)

const (
	Classic = "classic"
	Neon    = "neon"
	Mono    = "mono"
)

// Names lists the known themes.
var Names = []string{Classic, Neon, Mono}

var ErrUnknownTheme = errors.New("unknown theme")

type State struct {
	Name string `json:"theme"`
}

// Dark reports whether the theme is the dark-background one.
func (s State) Dark() bool { return s.Name == Neon }

type Action interface {
	ActionType() string
}

type (
	Toggle  struct{}
	Set     struct{ Name string }
	Unknown struct{ Type string }
)

const (
	TypeToggle = "TOGGLE_THEME"
	TypeSet    = "SET_THEME"
)

func (Toggle) ActionType() string    { return TypeToggle }
func (Set) ActionType() string       { return TypeSet }
func (u Unknown) ActionType() string { return u.Type }

type Store = store.Store[State, Action]

func NewStore(initial string, opts ...store.Option) (*Store, error) {
	name, err := Normalize(initial)
	if err != nil {
		return nil, err
	}
	return store.New(Reduce, State{Name: name}, append([]store.Option{store.WithName("theme")}, opts...)...), nil
}

// Normalize lower-cases name and checks it; "" means classic.
func Normalize(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Classic, nil
	}
	for _, n := range Names {
		if n == name {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Reduce is the theme reducer. Toggle flips between classic and neon; mono
// toggles back to classic.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case nil:
		return s, fmt.Errorf("%w: nil theme action", store.ErrInvalidAction)
	case Toggle:
		if s.Name == Classic {
			return State{Name: Neon}, nil
		}
		return State{Name: Classic}, nil
	case Set:
		name, err := Normalize(a.Name)
		if err != nil {
			return s, fmt.Errorf("%w: %w", store.ErrInvalidAction, err)
		}
		return State{Name: name}, nil
	}
	return s, nil
}

// FromEnvelope decodes {"type":"SET_THEME","payload":"neon"} and friends.
func FromEnvelope(env store.Envelope) (Action, error) {
	switch env.Type {
	case TypeToggle:
		return Toggle{}, nil
	case TypeSet:
		var name string
		if err := env.DecodePayload(&name); err != nil {
			return nil, err
		}
		return Set{Name: name}, nil
	}
	return Unknown{Type: env.Type}, nil
}
