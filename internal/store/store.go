// Package store holds a single state value and moves it forward only through
// a reducer. Every container in tada (cart, todo, form, theme) is a Store.
package store

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
)

// ErrInvalidAction reports an action whose shape the reducer cannot accept
// (nil, unknown field, duplicate id). It is a caller bug, not a state.
var ErrInvalidAction = errors.New("invalid action")

// Reducer maps the current state and an action to the next state. It must not
// mutate its input. On error the returned state is ignored.
type Reducer[S, A any] func(state S, action A) (S, error)

// Listener is told about every committed transition.
type Listener[S any] func(prev, next S)

type Option func(*options)

type options struct {
	name   string
	logger *log.Logger
}

// WithName labels the container in log lines.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger traces each dispatch. A nil logger disables tracing.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Store is a reducer container. The zero value is not usable; call New.
type Store[S, A any] struct {
	mu      sync.Mutex
	nmu     sync.Mutex // serializes notification
	reduce  Reducer[S, A]
	state   S
	version uint64

	lmu       sync.Mutex
	listeners map[int]Listener[S]
	order     []int
	nextID    int

	name   string
	logger *log.Logger
}

// New returns a container holding initial.
func New[S, A any](reduce Reducer[S, A], initial S, opts ...Option) *Store[S, A] {
	o := options{name: "store", logger: log.New(io.Discard, "", 0)}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}
	return &Store[S, A]{
		reduce:    reduce,
		state:     initial,
		listeners: make(map[int]Listener[S]),
		name:      o.name,
		logger:    o.logger,
	}
}

// State returns the current snapshot.
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Version counts committed transitions, including identity ones.
func (s *Store[S, A]) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Dispatch runs the reducer to completion and commits its result. Calls are
// serialized. Listeners run after the commit, outside the state lock, and see
// transitions in commit order. A listener must not dispatch to the store that
// is notifying it.
func (s *Store[S, A]) Dispatch(action A) error {
	s.mu.Lock()
	prev := s.state
	next, err := s.reduce(prev, action)
	if err != nil {
		s.mu.Unlock()
		s.logger.Printf("%s: %T rejected: %v", s.name, action, err)
		return fmt.Errorf("%s: %w", s.name, err)
	}
	s.state = next
	s.version++
	v := s.version
	// nmu is taken before mu is released so notifications go out in commit
	// order even with concurrent dispatchers.
	s.nmu.Lock()
	s.mu.Unlock()
	defer s.nmu.Unlock()

	s.logger.Printf("%s: %T applied (v%d)", s.name, action, v)
	for _, fn := range s.snapshotListeners() {
		fn(prev, next)
	}
	return nil
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store[S, A]) Subscribe(fn Listener[S]) (unsubscribe func()) {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	s.lmu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.lmu.Lock()
			defer s.lmu.Unlock()
			delete(s.listeners, id)
			for i, x := range s.order {
				if x == id {
					s.order = append(s.order[:i:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *Store[S, A]) snapshotListeners() []Listener[S] {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	out := make([]Listener[S], 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.listeners[id])
	}
	return out
}
