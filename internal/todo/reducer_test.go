package todo

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/store"
)

var epoch = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// seqBuilder hands out t1, t2, ... and a clock that never moves, so every
// todo is created "in the same millisecond".
func seqBuilder() Builder {
	n := 0
	return Builder{
		NewID: func() string { n++; return fmt.Sprintf("t%d", n) },
		Now:   func() time.Time { return epoch },
	}
}

func mustReduce(t *testing.T, s State, actions ...Action) State {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = Reduce(s, a)
		require.NoError(t, err, "%T", a)
	}
	return s
}

func TestAddToggleDelete(t *testing.T) {
	add := NewAdd("Buy milk")
	s := mustReduce(t, Empty(), add)
	require.Equal(t, 1, s.TotalTodos)
	got, ok := s.Find(add.ID)
	require.True(t, ok)
	assert.Equal(t, "Buy milk", got.Text)
	assert.False(t, got.Completed)

	s = mustReduce(t, s, ToggleTodo{ID: add.ID})
	got, _ = s.Find(add.ID)
	assert.True(t, got.Completed)

	s = mustReduce(t, s, DeleteTodo{ID: add.ID})
	assert.Equal(t, 0, s.TotalTodos)
	assert.Empty(t, s.Todos())
	assert.True(t, s.Equal(Empty()))
}

func TestEditTodo(t *testing.T) {
	b := seqBuilder()
	s := mustReduce(t, Empty(), b.Add("a"), b.Add("b"), EditTodo{ID: "t2", Text: "bee"})

	want := []Todo{
		{ID: "t1", Text: "a", CreatedAt: epoch},
		{ID: "t2", Text: "bee", CreatedAt: epoch},
	}
	if diff := cmp.Diff(want, s.Todos()); diff != "" {
		t.Errorf("todos (-want +got):\n%s", diff)
	}
}

func TestSameInstantIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		a := NewAdd("x")
		require.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}

	b := seqBuilder()
	s := mustReduce(t, Empty(), b.Add("x"), b.Add("y"), b.Add("z"))
	assert.Equal(t, 3, s.TotalTodos)
}

func TestDuplicateIDIsInvalid(t *testing.T) {
	s := mustReduce(t, Empty(), AddTodo{ID: "a", Text: "one"})
	next, err := Reduce(s, AddTodo{ID: "a", Text: "two"})
	require.ErrorIs(t, err, ErrDuplicateID)
	require.ErrorIs(t, err, store.ErrInvalidAction)
	assert.True(t, next.Equal(s))

	_, err = Reduce(s, AddTodo{Text: "no id"})
	assert.ErrorIs(t, err, store.ErrInvalidAction)

	_, err = Reduce(s, nil)
	assert.ErrorIs(t, err, store.ErrInvalidAction)
}

func TestMissingIDIsNotFound(t *testing.T) {
	s := mustReduce(t, Empty(), AddTodo{ID: "a", Text: "one"})
	for _, a := range []Action{ToggleTodo{ID: "zz"}, DeleteTodo{ID: "zz"}, EditTodo{ID: "zz", Text: "x"}} {
		next, err := Reduce(s, a)
		require.ErrorIs(t, err, ErrNotFound, "%T", a)
		assert.Equal(t, 1, next.TotalTodos)
	}
}

func TestUnknownActionIsIdentity(t *testing.T) {
	s := mustReduce(t, Empty(), AddTodo{ID: "a", Text: "one"})
	next := mustReduce(t, s, Unknown{Type: "NOPE"})
	assert.True(t, next.todos == s.todos)
	assert.Equal(t, s, next)
}

func TestOldSnapshotSurvivesToggle(t *testing.T) {
	s1 := mustReduce(t, Empty(), AddTodo{ID: "a", Text: "one"})
	s2 := mustReduce(t, s1, ToggleTodo{ID: "a"}, EditTodo{ID: "a", Text: "changed"})

	old, _ := s1.Find("a")
	assert.False(t, old.Completed)
	assert.Equal(t, "one", old.Text)
	cur, _ := s2.Find("a")
	assert.True(t, cur.Completed)
}

func TestTotalMatchesLengthForRandomSequences(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	b := seqBuilder()
	s := Empty()
	var ids []string
	for step := 0; step < 500; step++ {
		var a Action
		switch k := r.Intn(5); {
		case k <= 1 || len(ids) == 0:
			add := b.Add("item")
			ids = append(ids, add.ID)
			a = add
		case k == 2:
			a = ToggleTodo{ID: ids[r.Intn(len(ids))]}
		case k == 3:
			a = DeleteTodo{ID: ids[r.Intn(len(ids))]}
		default:
			a = EditTodo{ID: ids[r.Intn(len(ids))], Text: "edited"}
		}
		next, err := Reduce(s, a)
		if err != nil {
			require.ErrorIs(t, err, ErrNotFound)
			continue
		}
		s = next
		require.Equal(t, len(s.Todos()), s.TotalTodos)
	}
}

func TestStats(t *testing.T) {
	b := seqBuilder()
	s := mustReduce(t, Empty(), b.Add("a"), b.Add("b"), b.Add("c"), ToggleTodo{ID: "t2"})
	done, pending := Stats(s)
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}

func TestDecodeAction(t *testing.T) {
	b := seqBuilder()
	tests := []struct {
		in   string
		want Action
	}{
		{`{"type":"ADD_TODO","payload":"  Buy milk "}`, AddTodo{ID: "t1", Text: "  Buy milk ", CreatedAt: epoch}},
		{`{"type":"TOGGLE_TODO","payload":"t1"}`, ToggleTodo{ID: "t1"}},
		{`{"type":"DELETE_TODO","payload":"t1"}`, DeleteTodo{ID: "t1"}},
		{`{"type":"EDIT_TODO","payload":{"id":"t1","text":"x"}}`, EditTodo{ID: "t1", Text: "x"}},
		{`{"type":"NOPE"}`, Unknown{Type: "NOPE"}},
	}
	for _, tt := range tests {
		env, err := store.ParseEnvelope([]byte(tt.in))
		require.NoError(t, err)
		got, err := b.FromEnvelope(env)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := DecodeAction([]byte(`{"type":"ADD_TODO","payload":5}`))
	assert.ErrorIs(t, err, store.ErrInvalidAction)
	a, err := DecodeAction([]byte(`{"type":"ADD_TODO","payload":"x"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, a.(AddTodo).ID)
}

func TestSequence(t *testing.T) {
	next := Sequence("todo-")
	assert.Equal(t, "todo-1", next())
	assert.Equal(t, "todo-2", next())

	other := Sequence("x")
	assert.Equal(t, "x1", other())
}
