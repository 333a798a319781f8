package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/store"
)

func TestToggle(t *testing.T) {
	st, err := NewStore("")
	require.NoError(t, err)
	assert.Equal(t, Classic, st.State().Name)

	require.NoError(t, st.Dispatch(Toggle{}))
	assert.Equal(t, Neon, st.State().Name)
	assert.True(t, st.State().Dark())

	require.NoError(t, st.Dispatch(Toggle{}))
	assert.Equal(t, Classic, st.State().Name)

	require.NoError(t, st.Dispatch(Set{Name: "MONO"}))
	require.NoError(t, st.Dispatch(Toggle{}))
	assert.Equal(t, Classic, st.State().Name)
}

func TestSetUnknownTheme(t *testing.T) {
	next, err := Reduce(State{Name: Neon}, Set{Name: "solarized"})
	require.ErrorIs(t, err, ErrUnknownTheme)
	require.ErrorIs(t, err, store.ErrInvalidAction)
	assert.Equal(t, Neon, next.Name)

	_, err = NewStore("solarized")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestUnknownActionIsIdentity(t *testing.T) {
	s := State{Name: Mono}
	next, err := Reduce(s, Unknown{Type: "NOPE"})
	require.NoError(t, err)
	assert.Equal(t, s, next)
}

func TestFromEnvelope(t *testing.T) {
	a, err := FromEnvelope(store.Envelope{Type: TypeSet, Payload: []byte(`"neon"`)})
	require.NoError(t, err)
	assert.Equal(t, Set{Name: "neon"}, a)

	a, err = FromEnvelope(store.Envelope{Type: TypeToggle})
	require.NoError(t, err)
	assert.Equal(t, Toggle{}, a)

	_, err = FromEnvelope(store.Envelope{Type: TypeSet})
	assert.ErrorIs(t, err, store.ErrInvalidAction)
}
