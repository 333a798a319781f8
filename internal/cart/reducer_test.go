package cart

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/store"
)

var mouse = Product{ID: 40, Name: "Mouse", Price: 49}

func mustReduce(t *testing.T, s State, actions ...Action) State {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = Reduce(s, a)
		require.NoError(t, err, "%T", a)
	}
	return s
}

func checkTotals(t *testing.T, s State) {
	t.Helper()
	items, price := 0, 0.0
	for _, it := range s.Items() {
		items += it.Quantity
		price += it.Subtotal()
	}
	assert.Equal(t, items, s.TotalItems, "totalItems")
	assert.Equal(t, price, s.TotalPrice, "totalPrice")
}

func TestAddSameItemTwice(t *testing.T) {
	s := mustReduce(t, Empty(), AddItem{mouse}, AddItem{mouse})

	want := []Item{{ID: 40, Name: "Mouse", Price: 49, Quantity: 2}}
	if diff := cmp.Diff(want, s.Items()); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, s.TotalItems)
	assert.Equal(t, 98.0, s.TotalPrice)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	s := mustReduce(t, State{}, AddItem{Catalog[2]}, AddItem{Catalog[0]}, AddItem{Catalog[2]})
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Headphones", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Laptop", items[1].Name)
	checkTotals(t, s)
}

func TestUpdateQuantityAdjustsByDelta(t *testing.T) {
	tenner := Product{ID: 2, Name: "Cable", Price: 10}
	s := mustReduce(t, Empty(), AddItem{tenner}, AddItem{tenner}, AddItem{tenner})
	before := s

	s = mustReduce(t, s, UpdateQuantity{ID: 2, Quantity: 5})
	assert.Equal(t, before.TotalItems+2, s.TotalItems)
	assert.Equal(t, before.TotalPrice+20, s.TotalPrice)
	it, ok := s.Find(2)
	require.True(t, ok)
	assert.Equal(t, 5, it.Quantity)

	s = mustReduce(t, s, UpdateQuantity{ID: 2, Quantity: 1})
	assert.Equal(t, 1, s.TotalItems)
	assert.Equal(t, 10.0, s.TotalPrice)
}

func TestUpdateQuantityClampsNegative(t *testing.T) {
	s := mustReduce(t, Empty(), AddItem{mouse}, UpdateQuantity{ID: 40, Quantity: -3})
	it, ok := s.Find(40)
	require.True(t, ok)
	assert.Equal(t, 0, it.Quantity)
	assert.Equal(t, 0, s.TotalItems)
	assert.Equal(t, 0.0, s.TotalPrice)
}

func TestRemoveItemDropsWholeLine(t *testing.T) {
	s := mustReduce(t, Empty(), AddItem{mouse}, AddItem{mouse}, AddItem{Catalog[1]}, RemoveItem{ID: 40})
	_, ok := s.Find(40)
	assert.False(t, ok)
	assert.Equal(t, 1, s.TotalItems)
	assert.Equal(t, 699.0, s.TotalPrice)
	checkTotals(t, s)
}

func TestMissingIDIsNotFound(t *testing.T) {
	s := mustReduce(t, Empty(), AddItem{mouse})

	for _, a := range []Action{RemoveItem{ID: 9}, UpdateQuantity{ID: 9, Quantity: 2}} {
		next, err := Reduce(s, a)
		require.ErrorIs(t, err, ErrNotFound)
		assert.True(t, next.Equal(s))
	}
}

func TestNilActionIsInvalid(t *testing.T) {
	_, err := Reduce(Empty(), nil)
	assert.ErrorIs(t, err, store.ErrInvalidAction)
}

func TestClearCartIsIdempotent(t *testing.T) {
	s := mustReduce(t, Empty(), AddItem{mouse}, AddItem{Catalog[0]})
	once := mustReduce(t, s, ClearCart{})
	twice := mustReduce(t, once, ClearCart{})
	assert.True(t, once.Equal(Empty()))
	assert.True(t, twice.Equal(once))
	assert.Equal(t, 0, twice.Len())
}

func TestUnknownActionIsIdentity(t *testing.T) {
	s := mustReduce(t, Empty(), AddItem{mouse})
	next := mustReduce(t, s, Unknown{Type: "NOPE"})
	assert.True(t, next.items == s.items, "items vector replaced")
	assert.Equal(t, s, next)
}

func TestOldSnapshotSurvivesTransitions(t *testing.T) {
	s1 := mustReduce(t, Empty(), AddItem{mouse})
	s2 := mustReduce(t, s1, AddItem{mouse}, UpdateQuantity{ID: 40, Quantity: 7}, AddItem{Catalog[0]})
	_ = mustReduce(t, s2, RemoveItem{ID: 40})

	it, _ := s1.Find(40)
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, 1, s1.Len())
	assert.Equal(t, 49.0, s1.TotalPrice)
	assert.Equal(t, 2, s2.Len())
	it, _ = s2.Find(40)
	assert.Equal(t, 7, it.Quantity)
}

func TestEmptiedCartHasNoTotal(t *testing.T) {
	dime := Product{ID: 10, Name: "Sticker", Price: 0.1}
	fifth := Product{ID: 20, Name: "Pin", Price: 0.2}
	s := mustReduce(t, Empty(), AddItem{dime}, AddItem{fifth}, RemoveItem{ID: 10}, RemoveItem{ID: 20})
	assert.Equal(t, 0.0, s.TotalPrice)
	assert.True(t, s.Equal(Empty()))

	s = mustReduce(t, Empty(), AddItem{dime}, AddItem{fifth}, AddItem{dime},
		UpdateQuantity{ID: 10, Quantity: 0}, UpdateQuantity{ID: 20, Quantity: 0})
	assert.Equal(t, 0.0, s.TotalPrice)
	assert.Equal(t, 0, s.TotalItems)
}

func TestTotalsHoldForRandomSequences(t *testing.T) {
	shelf := append([]Product{
		{ID: 10, Name: "Sticker", Price: 0.1},
		{ID: 20, Name: "Pin", Price: 0.2},
		{ID: 30, Name: "Cable", Price: 12.35},
	}, Catalog...)
	r := rand.New(rand.NewSource(7))
	for run := 0; run < 50; run++ {
		s := Empty()
		for step := 0; step < 60; step++ {
			p := shelf[r.Intn(len(shelf))]
			var a Action
			switch r.Intn(5) {
			case 0, 1:
				a = AddItem{p}
			case 2:
				a = RemoveItem{ID: p.ID}
			case 3:
				a = UpdateQuantity{ID: p.ID, Quantity: r.Intn(6) - 1}
			default:
				if r.Intn(10) == 0 {
					a = ClearCart{}
				} else {
					a = Unknown{Type: "NOPE"}
				}
			}
			next, err := Reduce(s, a)
			if err != nil {
				require.ErrorIs(t, err, ErrNotFound)
				continue
			}
			s = next
			checkTotals(t, s)
		}
		for _, it := range s.Items() {
			s = mustReduce(t, s, RemoveItem{ID: it.ID})
		}
		assert.True(t, s.Equal(Empty()), "run %d: %+v", run, s)
	}
}

func TestStoreDispatch(t *testing.T) {
	st := NewStore()
	require.NoError(t, st.Dispatch(AddItem{mouse}))
	err := st.Dispatch(RemoveItem{ID: 3})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "cart:")
	assert.Equal(t, 1, st.State().TotalItems)
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{`{"type":"ADD_ITEM","payload":{"id":4,"name":"Mouse","price":49}}`, AddItem{Product{ID: 4, Name: "Mouse", Price: 49}}},
		{`{"type":"REMOVE_ITEM","payload":4}`, RemoveItem{ID: 4}},
		{`{"type":"UPDATE_QUANTITY","payload":{"id":4,"quantity":3}}`, UpdateQuantity{ID: 4, Quantity: 3}},
		{`{"type":"CLEAR_CART"}`, ClearCart{}},
		{`{"type":"NOPE"}`, Unknown{Type: "NOPE"}},
	}
	for _, tt := range tests {
		got, err := DecodeAction([]byte(tt.in))
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{
		`{"type":"REMOVE_ITEM"}`,
		`{"type":"REMOVE_ITEM","payload":"x"}`,
		`{"type":"ADD_ITEM","payload":[1]}`,
		`{}`,
	} {
		_, err := DecodeAction([]byte(bad))
		assert.ErrorIs(t, err, store.ErrInvalidAction, bad)
	}
}

func TestStateMarshalJSON(t *testing.T) {
	s := mustReduce(t, Empty(), AddItem{mouse})
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"id":40,"name":"Mouse","price":49,"quantity":1}],"totalItems":1,"totalPrice":49}`, string(b))

	b, err = json.Marshal(State{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"totalItems":0,"totalPrice":0}`, string(b))
}
