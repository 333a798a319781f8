// Package cart is the shopping cart container: items unique by id plus running
// totals that always equal the sums over the items.
package cart

import (
	"errors"
	"fmt"

	"github.com/xiaq/persistent/vector"

	"github.com/idilsaglam/tada/internal/store"
)

// ErrNotFound is returned when an action names an id that is not in the cart.
// The state is left as it was.
var ErrNotFound = errors.New("cart item not found")

// Action is any cart transition. Types the reducer does not know are identity
// transitions.
type Action interface {
	ActionType() string
}

type (
	AddItem        struct{ Product Product }
	RemoveItem     struct{ ID int }
	UpdateQuantity struct{ ID, Quantity int }
	ClearCart      struct{}
	// Unknown carries a wire type tag the cart does not handle.
	Unknown struct{ Type string }
)

const (
	TypeAddItem        = "ADD_ITEM"
	TypeRemoveItem     = "REMOVE_ITEM"
	TypeUpdateQuantity = "UPDATE_QUANTITY"
	TypeClearCart      = "CLEAR_CART"
)

func (AddItem) ActionType() string        { return TypeAddItem }
func (RemoveItem) ActionType() string     { return TypeRemoveItem }
func (UpdateQuantity) ActionType() string { return TypeUpdateQuantity }
func (ClearCart) ActionType() string      { return TypeClearCart }
func (u Unknown) ActionType() string      { return u.Type }

// Store is a cart container.
type Store = store.Store[State, Action]

// NewStore returns an empty cart container.
func NewStore(opts ...store.Option) *Store {
	return store.New(Reduce, Empty(), append([]store.Option{store.WithName("cart")}, opts...)...)
}

// Reduce is the cart reducer.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case nil:
		return s, fmt.Errorf("%w: nil cart action", store.ErrInvalidAction)

	case AddItem:
		p := a.Product
		if i := s.indexOf(p.ID); i >= 0 {
			x, _ := s.vec().Index(i)
			it := x.(Item)
			it.Quantity++
			return withItems(s.vec().Assoc(i, it)), nil
		}
		return withItems(s.vec().Cons(Item{ID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1})), nil

	case RemoveItem:
		i := s.indexOf(a.ID)
		if i < 0 {
			return s, fmt.Errorf("remove %d: %w", a.ID, ErrNotFound)
		}
		return withItems(without(s.vec(), i)), nil

	case UpdateQuantity:
		i := s.indexOf(a.ID)
		if i < 0 {
			return s, fmt.Errorf("update %d: %w", a.ID, ErrNotFound)
		}
		x, _ := s.vec().Index(i)
		it := x.(Item)
		it.Quantity = max(a.Quantity, 0)
		return withItems(s.vec().Assoc(i, it)), nil

	case ClearCart:
		return Empty(), nil
	}
	return s, nil
}

// withItems derives both totals from v, summing subtotals in cart order, so an
// emptied cart is exactly Empty().
func withItems(v vector.Vector) State {
	s := State{items: v}
	for it := v.Iterator(); it.HasElem(); it.Next() {
		item := it.Elem().(Item)
		s.TotalItems += item.Quantity
		s.TotalPrice += item.Subtotal()
	}
	return s
}

// without returns v minus the element at i.
func without(v vector.Vector, i int) vector.Vector {
	out := vector.Empty
	j := 0
	for it := v.Iterator(); it.HasElem(); it.Next() {
		if j != i {
			out = out.Cons(it.Elem())
		}
		j++
	}
	return out
}
