package cart

import (
	"encoding/json"

	"github.com/xiaq/persistent/vector"
)

// Product is what a view offers for sale.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Item is one cart line.
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price * quantity.
func (it Item) Subtotal() float64 { return it.Price * float64(it.Quantity) }

// Catalog is the product shelf shown by the demo and the TUI.
var Catalog = []Product{
	{ID: 1, Name: "Laptop", Price: 999},
	{ID: 2, Name: "Phone", Price: 699},
	{ID: 3, Name: "Headphones", Price: 199},
	{ID: 4, Name: "Mouse", Price: 49},
}

// State is an immutable cart snapshot. The zero value is an empty cart.
type State struct {
	items      vector.Vector
	TotalItems int
	TotalPrice float64
}

// Empty returns a cart with no items.
func Empty() State { return State{items: vector.Empty} }

func (s State) vec() vector.Vector {
	if s.items == nil {
		return vector.Empty
	}
	return s.items
}

// Len is the number of distinct lines.
func (s State) Len() int { return s.vec().Len() }

// Items copies the lines out in cart order.
func (s State) Items() []Item {
	v := s.vec()
	out := make([]Item, 0, v.Len())
	for it := v.Iterator(); it.HasElem(); it.Next() {
		out = append(out, it.Elem().(Item))
	}
	return out
}

// Find returns the line for id.
func (s State) Find(id int) (Item, bool) {
	if i := s.indexOf(id); i >= 0 {
		x, _ := s.vec().Index(i)
		return x.(Item), true
	}
	return Item{}, false
}

func (s State) indexOf(id int) int {
	i := 0
	for it := s.vec().Iterator(); it.HasElem(); it.Next() {
		if it.Elem().(Item).ID == id {
			return i
		}
		i++
	}
	return -1
}

// Equal compares contents, not identity.
func (s State) Equal(o State) bool {
	if s.TotalItems != o.TotalItems || s.TotalPrice != o.TotalPrice || s.Len() != o.Len() {
		return false
	}
	a, b := s.Items(), o.Items()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type stateJSON struct {
	Items      []Item  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{Items: s.Items(), TotalItems: s.TotalItems, TotalPrice: s.TotalPrice})
}
