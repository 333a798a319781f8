package todo

import (
	"encoding/json"
	"time"

	"github.com/xiaq/persistent/vector"
)

// Todo is one entry of the list.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// State is an immutable list snapshot. The zero value is an empty list.
type State struct {
	todos      vector.Vector
	TotalTodos int
}

func Empty() State { return State{todos: vector.Empty} }

func (s State) vec() vector.Vector {
	if s.todos == nil {
		return vector.Empty
	}
	return s.todos
}

// Todos copies the entries out in creation order.
func (s State) Todos() []Todo {
	v := s.vec()
	out := make([]Todo, 0, v.Len())
	for it := v.Iterator(); it.HasElem(); it.Next() {
		out = append(out, it.Elem().(Todo))
	}
	return out
}

// At returns the i-th entry.
func (s State) At(i int) (Todo, bool) {
	x, ok := s.vec().Index(i)
	if !ok {
		return Todo{}, false
	}
	return x.(Todo), true
}

func (s State) Find(id string) (Todo, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.At(i)
	}
	return Todo{}, false
}

func (s State) indexOf(id string) int {
	i := 0
	for it := s.vec().Iterator(); it.HasElem(); it.Next() {
		if it.Elem().(Todo).ID == id {
			return i
		}
		i++
	}
	return -1
}

// Stats counts completed and open entries.
func Stats(s State) (done, pending int) {
	for it := s.vec().Iterator(); it.HasElem(); it.Next() {
		if it.Elem().(Todo).Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s State) Equal(o State) bool {
	if s.TotalTodos != o.TotalTodos || s.vec().Len() != o.vec().Len() {
		return false
	}
	a, b := s.Todos(), o.Todos()
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Text != b[i].Text ||
			a[i].Completed != b[i].Completed || !a[i].CreatedAt.Equal(b[i].CreatedAt) {
			return false
		}
	}
	return true
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Todos      []Todo `json:"todos"`
		TotalTodos int    `json:"totalTodos"`
	}{s.Todos(), s.TotalTodos})
}
