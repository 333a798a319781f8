package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/tada/internal/cart"
	"github.com/idilsaglam/tada/internal/form"
	"github.com/idilsaglam/tada/internal/todo"
)

const maxText = 80

func truncate(s string) string {
	if len([]rune(s)) > maxText {
		return string([]rune(s)[:maxText-3]) + "..."
	}
	return s
}

// Money formats a price the way the demo shows it.
func Money(v float64) string { return fmt.Sprintf("$%.2f", v) }

// CartLines renders a cart snapshot for Panel.
func CartLines(s cart.State) []string {
	t := Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %s",
			C(t.Title, "Cart"),
			C(t.Accent, "Items"), s.TotalItems,
			C(t.Accent, "Total"), Money(s.TotalPrice)),
		"",
	}
	items := s.Items()
	if len(items) == 0 {
		return append(lines, C(t.Muted, "cart is empty"))
	}
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%s %s x%d  %s",
			C(dim, fmt.Sprintf("%2d.", i+1)),
			truncate(it.Name), it.Quantity,
			C(t.Muted, Money(it.Subtotal()))))
	}
	return lines
}

// TodoLines renders a todo snapshot, flat or grouped by pending/done.
func TodoLines(s todo.State, group bool) []string {
	t := Current()
	d, p := todo.Stats(s)
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			C(t.Title, "Todos"),
			C(t.Success, t.SymDone), d,
			C(t.Pending, t.SymUnchecked), p,
			C(t.Accent, "Total"), s.TotalTodos),
		C(t.Muted, ProgressBar(d, d+p, 28)),
		"",
	}
	todos := s.Todos()
	if !group {
		return append(lines, todoRows(todos)...)
	}
	var pend, done []todo.Todo
	for _, td := range todos {
		if td.Completed {
			done = append(done, td)
		} else {
			pend = append(pend, td)
		}
	}
	lines = append(lines, C(t.Accent, "Pending"))
	lines = append(lines, todoRows(pend)...)
	lines = append(lines, "", C(t.Accent, "Done"))
	return append(lines, todoRows(done)...)
}

func todoRows(todos []todo.Todo) []string {
	t := Current()
	if len(todos) == 0 {
		return []string{C(t.Muted, "(none)")}
	}
	out := make([]string, 0, len(todos))
	for i, td := range todos {
		box, color := t.BoxUnchecked, t.Muted
		if td.Completed {
			box, color = t.BoxChecked, t.Success
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			C(dim, fmt.Sprintf("%2d.", i+1)), C(color, box), truncate(td.Text)))
	}
	return out
}

// FormLines renders a form snapshot. Passwords are masked.
func FormLines(s form.State) []string {
	t := Current()
	lines := []string{C(t.Title, "Registration"), ""}
	for _, f := range form.Fields {
		v := s.Value(f)
		if f == form.FieldPassword || f == form.FieldConfirmPassword {
			v = strings.Repeat("*", len([]rune(v)))
		}
		lines = append(lines, fmt.Sprintf("%-17s %s", f.Label()+":", v))
		if msg := s.Error(f); msg != "" {
			lines = append(lines, C(t.Error, "  "+symCross+" "+msg))
		}
	}
	return lines
}
