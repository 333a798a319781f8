package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/todo"
)

// todoItem adapts todo.Todo to bubbles/list.Item
type todoItem struct {
	todo.Todo
}

func (i todoItem) Title() string       { return i.Text }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.Text }

// Custom delegate to control how items render (single line)
type todoDelegate struct {
	st *styles
}

func (d todoDelegate) Height() int                               { return 1 }
func (d todoDelegate) Spacing() int                              { return 0 }
func (d todoDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d todoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}
	box := d.st.muted.Render(d.st.boxUnchecked)
	text := it.Text
	if it.Completed {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

func todoItems(s todo.State) []list.Item {
	todos := s.Todos()
	out := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		out = append(out, todoItem{t})
	}
	return out
}

func (m *Model) newTodoList() list.Model {
	l := list.New(todoItems(m.app.Todo.State()), todoDelegate{st: m.st}, 76, 16)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	l.Styles.PaginationStyle = m.st.help
	return l
}

// selectedTodo is the todo under the cursor, honoring any active filter.
func (m Model) selectedTodo() (todo.Todo, bool) {
	it, ok := m.todos.SelectedItem().(todoItem)
	if !ok {
		return todo.Todo{}, false
	}
	return it.Todo, true
}

func (m Model) updateTodos(msg tea.Msg) (tea.Model, tea.Cmd) {
	// inline add / edit
	if m.adding || m.editing {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "enter":
				text := strings.TrimSpace(m.ti.Value())
				if text == "" {
					m.inputErr = "Title cannot be empty"
					return m, nil
				}
				var err error
				if m.adding {
					_, err = m.app.AddTodo(text)
				} else {
					err = m.app.Todo.Dispatch(todo.EditTodo{ID: m.editID, Text: text})
				}
				m.closeInput()
				m.report(err)
				cmd := m.syncTodos()
				return m, cmd
			case "esc":
				m.closeInput()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if m.todos.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.todos, cmd = m.todos.Update(msg)
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.AddTodo):
			m.adding = true
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New todo..."
			cmd := m.ti.Focus()
			return m, cmd
		case key.Matches(k, m.keys.EditTodo):
			t, ok := m.selectedTodo()
			if !ok {
				return m, nil
			}
			m.editing = true
			m.editID = t.ID
			m.inputErr = ""
			m.ti.SetValue(t.Text)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Edit todo..."
			cmd := m.ti.Focus()
			return m, cmd
		case key.Matches(k, m.keys.ToggleTodo):
			if t, ok := m.selectedTodo(); ok {
				m.report(m.app.Todo.Dispatch(todo.ToggleTodo{ID: t.ID}))
			}
			cmd := m.syncTodos()
			return m, cmd
		case key.Matches(k, m.keys.DeleteTodo):
			if t, ok := m.selectedTodo(); ok {
				m.report(m.app.Todo.Dispatch(todo.DeleteTodo{ID: t.ID}))
			}
			cmd := m.syncTodos()
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.todos, cmd = m.todos.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding, m.editing = false, false
	m.editID = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

// syncTodos re-reads the todo container into the list.
func (m *Model) syncTodos() tea.Cmd {
	return m.todos.SetItems(todoItems(m.app.Todo.State()))
}

func (m Model) viewTodos() string {
	s := m.app.Todo.State()
	dn, pn := todo.Stats(s)
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.st.title.Render("Todos"),
		m.st.success.Render("✔"), dn,
		m.st.pending.Render("•"), pn,
		m.st.accent.Render("Total"), s.TotalTodos,
	)
	content := header + "\n\n" + m.todos.View()
	if m.adding || m.editing {
		title := "Add todo"
		if m.editing {
			title = "Edit todo"
		}
		if m.inputErr != "" {
			title += " - " + m.st.err.Render(m.inputErr)
		}
		content += "\n" + m.st.inputBar.Render(title+"\n"+m.ti.View())
	}
	return content
}
