// Package tui is the interactive view over an app.App. It only reads
// snapshots and dispatches actions; all state lives in the containers.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/app"
	"github.com/idilsaglam/tada/internal/cart"
	"github.com/idilsaglam/tada/internal/form"
	"github.com/idilsaglam/tada/internal/theme"
	"github.com/idilsaglam/tada/internal/ui"
)

type tab int

const (
	tabCart tab = iota
	tabTodos
	tabForm
	numTabs
)

var tabNames = [...]string{"Cart", "Todos", "Form"}

// Model implements tea.Model.
type Model struct {
	app  *app.App
	st   *styles
	keys keyMap
	help help.Model

	tab    tab
	status string
	failed bool
	width  int
	height int

	// cart
	cartCursor int

	// todos: list plus a shared text input for inline add & edit
	todos    list.Model
	ti       textinput.Model
	adding   bool
	editing  bool
	editID   string
	inputErr string

	// form
	inputs []textinput.Model
	focus  int
}

// New builds the view over a.
func New(a *app.App) Model {
	st := stylesFor(a.Theme.State())
	m := Model{
		app:    a,
		st:     &st,
		keys:   defaultKeys(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	m.todos = m.newTodoList()

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200

	for _, f := range form.Fields {
		in := textinput.New()
		in.Prompt = fmt.Sprintf("%-17s ", f.Label()+":")
		in.CharLimit = 120
		if f == form.FieldPassword || f == form.FieldConfirmPassword {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		m.inputs = append(m.inputs, in)
	}
	return m
}

// Run starts the program on the alt screen and blocks until the user quits.
func Run(a *app.App) error {
	stop := ui.Follow(a.Theme)
	defer stop()
	_, err := tea.NewProgram(New(a), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// typing reports whether keys should go to a text input first.
func (m Model) typing() bool {
	switch m.tab {
	case tabTodos:
		return m.adding || m.editing || m.todos.FilterState() == list.Filtering
	case tabForm:
		return true
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.todos.SetSize(max(msg.Width-4, 10), max(msg.Height-10, 3))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !(m.tab == tabTodos && (m.adding || m.editing)) {
			switch {
			case key.Matches(msg, m.keys.NextTab):
				return m.switchTab((m.tab + 1) % numTabs)
			case key.Matches(msg, m.keys.PrevTab):
				return m.switchTab((m.tab + numTabs - 1) % numTabs)
			}
		}
		if !m.typing() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Theme):
				m.report(m.app.Theme.Dispatch(theme.Toggle{}))
				*m.st = stylesFor(m.app.Theme.State())
				return m, nil
			}
		}
	}

	switch m.tab {
	case tabCart:
		return m.updateCart(msg)
	case tabTodos:
		return m.updateTodos(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m Model) switchTab(t tab) (tea.Model, tea.Cmd) {
	m.tab = t
	m.status = ""
	var cmd tea.Cmd
	if t == tabForm {
		cmd = m.focusInput(m.focus)
	} else {
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

// report turns a dispatch result into the status line.
func (m *Model) report(err error) {
	m.failed = err != nil
	switch {
	case err == nil:
		m.status = ""
	case errors.Is(err, cart.ErrNotFound):
		m.status = "item is no longer in the cart"
	default:
		m.status = err.Error()
	}
}

// ---------------- cart ----------------

func (m Model) updateCart(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	items := m.app.Cart.State().Items()
	selected := func() (cart.Item, bool) {
		if m.cartCursor < 0 || m.cartCursor >= len(items) {
			return cart.Item{}, false
		}
		return items[m.cartCursor], true
	}

	switch {
	case key.Matches(k, m.keys.AddProduct):
		n := int(k.String()[0] - '1')
		p := cart.Catalog[n]
		m.report(m.app.Cart.Dispatch(cart.AddItem{Product: p}))
		if m.status == "" {
			m.status = "added " + p.Name
		}
	case key.Matches(k, m.keys.Up):
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case key.Matches(k, m.keys.Down):
		if m.cartCursor < len(items)-1 {
			m.cartCursor++
		}
	case key.Matches(k, m.keys.Inc):
		if it, ok := selected(); ok {
			m.report(m.app.Cart.Dispatch(cart.UpdateQuantity{ID: it.ID, Quantity: it.Quantity + 1}))
		}
	case key.Matches(k, m.keys.Dec):
		if it, ok := selected(); ok {
			m.report(m.app.Cart.Dispatch(cart.UpdateQuantity{ID: it.ID, Quantity: max(0, it.Quantity-1)}))
		}
	case key.Matches(k, m.keys.Remove):
		if it, ok := selected(); ok {
			m.report(m.app.Cart.Dispatch(cart.RemoveItem{ID: it.ID}))
		}
	case key.Matches(k, m.keys.Clear):
		m.report(m.app.Cart.Dispatch(cart.ClearCart{}))
	}
	if n := m.app.Cart.State().Len(); m.cartCursor >= n {
		m.cartCursor = max(n-1, 0)
	}
	return m, nil
}

func (m Model) viewCart() string {
	s := m.app.Cart.State()
	var b strings.Builder

	b.WriteString(m.st.title.Render("Products") + "\n")
	for i, p := range cart.Catalog {
		fmt.Fprintf(&b, "  %s %-11s %s\n", m.st.accent.Render(fmt.Sprintf("[%d]", i+1)), p.Name, ui.Money(p.Price))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s   %s %d  %s %s\n",
		m.st.title.Render("Cart"),
		m.st.accent.Render("Items"), s.TotalItems,
		m.st.accent.Render("Total"), ui.Money(s.TotalPrice))
	items := s.Items()
	if len(items) == 0 {
		b.WriteString(m.st.muted.Render("  cart is empty") + "\n")
	}
	for i, it := range items {
		prefix := "  "
		if i == m.cartCursor {
			prefix = m.st.selected.Render("> ")
		}
		fmt.Fprintf(&b, "%s%-11s x%-3d %s\n", prefix, it.Name, it.Quantity, m.st.muted.Render(ui.Money(it.Subtotal())))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ---------------- form ----------------

func (m *Model) focusInput(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

// syncForm copies the container's values back into the inputs, so a reset
// clears what is on screen.
func (m *Model) syncForm() {
	s := m.app.Form.State()
	for i, f := range form.Fields {
		if m.inputs[i].Value() != s.Value(f) {
			m.inputs[i].SetValue(s.Value(f))
		}
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Up):
			if k.String() == "up" {
				cmd := m.focusInput((m.focus + len(m.inputs) - 1) % len(m.inputs))
				return m, cmd
			}
		case key.Matches(k, m.keys.Down):
			if k.String() == "down" {
				cmd := m.focusInput((m.focus + 1) % len(m.inputs))
				return m, cmd
			}
		case key.Matches(k, m.keys.Submit):
			submitted, ok, err := form.Submit(m.app.Form)
			m.report(err)
			if err == nil {
				if ok {
					m.status = "registered " + submitted.Name
				} else {
					m.status = "please fix the errors above"
					m.failed = true
				}
			}
			m.syncForm()
			return m, nil
		case key.Matches(k, m.keys.Reset):
			m.report(m.app.Form.Dispatch(form.ResetForm{}))
			m.syncForm()
			return m, nil
		}
	}

	var cmd tea.Cmd
	in := &m.inputs[m.focus]
	before := in.Value()
	*in, cmd = in.Update(msg)
	if v := in.Value(); v != before {
		m.report(m.app.Form.Dispatch(form.UpdateField{Field: form.Fields[m.focus], Value: v}))
	}
	return m, cmd
}

func (m Model) viewForm() string {
	s := m.app.Form.State()
	var b strings.Builder
	b.WriteString(m.st.title.Render("Registration") + "\n\n")
	for i, f := range form.Fields {
		b.WriteString(m.inputs[i].View() + "\n")
		if msg := s.Error(f); msg != "" {
			b.WriteString("  " + m.st.err.Render("✖ "+msg) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// ---------------- view ----------------

func (m Model) View() string {
	var tabs []string
	for i, name := range tabNames {
		if tab(i) == m.tab {
			tabs = append(tabs, m.st.activeTab.Render(name))
		} else {
			tabs = append(tabs, m.st.tab.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "  " +
		m.st.muted.Render("theme: "+m.app.Theme.State().Name)

	var body string
	var bindings []key.Binding
	switch m.tab {
	case tabCart:
		body, bindings = m.viewCart(), m.keys.cartHelp()
	case tabTodos:
		body = m.viewTodos()
		bindings = []key.Binding{m.keys.AddTodo, m.keys.EditTodo, m.keys.ToggleTodo, m.keys.DeleteTodo, m.keys.NextTab, m.keys.Theme, m.keys.Quit}
	default:
		body, bindings = m.viewForm(), m.keys.formHelp()
	}

	status := ""
	if m.status != "" {
		if m.failed {
			status = m.st.err.Render("✖ " + m.status)
		} else {
			status = m.st.success.Render("✔ " + m.status)
		}
	}
	content := header + "\n\n" + body + "\n\n" + status + "\n" + m.st.help.Render(m.help.ShortHelpView(bindings))
	return m.st.frame.Render(content)
}
