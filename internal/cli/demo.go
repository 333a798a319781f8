package cli

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/app"
	"github.com/idilsaglam/tada/internal/cart"
	"github.com/idilsaglam/tada/internal/form"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

func doDemo(which string, opt Options) int {
	steps := map[string]func(*app.App, Options) error{
		"cart": demoCart,
		"todo": demoTodo,
		"form": demoForm,
	}
	var order []string
	switch which {
	case "all":
		order = []string{"cart", "todo", "form"}
	case "cart", "todo", "form":
		order = []string{which}
	default:
		ui.Fail("demo: unknown walkthrough: " + which)
		return 2
	}

	a, ok := newApp(opt)
	if !ok {
		return 2
	}
	stop := ui.Follow(a.Theme)
	defer stop()

	for _, name := range order {
		if err := steps[name](a, opt); err != nil {
			ui.Fail(name + ": " + err.Error())
			return 1
		}
	}
	return 0
}

func step(msg string) { fmt.Fprintln(ui.Out, ui.C(ui.Current().Accent, "» "+msg)) }

func demoCart(a *app.App, _ Options) error {
	mouse := cart.Catalog[3]
	step("ADD_ITEM Mouse, twice")
	for i := 0; i < 2; i++ {
		if err := a.Cart.Dispatch(cart.AddItem{Product: mouse}); err != nil {
			return err
		}
	}
	ui.Panel(ui.CartLines(a.Cart.State()))

	step("UPDATE_QUANTITY Mouse -> 5")
	if err := a.Cart.Dispatch(cart.UpdateQuantity{ID: mouse.ID, Quantity: 5}); err != nil {
		return err
	}
	ui.Panel(ui.CartLines(a.Cart.State()))

	step("REMOVE_ITEM Phone (not in cart)")
	if err := a.Cart.Dispatch(cart.RemoveItem{ID: cart.Catalog[1].ID}); err != nil {
		ui.Fail(err.Error())
	}

	step("CLEAR_CART")
	if err := a.Cart.Dispatch(cart.ClearCart{}); err != nil {
		return err
	}
	ui.Panel(ui.CartLines(a.Cart.State()))
	return nil
}

func demoTodo(a *app.App, opt Options) error {
	step(`ADD_TODO "Buy milk"`)
	id, err := a.AddTodo("Buy milk")
	if err != nil {
		return err
	}
	if _, err := a.AddTodo("Walk the dog"); err != nil {
		return err
	}
	step("TOGGLE_TODO Buy milk")
	if err := a.Todo.Dispatch(todo.ToggleTodo{ID: id}); err != nil {
		return err
	}
	ui.Panel(ui.TodoLines(a.Todo.State(), opt.Group))

	step("DELETE_TODO Buy milk")
	if err := a.Todo.Dispatch(todo.DeleteTodo{ID: id}); err != nil {
		return err
	}
	ui.Panel(ui.TodoLines(a.Todo.State(), opt.Group))
	return nil
}

func demoForm(a *app.App, _ Options) error {
	step(`UPDATE_FIELD email "bad", then submit`)
	if err := a.Form.Dispatch(form.UpdateField{Field: form.FieldEmail, Value: "bad"}); err != nil {
		return err
	}
	if _, _, err := form.Submit(a.Form); err != nil {
		return err
	}
	ui.Panel(ui.FormLines(a.Form.State()))

	step("fill in every field and submit again")
	for _, act := range []form.Action{
		form.UpdateField{Field: form.FieldName, Value: "Ada"},
		form.UpdateField{Field: form.FieldEmail, Value: "a@b.com"},
		form.UpdateField{Field: form.FieldPassword, Value: "secret"},
		form.UpdateField{Field: form.FieldConfirmPassword, Value: "secret"},
	} {
		if err := a.Form.Dispatch(act); err != nil {
			return err
		}
	}
	sent, ok, err := form.Submit(a.Form)
	if err != nil {
		return err
	}
	if ok {
		ui.OK("registered " + sent.Name + " <" + sent.Email + ">")
	}
	ui.Panel(ui.FormLines(a.Form.State()))
	return nil
}
