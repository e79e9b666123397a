package controller

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

func (c *Controller) switchToForm(edit bool) {
	c.editing = edit

	title := "New Todo in " + c.selectedList
	c.titleField.SetText("")

	if edit {
		title = fmt.Sprintf("Edit Todo #%d", c.selectedTodo.ID())
		c.titleField.SetText(c.selectedTodo.Title)
	}

	c.todoForm.SetTitle(title)
	c.todoForm.SetFocus(0)

	c.pages.SwitchToPage("form")

	c.app.SetInputCapture(c.handleFormKeys)
}

func (c *Controller) switchToMoveForm() {
	options := []string{}

	for _, list := range c.tdo.Lists() {
		if list.Name() != c.selectedList {
			options = append(options, list.Name())
		}
	}

	c.listDropDown.SetOptions(options, nil)
	c.listDropDown.SetCurrentOption(-1)

	c.moveForm.SetTitle(fmt.Sprintf("Move #%d %s", c.selectedTodo.ID(), c.selectedTodo.Title))
	c.moveForm.SetFocus(0)

	c.pages.SwitchToPage("moveForm")

	c.app.SetInputCapture(c.handleFormKeys)
}

func (c *Controller) formHeader() *tview.Table {
	table := tview.NewTable().SetBorders(false).SetSelectable(false, false)
	row := 0

	for key, event := range c.formEvents {
		text := fmt.Sprintf("[orange]<%s>[white] %s", tcell.KeyNames[key], event.Description)
		table.SetCell(row, 0, tview.NewTableCell(text))
		row++
	}

	return table
}

func (c *Controller) getFormGrid() *tview.Grid {
	grid := tview.NewGrid().SetBorders(true).SetRows(1, 0, 1)

	c.initForm()

	grid.AddItem(c.formHeader(), 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.todoForm, 1, 0, 1, 1, 0, 0, true)
	grid.AddItem(c.status, 2, 0, 1, 1, 0, 0, false)

	return grid
}

func (c *Controller) getMoveFormGrid() *tview.Grid {
	grid := tview.NewGrid().SetBorders(true).SetRows(1, 0, 1)

	c.initMoveForm()

	grid.AddItem(c.formHeader(), 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.moveForm, 1, 0, 1, 1, 0, 0, true)
	grid.AddItem(c.status, 2, 0, 1, 1, 0, 0, false)

	return grid
}

func (c *Controller) initForm() {
	titleMax := 200

	c.todoForm = tview.NewForm().AddInputField("Title", "", titleMax, nil, nil)
	c.todoForm.SetBorder(true)

	c.titleField, _ = c.todoForm.GetFormItemByLabel("Title").(*tview.InputField)
	c.todoForm.AddButton("Save", func() {
		c.apply(c.saveTodo(c.titleField.GetText()))
		c.showList(c.selectedList)
	})
}

// saveTodo edits the selected todo or adds a new one to the selected list.
func (c *Controller) saveTodo(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("a todo needs a title")
	}

	if c.editing && c.selectedTodo != nil {
		log.Debug().Uint32("id", c.selectedTodo.ID()).Msgf("renaming todo to '%s'", title)

		return c.tdo.EditID(c.selectedTodo.ID(), title)
	}

	id := c.tdo.HighestID() + 1
	log.Debug().Uint32("id", id).Str("list", c.selectedList).Msgf("adding todo '%s'", title)

	if err := c.tdo.AddTodo(c.selectedList, tdo.NewTodo(id, title, nil)); err != nil {
		return err
	}

	c.setStatus(fmt.Sprintf("added #%d", id))

	return nil
}

func (c *Controller) initMoveForm() {
	c.moveForm = tview.NewForm().AddDropDown("List", []string{}, -1, nil)
	c.moveForm.SetBorder(true)

	c.listDropDown, _ = c.moveForm.GetFormItemByLabel("List").(*tview.DropDown)

	c.moveForm.AddButton("Move", func() {
		_, target := c.listDropDown.GetCurrentOption()
		if target == "" || c.selectedTodo == nil {
			c.showList(c.selectedList)

			return
		}

		c.apply(c.move(c.selectedTodo, target))
		c.showList(c.selectedList)
	})
}

func (c *Controller) move(todo *tdo.Todo, target string) error {
	if err := c.tdo.MoveTodo(todo.ID(), target); err != nil {
		return err
	}

	log.Info().Uint32("id", todo.ID()).Str("list", target).Msg("moved todo")
	c.setStatus(fmt.Sprintf("moved #%d to %s", todo.ID(), target))

	return nil
}
