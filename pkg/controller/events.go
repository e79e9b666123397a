package controller

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/rs/zerolog/log"
)

func (c *Controller) initEvents() {
	c.events = map[rune]KeyEvent{}
	c.formEvents = map[tcell.Key]KeyEvent{}

	c.initTodoEvents(c.events)
	c.initListEvents(c.events)
	c.initExitEvent(c.events)

	c.formEvents[tcell.KeyEscape] = KeyEvent{
		Description: "Cancel",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.showList(c.selectedList)

			return nil
		},
	}
}

func (c *Controller) handleKeys(evt *tcell.EventKey) *tcell.EventKey {
	switch evt.Key() {
	case tcell.KeyTab:
		c.cycleList(1)

		return nil
	case tcell.KeyBacktab:
		c.cycleList(-1)

		return nil
	case tcell.KeyRune:
		if k, ok := c.events[evt.Rune()]; ok {
			return k.Action(evt)
		}
	}

	return evt
}

func (c *Controller) handleFormKeys(evt *tcell.EventKey) *tcell.EventKey {
	if k, ok := c.formEvents[evt.Key()]; ok {
		return k.Action(evt)
	}

	return evt
}

func (c *Controller) initExitEvent(events map[rune]KeyEvent) {
	events['q'] = KeyEvent{
		Description: "Exit",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.app.Stop()

			return nil
		},
	}
}

// selectedAction wraps an action on the selected todo; without a selection the key
// does nothing.
func (c *Controller) selectedAction(fn func(todo *tdo.Todo) error) func(*tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		if c.selectedTodo == nil {
			return nil
		}

		c.apply(fn(c.selectedTodo))

		return nil
	}
}

func (c *Controller) initTodoEvents(events map[rune]KeyEvent) {
	events['d'] = KeyEvent{
		Description: "Toggle done",
		Action:      c.selectedAction(c.toggleDone),
	}

	events['x'] = KeyEvent{
		Description: "Remove",
		Action:      c.selectedAction(c.remove),
	}

	events['a'] = KeyEvent{
		Description: "Add todo",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.switchToForm(false)

			return nil
		},
	}

	events['e'] = KeyEvent{
		Description: "Edit title",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			if c.selectedTodo != nil {
				c.switchToForm(true)
			}

			return nil
		},
	}

	events['m'] = KeyEvent{
		Description: "Move to list",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			if c.selectedTodo != nil {
				c.switchToMoveForm()
			}

			return nil
		},
	}
}

func (c *Controller) initListEvents(events map[rune]KeyEvent) {
	events['c'] = KeyEvent{
		Description: "Clean list",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.apply(c.clean())

			return nil
		},
	}

	events['r'] = KeyEvent{
		Description: "Reload",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.reload()

			return nil
		},
	}
}

// apply saves and redraws after a successful change, or reports the error.
func (c *Controller) apply(err error) {
	if err != nil {
		log.Warn().Err(err).Str("list", c.selectedList).Msg("action failed")
		c.setStatus(fmt.Sprintf("[red]%s", describe(err)))

		return
	}

	c.save()
	c.refresh()
}

func (c *Controller) toggleDone(todo *tdo.Todo) error {
	if todo.Done {
		return c.tdo.UndoneID(todo.ID())
	}

	return c.tdo.DoneID(todo.ID())
}

func (c *Controller) remove(todo *tdo.Todo) error {
	if err := c.tdo.RemoveID(todo.ID()); err != nil {
		return err
	}

	c.setStatus(fmt.Sprintf("removed #%d", todo.ID()))

	return nil
}

func (c *Controller) clean() error {
	if err := c.tdo.CleanList(c.selectedList); err != nil {
		return err
	}

	c.setStatus("removed done todos from " + c.selectedList)

	return nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, tdo.ErrNotAllowedToMove):
		return "todos linked to a github issue stay in their list"
	case errors.Is(err, tdo.ErrNoSuchList):
		return "no such list"
	case errors.Is(err, tdo.ErrNotInList):
		return "no such todo"
	}

	return err.Error()
}
