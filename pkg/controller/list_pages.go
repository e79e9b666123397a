package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

func pageName(name string) string {
	return "list:" + strings.ToLower(name)
}

// initPages builds one page per list plus the forms and makes them the app root.
func (c *Controller) initPages() {
	c.pages = tview.NewPages()
	c.tables = map[string]*tview.Table{}

	for _, list := range c.tdo.Lists() {
		c.pages.AddPage(pageName(list.Name()), c.getListGrid(list), true, false)
	}

	c.pages.AddPage("form", c.getFormGrid(), true, false)
	c.pages.AddPage("moveForm", c.getMoveFormGrid(), true, false)

	c.app.SetRoot(c.pages, true)
}

func (c *Controller) getListGrid(list *tdo.TodoList) *tview.Grid {
	header := c.getListHeader(list.Name())
	table := c.getTable(list)
	c.tables[pageName(list.Name())] = table

	// header: list names plus the shortcuts in rows of three
	grid := tview.NewGrid().SetBorders(true).SetRows((len(c.events)+2)/3+2, 0, 1)

	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(table, 1, 0, 1, 1, 0, 0, true)
	grid.AddItem(c.status, 2, 0, 1, 1, 0, 0, false)

	return grid
}

// getListHeader shows the list name and the keyboard shortcuts in three columns, sorted
// alphabetically.
func (c *Controller) getListHeader(name string) *tview.Table {
	table := tview.NewTable().SetBorders(false).SetSelectable(false, false)

	names := []string{}
	for _, list := range c.tdo.Lists() {
		if list.Name() == name {
			names = append(names, fmt.Sprintf("[yellow]%s[white]", list.Name()))
		} else {
			names = append(names, list.Name())
		}
	}

	table.SetCell(0, 0, tview.NewTableCell(strings.Join(names, " | ")))

	shortcuts := []string{}
	for key, event := range c.events {
		shortcuts = append(shortcuts, fmt.Sprintf("[orange]<%c>[white] %s", key, event.Description))
	}

	shortcuts = append(shortcuts, "[orange]<Tab>[white] Next list", "[orange]<Backtab>[white] Previous list")

	sort.Strings(shortcuts)

	for i, text := range shortcuts {
		table.SetCell(1+i/3, i%3, tview.NewTableCell(text).SetExpansion(1))
	}

	return table
}

// listContent produces the cells of the table for one list.
type listContent struct {
	list *tdo.TodoList
}

// GetCell returns the cell at the given position or nil if no cell.
func (l *listContent) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		switch col {
		case 0:
			return tview.NewTableCell("id").SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 1:
			return tview.NewTableCell("title").SetExpansion(titleIDRatio).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 2:
			return tview.NewTableCell("github").SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		}
	}

	todos := l.list.Todos()
	if row-1 >= len(todos) {
		return nil
	}

	todo := todos[row-1]

	color := tcell.ColorWhite
	if todo.Done {
		color = tcell.ColorGray
	}

	switch col {
	case 0:
		return tview.NewTableCell(fmt.Sprintf("%d", todo.ID())).SetTextColor(color).SetReference(todo)
	case 1:
		title := todo.Title
		if todo.Done {
			title = "✔ " + title
		}

		return tview.NewTableCell(title).SetExpansion(titleIDRatio).SetTextColor(color)
	case 2:
		ref := ""
		if todo.GitHub != nil {
			ref = fmt.Sprintf("%s#%d", todo.GitHub.Repo, todo.GitHub.IssueNumber)
		}

		return tview.NewTableCell(ref).SetExpansion(1).SetTextColor(tcell.ColorGreen)
	}

	return nil
}

// GetRowCount returns the number of rows in the table.
func (l *listContent) GetRowCount() int {
	return l.list.Len() + 1
}

// GetColumnCount returns the number of columns in the table.
func (l *listContent) GetColumnCount() int {
	return 3
}

func fillTable(table *tview.Table, content *listContent) {
	table.Clear()

	for row := 0; row < content.GetRowCount(); row++ {
		for col := 0; col < content.GetColumnCount(); col++ {
			if cell := content.GetCell(row, col); cell != nil {
				table.SetCell(row, col, cell)
			}
		}
	}
}

func (c *Controller) getTable(list *tdo.TodoList) *tview.Table {
	table := tview.NewTable().SetBorders(false).SetFixed(1, 0)

	fillTable(table, &listContent{list: list})

	table.SetSelectable(true, false)
	table.SetSelectionChangedFunc(c.setCurrentRow)

	if list.Len() > 0 {
		table.Select(1, 0)
	}

	return table
}

// refresh redraws every list table after a change, keeping each selection on the same
// row where possible.
func (c *Controller) refresh() {
	for _, list := range c.tdo.Lists() {
		table, ok := c.tables[pageName(list.Name())]
		if !ok {
			continue
		}

		row, _ := table.GetSelection()

		fillTable(table, &listContent{list: list})

		if row > list.Len() {
			row = list.Len()
		}

		if row < 1 && list.Len() > 0 {
			row = 1
		}

		table.Select(row, 0)

		if list.Name() == c.selectedList {
			c.setCurrentRow(row, 0)
		}
	}
}

func (c *Controller) getTodoForRow(row int) *tdo.Todo {
	list, err := c.tdo.List(c.selectedList)
	if err != nil {
		return nil
	}

	// adjust for the header row
	todos := list.Todos()
	if idx := row - 1; idx < len(todos) && idx >= 0 {
		return todos[idx]
	}

	return nil
}

// when the row selection changes, update the selected Todo.
func (c *Controller) setCurrentRow(row, col int) {
	c.selectedTodo = c.getTodoForRow(row)

	title := "nil"
	if c.selectedTodo != nil {
		title = c.selectedTodo.Title
	}

	log.Debug().
		Str("selectedList", c.selectedList).
		Int("row", row).
		Msgf("setting selectedTodo to '%s'", title)
}

func (c *Controller) showList(name string) {
	list, err := c.tdo.List(name)
	if err != nil {
		log.Warn().Err(err).Str("list", name).Msg("can not show list")

		return
	}

	c.selectedList = list.Name()
	c.app.SetInputCapture(c.handleKeys)

	row, _ := c.tables[pageName(list.Name())].GetSelection()
	c.setCurrentRow(row, 0)

	c.pages.SwitchToPage(pageName(list.Name()))
}

// cycleList shows the list offset positions away from the selected one.
func (c *Controller) cycleList(offset int) {
	lists := c.tdo.Lists()

	for i, list := range lists {
		if list.Name() == c.selectedList {
			next := (i + offset + len(lists)) % len(lists)
			c.showList(lists[next].Name())

			return
		}
	}
}
