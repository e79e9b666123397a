package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-steen/tdo/pkg/storage"
	"github.com/matt-steen/tdo/pkg/tdo"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

func ok(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render("✔ "+msg))
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

// describe turns the error kinds of the core into messages for humans.
func describe(err error) string {
	switch {
	case errors.Is(err, tdo.ErrNotInList):
		return "there is no todo with that id"
	case errors.Is(err, tdo.ErrNoSuchList):
		return "there is no list with that name"
	case errors.Is(err, tdo.ErrCanNotRemoveDefault):
		return "the default list can not be removed"
	case errors.Is(err, tdo.ErrNameAlreadyExists):
		return "a list with that name already exists"
	case errors.Is(err, tdo.ErrNotAllowedToMove):
		return "this todo tracks a github issue and has to stay in its list"
	case errors.Is(err, storage.ErrFileCorrupted):
		return "the data file is corrupted: " + err.Error()
	case errors.Is(err, storage.ErrUnableToConvert):
		return "the data file was written by an old version and could not be converted: " + err.Error()
	case errors.Is(err, storage.ErrSaveFailure):
		return "could not save the todos: " + err.Error()
	}

	return err.Error()
}

func renderTodo(todo *tdo.Todo) string {
	id := accentStyle.Render(fmt.Sprintf("%4d", todo.ID()))

	line := pendingStyle.Render("☐ ") + todo.Title
	if todo.Done {
		line = successStyle.Render("☑ ") + doneStyle.Render(todo.Title)
	}

	if todo.GitHub != nil {
		line += mutedStyle.Render(fmt.Sprintf("  %s#%d", todo.GitHub.Repo, todo.GitHub.IssueNumber))
	}

	return id + " " + line
}

func renderList(list *tdo.TodoList, all bool) string {
	todos := list.ListUndone()
	if all {
		todos = list.Todos()
	}

	lines := []string{titleStyle.Render(list.Name())}

	if len(todos) == 0 {
		lines = append(lines, mutedStyle.Render("     nothing to do"))
	}

	for _, todo := range todos {
		lines = append(lines, renderTodo(todo))
	}

	return strings.Join(lines, "\n")
}
