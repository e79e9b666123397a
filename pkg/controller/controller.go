// Package controller runs the terminal UI for browsing and editing todo lists.
package controller

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/tdo/pkg/storage"
	"github.com/matt-steen/tdo/pkg/tdo"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	titleIDRatio = 4
	// changes to the data file this soon after our own save are assumed to be ours.
	ownWriteWindow = time.Second
)

// Controller mediates between the container and the view.
type Controller struct {
	tdo   *tdo.Tdo
	store storage.Store
	path  string

	app    *tview.Application
	pages  *tview.Pages
	tables map[string]*tview.Table
	status *tview.TextView

	selectedList string
	selectedTodo *tdo.Todo

	events     map[rune]KeyEvent
	formEvents map[tcell.Key]KeyEvent

	todoForm   *tview.Form
	titleField *tview.InputField
	editing    bool

	moveForm     *tview.Form
	listDropDown *tview.DropDown

	watcher *fsnotify.Watcher
	lastSave time.Time
}

// KeyEvent defines an event associated with a keypress.
type KeyEvent struct {
	Description string
	Action      func(*tcell.EventKey) *tcell.EventKey
}

// NewController creates a new Controller for the container stored at path.
func NewController(t *tdo.Tdo, store storage.Store, path string) (*Controller, error) {
	c := Controller{
		tdo:          t,
		store:        store,
		path:         path,
		app:          tview.NewApplication(),
		tables:       map[string]*tview.Table{},
		status:       tview.NewTextView().SetDynamicColors(true),
		selectedList: tdo.DefaultListName,
	}

	c.initEvents()
	c.initPages()

	return &c, nil
}

// Go starts the app and blocks until the user quits.
func (c *Controller) Go() error {
	if err := c.watch(); err != nil {
		// the UI works without live reload
		log.Warn().Err(err).Str("path", c.path).Msg("not watching data file")
	}

	defer c.stopWatching()

	log.Info().Msg("starting tui")

	c.showList(c.selectedList)

	if err := c.app.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}

	log.Info().Msg("terminating tui")

	return nil
}

// save writes the container after every change, so an external edit picked up by the
// watcher never races unsaved state.
func (c *Controller) save() {
	c.lastSave = time.Now()

	if err := c.store.Save(c.path, c.tdo); err != nil {
		log.Error().Err(err).Str("path", c.path).Msg("error saving todos")
		c.setStatus(fmt.Sprintf("[red]could not save: %s", err))

		return
	}

	log.Debug().Str("path", c.path).Msg("saved todos")
}

// reload replaces the container with what is on disk.
func (c *Controller) reload() {
	t, err := c.store.Load(c.path)
	if err != nil {
		log.Warn().Err(err).Str("path", c.path).Msg("error reloading todos")
		c.setStatus(fmt.Sprintf("[red]could not reload: %s", err))

		return
	}

	c.tdo = t

	if _, err := c.tdo.List(c.selectedList); err != nil {
		c.selectedList = tdo.DefaultListName
	}

	c.initPages()
	c.showList(c.selectedList)
	c.setStatus("[green]reloaded from disk")
}

func (c *Controller) setStatus(msg string) {
	c.status.SetText(msg)
}
