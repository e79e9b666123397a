// Package db stores a container in a sqlite database. The database always holds one
// snapshot; Save replaces it in a single transaction.
package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/matt-steen/tdo/pkg/tdo"

	// use the sqlite db driver.
	_ "github.com/mattn/go-sqlite3"
)

//go:embed base.sql
var baseSQL string

// Database manages the db connection.
type Database struct {
	conn *sql.DB
}

// NewDatabase connects to the sqlite database at the given filename and creates the
// tables if they are not present.
func NewDatabase(ctx context.Context, filename string) (*Database, error) {
	conn, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("error connecting to sqlite db at %s: %w", filename, err)
	}

	database := Database{conn: conn}

	if err := database.initialize(ctx); err != nil {
		conn.Close()

		return nil, err
	}

	return &database, nil
}

func (d *Database) initialize(ctx context.Context) error {
	// run idempotent setup sql to create empty tables if they don't exist
	if _, err := d.conn.ExecContext(ctx, baseSQL); err != nil {
		return fmt.Errorf("error running base sql: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.conn.Close()
}

// Load reads the stored container. An empty database yields a new container.
func (d *Database) Load(ctx context.Context) (*tdo.Tdo, error) {
	lists, err := d.loadLists(ctx)
	if err != nil {
		return nil, err
	}

	if len(lists) == 0 {
		return tdo.New(), nil
	}

	byID := map[int64]*tdo.TodoList{}
	ordered := make([]*tdo.TodoList, 0, len(lists))

	for _, row := range lists {
		list := tdo.NewTodoList(row.name)
		byID[row.id] = list
		ordered = append(ordered, list)
	}

	if err := d.loadTodos(ctx, byID); err != nil {
		return nil, err
	}

	version, token, err := d.loadMeta(ctx)
	if err != nil {
		return nil, err
	}

	t, err := tdo.Restore(ordered, token, version)
	if err != nil {
		return nil, fmt.Errorf("error restoring container: %w", err)
	}

	return t, nil
}

func (d *Database) loadLists(ctx context.Context) ([]listRow, error) {
	rows, err := d.conn.QueryContext(ctx, `SELECT id, name, position FROM list ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("error loading lists: %w", err)
	}
	defer rows.Close()

	lists := []listRow{}

	for rows.Next() {
		var row listRow

		if err := rows.Scan(&row.id, &row.name, &row.position); err != nil {
			return nil, fmt.Errorf("error scanning lists: %w", err)
		}

		lists = append(lists, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error scanning lists: %w", err)
	}

	return lists, nil
}

func (d *Database) loadTodos(ctx context.Context, lists map[int64]*tdo.TodoList) error {
	todoSQL := `SELECT list_id, position, todo_id, title, done, github_repo, github_issue
				FROM todo
				ORDER BY list_id, position`

	rows, err := d.conn.QueryContext(ctx, todoSQL)
	if err != nil {
		return fmt.Errorf("error loading todos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row todoRow

		err := rows.Scan(&row.listID, &row.position, &row.todoID, &row.title, &row.done, &row.githubRepo, &row.githubIssue)
		if err != nil {
			return fmt.Errorf("error scanning todos: %w", err)
		}

		list, ok := lists[row.listID]
		if !ok {
			return fmt.Errorf("todo %d references missing list %d", row.todoID, row.listID)
		}

		var ref *tdo.GitHubRef
		if row.githubRepo != nil && row.githubIssue != nil {
			ref = &tdo.GitHubRef{Repo: *row.githubRepo, IssueNumber: uint32(*row.githubIssue)}
		}

		todo := tdo.NewTodo(row.todoID, row.title, ref)
		if row.done {
			todo.SetDone()
		}

		list.Add(todo)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error scanning todos: %w", err)
	}

	return nil
}

func (d *Database) loadMeta(ctx context.Context) (string, *string, error) {
	rows, err := d.conn.QueryContext(ctx, `SELECT key, value FROM meta`)
	if err != nil {
		return "", nil, fmt.Errorf("error loading meta: %w", err)
	}
	defer rows.Close()

	version := tdo.Version

	var token *string

	for rows.Next() {
		var key, value string

		if err := rows.Scan(&key, &value); err != nil {
			return "", nil, fmt.Errorf("error scanning meta: %w", err)
		}

		switch key {
		case metaVersion:
			version = value
		case metaAccessToken:
			v := value
			token = &v
		}
	}

	if err = rows.Err(); err != nil {
		return "", nil, fmt.Errorf("error scanning meta: %w", err)
	}

	return version, token, nil
}

// Save replaces the stored snapshot with t.
func (d *Database) Save(ctx context.Context, t *tdo.Tdo) error {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if err := saveTx(ctx, tx, t); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing snapshot: %w", err)
	}

	return nil
}

func saveTx(ctx context.Context, tx *sql.Tx, t *tdo.Tdo) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM todo; DELETE FROM list; DELETE FROM meta;`); err != nil {
		return fmt.Errorf("error clearing snapshot: %w", err)
	}

	_, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES ($1, $2)`, metaVersion, t.Version())
	if err != nil {
		return fmt.Errorf("error saving version: %w", err)
	}

	if token, ok := t.GitHubToken(); ok {
		_, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES ($1, $2)`, metaAccessToken, token)
		if err != nil {
			return fmt.Errorf("error saving access token: %w", err)
		}
	}

	for position, list := range t.Lists() {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO list (name, position) VALUES ($1, $2)`, list.Name(), position)
		if err != nil {
			return fmt.Errorf("error adding list %s: %w", list.Name(), err)
		}

		listID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("error getting id of list %s: %w", list.Name(), err)
		}

		for i, todo := range list.Todos() {
			var repo *string

			var issue *int64

			if todo.GitHub != nil {
				r := todo.GitHub.Repo
				n := int64(todo.GitHub.IssueNumber)
				repo, issue = &r, &n
			}

			_, err := tx.ExecContext(ctx,
				`INSERT INTO todo (list_id, position, todo_id, title, done, github_repo, github_issue)
				     VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				listID, i, todo.ID(), todo.Title, todo.Done, repo, issue,
			)
			if err != nil {
				return fmt.Errorf("error adding todo '%s' to list '%s': %w", todo.Title, list.Name(), err)
			}
		}
	}

	return nil
}
