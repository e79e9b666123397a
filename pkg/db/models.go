package db

// These constants are the keys of the meta table.
const (
	metaVersion     = "version"
	metaAccessToken = "access_token"
)

// listRow mirrors a row of the list table.
type listRow struct {
	id       int64
	name     string
	position int
}

// todoRow mirrors a row of the todo table.
type todoRow struct {
	listID      int64
	position    int
	todoID      uint32
	title       string
	done        bool
	githubRepo  *string
	githubIssue *int64
}
