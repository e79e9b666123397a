package tdo

// GitHubRef links a todo to an issue in a GitHub repository.
type GitHubRef struct {
	Repo        string
	IssueNumber uint32
}

// Todo is a single entry of a TodoList. Its id is assigned by the caller and never changes.
type Todo struct {
	id     uint32
	Title  string
	Done   bool
	GitHub *GitHubRef
}

// NewTodo creates an undone todo.
func NewTodo(id uint32, title string, github *GitHubRef) *Todo {
	return &Todo{
		id:     id,
		Title:  title,
		GitHub: github,
	}
}

// ID returns the id of the todo.
func (t *Todo) ID() uint32 {
	return t.id
}

// Edit replaces the title.
func (t *Todo) Edit(title string) {
	t.Title = title
}

func (t *Todo) SetDone() {
	t.Done = true
}

func (t *Todo) SetUndone() {
	t.Done = false
}

// copy returns a detached copy, including the GitHub reference.
func (t *Todo) copy() *Todo {
	c := *t
	if t.GitHub != nil {
		gh := *t.GitHub
		c.GitHub = &gh
	}

	return &c
}
