package tdo

// DefaultListName is the name of the list every container is created with.
const DefaultListName = "default"

// TodoList is a named, ordered collection of todos.
//
// The list does not enforce unique ids on Add; ids are assumed unique because callers
// derive them from Tdo.HighestID.
type TodoList struct {
	name  string
	todos []*Todo
}

// NewTodoList creates an empty list.
func NewTodoList(name string) *TodoList {
	return &TodoList{
		name:  name,
		todos: []*Todo{},
	}
}

// Name returns the list name as it was created.
func (l *TodoList) Name() string {
	return l.name
}

// Todos returns the todos in display order. The returned slice may be modified freely,
// the todos it points to are the ones owned by the list.
func (l *TodoList) Todos() []*Todo {
	todos := make([]*Todo, len(l.todos))
	copy(todos, l.todos)

	return todos
}

// Len returns the number of todos in the list.
func (l *TodoList) Len() int {
	return len(l.todos)
}

// Add appends a todo to the end of the list.
func (l *TodoList) Add(todo *Todo) {
	l.todos = append(l.todos, todo)
}

// ContainsID returns the position of the first todo with the given id.
func (l *TodoList) ContainsID(id uint32) (int, error) {
	for i, todo := range l.todos {
		if todo.id == id {
			return i, nil
		}
	}

	return -1, ErrNotInList
}

// DoneID marks the todo with the given id as done.
func (l *TodoList) DoneID(id uint32) error {
	i, err := l.ContainsID(id)
	if err != nil {
		return err
	}

	l.todos[i].SetDone()

	return nil
}

// UndoneID marks the todo with the given id as not done.
func (l *TodoList) UndoneID(id uint32) error {
	i, err := l.ContainsID(id)
	if err != nil {
		return err
	}

	l.todos[i].SetUndone()

	return nil
}

// RemoveID removes the todo with the given id and returns it. The order of the
// remaining todos is preserved.
func (l *TodoList) RemoveID(id uint32) (*Todo, error) {
	i, err := l.ContainsID(id)
	if err != nil {
		return nil, err
	}

	todo := l.todos[i]
	l.todos = append(l.todos[:i], l.todos[i+1:]...)

	return todo, nil
}

// PopID takes a todo out of the list so it can be inserted elsewhere.
func (l *TodoList) PopID(id uint32) (*Todo, error) {
	return l.RemoveID(id)
}

// InsertTodo places the todo right after the last todo with a smaller id, or at the
// front if there is none. Todos already in the list keep their relative order, so the
// result is only sorted if the list was sorted before.
func (l *TodoList) InsertTodo(todo *Todo) {
	pos := 0

	for i, t := range l.todos {
		if t.id < todo.id {
			pos = i + 1
		}
	}

	l.todos = append(l.todos, nil)
	copy(l.todos[pos+1:], l.todos[pos:])
	l.todos[pos] = todo
}

// ListUndone returns copies of all undone todos in list order.
func (l *TodoList) ListUndone() []*Todo {
	undone := []*Todo{}

	for _, todo := range l.todos {
		if !todo.Done {
			undone = append(undone, todo.copy())
		}
	}

	return undone
}

// Clean removes every done todo. It filters by the done flag rather than by id, so an
// undone todo sharing an id with a done one survives.
func (l *TodoList) Clean() {
	kept := l.todos[:0]

	for _, todo := range l.todos {
		if !todo.Done {
			kept = append(kept, todo)
		}
	}

	for i := len(kept); i < len(l.todos); i++ {
		l.todos[i] = nil
	}

	l.todos = kept
}
