package storage

import "github.com/matt-steen/tdo/pkg/tdo"

// document is the on-disk shape of a container.
type document struct {
	Lists       []listDoc `json:"lists" yaml:"lists"`
	AccessToken *string   `json:"access_token" yaml:"access_token"`
	Version     string    `json:"version" yaml:"version"`
}

type listDoc struct {
	Name string    `json:"name" yaml:"name"`
	List []todoDoc `json:"list" yaml:"list"`
}

type todoDoc struct {
	ID     uint32     `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	Done   bool       `json:"done" yaml:"done"`
	GitHub *githubDoc `json:"github" yaml:"github"`
}

type githubDoc struct {
	Repo        string `json:"repo" yaml:"repo"`
	IssueNumber uint32 `json:"issue_number" yaml:"issue_number"`
}

func newDocument(t *tdo.Tdo) document {
	doc := document{
		Lists:   []listDoc{},
		Version: t.Version(),
	}

	if token, ok := t.GitHubToken(); ok {
		doc.AccessToken = &token
	}

	for _, list := range t.Lists() {
		ld := listDoc{Name: list.Name(), List: []todoDoc{}}

		for _, todo := range list.Todos() {
			td := todoDoc{ID: todo.ID(), Name: todo.Title, Done: todo.Done}
			if todo.GitHub != nil {
				td.GitHub = &githubDoc{Repo: todo.GitHub.Repo, IssueNumber: todo.GitHub.IssueNumber}
			}

			ld.List = append(ld.List, td)
		}

		doc.Lists = append(doc.Lists, ld)
	}

	return doc
}

func (d document) container() (*tdo.Tdo, error) {
	return tdo.Restore(buildLists(d.Lists), d.AccessToken, d.Version)
}

func buildLists(docs []listDoc) []*tdo.TodoList {
	lists := make([]*tdo.TodoList, 0, len(docs))

	for _, ld := range docs {
		list := tdo.NewTodoList(ld.Name)

		for _, td := range ld.List {
			var ref *tdo.GitHubRef
			if td.GitHub != nil {
				ref = &tdo.GitHubRef{Repo: td.GitHub.Repo, IssueNumber: td.GitHub.IssueNumber}
			}

			todo := tdo.NewTodo(td.ID, td.Name, ref)
			if td.Done {
				todo.SetDone()
			}

			list.Add(todo)
		}

		lists = append(lists, list)
	}

	return lists
}
