package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/matt-steen/tdo/pkg/tdo"
	"gopkg.in/yaml.v3"
)

// Format is an export format.
type Format string

// These constants are the supported export formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts the names of the export formats, plus "yml" and "md".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}

	return "", fmt.Errorf("unknown export format %q", name)
}

// Export writes the container to w. The json format is the same document Save writes.
func Export(w io.Writer, t *tdo.Tdo, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, newDocument(t))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(newDocument(t)); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}

		return enc.Close()
	case FormatMarkdown:
		return writeMarkdown(w, t)
	}

	return fmt.Errorf("unknown export format %q", format)
}

func encodeJSON(w io.Writer, doc document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error encoding json: %w", err)
	}

	return nil
}

func writeMarkdown(w io.Writer, t *tdo.Tdo) error {
	var b strings.Builder

	for i, list := range t.Lists() {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "# %s\n\n", list.Name())

		for _, todo := range list.Todos() {
			box := " "
			if todo.Done {
				box = "x"
			}

			fmt.Fprintf(&b, "- [%s] %s (#%d)", box, todo.Title, todo.ID())

			if todo.GitHub != nil {
				fmt.Fprintf(&b, " [%s#%d]", todo.GitHub.Repo, todo.GitHub.IssueNumber)
			}

			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}
