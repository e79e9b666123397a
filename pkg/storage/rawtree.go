package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/matt-steen/tdo/pkg/tdo"
)

// The oldest files have no container wrapper:
//
//	{"<list>": {"<id>": ["<title>", <done>], ...}, ...}
//
// They are read into a tree of nodes first so object key order, and with it list and
// todo order, survives.

type nodeKind int

const (
	nullNode nodeKind = iota
	boolNode
	numberNode
	stringNode
	arrayNode
	objectNode
)

type member struct {
	key   string
	value *node
}

type node struct {
	kind    nodeKind
	boolean bool
	str     string
	number  json.Number
	items   []*node
	members []member
}

func parseTree(data []byte) (*node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := parseNode(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after json value")
	}

	return root, nil
}

func parseNode(dec *json.Decoder) (*node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case nil:
		return &node{kind: nullNode}, nil
	case bool:
		return &node{kind: boolNode, boolean: v}, nil
	case json.Number:
		return &node{kind: numberNode, number: v}, nil
	case string:
		return &node{kind: stringNode, str: v}, nil
	case json.Delim:
		switch v {
		case '[':
			n := &node{kind: arrayNode}

			for dec.More() {
				item, err := parseNode(dec)
				if err != nil {
					return nil, err
				}

				n.items = append(n.items, item)
			}

			_, err := dec.Token()

			return n, err
		case '{':
			n := &node{kind: objectNode}

			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}

				key, _ := keyTok.(string)

				value, err := parseNode(dec)
				if err != nil {
					return nil, err
				}

				n.members = append(n.members, member{key: key, value: value})
			}

			_, err := dec.Token()

			return n, err
		}
	}

	return nil, fmt.Errorf("unexpected token %v", tok)
}

// pop removes and returns the last element of an array node. Anything else, or an
// empty array, yields a null node.
func (n *node) pop() *node {
	if n.kind != arrayNode || len(n.items) == 0 {
		return &node{kind: nullNode}
	}

	last := n.items[len(n.items)-1]
	n.items = n.items[:len(n.items)-1]

	return last
}

func readRawTree(data []byte) (*tdo.Tdo, error) {
	root, err := parseTree(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errNotThisFormat, err)
	}

	if root.kind != objectNode {
		return nil, fmt.Errorf("%w: top level is not an object", errNotThisFormat)
	}

	lists := make([]*tdo.TodoList, 0, len(root.members))

	for _, outer := range root.members {
		list, err := convertList(outer.key, outer.value)
		if err != nil {
			return nil, fmt.Errorf("%w: list %q: %w", ErrUnableToConvert, outer.key, err)
		}

		lists = append(lists, list)
	}

	t, err := tdo.Restore(lists, nil, tdo.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnableToConvert, err)
	}

	return t, nil
}

func convertList(name string, value *node) (*tdo.TodoList, error) {
	if value.kind != objectNode {
		return nil, errors.New("not an object")
	}

	list := tdo.NewTodoList(name)

	for _, inner := range value.members {
		id, err := strconv.ParseUint(inner.key, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("id %q: %w", inner.key, err)
		}

		entry := inner.value
		if entry.kind != arrayNode || len(entry.items) != 2 {
			return nil, fmt.Errorf("todo %d: want [title, done]", id)
		}

		done := entry.pop()
		if done.kind != boolNode {
			return nil, fmt.Errorf("todo %d: done flag is not a bool", id)
		}

		title := entry.pop()
		if title.kind != stringNode {
			return nil, fmt.Errorf("todo %d: title is not a string", id)
		}

		todo := tdo.NewTodo(uint32(id), title.str, nil)
		if done.boolean {
			todo.SetDone()
		}

		list.Add(todo)
	}

	return list, nil
}
