package storage

import (
	"encoding/json"
	"fmt"

	"github.com/matt-steen/tdo/pkg/tdo"
)

// legacy01 is the 0.1 file format: lists of todos without GitHub links or a token.
type legacy01 struct {
	Lists []struct {
		Name string `json:"name"`
		List []struct {
			ID   uint32 `json:"id"`
			Name string `json:"name"`
			Done bool   `json:"done"`
		} `json:"list"`
	} `json:"lists"`
}

func readLegacy01(data []byte) (*tdo.Tdo, error) {
	if err := validate(legacySchema, data); err != nil {
		return nil, fmt.Errorf("%w: %w", errNotThisFormat, err)
	}

	var old legacy01
	if err := json.Unmarshal(data, &old); err != nil {
		return nil, fmt.Errorf("%w: %w", errNotThisFormat, err)
	}

	docs := make([]listDoc, 0, len(old.Lists))

	for _, l := range old.Lists {
		ld := listDoc{Name: l.Name, List: make([]todoDoc, 0, len(l.List))}
		for _, todo := range l.List {
			ld.List = append(ld.List, todoDoc{ID: todo.ID, Name: todo.Name, Done: todo.Done})
		}

		docs = append(docs, ld)
	}

	t, err := tdo.Restore(buildLists(docs), nil, tdo.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnableToConvert, err)
	}

	return t, nil
}
