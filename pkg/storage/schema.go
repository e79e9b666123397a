package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/current.json
var currentSchemaJSON string

//go:embed schema/legacy.json
var legacySchemaJSON string

// encoding/json leaves missing fields at their zero value, so the shape of a file is
// checked against a schema before it is decoded.
var (
	currentSchema = jsonschema.MustCompileString("tdo-current.json", currentSchemaJSON)
	legacySchema  = jsonschema.MustCompileString("tdo-legacy.json", legacySchemaJSON)
)

func validate(schema *jsonschema.Schema, data []byte) error {
	var v interface{}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	if err := decoder.Decode(&v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	return nil
}
