package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed report.schema.json
var schemaFS embed.FS

var (
	documentSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// compileSchema compiles the embedded report schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemaFS.ReadFile("report.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read report schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal report schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("report.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add report schema resource: %w", err)
			return
		}

		documentSchema, compileErr = compiler.Compile("report.schema.json")
	})

	return compileErr
}

// ValidateDocument validates raw JSON data against the report document schema.
func ValidateDocument(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := documentSchema.Validate(v); err != nil {
		return fmt.Errorf("document validation failed: %w", err)
	}

	return nil
}
