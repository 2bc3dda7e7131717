package quizdata

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const poolSchemaURL = "schema://yokai/questions.schema.json"

var (
	poolSchemaOnce sync.Once
	poolSchema     *jsonschema.Schema
	poolSchemaErr  error
)

// validatePoolJSON checks raw question-pool JSON against the embedded schema.
func validatePoolJSON(raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledPoolSchema()
	if err != nil {
		return fmt.Errorf("compile question schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledPoolSchema compiles the embedded schema once per process.
func compiledPoolSchema() (*jsonschema.Schema, error) {
	poolSchemaOnce.Do(func() {
		def, err := embedded.ReadFile("data/questions.schema.json")
		if err != nil {
			poolSchemaErr = fmt.Errorf("read schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
		if err != nil {
			poolSchemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(poolSchemaURL, doc); err != nil {
			poolSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		poolSchema, poolSchemaErr = c.Compile(poolSchemaURL)
	})
	return poolSchema, poolSchemaErr
}
