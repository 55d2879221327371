package content

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/ziyadedher/skrish/internal/errors"
)

// Schema renders the machine-readable authoring schema for the
// definitions document. Required fields and constraints come from the
// jsonschema tags on the document types, so the schema can never drift
// from what the loader accepts.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.ReflectFromType(reflect.TypeOf(Document{}))
	if schema == nil {
		return nil, errors.Internal("failed to reflect definitions schema")
	}
	schema.Title = "Content Definitions"
	schema.Description = "Monster and item definitions consumed by the engine's level populator."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to marshal definitions schema")
	}
	return append(data, '\n'), nil
}
