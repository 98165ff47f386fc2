package config

import "github.com/invopop/jsonschema"

// Schema generates a JSON Schema document for Request, for the `gridplanner schema` CLI command.
// It lets a caller validate a request file against the expected shape before ever invoking the
// planner.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	return reflector.Reflect(&Request{})
}
