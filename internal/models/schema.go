package models

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	// jsonschema validates untyped JSON documents against a JSON Schema before we decode them
	// into Go structs. The Go type system already guarantees field types for records built in
	// code; the schema gives the same guarantee for records built from raw JSON.
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrSchemaViolation is returned when a record cannot be constructed because a field is
// missing, has the wrong type, or is not part of the record shape.
var ErrSchemaViolation = errors.New("schema violation")

//go:embed schemas/match.schema.json
var matchSchemaSource string

//go:embed schemas/player.schema.json
var playerSchemaSource string

// The schemas are compiled once at package initialisation. They are embedded in the binary,
// so a compile failure is a programming error and panics at startup.
var (
	matchSchema  = mustCompile("match.schema.json", matchSchemaSource)
	playerSchema = mustCompile("player.schema.json", playerSchemaSource)
)

func mustCompile(name, source string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(source)); err != nil {
		panic(fmt.Sprintf("models: invalid schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("models: invalid schema %s: %v", name, err))
	}
	return schema
}

// DecodeMatch builds a Match from a JSON document.
// Returns an error wrapping ErrSchemaViolation if the document does not match the Match shape.
func DecodeMatch(data []byte) (Match, error) {
	var m Match
	if err := decode(matchSchema, "match", data, &m); err != nil {
		return Match{}, err
	}
	return m, nil
}

// DecodePlayer builds a Player from a JSON document.
// Returns an error wrapping ErrSchemaViolation if the document does not match the Player shape.
func DecodePlayer(data []byte) (Player, error) {
	var p Player
	if err := decode(playerSchema, "player", data, &p); err != nil {
		return Player{}, err
	}
	return p, nil
}

// decode validates data against schema, then unmarshals it into out.
func decode(schema *jsonschema.Schema, kind string, data []byte, out any) error {
	// jsonschema/v5 validates numbers in their json.Number form.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %s: invalid JSON: %v", ErrSchemaViolation, kind, err)
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w: %s: %s", ErrSchemaViolation, kind, strings.Join(violations(verr), "; "))
		}
		return fmt.Errorf("%w: %s: %v", ErrSchemaViolation, kind, err)
	}

	// The schema has already checked the shape; this can still fail for values such as 25.0,
	// which JSON Schema counts as an integer but encoding/json will not put into an int.
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaViolation, kind, err)
	}
	return nil
}

// violations flattens a validation error tree into "location: message" strings,
// keeping only the leaves (the causes that actually explain the failure).
func violations(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{loc + ": " + err.Message}
	}

	var out []string
	for _, cause := range err.Causes {
		out = append(out, violations(cause)...)
	}
	return out
}
