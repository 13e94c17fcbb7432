package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/ugaemi/islet-server/internal/game"
	"github.com/ugaemi/islet-server/internal/profile"
)

func main() {
	var kind, outPath string
	flag.StringVar(&kind, "type", "profile", "schema to emit: profile or tuning")
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema (stdout if empty)")
	flag.Parse()

	schema, err := buildSchema(kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := writeSchema(outPath, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema(kind string) (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{ExpandedStruct: true}
	var schema *jsonschema.Schema
	switch kind {
	case "profile":
		reflector.AllowAdditionalProperties = true
		schema = reflector.Reflect(new(profile.SaveProfile))
		schema.Title = "Save Profile"
		schema.Description = "Persisted state of one save slot"
	case "tuning":
		schema = reflector.Reflect(new(game.Tuning))
		schema.Title = "Gameplay Tuning"
		schema.Description = "Validates the YAML file named by TUNING_FILE"
	default:
		return nil, fmt.Errorf("unknown schema type %q", kind)
	}
	return schema, nil
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
