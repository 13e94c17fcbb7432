package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSchema(t *testing.T) {
	for _, kind := range []string{"profile", "tuning"} {
		t.Run(kind, func(t *testing.T) {
			schema, err := buildSchema(kind)
			require.NoError(t, err)
			assert.NotEmpty(t, schema.Title)

			data, err := json.Marshal(schema)
			require.NoError(t, err)
			assert.Contains(t, string(data), "properties")
		})
	}

	_, err := buildSchema("inventory")
	assert.Error(t, err)
}

func TestWriteSchema(t *testing.T) {
	schema, err := buildSchema("profile")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "schema", "profile.json")
	require.NoError(t, writeSchema(out, schema))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Save Profile", doc["title"])
	assert.Contains(t, string(data), `"health"`)

	_, err = os.Stat(out + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
