package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func rawDoc(t *testing.T, m any) map[string]any {
	t.Helper()
	data, err := json.Marshal(m)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	return raw
}

func TestValidateManifest_ValidDocument(t *testing.T) {
	result := ValidateManifest(rawDoc(t, validManifest("klima")))
	require.True(t, result.Valid, "unexpected errors: %v", result.Errors)
	require.Empty(t, result.Errors)
}

func TestValidateManifest_MissingSeverity(t *testing.T) {
	raw := rawDoc(t, validManifest("klima"))
	delete(raw, "severity")

	result := ValidateManifest(raw)
	require.False(t, result.Valid)

	var paths []string
	for _, e := range result.Errors {
		paths = append(paths, e.Path)
	}
	require.Contains(t, paths, "/severity")
}

func TestValidateManifest_NestedArrayPath(t *testing.T) {
	raw := rawDoc(t, validManifest("klima"))
	raw["signals"] = []any{
		map[string]any{"label": map[string]any{"de": "ok", "en": "ok"}, "value": "1%"},
		map[string]any{"label": map[string]any{"de": "ok", "en": "ok"}},          // value missing
		map[string]any{"label": map[string]any{"de": "ok", "en": "ok"}, "value": 3}, // wrong type
	}

	result := ValidateManifest(raw)
	require.False(t, result.Valid)

	byPath := make(map[string]string)
	for _, e := range result.Errors {
		byPath[e.Path] = e.Message
	}
	require.Contains(t, byPath, "/signals/1/value")
	require.Contains(t, byPath, "/signals/2/value")
}

func TestValidateManifest_EnumViolations(t *testing.T) {
	raw := rawDoc(t, validManifest("klima"))
	raw["timeHorizon"] = "someday"
	raw["status"] = "published"

	result := ValidateManifest(raw)
	require.False(t, result.Valid)

	var paths []string
	for _, e := range result.Errors {
		paths = append(paths, e.Path)
	}
	require.Contains(t, paths, "/timeHorizon")
	require.Contains(t, paths, "/status")
}

func TestValidateManifest_EmptyCategories(t *testing.T) {
	raw := rawDoc(t, validManifest("klima"))
	raw["categories"] = []any{}

	result := ValidateManifest(raw)
	require.False(t, result.Valid)
	require.Equal(t, "/categories", result.Errors[0].Path)
}

func TestValidateManifest_UnknownFieldsTolerated(t *testing.T) {
	raw := rawDoc(t, validManifest("klima"))
	raw["futureField"] = map[string]any{"anything": true}

	result := ValidateManifest(raw)
	require.True(t, result.Valid)
}

func TestValidateManifest_PartialLocalizedTolerated(t *testing.T) {
	raw := rawDoc(t, validManifest("klima"))
	raw["summary"] = map[string]any{"de": "nur deutsch"}

	result := ValidateManifest(raw)
	require.True(t, result.Valid, "missing language variants fall back, they are not schema errors: %v", result.Errors)
}

func TestValidateManifest_NeverPanicsOnGarbage(t *testing.T) {
	result := ValidateManifest(map[string]any{
		"id":         12,
		"title":      "not localized",
		"categories": "not an array",
		"signals":    []any{"not an object"},
	})
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
}
