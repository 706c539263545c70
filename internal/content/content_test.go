package content

import (
	"encoding/json"
	"testing"

	"krisenkanon/pkg/models"
)

// validManifest builds a minimal manifest that passes the schema.
func validManifest(slug string) models.Manifest {
	return models.Manifest{
		ID:   slug,
		Slug: slug,
		Title: models.LocalizedString{
			De: "Titel " + slug,
			En: "Title " + slug,
		},
		Summary: models.LocalizedString{
			De: "Zusammenfassung.",
			En: "Summary.",
		},
		Categories:  []string{models.CategoryMacht},
		Tags:        []string{"test"},
		Severity:    62,
		Volatility:  41,
		TimeHorizon: models.HorizonMid,
		Signals: []models.Signal{
			{Label: models.LocalizedString{De: "Signal", En: "Signal"}, Value: "12%"},
		},
		Diagnosis:  models.LocalizedString{De: "Diagnose.", En: "Diagnosis."},
		Mechanisms: models.LocalizedString{De: "Mechanismus.", En: "Mechanism."},
		Archetypes: []models.Archetype{
			{
				Name:        models.LocalizedString{De: "Attraktor", En: "Attractor"},
				Description: models.LocalizedString{De: "Beschreibung.", En: "Description."},
			},
		},
		Glossary: []models.GlossaryEntry{
			{Term: "Resilienz", Definition: models.LocalizedString{De: "Definition.", En: "Definition."}},
		},
		Related:        []string{},
		LastUpdatedISO: "2025-03-01T00:00:00.000Z",
		Version:        "1.0.0",
		Status:         models.StatusDraft,
		GeneratedBy:    models.GeneratedBy{Provider: "manual"},
	}
}

// docFor wraps a manifest as a discovered document the way the loader
// would produce it.
func docFor(t *testing.T, slug string, lang models.Language, m models.Manifest) Document {
	t.Helper()

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal manifest: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	return Document{Slug: slug, Lang: lang, Path: slug + "/manifest." + string(lang) + ".json", Raw: raw, Manifest: m}
}
