package glossary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"krisenkanon/pkg/models"
)

func TestCatalog_WriteThenLoadRoundTrip(t *testing.T) {
	c := NewConsolidator()
	c.AddStandalone("basis", []models.GlossaryEntry{
		entry("Kipppunkt", "Schwelle, ab der ein Umschlag unumkehrbar wird.", "Threshold past which a shift is irreversible."),
	})

	path := filepath.Join(t.TempDir(), "glossary", "catalog.json")
	require.NoError(t, WriteCatalog(path, c.Catalog("2025-03-01T00:00:00Z")))

	loaded, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.All().Count)
	require.Equal(t, "2025-03-01T00:00:00Z", loaded.All().GeneratedAt)

	found := loaded.Lookup("kipppunkt")
	require.NotNil(t, found)
	require.Equal(t, "Kipppunkt", found.Term)
}

func TestCatalog_WriteIsByteIdentical(t *testing.T) {
	catalog := models.GlossaryCatalog{
		GeneratedAt: "2025-03-01T00:00:00Z",
		Count:       1,
		Terms: []models.CatalogEntry{{
			Term:       "Drift",
			Definition: models.LocalizedString{De: "Langsame Verschiebung.", En: "Slow shift."},
			References: []string{"a-slug"},
		}},
	}

	dir := t.TempDir()
	p1 := filepath.Join(dir, "one.json")
	p2 := filepath.Join(dir, "two.json")
	require.NoError(t, WriteCatalog(p1, catalog))
	require.NoError(t, WriteCatalog(p2, catalog))

	b1, err := os.ReadFile(p1)
	require.NoError(t, err)
	b2, err := os.ReadFile(p2)
	require.NoError(t, err)
	require.Equal(t, b1, b2)
	require.Equal(t, byte('\n'), b1[len(b1)-1])
}

func TestCatalog_MissingFileIsEmptyNotError(t *testing.T) {
	loaded, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Equal(t, 0, loaded.All().Count)
	require.Nil(t, loaded.Lookup("anything"))
	require.Equal(t, "", loaded.Definition("anything", models.LangDE))
}

func TestCatalog_DefinitionFallsBackToGerman(t *testing.T) {
	loaded := newCatalog(models.GlossaryCatalog{
		Count: 1,
		Terms: []models.CatalogEntry{{
			Term:       "Attraktor",
			Definition: models.LocalizedString{De: "Zustand, zu dem ein System strebt."},
		}},
	})

	require.Equal(t, "Zustand, zu dem ein System strebt.", loaded.Definition("ATTRAKTOR", models.LangEN))
}
