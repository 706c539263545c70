package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"krisenkanon/pkg/models"
)

func TestRegistry_LanguageFallback(t *testing.T) {
	onlyGerman := validManifest("saatgut")
	registry := Load([]Document{docFor(t, "saatgut", models.LangDE, onlyGerman)})

	record := registry.Get("saatgut", models.LangEN)
	require.NotNil(t, record, "German-only entry must resolve for English requests")
	require.Equal(t, models.LangDE, record.Lang)

	require.Nil(t, registry.Get("nie-geschrieben", models.LangDE))
}

func TestRegistry_AllSlugsSorted(t *testing.T) {
	registry := Load([]Document{
		docFor(t, "zerfall", models.LangDE, validManifest("zerfall")),
		docFor(t, "abraum", models.LangDE, validManifest("abraum")),
		docFor(t, "mitte", models.LangDE, validManifest("mitte")),
	})
	require.Equal(t, []string{"abraum", "mitte", "zerfall"}, registry.AllSlugs())
}

func TestRegistry_AllProjectsAndSorts(t *testing.T) {
	m1 := validManifest("b-krise")
	m2 := validManifest("a-krise")
	m2.Title = models.LocalizedString{De: "Deutsch", En: ""}

	registry := Load([]Document{
		docFor(t, "b-krise", models.LangDE, m1),
		docFor(t, "a-krise", models.LangEN, m2),
	})

	items := registry.All(models.LangEN)
	require.Len(t, items, 2)
	require.Equal(t, "a-krise", items[0].Slug)
	require.Equal(t, "b-krise", items[1].Slug)
	// missing English title falls back to German
	require.Equal(t, "Deutsch", items[0].Title)
}

func TestRegistry_RawCategorySynonymNormalized(t *testing.T) {
	m := validManifest("rohstoffe")
	m.Categories = []string{"Matter"}

	registry := Load([]Document{docFor(t, "rohstoffe", models.LangEN, m)})

	items := registry.All(models.LangEN)
	require.Len(t, items, 1)
	require.Equal(t, []string{models.CategoryMaterie}, items[0].Categories)

	record := registry.Get("rohstoffe", models.LangEN)
	require.Equal(t, []string{models.CategoryMaterie}, record.Manifest.Categories)
}

func TestRegistry_CategoriesCanonicalOrPassthrough(t *testing.T) {
	m := validManifest("experiment")
	m.Categories = []string{"power", "Brandneu"}

	registry := Load([]Document{docFor(t, "experiment", models.LangDE, m)})
	record := registry.Get("experiment", models.LangDE)

	for _, c := range record.Manifest.Categories {
		if !models.IsCanonicalCategory(c) {
			require.Equal(t, "Brandneu", c, "only the original unrecognized token may pass through")
		}
	}
}

func TestRegistry_InvalidManifestStillRegistered(t *testing.T) {
	m := validManifest("kaputt")
	doc := docFor(t, "kaputt", models.LangDE, m)
	delete(doc.Raw, "severity")

	registry := Load([]Document{doc})

	record := registry.Get("kaputt", models.LangDE)
	require.NotNil(t, record, "schema failure must not evict the record")
	require.NotEmpty(t, record.ValidationErrors)

	issues := registry.ValidationIssues()
	require.Len(t, issues, 1)
	require.Equal(t, "kaputt", issues[0].Slug)
	require.Equal(t, models.LangDE, issues[0].Lang)

	var paths []string
	for _, e := range issues[0].Errors {
		paths = append(paths, e.Path)
	}
	require.Contains(t, paths, "/severity")
}

func TestRegistry_UnparseableDocumentSkipped(t *testing.T) {
	broken := Document{
		Slug:      "defekt",
		Lang:      models.LangDE,
		Path:      "defekt/manifest.de.json",
		DecodeErr: errors.New("parse defekt/manifest.de.json: unexpected end of JSON input"),
	}
	registry := Load([]Document{
		broken,
		docFor(t, "intakt", models.LangDE, validManifest("intakt")),
	})

	require.Nil(t, registry.Get("defekt", models.LangDE))
	require.NotNil(t, registry.Get("intakt", models.LangDE))
	require.Len(t, registry.ValidationIssues(), 1)
	require.Equal(t, 1, registry.Count())
}

func TestRegistry_ManifestMapPrefersGerman(t *testing.T) {
	de := validManifest("beides")
	de.Version = "de-version"
	en := validManifest("beides")
	en.Version = "en-version"

	registry := Load([]Document{
		docFor(t, "beides", models.LangEN, en),
		docFor(t, "beides", models.LangDE, de),
		docFor(t, "nur-englisch", models.LangEN, validManifest("nur-englisch")),
	})

	m := registry.ManifestMap()
	require.Equal(t, "de-version", m["beides"].Version)
	require.Contains(t, m, "nur-englisch")
}

func TestRegistry_ContentVersionStableAcrossLoadOrder(t *testing.T) {
	docs := []Document{
		docFor(t, "eins", models.LangDE, validManifest("eins")),
		docFor(t, "zwei", models.LangDE, validManifest("zwei")),
		docFor(t, "zwei", models.LangEN, validManifest("zwei")),
	}
	reversed := []Document{docs[2], docs[1], docs[0]}

	require.Equal(t, Load(docs).ContentVersion(), Load(reversed).ContentVersion())
}

func TestRegistry_ContentVersionChangesWithVersionBump(t *testing.T) {
	m := validManifest("eins")
	registry1 := Load([]Document{docFor(t, "eins", models.LangDE, m)})

	m.Version = "2.0.0"
	registry2 := Load([]Document{docFor(t, "eins", models.LangDE, m)})

	require.NotEqual(t, registry1.ContentVersion(), registry2.ContentVersion())
}
