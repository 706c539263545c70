package content

import (
	"testing"

	"github.com/stretchr/testify/require"

	"krisenkanon/pkg/models"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"matter":                 models.CategoryMaterie,
		"Materie":                models.CategoryMaterie,
		"MATERIE":                models.CategoryMaterie,
		"existence":              models.CategoryExistenz,
		"power":                  models.CategoryMacht,
		"control":                models.CategoryKontrolle,
		"Kontrolle":              models.CategoryKontrolle,
		"affect":                 models.CategoryGefuehl,
		"gefuehl":                models.CategoryGefuehl,
		"Gefühl":                 models.CategoryGefuehl,
		"systemic fragility":     models.CategoryFragility,
		"Systemische Fragilität": models.CategoryFragility,
	}
	for raw, want := range cases {
		require.Equal(t, want, NormalizeCategory(raw), "raw %q", raw)
	}
}

func TestNormalizeCategory_UnknownPassesThrough(t *testing.T) {
	require.Equal(t, "Quantum Weirdness", NormalizeCategory("Quantum Weirdness"))
	require.Equal(t, "", NormalizeCategory(""))
}

func TestNormalizeCategories_ReportsPassthrough(t *testing.T) {
	normalized, passthrough := NormalizeCategories([]string{"Matter", "Experimental", "control"})
	require.Equal(t, []string{models.CategoryMaterie, "Experimental", models.CategoryKontrolle}, normalized)
	require.Equal(t, []string{"Experimental"}, passthrough)
}
