package content

import (
	"strings"

	"krisenkanon/pkg/models"
)

// categoryNormalization maps loosely-spelled and bilingual category
// tokens to the canonical closed set. Keys are lowercase.
var categoryNormalization = map[string]string{
	"materie":                models.CategoryMaterie,
	"matter":                 models.CategoryMaterie,
	"existenz":               models.CategoryExistenz,
	"existence":              models.CategoryExistenz,
	"macht":                  models.CategoryMacht,
	"power":                  models.CategoryMacht,
	"kontrolle":              models.CategoryKontrolle,
	"control":                models.CategoryKontrolle,
	"gefühl":                 models.CategoryGefuehl,
	"gefuehl":                models.CategoryGefuehl,
	"affect":                 models.CategoryGefuehl,
	"systemic fragility":     models.CategoryFragility,
	"systemische fragilität": models.CategoryFragility,
}

// NormalizeCategory maps a raw category token to its canonical tag.
// Unknown tokens are returned unchanged so experimental tags never break
// ingestion; callers may surface the passthrough as a soft warning.
func NormalizeCategory(raw string) string {
	if canonical, ok := categoryNormalization[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}

// NormalizeCategories maps every token in place-order and reports which
// raw tokens passed through unrecognized.
func NormalizeCategories(raw []string) (normalized []string, passthrough []string) {
	normalized = make([]string, 0, len(raw))
	for _, c := range raw {
		n := NormalizeCategory(c)
		if !models.IsCanonicalCategory(n) {
			passthrough = append(passthrough, c)
		}
		normalized = append(normalized, n)
	}
	return normalized, passthrough
}
