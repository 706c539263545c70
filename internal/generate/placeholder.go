package generate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"krisenkanon/pkg/models"
)

// Placeholder is the offline provider: a deterministic seed-driven
// manifest skeleton that authors fill in later. The same slug and seed
// always produce the same manifest.
type Placeholder struct{}

func (Placeholder) Name() string { return "none" }

var placeholderCategories = []string{
	models.CategoryMaterie,
	models.CategoryExistenz,
	models.CategoryMacht,
	models.CategoryKontrolle,
	models.CategoryGefuehl,
}

var placeholderHorizons = []models.TimeHorizon{
	models.HorizonImmediate,
	models.HorizonMid,
	models.HorizonLong,
}

func numericSeed(input string) uint32 {
	if input == "" {
		input = "seed"
	}
	var hash uint32
	for _, b := range []byte(input) {
		hash = hash*31 + uint32(b)
	}
	return hash
}

// DeterministicValue runs one LCG step over the string seed and folds it
// into [0, modulus).
func DeterministicValue(seed string, modulus uint32) uint32 {
	const (
		a = 1103515245
		c = 12345
		m = 1 << 31
	)
	next := (uint64(a)*uint64(numericSeed(seed)) + c) % m
	return uint32(next % uint64(modulus))
}

func localized(de, en string) models.LocalizedString {
	if en == "" {
		en = de
	}
	return models.LocalizedString{De: de, En: en}
}

// Generate produces the deterministic placeholder manifest.
func (Placeholder) Generate(_ context.Context, gen Context) (models.Manifest, error) {
	seed := gen.Seed
	if seed == "" {
		seed = gen.Slug
	}
	base := DeterministicValue(seed, 97)

	category := placeholderCategories[base%uint32(len(placeholderCategories))]
	severity := 40 + int(base%50)
	volatility := 30 + int((base*3)%60)
	horizon := placeholderHorizons[base%uint32(len(placeholderHorizons))]
	day := int(base%28) + 1
	isoDate := time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02T15:04:05.000Z")

	spaced := strings.ReplaceAll(gen.Slug, "-", " ")

	return models.Manifest{
		ID:    gen.Slug,
		Slug:  gen.Slug,
		Title: localized(strings.ToUpper(spaced), spaced),
		Summary: localized(
			fmt.Sprintf("%s zeigt eine strukturelle Störung in %s.", gen.Slug, category),
			fmt.Sprintf("%s exposes a structural disturbance in %s.", gen.Slug, category),
		),
		Categories:  []string{category},
		Tags:        []string{fmt.Sprintf("seed-%d", base), strings.ToLower(category), "placeholder"},
		Severity:    severity,
		Volatility:  volatility,
		TimeHorizon: horizon,
		Signals: []models.Signal{
			{Label: localized("Basis-Signal", "Baseline signal"), Value: fmt.Sprintf("%d%%", 50+int(base%30))},
			{Label: localized("Drift", "Drift"), Value: fmt.Sprintf("%dσ", base%9)},
		},
		Diagnosis: localized(
			"Deterministische Platzhalterdiagnose. Struktur bleibt ausfüllbar.",
			"Deterministic placeholder diagnosis. Structure remains fillable.",
		),
		Mechanisms: localized(
			"Mechanismus folgt einem einfachen Seed-Generator; ersetzt später echte Beobachtungen.",
			"Mechanism follows a simple seed generator; replace with real observation later.",
		),
		Archetypes: []models.Archetype{
			{
				Name: localized("Attraktor", "Attractor"),
				Description: localized(
					"Reduziert Vielschichtigkeit auf einen stabilen Punkt.",
					"Reduces complexity to a stable point.",
				),
			},
			{
				Name: localized("Driftzone", "Drift Zone"),
				Description: localized(
					"Langsamer Parameter-Shift ohne sofortigen Alarm.",
					"Slow parameter shift without immediate alarm.",
				),
			},
		},
		Glossary: []models.GlossaryEntry{
			{Term: "Placeholder", Definition: localized("Temporärer Füllwert.", "Temporary fill value.")},
			{Term: "Seed", Definition: localized("Deterministischer Startwert.", "Deterministic starting value.")},
		},
		Related:        []string{},
		LastUpdatedISO: isoDate,
		Version:        "0.1.0",
		Status:         models.StatusDraft,
		Citations:      []models.Citation{{Label: "Local generator"}},
		Media:          &models.Media{},
	}, nil
}
