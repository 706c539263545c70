package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"krisenkanon/internal/content"
	"krisenkanon/pkg/models"
	"krisenkanon/pkg/utils"
)

// validate-content runs the full corpus through schema validation plus
// the editorial checks: required bilingual text present, related slugs
// known, glossary terms actually referenced in the entry text.
func main() {
	cfg := utils.LoadContentConfig()
	crisesDir := flag.String("crises", cfg.CrisesDir, "crises content root")
	flag.Parse()

	docs, err := content.DiscoverDocuments(os.DirFS(*crisesDir))
	if err != nil {
		log.Fatalf("content discovery failed: %v", err)
	}

	known := make(map[string]bool)
	for _, doc := range docs {
		known[doc.Slug] = true
	}

	hasErrors := false
	for _, doc := range docs {
		if doc.DecodeErr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", doc.Path, doc.DecodeErr)
			hasErrors = true
			continue
		}

		result := content.ValidateManifest(doc.Raw)
		if !result.Valid {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "Validation errors in %s:\n", doc.Path)
			for _, e := range result.Errors {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", e.Path, e.Message)
			}
		}

		if !checkNonEmpty(doc) {
			hasErrors = true
		}
		if !checkRelated(doc, known) {
			hasErrors = true
		}
		checkGlossaryReferences(doc)
	}

	if hasErrors {
		fmt.Fprintln(os.Stderr, "Content validation failed.")
		os.Exit(1)
	}
	fmt.Println("All manifests valid.")
}

func checkNonEmpty(doc content.Document) bool {
	m := doc.Manifest
	ok := true

	fields := []struct {
		name  string
		value models.LocalizedString
	}{
		{"title", m.Title},
		{"summary", m.Summary},
		{"diagnosis", m.Diagnosis},
		{"mechanisms", m.Mechanisms},
	}
	for _, f := range fields {
		if f.value.De == "" || f.value.En == "" {
			fmt.Fprintf(os.Stderr, "[Empty] %s: %s missing text\n", doc.Path, f.name)
			ok = false
		}
	}

	if len(m.Signals) == 0 || len(m.Archetypes) == 0 || len(m.Glossary) == 0 {
		fmt.Fprintf(os.Stderr, "[Empty] %s: signals/archetypes/glossary must not be empty\n", doc.Path)
		ok = false
	}
	return ok
}

func checkRelated(doc content.Document, known map[string]bool) bool {
	var invalid []string
	for _, slug := range doc.Manifest.Related {
		if !known[slug] {
			invalid = append(invalid, slug)
		}
	}
	if len(invalid) > 0 {
		fmt.Fprintf(os.Stderr, "[Related] %s: unknown slugs %s\n", doc.Path, strings.Join(invalid, ", "))
		return false
	}
	return true
}

// checkGlossaryReferences warns (never fails) when a defined term does
// not occur anywhere in the entry's text. Best effort by substring.
func checkGlossaryReferences(doc content.Document) {
	m := doc.Manifest

	var parts []string
	for _, s := range []models.LocalizedString{m.Title, m.Summary, m.Diagnosis, m.Mechanisms} {
		parts = append(parts, s.De, s.En)
	}
	for _, sig := range m.Signals {
		parts = append(parts, sig.Label.De, sig.Label.En, sig.Value, sig.Source)
	}
	for _, qa := range m.QA {
		parts = append(parts, qa.Question.De, qa.Question.En, qa.Answer.De, qa.Answer.En)
	}
	text := strings.ToLower(strings.Join(parts, " "))

	for _, g := range m.Glossary {
		if !strings.Contains(text, strings.ToLower(g.Term)) {
			fmt.Fprintf(os.Stderr, "[Glossary] %s: term '%s' not referenced in content (best-effort)\n", doc.Path, g.Term)
		}
	}
}
