package glossary

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"krisenkanon/internal/content"
	"krisenkanon/pkg/models"
)

// Consolidator merges glossary entries from every manifest plus any
// standalone glossary documents into one deduplicated catalog. Terms are
// keyed case-insensitively after trimming; per language the longer
// definition wins (ties keep the existing one); references are unioned
// in first-seen order so reruns over the same inputs are byte-stable.
type Consolidator struct {
	byKey    map[string]*models.CatalogEntry
	order    []string
	warnings []string
}

func NewConsolidator() *Consolidator {
	return &Consolidator{byKey: make(map[string]*models.CatalogEntry)}
}

// AddManifest feeds every embedded glossary entry of one manifest,
// using the entry folder slug as the reference id.
func (c *Consolidator) AddManifest(slug string, m models.Manifest) {
	for _, entry := range m.Glossary {
		c.add(slug, entry)
	}
}

// AddStandalone feeds entries from a standalone glossary document,
// using the file id as the reference id.
func (c *Consolidator) AddStandalone(id string, entries []models.GlossaryEntry) {
	for _, entry := range entries {
		c.add(id, entry)
	}
}

func (c *Consolidator) add(ref string, entry models.GlossaryEntry) {
	key := strings.ToLower(strings.TrimSpace(entry.Term))
	if key == "" {
		return
	}

	definition := models.LocalizedString{
		De: strings.TrimSpace(entry.Definition.De),
		En: strings.TrimSpace(entry.Definition.En),
	}
	if definition.De == "" {
		c.warnings = append(c.warnings, fmt.Sprintf("Missing German definition for '%s' in %s", entry.Term, ref))
	}
	if definition.En == "" {
		c.warnings = append(c.warnings, fmt.Sprintf("Missing English definition for '%s' in %s", entry.Term, ref))
	}

	existing, ok := c.byKey[key]
	if !ok {
		// first occurrence keeps its original casing
		c.byKey[key] = &models.CatalogEntry{
			Term:       entry.Term,
			Definition: definition,
			References: []string{ref},
		}
		c.order = append(c.order, key)
		return
	}

	// longer definition assumed more complete; a heuristic, kept on purpose
	if len(definition.De) > len(existing.Definition.De) {
		existing.Definition.De = definition.De
	}
	if len(definition.En) > len(existing.Definition.En) {
		existing.Definition.En = definition.En
	}
	if !containsString(existing.References, ref) {
		existing.References = append(existing.References, ref)
	}
}

func containsString(slice []string, v string) bool {
	for _, x := range slice {
		if x == v {
			return true
		}
	}
	return false
}

// Warnings returns the non-fatal findings accumulated so far.
func (c *Consolidator) Warnings() []string {
	return c.warnings
}

// Catalog returns the merged entries sorted with German collation
// (ä/ö/ü near their base letters, case-insensitive), stamped with the
// given generation time. The stamp is injected so the merge output
// itself stays reproducible.
func (c *Consolidator) Catalog(generatedAt string) models.GlossaryCatalog {
	terms := make([]models.CatalogEntry, 0, len(c.order))
	for _, key := range c.order {
		terms = append(terms, *c.byKey[key])
	}

	collator := collate.New(language.German, collate.Loose)
	sort.SliceStable(terms, func(i, j int) bool {
		return collator.CompareString(terms[i].Term, terms[j].Term) < 0
	})

	return models.GlossaryCatalog{
		GeneratedAt: generatedAt,
		Count:       len(terms),
		Terms:       terms,
	}
}

// ScanContent feeds every parseable manifest under the crises root.
// A malformed document is logged and skipped; it never aborts the run.
func (c *Consolidator) ScanContent(fsys fs.FS) error {
	docs, err := content.DiscoverDocuments(fsys)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if doc.DecodeErr != nil {
			log.Printf("[glossary] could not parse %s: %v", doc.Path, doc.DecodeErr)
			continue
		}
		c.AddManifest(doc.Slug, doc.Manifest)
	}
	return nil
}

// ScanStandalone feeds every *.json document in the standalone glossary
// directory. Each file holds an array of glossary entries; the file
// basename (without extension) becomes the reference id.
func (c *Consolidator) ScanStandalone(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("read glossary dir: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			log.Printf("[glossary] could not read %s: %v", name, err)
			continue
		}
		var parsed []models.GlossaryEntry
		if err := json.Unmarshal(data, &parsed); err != nil {
			log.Printf("[glossary] could not parse %s: %v", name, err)
			continue
		}
		c.AddStandalone(strings.TrimSuffix(name, ".json"), parsed)
	}
	return nil
}
