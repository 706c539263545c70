package glossary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"krisenkanon/pkg/models"
)

// Catalog is the read-time view over the consolidated artifact, used as
// a fallback definition source when an entry's embedded glossary lacks a
// definition.
type Catalog struct {
	catalog models.GlossaryCatalog
	byKey   map[string]*models.CatalogEntry
}

// LoadCatalog reads the machine-maintained catalog artifact. A missing
// file is not an error condition for serving: callers get an empty
// catalog and every lookup misses.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newCatalog(models.GlossaryCatalog{}), nil
		}
		return nil, fmt.Errorf("read glossary catalog: %w", err)
	}

	var parsed models.GlossaryCatalog
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse glossary catalog: %w", err)
	}
	return newCatalog(parsed), nil
}

func newCatalog(parsed models.GlossaryCatalog) *Catalog {
	c := &Catalog{catalog: parsed, byKey: make(map[string]*models.CatalogEntry, len(parsed.Terms))}
	for i := range parsed.Terms {
		entry := &parsed.Terms[i]
		c.byKey[strings.ToLower(strings.TrimSpace(entry.Term))] = entry
	}
	return c
}

// Lookup returns the catalog entry for a term, matched case-insensitively.
func (c *Catalog) Lookup(term string) *models.CatalogEntry {
	return c.byKey[strings.ToLower(strings.TrimSpace(term))]
}

// Definition resolves a term's definition in the requested language via
// the usual fallback chain; empty when the term is unknown.
func (c *Catalog) Definition(term string, lang models.Language) string {
	entry := c.Lookup(term)
	if entry == nil {
		return ""
	}
	return entry.Definition.Pick(lang)
}

// All returns the full catalog in its collated order.
func (c *Catalog) All() models.GlossaryCatalog {
	return c.catalog
}

// WriteCatalog writes the consolidated artifact, creating the parent
// directory when needed. Output is indented and newline-terminated so
// reruns over identical inputs produce byte-identical files.
func WriteCatalog(path string, catalog models.GlossaryCatalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure catalog dir: %w", err)
	}
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal glossary catalog: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write glossary catalog: %w", err)
	}
	return nil
}
