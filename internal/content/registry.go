package content

import (
	"fmt"
	"log"
	"sort"

	"krisenkanon/pkg/models"
)

// Registry owns every manifest record, keyed by slug then language.
// It is built once from the discovered corpus and read-only afterwards;
// a redeploy rebuilds it wholesale.
type Registry struct {
	records map[string]map[models.Language]*models.Record
	issues  []models.ValidationIssue
	version string
}

// Load builds the full registry from the discovered documents. Every
// document is validated and category-normalized; the record is stored
// regardless of validity so the index stays browsable, with schema
// findings accumulated as validation issues.
func Load(docs []Document) *Registry {
	r := &Registry{records: make(map[string]map[models.Language]*models.Record)}

	for _, doc := range docs {
		if doc.DecodeErr != nil {
			log.Printf("[registry] skipping %s: %v", doc.Path, doc.DecodeErr)
			r.issues = append(r.issues, models.ValidationIssue{
				Slug: doc.Slug,
				Lang: doc.Lang,
				Errors: []models.ValidationError{
					{Path: "", Message: fmt.Sprintf("invalid JSON: %v", doc.DecodeErr)},
				},
			})
			continue
		}

		manifest := doc.Manifest
		normalized, passthrough := NormalizeCategories(manifest.Categories)
		manifest.Categories = normalized
		for _, raw := range passthrough {
			log.Printf("[registry] %s: unrecognized category %q kept as-is", doc.Path, raw)
		}

		result := ValidateManifest(doc.Raw)
		record := &models.Record{
			Slug:     doc.Slug,
			Lang:     doc.Lang,
			Manifest: manifest,
		}
		if !result.Valid {
			record.ValidationErrors = result.Errors
			r.issues = append(r.issues, models.ValidationIssue{
				Slug:   doc.Slug,
				Lang:   doc.Lang,
				Errors: result.Errors,
			})
		}

		if r.records[doc.Slug] == nil {
			r.records[doc.Slug] = make(map[models.Language]*models.Record)
		}
		r.records[doc.Slug][doc.Lang] = record
	}

	r.version = r.computeVersion()
	return r
}

func (r *Registry) computeVersion() string {
	var tokens []string
	for _, localized := range r.records {
		for _, record := range localized {
			m := record.Manifest
			tokens = append(tokens, fmt.Sprintf("%s@%s-%s", m.Slug, m.Version, m.LastUpdatedISO))
		}
	}
	return Fingerprint(tokens, len(r.records))
}

// Get returns the record for slug in the requested language, falling
// back to German, then English, then nil when the slug is wholly absent.
func (r *Registry) Get(slug string, lang models.Language) *models.Record {
	localized, ok := r.records[slug]
	if !ok {
		return nil
	}
	if record, ok := localized[lang]; ok {
		return record
	}
	if record, ok := localized[models.LangDE]; ok {
		return record
	}
	if record, ok := localized[models.LangEN]; ok {
		return record
	}
	return nil
}

// AllSlugs returns every known slug in stable lexicographic order.
func (r *Registry) AllSlugs() []string {
	slugs := make([]string, 0, len(r.records))
	for slug := range r.records {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// All returns the language-resolved index items for the whole corpus,
// sorted by slug.
func (r *Registry) All(lang models.Language) []models.IndexItem {
	items := make([]models.IndexItem, 0, len(r.records))
	for slug := range r.records {
		if record := r.Get(slug, lang); record != nil {
			items = append(items, ProjectIndexItem(record, lang))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Slug < items[j].Slug })
	return items
}

// ManifestMap returns one manifest per slug, preferring the German
// variant.
func (r *Registry) ManifestMap() map[string]models.Manifest {
	out := make(map[string]models.Manifest, len(r.records))
	for slug, localized := range r.records {
		if record, ok := localized[models.LangDE]; ok {
			out[slug] = record.Manifest
			continue
		}
		if record, ok := localized[models.LangEN]; ok {
			out[slug] = record.Manifest
		}
	}
	return out
}

// ValidationIssues returns every schema finding accumulated at load.
func (r *Registry) ValidationIssues() []models.ValidationIssue {
	return r.issues
}

// ContentVersion returns the corpus fingerprint computed at load.
func (r *Registry) ContentVersion() string { return r.version }

// Count returns the number of known slugs.
func (r *Registry) Count() int { return len(r.records) }
