package content

import "krisenkanon/pkg/models"

// Related resolves the source manifest's related list into index items.
// Dangling slugs are silently dropped; the authored order is preserved.
func (r *Registry) Related(slug string, lang models.Language) []models.IndexItem {
	base := r.Get(slug, lang)
	if base == nil {
		return []models.IndexItem{}
	}

	items := make([]models.IndexItem, 0, len(base.Manifest.Related))
	for _, relatedSlug := range base.Manifest.Related {
		target := r.Get(relatedSlug, lang)
		if target == nil {
			continue // referenced entry not yet authored
		}
		items = append(items, ProjectIndexItem(target, lang))
	}
	return items
}

// Cascade resolves the source manifest's trigger list into cascade
// entries for detail-view rendering. One hop only; unresolved slugs are
// dropped without error.
func (r *Registry) Cascade(slug string) []models.CascadeEntry {
	base := r.Get(slug, models.LangDE)
	if base == nil {
		return []models.CascadeEntry{}
	}

	entries := make([]models.CascadeEntry, 0, len(base.Manifest.Triggers))
	for _, triggerSlug := range base.Manifest.Triggers {
		target := r.Get(triggerSlug, models.LangDE)
		if target == nil {
			continue
		}
		m := target.Manifest
		entries = append(entries, models.CascadeEntry{
			Slug:       triggerSlug,
			Title:      m.Title,
			Severity:   m.Severity,
			Categories: m.Categories,
			Summary:    m.Summary,
		})
	}
	return entries
}
