package content

import "krisenkanon/pkg/models"

// ProjectIndexItem flattens a registry record into its single-language
// list view. Pure; absent fields fall back to empty/zero, never error.
func ProjectIndexItem(record *models.Record, lang models.Language) models.IndexItem {
	m := record.Manifest
	categories := make([]string, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, NormalizeCategory(c))
	}

	return models.IndexItem{
		Slug:           m.Slug,
		ID:             m.ID,
		Title:          m.Title.Pick(lang),
		Summary:        m.Summary.Pick(lang),
		Categories:     categories,
		Tags:           m.Tags,
		Severity:       m.Severity,
		Volatility:     m.Volatility,
		TimeHorizon:    m.TimeHorizon,
		LastUpdatedISO: m.LastUpdatedISO,
		Version:        m.Version,
		Status:         m.Status,
		SystemicLoad:   m.SystemicLoad,
	}
}
