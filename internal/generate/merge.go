package generate

import "krisenkanon/pkg/models"

func mergeLocalized(incoming, existing models.LocalizedString) models.LocalizedString {
	out := existing
	if out.De == "" {
		out.De = incoming.De
	}
	if out.En == "" {
		out.En = incoming.En
	}
	return out
}

// MergeManifest fills the gaps of an existing manifest from a freshly
// generated one. Authored content always wins: generated values only
// land where the existing manifest is empty. Used by --fill-missing.
func MergeManifest(incoming, existing models.Manifest) models.Manifest {
	out := existing

	out.Title = mergeLocalized(incoming.Title, existing.Title)
	out.Summary = mergeLocalized(incoming.Summary, existing.Summary)
	out.Diagnosis = mergeLocalized(incoming.Diagnosis, existing.Diagnosis)
	out.Mechanisms = mergeLocalized(incoming.Mechanisms, existing.Mechanisms)

	if len(existing.Categories) == 0 {
		out.Categories = incoming.Categories
	}
	if len(existing.Tags) == 0 {
		out.Tags = incoming.Tags
	}
	if existing.Severity == 0 {
		out.Severity = incoming.Severity
	}
	if existing.Volatility == 0 {
		out.Volatility = incoming.Volatility
	}
	if existing.TimeHorizon == "" {
		out.TimeHorizon = incoming.TimeHorizon
	}
	if len(existing.Signals) == 0 {
		out.Signals = incoming.Signals
	}
	if len(existing.Archetypes) == 0 {
		out.Archetypes = incoming.Archetypes
	}
	if len(existing.Glossary) == 0 {
		out.Glossary = incoming.Glossary
	}
	if existing.Related == nil {
		out.Related = incoming.Related
	}
	if existing.LastUpdatedISO == "" {
		out.LastUpdatedISO = incoming.LastUpdatedISO
	}
	if existing.Version == "" {
		out.Version = incoming.Version
	}
	if existing.Status == "" {
		out.Status = models.StatusDraft
	}
	if existing.GeneratedBy.Provider == "" {
		out.GeneratedBy = incoming.GeneratedBy
	}
	if len(existing.Citations) == 0 {
		out.Citations = incoming.Citations
	}
	if existing.Media == nil {
		out.Media = incoming.Media
	}
	return out
}
