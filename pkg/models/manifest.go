package models

// Language selects one of the two authored content languages.
type Language string

const (
	LangDE Language = "de"
	LangEN Language = "en"
)

// Languages lists every supported content language in discovery order.
var Languages = []Language{LangDE, LangEN}

// LocalizedString carries the German and English variants of a text field.
// Either side may be empty; readers resolve via the de -> en fallback chain.
type LocalizedString struct {
	De string `json:"de"`
	En string `json:"en"`
}

// Pick resolves the value for the requested language, falling back to
// German, then English, then the empty string.
func (l LocalizedString) Pick(lang Language) string {
	if lang == LangEN && l.En != "" {
		return l.En
	}
	if l.De != "" {
		return l.De
	}
	return l.En
}

type TimeHorizon string

const (
	HorizonImmediate TimeHorizon = "immediate"
	HorizonMid       TimeHorizon = "mid"
	HorizonLong      TimeHorizon = "long"
)

// Status governs whether automated regeneration may overwrite an entry.
type Status string

const (
	StatusMissing Status = "missing"
	StatusDraft   Status = "draft"
	StatusLocked  Status = "locked"
)

type Signal struct {
	Label  LocalizedString `json:"label"`
	Value  string          `json:"value"`
	Source string          `json:"source,omitempty"`
}

type Archetype struct {
	Name        LocalizedString `json:"name"`
	Description LocalizedString `json:"description"`
}

// GlossaryEntry is a term defined inline by a single manifest. The
// consolidated cross-corpus catalog lives in CatalogEntry.
type GlossaryEntry struct {
	Term          string          `json:"term"`
	Definition    LocalizedString `json:"definition"`
	ArchetypeLink string          `json:"archetypeLink,omitempty"`
}

type QA struct {
	Question LocalizedString `json:"question"`
	Answer   LocalizedString `json:"answer"`
}

type Citation struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
	Note  string `json:"note,omitempty"`
}

type Media struct {
	Images []string `json:"images,omitempty"`
	Audio  []string `json:"audio,omitempty"`
	Video  []string `json:"video,omitempty"`
}

type TimelineItem struct {
	Year        string `json:"year"`
	Location    string `json:"location,omitempty"`
	Event       string `json:"event"`
	Description string `json:"description,omitempty"`
}

// GeneratedBy records provenance for tool-generated manifests.
type GeneratedBy struct {
	Provider       string `json:"provider"`
	Model          string `json:"model,omitempty"`
	Seed           string `json:"seed,omitempty"`
	GeneratedAtISO string `json:"generatedAtISO,omitempty"`
}

// Manifest is the canonical record for one crisis entry in one language.
// The slug is the stable join key across languages and relation lists.
type Manifest struct {
	ID                string          `json:"id"`
	Slug              string          `json:"slug"`
	Title             LocalizedString `json:"title"`
	Summary           LocalizedString `json:"summary"`
	Categories        []string        `json:"categories"`
	Tags              []string        `json:"tags"`
	Keywords          []string        `json:"keywords,omitempty"`
	QA                []QA            `json:"qa,omitempty"`
	Severity          int             `json:"severity"`
	Volatility        int             `json:"volatility"`
	TimeHorizon       TimeHorizon     `json:"timeHorizon"`
	Signals           []Signal        `json:"signals"`
	Diagnosis         LocalizedString `json:"diagnosis"`
	Mechanisms        LocalizedString `json:"mechanisms"`
	Archetypes        []Archetype     `json:"archetypes"`
	Glossary          []GlossaryEntry `json:"glossary"`
	Triggers          []string        `json:"triggers,omitempty"`
	Related           []string        `json:"related"`
	LastUpdatedISO    string          `json:"lastUpdatedISO"`
	Version           string          `json:"version"`
	CriticalThreshold string          `json:"criticalThreshold,omitempty"`
	Status            Status          `json:"status"`
	GeneratedBy       GeneratedBy     `json:"generatedBy"`
	EditNotes         []string        `json:"editNotes,omitempty"`
	LockReason        string          `json:"lockReason,omitempty"`
	Citations         []Citation      `json:"citations,omitempty"`
	Media             *Media          `json:"media,omitempty"`
	SystemicLoad      *int            `json:"systemicLoad,omitempty"`
	Timeline          []TimelineItem  `json:"timeline,omitempty"`
}

// ValidationError is one field-level schema finding.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Record is a manifest as held by the registry: slug + language + the
// normalized manifest, plus any schema findings. An invalid manifest is
// still registered so the index stays browsable.
type Record struct {
	Slug             string            `json:"slug"`
	Lang             Language          `json:"lang"`
	Manifest         Manifest          `json:"manifest"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
}

// ValidationIssue is the per-document error bundle surfaced to consumers.
type ValidationIssue struct {
	Slug   string            `json:"slug"`
	Lang   Language          `json:"lang"`
	Errors []ValidationError `json:"errors"`
}

// IndexItem is the flattened, single-language projection of a manifest
// for list and grid views. Always derived, never persisted.
type IndexItem struct {
	Slug           string      `json:"slug"`
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Summary        string      `json:"summary"`
	Categories     []string    `json:"categories"`
	Tags           []string    `json:"tags"`
	Severity       int         `json:"severity"`
	Volatility     int         `json:"volatility"`
	TimeHorizon    TimeHorizon `json:"timeHorizon"`
	LastUpdatedISO string      `json:"lastUpdatedISO"`
	Version        string      `json:"version"`
	Status         Status      `json:"status"`
	SystemicLoad   *int        `json:"systemicLoad,omitempty"`
}

// CascadeEntry is one resolved trigger target for detail-view rendering.
type CascadeEntry struct {
	Slug       string          `json:"slug"`
	Title      LocalizedString `json:"title"`
	Severity   int             `json:"severity"`
	Categories []string        `json:"categories"`
	Summary    LocalizedString `json:"summary"`
}
