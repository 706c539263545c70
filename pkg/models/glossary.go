package models

// CatalogEntry is one merged term in the consolidated glossary catalog.
// References lists every manifest slug / standalone file id that defined
// the term, deduplicated in first-seen order.
type CatalogEntry struct {
	Term       string          `json:"term"`
	Definition LocalizedString `json:"definition"`
	References []string        `json:"references"`
}

// GlossaryCatalog is the build artifact written by the consolidator and
// consumed at read time as a fallback definition source.
type GlossaryCatalog struct {
	GeneratedAt string         `json:"generatedAt"`
	Count       int            `json:"count"`
	Terms       []CatalogEntry `json:"terms"`
}
