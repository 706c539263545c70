package models

// The six canonical category tags. Raw manifest values are mapped onto
// these by the normalizer; unrecognized tokens pass through unchanged.
const (
	CategoryMaterie   = "Materie"
	CategoryExistenz  = "Existenz"
	CategoryMacht     = "Macht"
	CategoryKontrolle = "Kontrolle"
	CategoryGefuehl   = "Gefühl"
	CategoryFragility = "Systemic Fragility"
)

// CategoryOrder is the display order used by index consumers.
var CategoryOrder = []string{
	CategoryMaterie,
	CategoryExistenz,
	CategoryMacht,
	CategoryKontrolle,
	CategoryGefuehl,
	CategoryFragility,
}

// CategoryLabels maps canonical tags to per-language display labels.
var CategoryLabels = map[Language]map[string]string{
	LangDE: {
		CategoryMaterie:   "Materie",
		CategoryExistenz:  "Existenz",
		CategoryMacht:     "Macht",
		CategoryKontrolle: "Kontrolle",
		CategoryGefuehl:   "Gefühl",
		CategoryFragility: "Systemische Fragilität",
	},
	LangEN: {
		CategoryMaterie:   "Matter",
		CategoryExistenz:  "Existence",
		CategoryMacht:     "Power",
		CategoryKontrolle: "Control",
		CategoryGefuehl:   "Affect",
		CategoryFragility: "Systemic Fragility",
	},
}

// IsCanonicalCategory reports whether tag is one of the six canonical tags.
func IsCanonicalCategory(tag string) bool {
	for _, c := range CategoryOrder {
		if c == tag {
			return true
		}
	}
	return false
}
