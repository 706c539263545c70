package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"krisenkanon/internal/content"
	"krisenkanon/pkg/models"
	"krisenkanon/pkg/utils"
)

const maxRelated = 6

// extend-related recomputes every entry's related list from tag and
// category overlap and rewrites whichever language files exist.
func main() {
	cfg := utils.LoadContentConfig()
	crisesDir := flag.String("crises", cfg.CrisesDir, "crises content root")
	flag.Parse()

	docs, err := content.DiscoverDocuments(os.DirFS(*crisesDir))
	if err != nil {
		log.Fatalf("content discovery failed: %v", err)
	}

	// one manifest per slug, German-preferring, for scoring
	manifests := make(map[string]models.Manifest)
	for _, doc := range docs {
		if doc.DecodeErr != nil {
			log.Printf("skipping %s: %v", doc.Path, doc.DecodeErr)
			continue
		}
		if _, seen := manifests[doc.Slug]; seen && doc.Lang != models.LangDE {
			continue
		}
		manifests[doc.Slug] = doc.Manifest
	}

	slugs := make([]string, 0, len(manifests))
	for slug := range manifests {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		related := topRelated(slug, manifests)

		for _, lang := range models.Languages {
			path := filepath.Join(*crisesDir, slug, fmt.Sprintf("manifest.%s.json", lang))
			if err := rewriteRelated(path, related); err != nil {
				if os.IsNotExist(err) {
					continue
				}
				log.Fatalf("update %s: %v", path, err)
			}
		}
		fmt.Printf("updated related for %s: %v\n", slug, related)
	}
}

// similarity weighs shared tags double against shared categories.
func similarity(a, b models.Manifest) int {
	score := 0
	for _, t := range a.Tags {
		for _, u := range b.Tags {
			if t == u {
				score += 2
				break
			}
		}
	}
	for _, c := range a.Categories {
		for _, d := range b.Categories {
			if c == d {
				score++
				break
			}
		}
	}
	return score
}

func topRelated(slug string, manifests map[string]models.Manifest) []string {
	type scored struct {
		slug  string
		score int
	}

	var candidates []scored
	for other, m := range manifests {
		if other == slug {
			continue
		}
		if s := similarity(manifests[slug], m); s > 0 {
			candidates = append(candidates, scored{slug: other, score: s})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].slug < candidates[j].slug
	})

	if len(candidates) > maxRelated {
		candidates = candidates[:maxRelated]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.slug)
	}
	return out
}

// rewriteRelated patches only the related member so the rest of the
// document keeps its authored form.
func rewriteRelated(path string, related []string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw["related"] = related

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	return os.WriteFile(path, out, 0o644)
}
