package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"krisenkanon/internal/content"
	"krisenkanon/internal/generate"
	"krisenkanon/pkg/models"
	"krisenkanon/pkg/utils"
)

// generate-crisis writes deterministic placeholder manifests for a new
// entry, one per language. The on-disk status gates overwrites: locked
// entries refuse without --force, existing drafts are only touched with
// --fill-missing or --force.
func main() {
	cfg := utils.LoadContentConfig()
	var (
		crisesDir   = flag.String("crises", cfg.CrisesDir, "crises content root")
		seed        = flag.String("seed", "", "generation seed (defaults to slug)")
		force       = flag.Bool("force", false, "overwrite even locked entries")
		fillMissing = flag.Bool("fill-missing", false, "fill empty fields of an existing draft")
	)
	flag.Parse()

	slug := flag.Arg(0)
	if slug == "" {
		fmt.Fprintln(os.Stderr, "usage: generate-crisis [flags] <slug>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	entryDir := filepath.Join(*crisesDir, slug)
	if err := os.MkdirAll(entryDir, 0o755); err != nil {
		log.Fatalf("create entry dir: %v", err)
	}

	provider := generate.Placeholder{}
	ctx := context.Background()

	for _, lang := range models.Languages {
		target := filepath.Join(entryDir, fmt.Sprintf("manifest.%s.json", lang))

		base, err := provider.Generate(ctx, generate.Context{Slug: slug, Lang: lang, Seed: *seed})
		if err != nil {
			log.Fatalf("generate %s: %v", target, err)
		}
		base.Status = models.StatusDraft
		base.GeneratedBy = models.GeneratedBy{
			Provider:       provider.Name(),
			Seed:           *seed,
			GeneratedAtISO: time.Now().UTC().Format(time.RFC3339),
		}

		existing, err := readManifest(target)
		if err != nil {
			log.Fatalf("read %s: %v", target, err)
		}

		if existing == nil {
			validateOrExit(base, target)
			writeManifest(target, base)
			continue
		}

		if existing.Status == models.StatusLocked && !*force {
			fmt.Fprintf(os.Stderr, "refused: %s is locked, use -force to override\n", target)
			continue
		}
		if existing.Status == models.StatusDraft && !*fillMissing && !*force {
			fmt.Printf("skipped %s: draft exists, use -fill-missing or -force to modify\n", target)
			continue
		}

		var merged models.Manifest
		if *force {
			merged = base
			if existing.Status != "" {
				merged.Status = existing.Status
			} else {
				merged.Status = models.StatusLocked
			}
		} else {
			merged = generate.MergeManifest(base, *existing)
		}

		validateOrExit(merged, target)
		writeManifest(target, merged)
	}
}

func readManifest(path string) (*models.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var m models.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func writeManifest(path string, m models.Manifest) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		log.Fatalf("marshal %s: %v", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	fmt.Printf("wrote %s\n", path)
}

func validateOrExit(m models.Manifest, label string) {
	data, err := json.Marshal(m)
	if err != nil {
		log.Fatalf("marshal for validation: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Fatalf("decode for validation: %v", err)
	}

	result := content.ValidateManifest(raw)
	if !result.Valid {
		fmt.Fprintf(os.Stderr, "validation failed for %s:\n", label)
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", e.Path, e.Message)
		}
		os.Exit(1)
	}
}
