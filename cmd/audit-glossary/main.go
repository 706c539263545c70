package main

import (
	"flag"
	"log"
	"os"
	"time"

	"krisenkanon/internal/glossary"
	"krisenkanon/pkg/utils"
)

func main() {
	cfg := utils.LoadContentConfig()
	var (
		crisesDir   = flag.String("crises", cfg.CrisesDir, "crises content root")
		glossaryDir = flag.String("glossary", cfg.GlossaryDir, "standalone glossary documents dir")
		outPath     = flag.String("out", cfg.CatalogPath, "output catalog path")
	)
	flag.Parse()

	c := glossary.NewConsolidator()

	if err := c.ScanContent(os.DirFS(*crisesDir)); err != nil {
		log.Fatalf("scan crises failed: %v", err)
	}

	// standalone documents are optional
	if _, err := os.Stat(*glossaryDir); err == nil {
		if err := c.ScanStandalone(os.DirFS(*glossaryDir)); err != nil {
			log.Fatalf("scan standalone glossary failed: %v", err)
		}
	}

	catalog := c.Catalog(time.Now().UTC().Format(time.RFC3339))
	if err := glossary.WriteCatalog(*outPath, catalog); err != nil {
		log.Fatalf("write catalog failed: %v", err)
	}

	log.Printf("glossary catalog written with %d entries to %s", catalog.Count, *outPath)
	if warnings := c.Warnings(); len(warnings) > 0 {
		log.Printf("glossary warnings:")
		for _, w := range warnings {
			log.Printf(" - %s", w)
		}
	}
}
