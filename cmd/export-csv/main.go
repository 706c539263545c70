package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"krisenkanon/internal/content"
	"krisenkanon/internal/glossary"
	"krisenkanon/pkg/models"
	"krisenkanon/pkg/utils"
)

// export-csv flattens the crisis index and the consolidated glossary
// catalog into CSV files for editorial review.
func main() {
	cfg := utils.LoadContentConfig()
	var (
		crisesDir   = flag.String("crises", cfg.CrisesDir, "crises content root")
		catalogPath = flag.String("catalog", cfg.CatalogPath, "glossary catalog artifact")
		crisesOut   = flag.String("out-crises", "data/crises.csv", "output CSV path for the crisis index")
		glossaryOut = flag.String("out-glossary", "data/glossary.csv", "output CSV path for the glossary")
		langFlag    = flag.String("lang", "de", "index language (de|en)")
	)
	flag.Parse()

	lang := content.ParseLang(*langFlag)

	docs, err := content.DiscoverDocuments(os.DirFS(*crisesDir))
	if err != nil {
		log.Fatalf("content discovery failed: %v", err)
	}
	registry := content.Load(docs)

	if err := exportCrises(registry, lang, *crisesOut); err != nil {
		log.Fatalf("export crises failed: %v", err)
	}
	if err := exportGlossary(*catalogPath, *glossaryOut); err != nil {
		log.Fatalf("export glossary failed: %v", err)
	}

	log.Printf("exported crisis index to %s and glossary to %s", *crisesOut, *glossaryOut)
}

func exportCrises(registry *content.Registry, lang models.Language, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"slug", "id", "title", "summary", "categories", "tags",
		"severity", "volatility", "time_horizon", "status",
		"systemic_load", "version", "last_updated",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, item := range registry.All(lang) {
		load := ""
		if item.SystemicLoad != nil {
			load = strconv.Itoa(*item.SystemicLoad)
		}

		row := []string{
			item.Slug,
			item.ID,
			item.Title,
			item.Summary,
			strings.Join(item.Categories, ";"),
			strings.Join(item.Tags, ";"),
			strconv.Itoa(item.Severity),
			strconv.Itoa(item.Volatility),
			string(item.TimeHorizon),
			string(item.Status),
			load,
			item.Version,
			item.LastUpdatedISO,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func exportGlossary(catalogPath, outPath string) error {
	catalog, err := glossary.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"term", "definition_de", "definition_en", "references"}); err != nil {
		return err
	}

	for _, entry := range catalog.All().Terms {
		row := []string{
			entry.Term,
			entry.Definition.De,
			entry.Definition.En,
			strings.Join(entry.References, ";"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "glossary rows: %d\n", catalog.All().Count)
	return nil
}
