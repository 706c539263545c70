package content

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	"krisenkanon/pkg/models"
)

// Document is one discovered manifest file, decoded both as a raw object
// (for schema validation) and as a typed manifest (for the registry).
// DecodeErr is set when the file is not valid JSON at all.
type Document struct {
	Slug      string
	Lang      models.Language
	Path      string
	Raw       map[string]any
	Manifest  models.Manifest
	DecodeErr error
}

// DiscoverDocuments walks a content root laid out as
// <slug>/manifest.<lang>.json and returns every manifest document found,
// up to one per supported language per entry folder. Unparseable files
// are returned with DecodeErr set rather than aborting discovery.
func DiscoverDocuments(fsys fs.FS) ([]Document, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read content root: %w", err)
	}

	var docs []Document
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		slug := entry.Name()
		for _, lang := range models.Languages {
			file := path.Join(slug, fmt.Sprintf("manifest.%s.json", lang))
			data, err := fs.ReadFile(fsys, file)
			if err != nil {
				continue // language variant not authored
			}
			docs = append(docs, decodeDocument(slug, lang, file, data))
		}
	}
	return docs, nil
}

func decodeDocument(slug string, lang models.Language, file string, data []byte) Document {
	doc := Document{Slug: slug, Lang: lang, Path: file}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		doc.DecodeErr = fmt.Errorf("parse %s: %w", file, err)
		return doc
	}
	doc.Raw = raw

	// Best effort: a type mismatch on one field must not wipe the rest,
	// schema validation reports the mismatch separately. The registry is
	// keyed by the folder slug, not the authored manifest.slug.
	_ = json.Unmarshal(data, &doc.Manifest)
	return doc
}
