package content

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"krisenkanon/pkg/models"
)

func TestDiscoverDocuments(t *testing.T) {
	deBody, err := json.Marshal(validManifest("wasserknappheit"))
	require.NoError(t, err)
	enBody, err := json.Marshal(validManifest("wasserknappheit"))
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"wasserknappheit/manifest.de.json": {Data: deBody},
		"wasserknappheit/manifest.en.json": {Data: enBody},
		"netzausfall/manifest.de.json":     {Data: []byte("{ not json")},
		"netzausfall/notes.txt":            {Data: []byte("ignored")},
		"README.md":                        {Data: []byte("ignored")},
	}

	docs, err := DiscoverDocuments(fsys)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	byPath := make(map[string]Document, len(docs))
	for _, doc := range docs {
		byPath[doc.Path] = doc
	}

	de := byPath["wasserknappheit/manifest.de.json"]
	require.Equal(t, "wasserknappheit", de.Slug)
	require.Equal(t, models.LangDE, de.Lang)
	require.NoError(t, de.DecodeErr)
	require.Equal(t, "wasserknappheit", de.Manifest.Slug)
	require.NotNil(t, de.Raw)

	en := byPath["wasserknappheit/manifest.en.json"]
	require.Equal(t, models.LangEN, en.Lang)

	broken := byPath["netzausfall/manifest.de.json"]
	require.Error(t, broken.DecodeErr)
	require.Nil(t, broken.Raw)
}

func TestDiscoverDocuments_EmptyRoot(t *testing.T) {
	docs, err := DiscoverDocuments(fstest.MapFS{})
	require.NoError(t, err)
	require.Empty(t, docs)
}
