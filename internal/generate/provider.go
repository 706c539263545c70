package generate

import (
	"context"

	"krisenkanon/pkg/models"
)

// Context carries everything a provider needs to produce one manifest.
type Context struct {
	Slug string
	Lang models.Language
	Seed string
}

// Provider is implemented by each manifest generation backend. Providers
// produce a complete draft manifest for one entry in one language; the
// CLI decides whether the result may overwrite what is on disk.
type Provider interface {
	Name() string
	Generate(ctx context.Context, gen Context) (models.Manifest, error)
}
