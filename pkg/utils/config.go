package utils

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("KRISENKANON_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("KRISENKANON_JWT_ISSUER")
	if issuer == "" {
		issuer = "krisenkanon"
	}

	duration := 24 * time.Hour
	if ttl := os.Getenv("KRISENKANON_JWT_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			duration = time.Duration(hours) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: duration,
	}
}

// ContentConfig locates the author-maintained corpus on disk.
type ContentConfig struct {
	Root        string // content root; crises live under Root/crises
	CrisesDir   string
	GlossaryDir string // standalone glossary documents
	CatalogPath string // consolidated catalog artifact
}

func LoadContentConfig() ContentConfig {
	root := os.Getenv("KRISENKANON_CONTENT_DIR")
	if root == "" {
		root = "content"
	}
	return ContentConfig{
		Root:        root,
		CrisesDir:   filepath.Join(root, "crises"),
		GlossaryDir: filepath.Join(root, "glossary", "terms"),
		CatalogPath: filepath.Join(root, "glossary", "catalog.json"),
	}
}
