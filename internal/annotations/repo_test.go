package annotations

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"krisenkanon/pkg/database"
	"krisenkanon/pkg/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.MigrateFrom(db, "../../docs/schema.sql"))
	return db
}

func seedEditor(t *testing.T, db *sql.DB, id, handle string) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO editors (id, handle, email, password_hash)
		VALUES (?, ?, ?, ?)
	`, id, handle, handle+"@example.org", "x")
	require.NoError(t, err)
}

func TestRepo_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	seedEditor(t, db, "ed-1", "mira")
	repo := NewRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.Annotation{
		ID:       "a-1",
		Slug:     "netzausfall",
		EditorID: "ed-1",
		Quote:    "kritische Schwelle",
		Body:     "Quelle prüfen, Zahl wirkt veraltet.",
	}))

	got, err := repo.Get(ctx, "a-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "netzausfall", got.Slug)
	require.Equal(t, "mira", got.Editor)
	require.Equal(t, "kritische Schwelle", got.Quote)
	require.False(t, got.CreatedAt.IsZero())

	missing, err := repo.Get(ctx, "niemals")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestRepo_ListBySlugNewestFirst(t *testing.T) {
	db := openTestDB(t)
	seedEditor(t, db, "ed-1", "mira")
	repo := NewRepo(db)
	ctx := context.Background()

	// explicit timestamps, CURRENT_TIMESTAMP only has second resolution
	for _, row := range []struct{ id, ts string }{
		{"a-old", "2025-03-01 10:00:00"},
		{"a-new", "2025-03-01 12:00:00"},
		{"a-mid", "2025-03-01 11:00:00"},
	} {
		_, err := db.Exec(`
			INSERT INTO annotations (id, slug, editor_id, body, created_at)
			VALUES (?, 'netzausfall', 'ed-1', 'note', ?)
		`, row.id, row.ts)
		require.NoError(t, err)
	}
	require.NoError(t, repo.Create(ctx, models.Annotation{
		ID: "b-1", Slug: "anderes-thema", EditorID: "ed-1", Body: "woanders",
	}))

	list, err := repo.ListBySlug(ctx, "netzausfall")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "a-new", list[0].ID)
	require.Equal(t, "a-mid", list[1].ID)
	require.Equal(t, "a-old", list[2].ID)

	empty, err := repo.ListBySlug(ctx, "nie-annotiert")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestRepo_DeleteScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	seedEditor(t, db, "ed-1", "mira")
	seedEditor(t, db, "ed-2", "jon")
	repo := NewRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.Annotation{
		ID: "a-1", Slug: "netzausfall", EditorID: "ed-1", Body: "meins",
	}))

	deleted, err := repo.Delete(ctx, "a-1", "ed-2")
	require.NoError(t, err)
	require.False(t, deleted, "foreign annotations must stay put")

	deleted, err = repo.Delete(ctx, "a-1", "ed-1")
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := repo.Get(ctx, "a-1")
	require.NoError(t, err)
	require.Nil(t, got)

	deleted, err = repo.Delete(ctx, "a-1", "ed-1")
	require.NoError(t, err)
	require.False(t, deleted)
}
