package recipes

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE recipes (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  image_uri TEXT,
  owner_id INTEGER
);
`)
	require.NoError(t, err)

	return db
}

func TestCreateGetByID_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	in := &models.Recipe{
		Title:    "Test Recipe",
		Content:  "Mix and bake.",
		ImageURI: "https://example.com/cake.jpg",
		OwnerID:  3,
	}
	created, err := r.Create(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Test Recipe", got.Title)
	assert.Equal(t, "Mix and bake.", got.Content)
	assert.Equal(t, "https://example.com/cake.jpg", got.ImageURI)
	assert.Equal(t, int64(3), got.OwnerID)
}

func TestCreate_EmptyImageStoredAsNull(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created, err := r.Create(ctx, &models.Recipe{Title: "t", Content: "c", OwnerID: 1})
	require.NoError(t, err)

	var image sql.NullString
	require.NoError(t, db.QueryRow(`SELECT image_uri FROM recipes WHERE id = ?`, created.ID).Scan(&image))
	assert.False(t, image.Valid, "empty image must be stored as NULL")

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.ImageURI)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate_OverwritesAllFields(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created, err := r.Create(ctx, &models.Recipe{Title: "old", Content: "old", OwnerID: 1})
	require.NoError(t, err)

	created.Title = "new title"
	created.Content = "new content"
	created.ImageURI = "file:///img.png"
	created.OwnerID = 2

	n, err := r.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "new content", got.Content)
	assert.Equal(t, "file:///img.png", got.ImageURI)
	assert.Equal(t, int64(2), got.OwnerID)
}

func TestUpdate_UnknownIDAffectsNothing(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	n, err := r.Update(context.Background(), &models.Recipe{ID: 999, Title: "x", Content: "y"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created, err := r.Create(ctx, &models.Recipe{Title: "t", Content: "c", OwnerID: 1})
	require.NoError(t, err)

	n, err := r.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = r.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSearchByTitle(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.Recipe{Title: "Test Recipe", Content: "c", OwnerID: 1})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Recipe{Title: "Another Dish", Content: "c", OwnerID: 1})
	require.NoError(t, err)

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"substring", "ecip", []string{"Test Recipe"}},
		{"case-insensitive", "TEST", []string{"Test Recipe"}},
		{"matches several", "s", []string{"Another Dish", "Test Recipe"}},
		{"no match", "zzz", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.SearchByTitle(ctx, tc.pattern)
			require.NoError(t, err)

			var titles []string
			for _, rec := range got {
				titles = append(titles, rec.Title)
			}
			assert.ElementsMatch(t, tc.want, titles)
		})
	}
}

func TestGetAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = r.Create(ctx, &models.Recipe{Title: "a", Content: "c", OwnerID: 1})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Recipe{Title: "b", Content: "c", OwnerID: 2})
	require.NoError(t, err)

	got, err = r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
