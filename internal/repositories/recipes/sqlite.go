package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/dbx"
	"github.com/dmitrijs2005/recipekeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// imageToNull maps the empty image URI to NULL, matching the nullable column.
func imageToNull(uri string) sql.NullString {
	return sql.NullString{String: uri, Valid: uri != ""}
}

func (r *SQLiteRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	query := `INSERT INTO recipes (title, content, image_uri, owner_id) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		recipe.Title, recipe.Content, imageToNull(recipe.ImageURI), recipe.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	recipe.ID = id

	return recipe, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	query := `SELECT id, title, content, image_uri, owner_id FROM recipes WHERE id = ?`

	rec, err := scanRecipe(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, recipe *models.Recipe) (int64, error) {
	query := `UPDATE recipes SET title = ?, content = ?, image_uri = ?, owner_id = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		recipe.Title, recipe.Content, imageToNull(recipe.ImageURI), recipe.OwnerID, recipe.ID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM recipes WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) SearchByTitle(ctx context.Context, pattern string) ([]models.Recipe, error) {
	query := `SELECT id, title, content, image_uri, owner_id FROM recipes
		WHERE lower(title) LIKE '%' || lower(?) || '%'`

	rows, err := r.db.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return collectRecipes(rows)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Recipe, error) {
	query := `SELECT id, title, content, image_uri, owner_id FROM recipes`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return collectRecipes(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*models.Recipe, error) {
	rec := &models.Recipe{}
	var image sql.NullString
	var owner sql.NullInt64
	if err := row.Scan(&rec.ID, &rec.Title, &rec.Content, &image, &owner); err != nil {
		return nil, err
	}
	rec.ImageURI = image.String
	rec.OwnerID = owner.Int64
	return rec, nil
}

func collectRecipes(rows *sql.Rows) ([]models.Recipe, error) {
	var result []models.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
