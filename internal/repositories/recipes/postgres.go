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

// PostgresRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository returns a new PostgresRepository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	query :=
		`INSERT INTO recipes (title, content, image_uri, owner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		recipe.Title, recipe.Content, imageToNull(recipe.ImageURI), recipe.OwnerID).Scan(&recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	query :=
		`SELECT id, title, content, image_uri, owner_id FROM recipes
		 WHERE id = $1
		 `

	rec, err := scanRecipe(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) Update(ctx context.Context, recipe *models.Recipe) (int64, error) {
	query :=
		`UPDATE recipes
		 SET title = $1, content = $2, image_uri = $3, owner_id = $4
		 WHERE id = $5
		 `

	res, err := r.db.ExecContext(ctx, query,
		recipe.Title, recipe.Content, imageToNull(recipe.ImageURI), recipe.OwnerID, recipe.ID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM recipes WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) SearchByTitle(ctx context.Context, pattern string) ([]models.Recipe, error) {
	query :=
		`SELECT id, title, content, image_uri, owner_id FROM recipes
		 WHERE title ILIKE '%' || $1 || '%'
		 `

	rows, err := r.db.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return collectRecipes(rows)
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Recipe, error) {
	query := `SELECT id, title, content, image_uri, owner_id FROM recipes`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return collectRecipes(rows)
}
