package recipes

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresCreate_ReturnsAssignedID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(7)
	mock.ExpectQuery(`INSERT\s+INTO\s+recipes`).
		WithArgs("t", "c", sql.NullString{String: "uri", Valid: true}, int64(3)).
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &models.Recipe{
		Title: "t", Content: "c", ImageURI: "uri", OwnerID: 3,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("expected id 7, got %d", got.ID)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*title,\s*content,\s*image_uri,\s*owner_id\s+FROM\s+recipes`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestPostgresUpdate_ZeroRowsIsNotAnError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+recipes`).
		WithArgs("t", "c", sql.NullString{}, int64(1), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.Update(context.Background(), &models.Recipe{
		ID: 99, Title: "t", Content: "c", OwnerID: 1,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 affected rows, got %d", n)
	}
}

func TestPostgresSearchByTitle_EmptyResult(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "content", "image_uri", "owner_id"})
	mock.ExpectQuery(`SELECT\s+id,\s*title,\s*content,\s*image_uri,\s*owner_id\s+FROM\s+recipes\s+WHERE\s+title\s+ILIKE`).
		WithArgs("zzz").
		WillReturnRows(rows)

	got, err := repo.SearchByTitle(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("SearchByTitle error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
