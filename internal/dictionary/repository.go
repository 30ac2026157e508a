package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary

// Repository defines read operations against the dictionary. Both lookups
// match entries whose key contains term as a substring, scoped to one
// language. An empty term matches every entry for that language.
type Repository interface {
	FindMany(ctx context.Context, term string, lang string) ([]Entry, error)
	FindOne(ctx context.Context, term string, lang string) (*Entry, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

const findQuery = "SELECT * FROM slurs WHERE name LIKE ? AND lang = ?"

// FindMany returns all entries matching the term, in storage order. A miss
// is an empty slice, not an error.
func (r *DBRepository) FindMany(ctx context.Context, term string, lang string) ([]Entry, error) {
	var entries []Entry
	if err := r.db.SelectContext(ctx, &entries, findQuery, containing(term), lang); err != nil {
		return nil, fmt.Errorf("db.SelectContext(slurs) > %w", err)
	}
	return entries, nil
}

// FindOne returns the first matching entry in storage order, or nil when
// nothing matches. Which row wins when several match is left to the
// database.
func (r *DBRepository) FindOne(ctx context.Context, term string, lang string) (*Entry, error) {
	var entry Entry
	err := r.db.GetContext(ctx, &entry, findQuery, containing(term), lang)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(slurs) > %w", err)
	}
	return &entry, nil
}

func containing(term string) string {
	return "%" + term + "%"
}
