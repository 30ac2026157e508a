package dictionary

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryColumns = []string{"id", "name", "readable_name", "desc", "added_by", "lang"}

const findQueryPattern = `SELECT \* FROM slurs WHERE name LIKE \? AND lang = \?`

func TestDBRepository_FindMany(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []Entry
		wantErr   bool
	}{
		{
			name: "returns matches in storage order",
			term: "worm",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(entryColumns).
					AddRow(2, "brainworm", "Brainworm", "a persistent tune", "anonymous", "en").
					AddRow(1, "earworm", "Earworm", "a catchy song fragment", "someone", "en")

				mock.ExpectQuery(findQueryPattern).
					WithArgs("%worm%", "en").
					WillReturnRows(rows)
			},
			want: []Entry{
				{ID: 2, Name: "brainworm", ReadableName: "Brainworm", Description: "a persistent tune", AddedBy: "anonymous", Lang: "en"},
				{ID: 1, Name: "earworm", ReadableName: "Earworm", Description: "a catchy song fragment", AddedBy: "someone", Lang: "en"},
			},
		},
		{
			name: "empty term still runs the containment query",
			term: "",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(entryColumns).
					AddRow(1, "earworm", "Earworm", "a catchy song fragment", "someone", "en")

				mock.ExpectQuery(findQueryPattern).
					WithArgs("%%", "en").
					WillReturnRows(rows)
			},
			want: []Entry{
				{ID: 1, Name: "earworm", ReadableName: "Earworm", Description: "a catchy song fragment", AddedBy: "someone", Lang: "en"},
			},
		},
		{
			name: "no matches is not an error",
			term: "missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(findQueryPattern).
					WithArgs("%missing%", "en").
					WillReturnRows(sqlmock.NewRows(entryColumns))
			},
			want: nil,
		},
		{
			name: "query failure is returned",
			term: "worm",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(findQueryPattern).
					WithArgs("%worm%", "en").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.FindMany(context.Background(), tt.term, "en")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindOne(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Entry
		wantErr   bool
	}{
		{
			name: "returns the first matching row",
			term: "worm",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(entryColumns).
					AddRow(2, "brainworm", "Brainworm", "a persistent tune", "anonymous", "en")

				mock.ExpectQuery(findQueryPattern).
					WithArgs("%worm%", "en").
					WillReturnRows(rows)
			},
			want: &Entry{ID: 2, Name: "brainworm", ReadableName: "Brainworm", Description: "a persistent tune", AddedBy: "anonymous", Lang: "en"},
		},
		{
			name: "not found returns nil without an error",
			term: "missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(findQueryPattern).
					WithArgs("%missing%", "en").
					WillReturnRows(sqlmock.NewRows(entryColumns))
			},
			want: nil,
		},
		{
			name: "query failure is returned",
			term: "worm",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(findQueryPattern).
					WithArgs("%worm%", "en").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.FindOne(context.Background(), tt.term, "en")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
