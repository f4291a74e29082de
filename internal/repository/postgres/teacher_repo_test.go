package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communitysite/internal/domain"
)

var teacherCols = []string{"id", "name", "position", "email", "image", "place", "description", "created_at"}

func TestTeacherRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	tr := &domain.Teacher{Name: "Mala", Position: "Dance", Image: "https://cdn/default.png", Place: "Salmiya", CreatedAt: created}
	mock.ExpectQuery(`INSERT INTO teachers \(name, position, email, image, place, description, created_at\)`).
		WithArgs("Mala", "Dance", "", "https://cdn/default.png", "Salmiya", "", created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("t-1"))

	require.NoError(t, NewTeacherRepository(db).Create(context.Background(), tr))
	assert.Equal(t, "t-1", tr.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM teachers`).
		WillReturnRows(sqlmock.NewRows(teacherCols).
			AddRow("t-1", "Mala", "Dance", "m@example.com", "", "Salmiya", "", time.Now()).
			AddRow("t-2", "Ravi", "Music", "", "", "Fahaheel", "", time.Now()))

	teachers, err := NewTeacherRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "Fahaheel", teachers[1].Place)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepository_Update(t *testing.T) {
	ctx := context.Background()
	in := &domain.Teacher{ID: "t-1", Name: "Mala", Position: "Head of Dance", Email: "m@example.com", Place: "Salmiya", Description: "x"}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE teachers SET name = \$2, position = \$3, email = \$4, place = \$5, description = \$6`).
					WithArgs("t-1", "Mala", "Head of Dance", "m@example.com", "Salmiya", "x").
					WillReturnRows(sqlmock.NewRows(teacherCols).AddRow("t-1", "Mala", "Head of Dance", "m@example.com", "img", "Salmiya", "x", time.Now()))
			},
		},
		{
			name: "missing row",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE teachers`).WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewTeacherRepository(db).Update(ctx, in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Head of Dance", got.Position)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTeacherRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM teachers WHERE id = \$1`).
		WithArgs("t-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewTeacherRepository(db).Delete(context.Background(), "t-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
