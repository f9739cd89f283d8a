package repositories

import (
	"testing"

	"gowallet/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_LostUniqueIndexRace(t *testing.T) {
	db, mock := setupMockDB(t)
	cacheSvc, _ := setupTestCache(t)
	repo := NewUserRepository(db, cacheSvc)

	// A concurrent registration claims the phone between the service's
	// pre-check and our insert; the unique index rejects ours.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(&models.User{Name: "Alice", Phone: "+15550001111"})
	assert.ErrorIs(t, err, ErrPhoneTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByPhone_ReadThrough(t *testing.T) {
	db, mock := setupMockDB(t)
	cacheSvc, srv := setupTestCache(t)
	repo := NewUserRepository(db, cacheSvc)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE phone =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone"}).
			AddRow(7, "Alice", "+15550001111"))

	first, err := repo.GetByPhone("+15550001111")
	require.NoError(t, err)
	assert.Equal(t, uint(7), first.ID)
	assert.True(t, srv.Exists("user:phone:+15550001111"))
	assert.True(t, srv.Exists("user:id:7"))

	// Second lookup is served from the cache; no further query expected.
	second, err := repo.GetByPhone("+15550001111")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
