package repositories

import (
	"context"
	"testing"
	"time"

	"gowallet/internal/models"
	"gowallet/internal/repositories/cache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*cache.CacheService, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	svc := cache.NewCacheService(client, time.Minute)
	t.Cleanup(func() { svc.Close() })
	return svc, srv
}

func TestCompanyRepository_Create_LostUniqueIndexRace(t *testing.T) {
	db, mock := setupMockDB(t)
	cacheSvc, _ := setupTestCache(t)
	repo := NewCompanyRepository(db, cacheSvc)

	// The pre-check sees no duplicate; a concurrent insert wins the race
	// and the unique index rejects ours.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "companies"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(&models.Company{Name: "Acme Utilities", AccountNumber: "5899438"})
	assert.ErrorIs(t, err, ErrAccountNumberTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_GetByAccountNumber_ReadThrough(t *testing.T) {
	db, mock := setupMockDB(t)
	cacheSvc, srv := setupTestCache(t)
	repo := NewCompanyRepository(db, cacheSvc)

	mock.ExpectQuery(`SELECT (.+) FROM "companies" WHERE account_number =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "account_number"}).
			AddRow(5, "Acme Utilities", "5899438"))

	first, err := repo.GetByAccountNumber("5899438")
	require.NoError(t, err)
	assert.Equal(t, "Acme Utilities", first.Name)
	assert.True(t, srv.Exists("company:account:5899438"))

	// Second lookup is served from the cache; no further query expected.
	second, err := repo.GetByAccountNumber("5899438")
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_Update_InvalidatesOldAccountNumber(t *testing.T) {
	db, mock := setupMockDB(t)
	cacheSvc, srv := setupTestCache(t)
	repo := NewCompanyRepository(db, cacheSvc)

	cached := &models.Company{Name: "Acme Utilities", AccountNumber: "5899438"}
	cached.ID = 5
	require.NoError(t, cacheSvc.CacheCompany(context.Background(), cached))
	require.True(t, srv.Exists("company:account:5899438"))

	mock.ExpectQuery(`SELECT "account_number" FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"account_number"}).AddRow("5899438"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "companies" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	renamed := &models.Company{Name: "Acme Utilities", AccountNumber: "7700123"}
	renamed.ID = 5
	require.NoError(t, repo.Update(renamed))

	// Neither the old nor the new account number may serve a stale entry.
	assert.False(t, srv.Exists("company:account:5899438"))
	assert.False(t, srv.Exists("company:account:7700123"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_Update_MissingCompany(t *testing.T) {
	db, mock := setupMockDB(t)
	cacheSvc, _ := setupTestCache(t)
	repo := NewCompanyRepository(db, cacheSvc)

	mock.ExpectQuery(`SELECT "account_number" FROM "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"account_number"}))

	missing := &models.Company{Name: "Ghost", AccountNumber: "0000000"}
	missing.ID = 99
	assert.ErrorIs(t, repo.Update(missing), ErrCompanyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
