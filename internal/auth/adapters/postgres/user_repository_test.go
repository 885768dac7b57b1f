package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartnotes/internal/auth/adapters/postgres"
	"smartnotes/internal/auth/domain/entities"
	domainservices "smartnotes/internal/auth/domain/services"
	"smartnotes/pkg/logger"
)

var errDatabaseConnection = errors.New("database connection error")

func testCtx(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return logger.NewContext(context.Background(), testLogger)
}

func testUser() entities.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entities.User{
		ID:           "9c3f1a2b-4d5e-4f60-8a7b-0c1d2e3f4a5b",
		Email:        "ann@x.com",
		Username:     "Ann",
		PasswordHash: "hashed_password",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func userRows(u entities.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "email", "username", "password_hash", "created_at", "updated_at"}).
		AddRow(u.ID, u.Email, u.Username, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := testCtx(t)
	stored := testUser()

	t.Run("successful user acquisition", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at").
			WithArgs(stored.ID).
			WillReturnRows(userRows(stored))

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByID(ctx, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, &stored, user)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("the user was not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at").
			WithArgs("non-existing-id").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByID(ctx, "non-existing-id")
		require.Nil(t, user)
		require.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at").
			WithArgs(stored.ID).
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByID(ctx, stored.ID)
		assert.Nil(t, user)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error querying user by id")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := testCtx(t)
	stored := testUser()

	t.Run("successful lookup by email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at").
			WithArgs(stored.Email).
			WillReturnRows(userRows(stored))

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByEmail(ctx, stored.Email)
		require.NoError(t, err)
		assert.Equal(t, &stored, user)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, username, password_hash, created_at, updated_at").
			WithArgs("ghost@x.com").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByEmail(ctx, "ghost@x.com")
		require.Nil(t, user)
		require.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testCtx(t)
	stored := testUser()

	t.Run("successful creation", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(stored.Email, stored.Username, stored.PasswordHash).
			WillReturnRows(userRows(stored))

		repo := postgres.NewUserRepository(mock)

		user, err := repo.Create(ctx, &entities.User{
			Email:        stored.Email,
			Username:     stored.Username,
			PasswordHash: stored.PasswordHash,
		})
		require.NoError(t, err)
		assert.Equal(t, &stored, user)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to email already exists", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(stored.Email, stored.Username, stored.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		repo := postgres.NewUserRepository(mock)

		user, err := repo.Create(ctx, &entities.User{
			Email:        stored.Email,
			Username:     stored.Username,
			PasswordHash: stored.PasswordHash,
		})
		require.Nil(t, user)
		require.ErrorIs(t, err, domainservices.ErrEmailAlreadyExists)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(stored.Email, stored.Username, stored.PasswordHash).
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.Create(ctx, &entities.User{
			Email:        stored.Email,
			Username:     stored.Username,
			PasswordHash: stored.PasswordHash,
		})
		require.Nil(t, user)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error creating user")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
