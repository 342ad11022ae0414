package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/febdev/catalog-api/internal/domain"
	"github.com/febdev/catalog-api/internal/store"
)

func newUserStoreWithMock(t *testing.T) (*PostgresUserStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewPostgresUserStore(db, nil), mock
}

func testUser(t *testing.T) *domain.User {
	t.Helper()

	user, err := domain.NewUser("Test User", "test@example.com", "secret123")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$hashedvalue"
	user.Password = ""
	return user
}

func TestUserStore_Create(t *testing.T) {
	t.Parallel()

	insertPattern := regexp.QuoteMeta("INSERT INTO users (name, email, password, is_admin)")

	t.Run("assigns the returned id", func(t *testing.T) {
		t.Parallel()

		s, mock := newUserStoreWithMock(t)
		user := testUser(t)

		mock.ExpectQuery(insertPattern).
			WithArgs(
				sql.NullString{String: "Test User", Valid: true},
				"test@example.com",
				"$2a$10$hashedvalue",
				false,
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		err := s.Create(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("empty name inserts NULL", func(t *testing.T) {
		t.Parallel()

		s, mock := newUserStoreWithMock(t)
		user := testUser(t)
		user.Name = ""

		mock.ExpectQuery(insertPattern).
			WithArgs(sql.NullString{}, "test@example.com", "$2a$10$hashedvalue", false).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))

		require.NoError(t, s.Create(context.Background(), user))
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		s, mock := newUserStoreWithMock(t)
		user := testUser(t)

		mock.ExpectQuery(insertPattern).
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		err := s.Create(context.Background(), user)
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("missing hashed password", func(t *testing.T) {
		t.Parallel()

		s, _ := newUserStoreWithMock(t)
		user := testUser(t)
		user.HashedPassword = ""
		user.Password = "secret123"

		err := s.Create(context.Background(), user)
		assert.ErrorIs(t, err, domain.ErrEmptyHashedPassword)
	})

	t.Run("invalid user data", func(t *testing.T) {
		t.Parallel()

		s, _ := newUserStoreWithMock(t)
		user := testUser(t)
		user.Email = "not-an-email"

		err := s.Create(context.Background(), user)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})
}

func TestUserStore_GetByID(t *testing.T) {
	t.Parallel()

	selectPattern := regexp.QuoteMeta("SELECT id, name, email, password, is_admin")

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		s, mock := newUserStoreWithMock(t)

		rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "is_admin"}).
			AddRow(int64(3), "Admin", "admin@email.com", "$2a$10$hash", true)
		mock.ExpectQuery(selectPattern).WithArgs(int64(3)).WillReturnRows(rows)

		user, err := s.GetByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
		assert.Equal(t, "Admin", user.Name)
		assert.Equal(t, "admin@email.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.HashedPassword)
		assert.True(t, user.IsAdmin)
	})

	t.Run("null name scans to empty string", func(t *testing.T) {
		t.Parallel()

		s, mock := newUserStoreWithMock(t)

		rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "is_admin"}).
			AddRow(int64(4), nil, "noname@email.com", "$2a$10$hash", false)
		mock.ExpectQuery(selectPattern).WithArgs(int64(4)).WillReturnRows(rows)

		user, err := s.GetByID(context.Background(), 4)
		require.NoError(t, err)
		assert.Empty(t, user.Name)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s, mock := newUserStoreWithMock(t)

		mock.ExpectQuery(selectPattern).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

		user, err := s.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserStore_GetByEmail(t *testing.T) {
	t.Parallel()

	selectPattern := regexp.QuoteMeta("SELECT id, name, email, password, is_admin")

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		s, mock := newUserStoreWithMock(t)

		rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "is_admin"}).
			AddRow(int64(1), "User 1", "user1@email.com", "$2a$10$hash", false)
		mock.ExpectQuery(selectPattern).WithArgs("user1@email.com").WillReturnRows(rows)

		user, err := s.GetByEmail(context.Background(), "user1@email.com")
		require.NoError(t, err)
		assert.Equal(t, "user1@email.com", user.Email)
		assert.False(t, user.IsAdmin)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		s, mock := newUserStoreWithMock(t)

		mock.ExpectQuery(selectPattern).
			WithArgs("nobody@email.com").
			WillReturnError(sql.ErrNoRows)

		user, err := s.GetByEmail(context.Background(), "nobody@email.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Nil(t, user)
	})
}
