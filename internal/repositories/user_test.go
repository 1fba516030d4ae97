package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/JSN05/user-accounts/internal/models"
	"github.com/JSN05/user-accounts/migrations"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db.DB, "."))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func seedUser(t *testing.T, repo *UserWriteRepository, email, name string) models.UserDB {
	t.Helper()

	user := models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Save(context.Background(), user))
	return user
}

func TestUserRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved := seedUser(t, writeRepo, "alice@example.com", "Alice")

	t.Run("ByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, saved.UserID, user.UserID)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, 0, user.Attempt)
		assert.Nil(t, user.UpdatedOn)
	})

	t.Run("ByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, saved.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("UnknownID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		err := writeRepo.Save(ctx, models.UserDB{
			UserID:       uuid.New(),
			Email:        "alice@example.com",
			Name:         "Other Alice",
			PasswordHash: "hash",
		})
		assert.Error(t, err)
	})
}

func TestUserRepository_ListAndCount(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	seedUser(t, writeRepo, "a@example.com", "Alice Doe")
	seedUser(t, writeRepo, "b@example.com", "Bob Doe")
	seedUser(t, writeRepo, "c@example.com", "Carol Smith")
	seedUser(t, writeRepo, "d@example.com", "Dave Smith")
	seedUser(t, writeRepo, "e@example.com", "Eve Doe")

	t.Run("SortedByEmailAsc", func(t *testing.T) {
		users, err := readRepo.List(ctx, models.UserListParams{SortField: "email", SortOrder: "asc"})
		assert.NoError(t, err)
		assert.Len(t, users, 5)
		assert.Equal(t, "a@example.com", users[0].Email)
		assert.Equal(t, "e@example.com", users[4].Email)
	})

	t.Run("SortedByNameDesc", func(t *testing.T) {
		users, err := readRepo.List(ctx, models.UserListParams{SortField: "name", SortOrder: "desc"})
		assert.NoError(t, err)
		assert.Len(t, users, 5)
		assert.Equal(t, "Eve Doe", users[0].Name)
	})

	t.Run("PageWindow", func(t *testing.T) {
		users, err := readRepo.List(ctx, models.UserListParams{
			SortField: "email",
			SortOrder: "asc",
			Limit:     2,
			Offset:    2,
		})
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "c@example.com", users[0].Email)
		assert.Equal(t, "d@example.com", users[1].Email)
	})

	t.Run("SearchCaseInsensitive", func(t *testing.T) {
		users, err := readRepo.List(ctx, models.UserListParams{
			SearchField: "name",
			SearchValue: "doe",
			SortField:   "email",
			SortOrder:   "asc",
		})
		assert.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("CountAll", func(t *testing.T) {
		count, err := readRepo.Count(ctx, models.UserListParams{})
		assert.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("CountFiltered", func(t *testing.T) {
		count, err := readRepo.Count(ctx, models.UserListParams{
			SearchField: "name",
			SearchValue: "smith",
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved := seedUser(t, writeRepo, "alice@example.com", "Alice")

	t.Run("Update", func(t *testing.T) {
		ok, err := writeRepo.Update(ctx, saved.UserID, "alice2@example.com", "Alice Two")
		assert.NoError(t, err)
		assert.True(t, ok)

		user, err := readRepo.GetByID(ctx, saved.UserID)
		assert.NoError(t, err)
		assert.Equal(t, "alice2@example.com", user.Email)
		assert.Equal(t, "Alice Two", user.Name)
	})

	t.Run("UpdateUnknownID", func(t *testing.T) {
		ok, err := writeRepo.Update(ctx, uuid.New(), "x@example.com", "X")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("UpdatePassword", func(t *testing.T) {
		err := writeRepo.UpdatePassword(ctx, saved.UserID, "newhash")
		assert.NoError(t, err)

		user, err := readRepo.GetByID(ctx, saved.UserID)
		assert.NoError(t, err)
		assert.Equal(t, "newhash", user.PasswordHash)
	})

	t.Run("Delete", func(t *testing.T) {
		ok, err := writeRepo.Delete(ctx, saved.UserID)
		assert.NoError(t, err)
		assert.True(t, ok)

		user, err := readRepo.GetByID(ctx, saved.UserID)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DeleteUnknownID", func(t *testing.T) {
		ok, err := writeRepo.Delete(ctx, uuid.New())
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserRepository_AttemptCounter(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	seedUser(t, writeRepo, "alice@example.com", "Alice")
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("IncrementReturnsNewValue", func(t *testing.T) {
		attempt, err := writeRepo.IncrementAttempt(ctx, "alice@example.com", now)
		assert.NoError(t, err)
		assert.Equal(t, 1, attempt)

		attempt, err = writeRepo.IncrementAttempt(ctx, "alice@example.com", now)
		assert.NoError(t, err)
		assert.Equal(t, 2, attempt)

		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 2, user.Attempt)
		assert.NotNil(t, user.UpdatedOn)
	})

	t.Run("ConcurrentIncrementsDoNotLoseUpdates", func(t *testing.T) {
		const workers = 8

		errCh := make(chan error, workers)
		for i := 0; i < workers; i++ {
			go func() {
				_, err := writeRepo.IncrementAttempt(ctx, "alice@example.com", time.Now())
				errCh <- err
			}()
		}
		for i := 0; i < workers; i++ {
			assert.NoError(t, <-errCh)
		}

		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 2+workers, user.Attempt)
	})

	t.Run("IncrementUnknownEmail", func(t *testing.T) {
		_, err := writeRepo.IncrementAttempt(ctx, "nobody@example.com", now)
		assert.Error(t, err) // no row to return
	})

	t.Run("Reset", func(t *testing.T) {
		err := writeRepo.ResetAttempt(ctx, "alice@example.com")
		assert.NoError(t, err)

		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, 0, user.Attempt)
	})
}
