package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/JSN05/user-accounts/internal/logger"
	"github.com/JSN05/user-accounts/internal/middlewares"
	"github.com/JSN05/user-accounts/internal/models"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// UserReadRepository provides read access to the users table.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when no such
// user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, name, password_hash, attempt, updated_on, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil when no such user
// exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, name, password_hash, attempt, updated_on, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns users matching the validated filter, sorted and windowed
// per the given params. Field names in the params must already be
// whitelisted by the caller.
func (r *UserReadRepository) List(ctx context.Context, p models.UserListParams) ([]models.UserDB, error) {
	query := qb.
		Select("user_id", "email", "name", "password_hash", "attempt", "updated_on", "created_at", "updated_at").
		From("users").
		OrderBy(fmt.Sprintf("%s %s", p.SortField, strings.ToUpper(p.SortOrder)))

	if p.SearchField != "" {
		query = query.Where(squirrel.ILike{p.SearchField: "%" + p.SearchValue + "%"})
	}
	if p.Limit > 0 {
		query = query.Limit(uint64(p.Limit)).Offset(uint64(p.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		logger.Log.Errorw("failed to build list query", "error", err)
		return nil, err
	}

	var users []models.UserDB
	err = r.db.SelectContext(ctx, &users, sqlStr, args...)

	logger.Log.Infow("user query",
		"query", sqlStr,
		"args", args,
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// Count returns the number of users matching the filter, ignoring the
// page window.
func (r *UserReadRepository) Count(ctx context.Context, p models.UserListParams) (int, error) {
	query := qb.Select("COUNT(*)").From("users")
	if p.SearchField != "" {
		query = query.Where(squirrel.ILike{p.SearchField: "%" + p.SearchValue + "%"})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		logger.Log.Errorw("failed to build count query", "error", err)
		return 0, err
	}

	var count int
	err = r.db.GetContext(ctx, &count, sqlStr, args...)

	logger.Log.Infow("user query",
		"query", sqlStr,
		"args", args,
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}

// UserWriteRepository provides write access to the users table. Writes
// join the transaction from the request context when one is present.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Save inserts a new user record.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	args := []any{user.UserID, user.Email, user.Name, user.PasswordHash}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Update changes a user's email and name. Returns false when the id does
// not exist.
func (r *UserWriteRepository) Update(ctx context.Context, id uuid.UUID, email, name string) (bool, error) {
	const query = `
		UPDATE users
		SET email = $2, name = $3, updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := r.ext(ctx).ExecContext(ctx, query, id, email, name)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, email, name},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// UpdatePassword replaces a user's password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := r.ext(ctx).ExecContext(ctx, query, id, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", id,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a user record. Returns false when the id does not exist.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM users WHERE user_id = $1`

	res, err := r.ext(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user write",
		"query", query,
		"args", id,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// IncrementAttempt bumps the failed-login counter in a single statement
// so concurrent failures cannot write stale counts, and returns the new
// value. updated_on records when the counter last moved.
func (r *UserWriteRepository) IncrementAttempt(ctx context.Context, email string, now time.Time) (int, error) {
	const query = `
		UPDATE users
		SET attempt = attempt + 1, updated_on = $2
		WHERE email = $1
		RETURNING attempt
	`

	var attempt int
	err := r.ext(ctx).QueryRowxContext(ctx, query, email, now).Scan(&attempt)

	logger.Log.Infow("user write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", email,
		"result", attempt,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return attempt, nil
}

// ResetAttempt clears the failed-login counter.
func (r *UserWriteRepository) ResetAttempt(ctx context.Context, email string) error {
	const query = `
		UPDATE users
		SET attempt = 0, updated_on = $2
		WHERE email = $1
	`

	res, err := r.ext(ctx).ExecContext(ctx, query, email, time.Now())
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", email,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
