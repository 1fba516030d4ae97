package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JSN05/user-accounts/internal/logger"
	"github.com/JSN05/user-accounts/internal/models"
)

var (
	ErrInvalidSearchField = errors.New("search field is not allowed")
	ErrInvalidSortField   = errors.New("sort field is not allowed")
)

const (
	sortAsc  = "asc"
	sortDesc = "desc"

	defaultSortField = "email"
)

// listableFields is the closed set of fields the listing endpoint may
// search or sort by.
var listableFields = map[string]struct{}{
	"email": {},
	"name":  {},
}

// UserListReader defines listing operations for users.
type UserListReader interface {
	List(ctx context.Context, p models.UserListParams) ([]models.UserDB, error)
	Count(ctx context.Context, p models.UserListParams) (int, error)
}

// UserMutator defines update and delete operations for users.
type UserMutator interface {
	Update(ctx context.Context, id uuid.UUID, email, name string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserListCache caches listing pages.
type UserListCache interface {
	Get(ctx context.Context, key string) (*models.UserListResult, error)
	Set(ctx context.Context, key string, result *models.UserListResult) error
}

// UserService handles the users listing and record mutations.
type UserService struct {
	reader      UserReader
	listReader  UserListReader
	mutator     UserMutator
	cache       UserListCache
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. cache and kafkaWriter may be
// nil to disable page caching and event publishing.
func NewUserService(reader UserReader, listReader UserListReader, mutator UserMutator, cache UserListCache, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		listReader:  listReader,
		mutator:     mutator,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns a page of users per the query. Search is "field:value",
// sort is "field:order"; both fields are restricted to email and name.
// Absent page bounds return the whole filtered set.
func (svc *UserService) List(ctx context.Context, q models.UserListQuery) (*models.UserListResult, error) {
	params, err := parseListQuery(q)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("users:list:%d:%d:%s:%s:%s:%s",
		q.PageNumber, q.PageSize, params.SearchField, params.SearchValue, params.SortField, params.SortOrder)

	if svc.cache != nil {
		if cached, err := svc.cache.Get(ctx, key); err == nil {
			return cached, nil
		}
	}

	count, err := svc.listReader.Count(ctx, params)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return nil, err
	}

	result := &models.UserListResult{
		PageNumber: 1,
		PageSize:   count,
		Count:      count,
		TotalPages: 1,
		Users:      []models.User{},
	}

	if q.PageNumber > 0 && q.PageSize > 0 {
		totalPages := (count + q.PageSize - 1) / q.PageSize
		if totalPages == 0 {
			totalPages = 1
		}

		params.Limit = q.PageSize
		params.Offset = (q.PageNumber - 1) * q.PageSize

		result.PageNumber = q.PageNumber
		result.PageSize = q.PageSize
		result.TotalPages = totalPages
		result.HasPreviousPage = q.PageNumber > 1
		result.HasNextPage = q.PageNumber < totalPages
	}

	users, err := svc.listReader.List(ctx, params)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	for _, u := range users {
		result.Users = append(result.Users, models.User{
			UserID: u.UserID,
			Email:  u.Email,
			Name:   u.Name,
		})
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, key, result); err != nil {
			logger.Log.Errorw("failed to cache users list", "err", err)
		}
	}

	return result, nil
}

// Update changes a user's email and name, enforcing uniqueness of the
// new email.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, email, name string) error {
	other, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email uniqueness", "err", err)
		return err
	}
	if other != nil && other.UserID != id {
		return ErrEmailAlreadyTaken
	}

	ok, err := svc.mutator.Update(ctx, id, email, name)
	if err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return err
	}
	if !ok {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes a user record by id.
func (svc *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := svc.mutator.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}
	if !ok {
		return ErrUserNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, models.SecurityEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Kind:      models.EventUserDeleted,
		UserID:    id.String(),
	})

	return nil
}

// parseListQuery validates the raw query against the field whitelists
// and applies the default sort.
func parseListQuery(q models.UserListQuery) (models.UserListParams, error) {
	params := models.UserListParams{
		SortField: defaultSortField,
		SortOrder: sortAsc,
	}

	if q.Search != "" {
		field, value, found := strings.Cut(q.Search, ":")
		if !found || value == "" {
			return params, ErrInvalidSearchField
		}
		if _, ok := listableFields[field]; !ok {
			return params, ErrInvalidSearchField
		}
		params.SearchField = field
		params.SearchValue = value
	}

	if q.Sort != "" {
		field, order, found := strings.Cut(q.Sort, ":")
		if !found {
			return params, ErrInvalidSortField
		}
		if _, ok := listableFields[field]; !ok {
			return params, ErrInvalidSortField
		}
		if order != sortAsc && order != sortDesc {
			return params, ErrInvalidSortField
		}
		params.SortField = field
		params.SortOrder = order
	}

	return params, nil
}
