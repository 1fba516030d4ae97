package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/JSN05/user-accounts/internal/models"
	"github.com/JSN05/user-accounts/internal/services"
)

type userMocks struct {
	reader     *services.MockUserReader
	listReader *services.MockUserListReader
	mutator    *services.MockUserMutator
	cache      *services.MockUserListCache
}

func newUserService(t *testing.T, withCache bool) (*services.UserService, userMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := userMocks{
		reader:     services.NewMockUserReader(ctrl),
		listReader: services.NewMockUserListReader(ctrl),
		mutator:    services.NewMockUserMutator(ctrl),
	}

	var cache services.UserListCache
	if withCache {
		m.cache = services.NewMockUserListCache(ctrl)
		cache = m.cache
	}

	svc := services.NewUserService(m.reader, m.listReader, m.mutator, cache, nil)
	return svc, m
}

func makeUsers(n int) []models.UserDB {
	users := make([]models.UserDB, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, models.UserDB{
			UserID: uuid.New(),
			Email:  string(rune('a'+i)) + "@example.com",
			Name:   "User " + string(rune('A'+i)),
		})
	}
	return users
}

func TestUserService_List_MiddlePage(t *testing.T) {
	svc, m := newUserService(t, false)

	// 5 matching users, page 2 of size 2: rows 2-3, three pages total.
	wantParams := models.UserListParams{
		SortField: "name",
		SortOrder: "asc",
		Limit:     2,
		Offset:    2,
	}
	countParams := wantParams
	countParams.Limit = 0
	countParams.Offset = 0

	m.listReader.EXPECT().Count(gomock.Any(), countParams).Return(5, nil)
	m.listReader.EXPECT().List(gomock.Any(), wantParams).Return(makeUsers(2), nil)

	result, err := svc.List(context.Background(), models.UserListQuery{
		PageNumber: 2,
		PageSize:   2,
		Sort:       "name:asc",
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.PageNumber)
	assert.Equal(t, 2, result.PageSize)
	assert.Equal(t, 5, result.Count)
	assert.Equal(t, 3, result.TotalPages)
	assert.True(t, result.HasPreviousPage)
	assert.True(t, result.HasNextPage)
	assert.Len(t, result.Users, 2)
}

func TestUserService_List_FirstAndLastPageFlags(t *testing.T) {
	svc, m := newUserService(t, false)

	countParams := models.UserListParams{SortField: "email", SortOrder: "asc"}

	t.Run("first page", func(t *testing.T) {
		listParams := countParams
		listParams.Limit = 2
		listParams.Offset = 0

		m.listReader.EXPECT().Count(gomock.Any(), countParams).Return(5, nil)
		m.listReader.EXPECT().List(gomock.Any(), listParams).Return(makeUsers(2), nil)

		result, err := svc.List(context.Background(), models.UserListQuery{PageNumber: 1, PageSize: 2})
		assert.NoError(t, err)
		assert.False(t, result.HasPreviousPage)
		assert.True(t, result.HasNextPage)
	})

	t.Run("last page", func(t *testing.T) {
		listParams := countParams
		listParams.Limit = 2
		listParams.Offset = 4

		m.listReader.EXPECT().Count(gomock.Any(), countParams).Return(5, nil)
		m.listReader.EXPECT().List(gomock.Any(), listParams).Return(makeUsers(1), nil)

		result, err := svc.List(context.Background(), models.UserListQuery{PageNumber: 3, PageSize: 2})
		assert.NoError(t, err)
		assert.True(t, result.HasPreviousPage)
		assert.False(t, result.HasNextPage)
		assert.Len(t, result.Users, 1)
	})
}

func TestUserService_List_NoPaginationReturnsAll(t *testing.T) {
	svc, m := newUserService(t, false)

	params := models.UserListParams{SortField: "email", SortOrder: "asc"}

	m.listReader.EXPECT().Count(gomock.Any(), params).Return(3, nil)
	m.listReader.EXPECT().List(gomock.Any(), params).Return(makeUsers(3), nil)

	result, err := svc.List(context.Background(), models.UserListQuery{})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.PageNumber)
	assert.Equal(t, 3, result.PageSize)
	assert.Equal(t, 1, result.TotalPages)
	assert.False(t, result.HasPreviousPage)
	assert.False(t, result.HasNextPage)
	assert.Len(t, result.Users, 3)
}

func TestUserService_List_SearchFilter(t *testing.T) {
	svc, m := newUserService(t, false)

	params := models.UserListParams{
		SearchField: "name",
		SearchValue: "doe",
		SortField:   "email",
		SortOrder:   "desc",
	}

	m.listReader.EXPECT().Count(gomock.Any(), params).Return(1, nil)
	m.listReader.EXPECT().List(gomock.Any(), params).Return(makeUsers(1), nil)

	result, err := svc.List(context.Background(), models.UserListQuery{
		Search: "name:doe",
		Sort:   "email:desc",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestUserService_List_InvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		query   models.UserListQuery
		wantErr error
	}{
		{
			name:    "search field not whitelisted",
			query:   models.UserListQuery{Search: "password:x"},
			wantErr: services.ErrInvalidSearchField,
		},
		{
			name:    "search without separator",
			query:   models.UserListQuery{Search: "email"},
			wantErr: services.ErrInvalidSearchField,
		},
		{
			name:    "sort field not whitelisted",
			query:   models.UserListQuery{Sort: "attempt:asc"},
			wantErr: services.ErrInvalidSortField,
		},
		{
			name:    "sort order unknown",
			query:   models.UserListQuery{Sort: "email:sideways"},
			wantErr: services.ErrInvalidSortField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectations: validation fails at the boundary.
			svc, _ := newUserService(t, false)

			result, err := svc.List(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestUserService_List_CacheHit(t *testing.T) {
	svc, m := newUserService(t, true)

	cached := &models.UserListResult{Count: 7, TotalPages: 1, PageNumber: 1, PageSize: 7}
	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, nil)

	result, err := svc.List(context.Background(), models.UserListQuery{})
	assert.NoError(t, err)
	assert.Equal(t, cached, result)
}

func TestUserService_List_CacheMissFallsThrough(t *testing.T) {
	svc, m := newUserService(t, true)

	params := models.UserListParams{SortField: "email", SortOrder: "asc"}

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("not found"))
	m.listReader.EXPECT().Count(gomock.Any(), params).Return(2, nil)
	m.listReader.EXPECT().List(gomock.Any(), params).Return(makeUsers(2), nil)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.List(context.Background(), models.UserListQuery{})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Count)
}

func TestUserService_List_RepositoryErrors(t *testing.T) {
	params := models.UserListParams{SortField: "email", SortOrder: "asc"}

	t.Run("count error", func(t *testing.T) {
		svc, m := newUserService(t, false)
		m.listReader.EXPECT().Count(gomock.Any(), params).Return(0, errors.New("db error"))

		_, err := svc.List(context.Background(), models.UserListQuery{})
		assert.EqualError(t, err, "db error")
	})

	t.Run("list error", func(t *testing.T) {
		svc, m := newUserService(t, false)
		m.listReader.EXPECT().Count(gomock.Any(), params).Return(2, nil)
		m.listReader.EXPECT().List(gomock.Any(), params).Return(nil, errors.New("db error"))

		_, err := svc.List(context.Background(), models.UserListQuery{})
		assert.EqualError(t, err, "db error")
	})
}

func TestUserService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, m := newUserService(t, false)

		m.reader.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		m.mutator.EXPECT().Update(gomock.Any(), id, "new@example.com", "New Name").Return(true, nil)

		err := svc.Update(context.Background(), id, "new@example.com", "New Name")
		assert.NoError(t, err)
	})

	t.Run("same user keeps its email", func(t *testing.T) {
		svc, m := newUserService(t, false)

		m.reader.EXPECT().GetByEmail(gomock.Any(), "same@example.com").Return(&models.UserDB{UserID: id}, nil)
		m.mutator.EXPECT().Update(gomock.Any(), id, "same@example.com", "New Name").Return(true, nil)

		err := svc.Update(context.Background(), id, "same@example.com", "New Name")
		assert.NoError(t, err)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		svc, m := newUserService(t, false)

		m.reader.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").Return(&models.UserDB{UserID: uuid.New()}, nil)

		err := svc.Update(context.Background(), id, "taken@example.com", "New Name")
		assert.ErrorIs(t, err, services.ErrEmailAlreadyTaken)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, m := newUserService(t, false)

		m.reader.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		m.mutator.EXPECT().Update(gomock.Any(), id, "new@example.com", "New Name").Return(false, nil)

		err := svc.Update(context.Background(), id, "new@example.com", "New Name")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newUserService(t, false)

		m.reader.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		m.mutator.EXPECT().Update(gomock.Any(), id, "new@example.com", "New Name").Return(false, errors.New("db error"))

		err := svc.Update(context.Background(), id, "new@example.com", "New Name")
		assert.EqualError(t, err, "db error")
	})
}

func TestUserService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, m := newUserService(t, false)

		m.mutator.EXPECT().Delete(gomock.Any(), id).Return(true, nil)

		err := svc.Delete(context.Background(), id)
		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		svc, m := newUserService(t, false)

		m.mutator.EXPECT().Delete(gomock.Any(), id).Return(false, nil)

		err := svc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newUserService(t, false)

		m.mutator.EXPECT().Delete(gomock.Any(), id).Return(false, errors.New("db error"))

		err := svc.Delete(context.Background(), id)
		assert.EqualError(t, err, "db error")
	})
}
