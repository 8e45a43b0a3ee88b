package service

import (
	"context"
	"testing"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/pkg/apperrors"
	"github.com/ds611b/practicas/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateHashesPassword(t *testing.T) {
	users := &MockUserRepo{}
	roles := &MockStore[model.Role]{}
	roles.On("Exists", mock.Anything, repo.Filter{"id": uint(1)}, uint(0)).Return(true, nil)
	users.On("Exists", mock.Anything, repo.Filter{"email": "ana@example.com"}, uint(0)).Return(false, nil)

	var stored *model.User
	users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*model.User) }).
		Return(&model.User{ID: 1}, nil)

	_, err := NewUserService(users, roles).Create(context.Background(), UserInput{
		FirstName: ptr("Ana"), LastName: ptr("Lopez"), Email: ptr("ana@example.com"),
		Password: ptr("supersecret"), RoleID: ptr(uint(1)),
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Active)
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "supersecret"))
}

func TestUserService_CreateUnknownRole(t *testing.T) {
	users := &MockUserRepo{}
	roles := &MockStore[model.Role]{}
	roles.On("Exists", mock.Anything, repo.Filter{"id": uint(8)}, uint(0)).Return(false, nil)

	_, err := NewUserService(users, roles).Create(context.Background(), UserInput{
		FirstName: ptr("Ana"), LastName: ptr("Lopez"), Email: ptr("ana@example.com"),
		Password: ptr("supersecret"), RoleID: ptr(uint(8)),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_UpdateWithProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("empty carnet", func(t *testing.T) {
		users := &MockUserRepo{}
		_, err := NewUserService(users, &MockStore[model.Role]{}).UpdateWithProfile(ctx, 1, UserProfileInput{StudentCode: ptr("")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		users.AssertNotCalled(t, "UpdateWithProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := NewUserService(&MockUserRepo{}, &MockStore[model.Role]{}).UpdateWithProfile(ctx, 0, UserProfileInput{})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("applies submitted fields only", func(t *testing.T) {
		users := &MockUserRepo{}
		users.On("UpdateWithProfile", mock.Anything, uint(1), mock.MatchedBy(func(ch repo.UserProfileChange) bool {
			u := model.User{FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com"}
			ch.ApplyUser(&u)
			p := model.Profile{UserID: 1, Address: ptr("Santa Ana")}
			ch.ApplyProfile(&p)
			return *ch.Email == "nueva@example.com" && *ch.StudentCode == "LO200101" &&
				u.FirstName == "Ana" && u.Email == "nueva@example.com" &&
				*p.StudentCode == "LO200101" && *p.Address == "Santa Ana"
		})).Return(&model.Profile{ID: 3, UserID: 1}, nil)

		got, err := NewUserService(users, &MockStore[model.Role]{}).UpdateWithProfile(ctx, 1, UserProfileInput{
			Email: ptr("nueva@example.com"), StudentCode: ptr("LO200101"),
		})
		require.NoError(t, err)
		assert.Equal(t, uint(3), got.ID)
		users.AssertExpectations(t)
	})
}
