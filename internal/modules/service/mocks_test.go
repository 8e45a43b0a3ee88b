package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/ds611b/practicas/internal/infra/blob"
	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of repo.Store for any entity.
type MockStore[T any] struct {
	mock.Mock
}

func (m *MockStore[T]) List(ctx context.Context, f repo.Filter) ([]T, error) {
	args := m.MethodCalled("List", ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockStore[T]) Get(ctx context.Context, id uint) (*T, error) {
	args := m.MethodCalled("Get", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockStore[T]) Exists(ctx context.Context, f repo.Filter, exceptID uint) (bool, error) {
	args := m.MethodCalled("Exists", ctx, f, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore[T]) Create(ctx context.Context, v *T) (*T, error) {
	args := m.MethodCalled("Create", ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockStore[T]) Update(ctx context.Context, v *T) (*T, error) {
	args := m.MethodCalled("Update", ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockStore[T]) Delete(ctx context.Context, id uint) error {
	args := m.MethodCalled("Delete", ctx, id)
	return args.Error(0)
}

// MockUserRepo is a mock implementation of repo.UserRepo
type MockUserRepo struct {
	MockStore[model.User]
}

func (m *MockUserRepo) UpdateWithProfile(ctx context.Context, userID uint, ch repo.UserProfileChange) (*model.Profile, error) {
	args := m.MethodCalled("UpdateWithProfile", ctx, userID, ch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

// MockLogbookProfileRepo is a mock implementation of repo.LogbookProfileRepo
type MockLogbookProfileRepo struct {
	MockStore[model.LogbookProfile]
}

func (m *MockLogbookProfileRepo) DeletePair(ctx context.Context, logbookID, profileID uint) error {
	args := m.MethodCalled("DeletePair", ctx, logbookID, profileID)
	return args.Error(0)
}

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, v any) error {
	args := m.Called(ctx, routingKey, v)
	return args.Error(0)
}

// MockPhotoStore is a mock implementation of PhotoStore
type MockPhotoStore struct {
	mock.Mock
}

func (m *MockPhotoStore) UploadFormFile(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*blob.UploadedMeta, error) {
	args := m.Called(ctx, keyPrefix, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.UploadedMeta), args.Error(1)
}

func (m *MockPhotoStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockPhotoStore) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func ptr[V any](v V) *V { return &v }
