package handler

import (
	"context"
	"mime/multipart"

	"github.com/ds611b/practicas/internal/modules/model"
	"github.com/ds611b/practicas/internal/modules/repo"
	"github.com/ds611b/practicas/internal/modules/service"
	"github.com/stretchr/testify/mock"
)

// MockCRUD is a mock implementation of service.CRUD for any entity.
type MockCRUD[T any, I any] struct {
	mock.Mock
}

func (m *MockCRUD[T, I]) List(ctx context.Context, f repo.Filter) ([]T, error) {
	args := m.MethodCalled("List", ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCRUD[T, I]) Get(ctx context.Context, id uint) (*T, error) {
	args := m.MethodCalled("Get", ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUD[T, I]) Create(ctx context.Context, in I) (*T, error) {
	args := m.MethodCalled("Create", ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUD[T, I]) Update(ctx context.Context, id uint, in I) (*T, error) {
	args := m.MethodCalled("Update", ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUD[T, I]) Delete(ctx context.Context, id uint) error {
	args := m.MethodCalled("Delete", ctx, id)
	return args.Error(0)
}

// MockLogbookService is a mock implementation of service.LogbookService
type MockLogbookService struct {
	MockCRUD[model.Logbook, service.LogbookInput]
}

func (m *MockLogbookService) AssignProfile(ctx context.Context, logbookID, profileID uint) (*model.LogbookProfile, error) {
	args := m.MethodCalled("AssignProfile", ctx, logbookID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LogbookProfile), args.Error(1)
}

func (m *MockLogbookService) UnassignProfile(ctx context.Context, logbookID, profileID uint) error {
	args := m.MethodCalled("UnassignProfile", ctx, logbookID, profileID)
	return args.Error(0)
}

// MockProfileService is a mock implementation of service.ProfileService
type MockProfileService struct {
	MockCRUD[model.Profile, service.ProfileInput]
}

func (m *MockProfileService) GetByUser(ctx context.Context, userID uint) (*model.Profile, error) {
	args := m.MethodCalled("GetByUser", ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) UploadPhoto(ctx context.Context, id uint, fh *multipart.FileHeader) (*model.Profile, error) {
	args := m.MethodCalled("UploadPhoto", ctx, id, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) PhotoURL(ctx context.Context, id uint) (string, error) {
	args := m.MethodCalled("PhotoURL", ctx, id)
	return args.String(0), args.Error(1)
}
