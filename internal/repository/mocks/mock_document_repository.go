package mocks

import (
	"context"
	"time"

	"docrisk/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockRequirementRepository struct {
	mock.Mock
}

func (m *MockRequirementRepository) Upsert(ctx context.Context, r *model.Requirement) (*model.Requirement, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) ListByClient(ctx context.Context, clientID string) ([]model.Requirement, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) Delete(ctx context.Context, clientID, id string) error {
	args := m.Called(ctx, clientID, id)
	return args.Error(0)
}

type MockUploadRepository struct {
	mock.Mock
}

func (m *MockUploadRepository) Create(ctx context.Context, u *model.Upload) (*model.Upload, error) {
	args := m.Called(ctx, u)
	if f, ok := args.Get(0).(func(context.Context, *model.Upload) *model.Upload); ok {
		return f(ctx, u), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Upload), args.Error(1)
}

func (m *MockUploadRepository) FindByID(ctx context.Context, id string) (*model.Upload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Upload), args.Error(1)
}

func (m *MockUploadRepository) ListByClient(ctx context.Context, clientID string) ([]model.Upload, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Upload), args.Error(1)
}

func (m *MockUploadRepository) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]model.ExpiringUpload, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExpiringUpload), args.Error(1)
}

func (m *MockUploadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
