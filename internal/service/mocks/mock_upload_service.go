package mocks

import (
	"context"
	"time"

	"docrisk/internal/model"
	"docrisk/internal/risk"
	"docrisk/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, in service.UploadInput) (*model.Upload, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Upload), args.Error(1)
}

func (m *MockUploadService) List(ctx context.Context, clientID string) ([]model.Upload, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Upload), args.Error(1)
}

func (m *MockUploadService) Delete(ctx context.Context, clientID, uploadID string) error {
	args := m.Called(ctx, clientID, uploadID)
	return args.Error(0)
}

func (m *MockUploadService) DownloadURL(ctx context.Context, clientID, uploadID string) (string, error) {
	args := m.Called(ctx, clientID, uploadID)
	return args.String(0), args.Error(1)
}

type MockRiskService struct {
	mock.Mock
}

func (m *MockRiskService) ClientReport(ctx context.Context, clientID string) (*service.ClientReport, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClientReport), args.Error(1)
}

func (m *MockRiskService) Dashboard(ctx context.Context) (*service.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *MockRiskService) Calendar(ctx context.Context, from, to time.Time) (*service.Calendar, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Calendar), args.Error(1)
}

func (m *MockRiskService) Evaluate(ctx context.Context, reqs []model.Requirement, uploads []model.Upload) risk.Report {
	args := m.Called(ctx, reqs, uploads)
	return args.Get(0).(risk.Report)
}

func (m *MockRiskService) Today() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
