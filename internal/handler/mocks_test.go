package handler

import (
	"context"

	"frankit/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductService) Activate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductService) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) GetAll(ctx context.Context, page, size int) (*model.Page[model.Product], error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Product]), args.Error(1)
}

// MockOptionService is a mock implementation of ProductOptionService.
type MockOptionService struct {
	mock.Mock
}

func (m *MockOptionService) Create(ctx context.Context, productID int64, req *model.ProductOptionRequest) (*model.ProductOption, error) {
	args := m.Called(ctx, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductOption), args.Error(1)
}

func (m *MockOptionService) Update(ctx context.Context, optionID int64, req *model.ProductOptionRequest) (*model.ProductOption, error) {
	args := m.Called(ctx, optionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductOption), args.Error(1)
}

func (m *MockOptionService) Delete(ctx context.Context, optionID int64) error {
	return m.Called(ctx, optionID).Error(0)
}

func (m *MockOptionService) Activate(ctx context.Context, optionID int64) error {
	return m.Called(ctx, optionID).Error(0)
}

func (m *MockOptionService) Deactivate(ctx context.Context, optionID int64) error {
	return m.Called(ctx, optionID).Error(0)
}

func (m *MockOptionService) ListByProduct(ctx context.Context, productID int64) ([]*model.ProductOption, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProductOption), args.Error(1)
}

func (m *MockOptionService) ListActiveByProduct(ctx context.Context, productID int64) ([]*model.ProductOption, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProductOption), args.Error(1)
}

// MockDetailService is a mock implementation of OptionDetailService.
type MockDetailService struct {
	mock.Mock
}

func (m *MockDetailService) Create(ctx context.Context, optionID int64, req *model.OptionDetailRequest) (*model.OptionDetail, error) {
	args := m.Called(ctx, optionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OptionDetail), args.Error(1)
}

func (m *MockDetailService) Update(ctx context.Context, detailID int64, req *model.OptionDetailRequest) (*model.OptionDetail, error) {
	args := m.Called(ctx, detailID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OptionDetail), args.Error(1)
}

func (m *MockDetailService) Delete(ctx context.Context, detailID int64) error {
	return m.Called(ctx, detailID).Error(0)
}

func (m *MockDetailService) Activate(ctx context.Context, detailID int64) error {
	return m.Called(ctx, detailID).Error(0)
}

func (m *MockDetailService) Deactivate(ctx context.Context, detailID int64) error {
	return m.Called(ctx, detailID).Error(0)
}

func (m *MockDetailService) ListByOption(ctx context.Context, optionID int64) ([]*model.OptionDetail, error) {
	args := m.Called(ctx, optionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.OptionDetail), args.Error(1)
}

func (m *MockDetailService) ListActiveByOption(ctx context.Context, optionID int64) ([]*model.OptionDetail, error) {
	args := m.Called(ctx, optionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.OptionDetail), args.Error(1)
}

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserResponse), args.Error(1)
}

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenResponse), args.Error(1)
}
