package service

import (
	"context"

	"frankit/internal/database"
	"frankit/internal/model"

	"github.com/stretchr/testify/mock"
)

// fakeTransactor runs fn directly and counts the transactions that were opened.
type fakeTransactor struct {
	writes int
	reads  int
}

func (f *fakeTransactor) InTx(ctx context.Context, fn func(q database.Querier) error) error {
	f.writes++
	return fn(nil)
}

func (f *fakeTransactor) InReadTx(ctx context.Context, fn func(q database.Querier) error) error {
	f.reads++
	return fn(nil)
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, q database.Querier, p *model.Product) error {
	args := m.Called(ctx, q, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, q database.Querier, p *model.Product) error {
	args := m.Called(ctx, q, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, q database.Querier, id int64) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*model.Product, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDForUpdate(ctx context.Context, q database.Querier, id int64) (*model.Product, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context, q database.Querier, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, q, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, q database.Querier) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

// MockOptionRepository is a mock implementation of ProductOptionRepository.
type MockOptionRepository struct {
	mock.Mock
}

func (m *MockOptionRepository) Create(ctx context.Context, q database.Querier, o *model.ProductOption) error {
	args := m.Called(ctx, q, o)
	return args.Error(0)
}

func (m *MockOptionRepository) Update(ctx context.Context, q database.Querier, o *model.ProductOption) error {
	args := m.Called(ctx, q, o)
	return args.Error(0)
}

func (m *MockOptionRepository) Delete(ctx context.Context, q database.Querier, id int64) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

func (m *MockOptionRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*model.ProductOption, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductOption), args.Error(1)
}

func (m *MockOptionRepository) GetByIDForUpdate(ctx context.Context, q database.Querier, id int64) (*model.ProductOption, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductOption), args.Error(1)
}

func (m *MockOptionRepository) ListByProduct(ctx context.Context, q database.Querier, productID int64, activeOnly bool) ([]*model.ProductOption, error) {
	args := m.Called(ctx, q, productID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProductOption), args.Error(1)
}

func (m *MockOptionRepository) CountActiveByProduct(ctx context.Context, q database.Querier, productID int64) (int, error) {
	args := m.Called(ctx, q, productID)
	return args.Int(0), args.Error(1)
}

// MockDetailRepository is a mock implementation of OptionDetailRepository.
type MockDetailRepository struct {
	mock.Mock
}

func (m *MockDetailRepository) Create(ctx context.Context, q database.Querier, d *model.OptionDetail) error {
	args := m.Called(ctx, q, d)
	return args.Error(0)
}

func (m *MockDetailRepository) Update(ctx context.Context, q database.Querier, d *model.OptionDetail) error {
	args := m.Called(ctx, q, d)
	return args.Error(0)
}

func (m *MockDetailRepository) Delete(ctx context.Context, q database.Querier, id int64) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

func (m *MockDetailRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*model.OptionDetail, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OptionDetail), args.Error(1)
}

func (m *MockDetailRepository) ListByOption(ctx context.Context, q database.Querier, optionID int64, activeOnly bool) ([]*model.OptionDetail, error) {
	args := m.Called(ctx, q, optionID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.OptionDetail), args.Error(1)
}

func (m *MockDetailRepository) SaveActiveStates(ctx context.Context, q database.Querier, details []*model.OptionDetail) error {
	args := m.Called(ctx, q, details)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, q database.Querier, u *model.User) error {
	args := m.Called(ctx, q, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, q database.Querier, email string) (*model.User, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, q database.Querier, email string) (bool, error) {
	args := m.Called(ctx, q, email)
	return args.Bool(0), args.Error(1)
}

// MockOrderChecker is a mock implementation of OrderChecker.
type MockOrderChecker struct {
	mock.Mock
}

func (m *MockOrderChecker) HasProductOrders(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderChecker) HasOptionOrders(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderChecker) HasDetailOrders(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPasswordHasher is a mock implementation of PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Matches(password, hash string) (bool, error) {
	args := m.Called(password, hash)
	return args.Bool(0), args.Error(1)
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) CreateToken(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}
