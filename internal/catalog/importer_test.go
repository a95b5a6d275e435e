package catalog

import (
	"context"
	"errors"
	"testing"

	"frankit/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductCreator is a mock implementation of ProductCreator.
type MockProductCreator struct {
	mock.Mock
}

func (m *MockProductCreator) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func staticLoader(files map[string][]model.ProductRequest) Loader {
	return &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.ProductRequest, error) {
			records, ok := files[path]
			if !ok {
				return nil, errors.New("no such file")
			}
			return records, nil
		},
	}
}

func request(name string) model.ProductRequest {
	price := decimal.NewFromInt(10)
	fee := decimal.Zero
	return model.ProductRequest{Name: name, Description: name + " description", Price: &price, ShippingFee: &fee}
}

func byName(name string) interface{} {
	return mock.MatchedBy(func(req *model.ProductRequest) bool { return req.Name == name })
}

func TestImporter_Import(t *testing.T) {
	loader := staticLoader(map[string][]model.ProductRequest{
		"a.jsonl.gz": {request("Lamp"), request("")},
		"b.jsonl.gz": {request("Chair")},
	})

	creator := new(MockProductCreator)
	creator.On("Create", mock.Anything, byName("Lamp")).Return(&model.Product{ID: 1}, nil)
	creator.On("Create", mock.Anything, byName("")).
		Return(nil, &model.ValidationError{Fields: map[string]string{"name": "name is required"}})
	creator.On("Create", mock.Anything, byName("Chair")).Return(&model.Product{ID: 2}, nil)

	importer := NewImporter(loader, creator, zerolog.Nop())

	result, err := importer.Import(context.Background(), "a.jsonl.gz", "b.jsonl.gz")

	require.NoError(t, err)
	assert.Equal(t, ImportResult{Created: 2, Skipped: 1}, result)
	creator.AssertExpectations(t)
}

func TestImporter_Import_LoadFailure(t *testing.T) {
	creator := new(MockProductCreator)
	importer := NewImporter(staticLoader(nil), creator, zerolog.Nop())

	result, err := importer.Import(context.Background(), "missing.jsonl.gz")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.jsonl.gz")
	assert.Zero(t, result)
	creator.AssertNotCalled(t, "Create")
}

func TestImporter_Import_StopsOnServiceError(t *testing.T) {
	loader := staticLoader(map[string][]model.ProductRequest{
		"a.jsonl.gz": {request("Lamp"), request("Chair")},
	})

	creator := new(MockProductCreator)
	creator.On("Create", mock.Anything, byName("Lamp")).Return(nil, errors.New("database unavailable")).Once()

	importer := NewImporter(loader, creator, zerolog.Nop())

	result, err := importer.Import(context.Background(), "a.jsonl.gz")

	assert.Error(t, err)
	assert.Equal(t, ImportResult{}, result)
	creator.AssertNumberOfCalls(t, "Create", 1)
}
