package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zoo_api/internal/models"
)

// MockRepository 以 testify/mock 實作 repository.BaseRepository
type MockRepository[T models.Entity] struct {
	mock.Mock
}

func (m *MockRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]T)
	return rows, args.Error(1)
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*T)
	return row, args.Error(1)
}

func (m *MockRepository[T]) Create(ctx context.Context, model *T) (uint, error) {
	args := m.Called(ctx, model)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockRepository[T]) Update(ctx context.Context, id uint, changes map[string]any) (int64, error) {
	args := m.Called(ctx, id, changes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
