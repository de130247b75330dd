package service

import (
	"context"
	"errors"

	"zoo_api/internal/models"
	"zoo_api/internal/repository"
)

var (
	ErrNotFound = errors.New("records not found")
	// ErrDuplicate 與 repository.ErrDuplicateKey 相同，讓 handler 不需要依賴 repository
	ErrDuplicate = repository.ErrDuplicateKey
)

// ResourceService 對單一資料表提供列表、查詢、建立、更新、刪除
type ResourceService[T models.Entity] struct {
	name string
	repo repository.BaseRepository[T]
}

func NewResourceService[T models.Entity](name string, repo repository.BaseRepository[T]) *ResourceService[T] {
	return &ResourceService[T]{name: name, repo: repo}
}

// Name 回傳資源名稱（也是資料表名稱）
func (s *ResourceService[T]) Name() string {
	return s.name
}

func (s *ResourceService[T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (s *ResourceService[T]) Get(ctx context.Context, id uint) (*T, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return row, nil
}

// Create 寫入後以資料庫分配的 id 重新查詢，回傳完整的資料列
func (s *ResourceService[T]) Create(ctx context.Context, model *T) (*T, error) {
	id, err := s.repo.Create(ctx, model)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Update 只修改 changes 中的欄位；沒有資料列受影響時回傳 ErrNotFound
func (s *ResourceService[T]) Update(ctx context.Context, id uint, changes map[string]any) (*T, error) {
	count, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete 永久刪除資料列；沒有資料列受影響時回傳 ErrNotFound
func (s *ResourceService[T]) Delete(ctx context.Context, id uint) error {
	count, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
