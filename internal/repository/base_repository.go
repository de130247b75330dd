package repository

import (
	"context"
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"zoo_api/internal/models"
	"zoo_api/internal/storage"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// DuplicateKeyError 保留驅動回傳的原始錯誤，errors.Is 可比對 ErrDuplicateKey
type DuplicateKeyError struct {
	Err error
}

func (e *DuplicateKeyError) Error() string { return e.Err.Error() }

func (e *DuplicateKeyError) Unwrap() error { return e.Err }

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// BaseRepository 是 zoos、bears 共用的單表 CRUD
type BaseRepository[T models.Entity] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	// Create 寫入一筆資料並回傳資料庫分配的 id
	Create(ctx context.Context, model *T) (uint, error)
	// Update 只更新 changes 中的欄位，回傳受影響的列數
	Update(ctx context.Context, id uint, changes map[string]any) (int64, error)
	// Delete 永久刪除資料，回傳受影響的列數
	Delete(ctx context.Context, id uint) (int64, error)
}

type baseRepository[T models.Entity] struct {
	db *storage.Database
}

func NewBaseRepository[T models.Entity](db *storage.Database) BaseRepository[T] {
	return &baseRepository[T]{db: db}
}

func (r *baseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	rows := []T{}
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return rows, nil
}

func (r *baseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return &row, nil
}

func (r *baseRepository[T]) Create(ctx context.Context, model *T) (uint, error) {
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return 0, r.translate(err)
	}
	return (*model).GetID(), nil
}

func (r *baseRepository[T]) Update(ctx context.Context, id uint, changes map[string]any) (int64, error) {
	if len(changes) == 0 {
		// 沒有要更新的欄位時 gorm 不會送出 UPDATE，改用計數判斷資料是否存在
		var count int64
		err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
		return count, r.translate(err)
	}

	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return 0, r.translate(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *baseRepository[T]) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return 0, r.translate(result.Error)
	}
	return result.RowsAffected, nil
}

// translate 把 gorm 與驅動的錯誤轉成本套件的錯誤，保留原始錯誤訊息
func (r *baseRepository[T]) translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	if translator, ok := r.db.Dialector.(gorm.ErrorTranslator); ok {
		if errors.Is(translator.Translate(err), gorm.ErrDuplicatedKey) {
			return &DuplicateKeyError{Err: err}
		}
	}
	// sqlite 的 SQLITE_CONSTRAINT (19)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return &DuplicateKeyError{Err: err}
	}
	return err
}
