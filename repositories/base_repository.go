package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound kayıt bulunamadığında repository katmanının döndürdüğü hatadır.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm tablolar için ortak işlemleri tanımlar.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository IBaseRepository'nin GORM uygulamasıdır. Hook'ların
// (CreatedBy/UpdatedBy) çalışması için context her sorguya iletilir.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
}

// NewBaseRepository verilen bağlantı (veya transaction) üzerinde çalışan
// bir base repository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSortColumns: map[string]bool{"id": true, "created_at": true}}
}

// SetAllowedSortColumns sıralamada kabul edilen kolonları belirler.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	allowed := make(map[string]bool, len(columns))
	for _, col := range columns {
		allowed[col] = true
	}
	r.allowedSortColumns = allowed
}

// SortColumnAllowed kolonun sıralamaya açık olup olmadığını söyler.
func (r *BaseRepository[T]) SortColumnAllowed(column string) bool {
	return r.allowedSortColumns[column]
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("oluşturulacak kayıt nil olamaz")
	}
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}
