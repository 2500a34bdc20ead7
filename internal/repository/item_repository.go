package repository

import (
	"context"

	"gorm.io/gorm"

	"petapi/internal/model"
)

// ItemRepository defines item persistence operations.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	List(ctx context.Context, offset, limit int) ([]model.Item, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository builds a GORM-backed repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) List(ctx context.Context, offset, limit int) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
