package service

import (
	"context"
	"fmt"

	"petapi/internal/model"
	"petapi/internal/repository"
)

// ItemService exposes item operations.
type ItemService interface {
	CreateItem(ctx context.Context, owner *model.User, title, description string) (*model.Item, error)
	ListItems(ctx context.Context, offset, limit int) ([]model.Item, error)
}

type itemService struct {
	repo repository.ItemRepository
}

// NewItemService builds an ItemService on top of the repository.
func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

// CreateItem persists a new item owned by the given user. The owner always
// comes from the authenticated identity, never from client input.
func (s *itemService) CreateItem(ctx context.Context, owner *model.User, title, description string) (*model.Item, error) {
	item := &model.Item{
		Title:       title,
		Description: description,
		OwnerID:     owner.ID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, offset, limit int) ([]model.Item, error) {
	return s.repo.List(ctx, offset, limit)
}
