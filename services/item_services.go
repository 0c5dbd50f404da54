package services

import (
	"errors"
	"time"

	"gin-todo/dto"
	"gin-todo/models"
	"gin-todo/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("item not found")

type IItemService interface {
	FindAllByUser(userID string) ([]models.Item, error)
	Create(userID string, name string) (*models.Item, error)
	Update(itemID string, userID string, input dto.UpdateItemInput) (*models.Item, error)
	Delete(itemID string, userID string) error
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAllByUser(userID string) ([]models.Item, error) {
	return s.repository.FindByUser(userID)
}

func (s *ItemService) Create(userID string, name string) (*models.Item, error) {
	now := time.Now()
	newItem := &models.Item{
		ID:        uuid.NewString(),
		Name:      name,
		Completed: false,
		UserID:    &userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repository.Create(newItem); err != nil {
		return nil, err
	}

	// 保存後に読み直して、ストアが正規化した形で返す
	return s.repository.FindByID(newItem.ID)
}

func (s *ItemService) Update(itemID string, userID string, input dto.UpdateItemInput) (*models.Item, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Completed != nil {
		updates["completed"] = *input.Completed
	}

	if err := s.repository.Update(itemID, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return s.repository.FindByID(itemID)
}

func (s *ItemService) Delete(itemID string, userID string) error {
	err := s.repository.Delete(itemID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrItemNotFound
	}
	return err
}
