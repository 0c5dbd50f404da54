package repositories

import (
	"gin-todo/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	FindByUser(userID string) ([]models.Item, error)
	FindByID(itemID string) (*models.Item, error)
	Create(item *models.Item) error
	Update(itemID string, userID string, updates map[string]interface{}) error
	Delete(itemID string, userID string) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindByUser(userID string) ([]models.Item, error) {
	items := []models.Item{}
	result := r.db.Find(&items, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (r *ItemRepository) FindByID(itemID string) (*models.Item, error) {
	var item models.Item
	result := r.db.First(&item, "id = ?", itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) Create(item *models.Item) error {
	result := r.db.Create(item)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update 所有者のアイテムのみ更新する（他ユーザーのIDを指定しても更新されない）
func (r *ItemRepository) Update(itemID string, userID string, updates map[string]interface{}) error {
	result := r.db.Model(&models.Item{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(itemID string, userID string) error {
	result := r.db.Delete(&models.Item{}, "id = ? AND user_id = ?", itemID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
