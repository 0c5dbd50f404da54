package models

import "time"

// Item 一人のユーザーに紐づくTodoアイテム
// UserIDがnilの場合はレガシーデータ（所有者なし）
type Item struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	UserID    *string   `gorm:"size:36;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
