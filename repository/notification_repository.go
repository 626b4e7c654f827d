package repository

import (
	"storefront/entity"

	"gorm.io/gorm"
)

type NotificationRepository struct{ DB *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) ListForUser(userID uint, limit int) ([]entity.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Notification
	err := r.DB.Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *NotificationRepository) UnreadCount(userID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}

func (r *NotificationRepository) MarkRead(userID, id uint) error {
	return r.DB.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
}
