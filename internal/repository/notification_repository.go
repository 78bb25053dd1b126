package repository

import (
	"edu_record_backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) FindByID(id string) (*model.Notification, error) {
	var n model.Notification
	err := r.DB.Where("id = ?", id).First(&n).Error
	return &n, err
}

// FindForAudience 按角色投递的通知加上按班级投递的通知（batchID 为 0 时只取前者）
func (r *NotificationRepository) FindForAudience(role model.UserRole, batchID uint, limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	query := r.DB.Where("audience = ? AND batch_id = 0", role)
	if batchID != 0 {
		query = r.DB.Where("(audience = ? AND batch_id = 0) OR batch_id = ?", role, batchID)
	}
	err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) FindAll(limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Notification{}).Error
}
