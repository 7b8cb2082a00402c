package repository

import (
	"github.com/linskybing/docflow/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	CreateNotification(n *notification.Notification) error
	ListNotificationsByUser(userID uint, unreadOnly bool) ([]notification.Notification, error)
	MarkNotificationRead(id, userID uint) (bool, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{
		db: db,
	}
}

func (r *DBNotificationRepo) CreateNotification(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) ListNotificationsByUser(userID uint, unreadOnly bool) ([]notification.Notification, error) {
	var list []notification.Notification
	q := r.db.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	err := q.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

// MarkNotificationRead reports false when the notification does not belong to userID.
func (r *DBNotificationRepo) MarkNotificationRead(id, userID uint) (bool, error) {
	res := r.db.Model(&notification.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected > 0, res.Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{
		db: tx,
	}
}
