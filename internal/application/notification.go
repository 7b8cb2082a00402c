package application

import (
	"github.com/linskybing/docflow/internal/domain/notification"
	"github.com/linskybing/docflow/internal/repository"
	"github.com/linskybing/docflow/pkg/apperr"
)

type NotificationService struct {
	Repos *repository.Repos
}

func NewNotificationService(repos *repository.Repos) *NotificationService {
	return &NotificationService{
		Repos: repos,
	}
}

func (s *NotificationService) ListNotifications(userID uint, unreadOnly bool) ([]notification.Notification, error) {
	return s.Repos.Notification.ListNotificationsByUser(userID, unreadOnly)
}

func (s *NotificationService) MarkRead(id, userID uint) error {
	ok, err := s.Repos.Notification.MarkNotificationRead(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("notification %d not found", id)
	}
	return nil
}
