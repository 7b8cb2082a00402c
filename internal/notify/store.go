package notify

import (
	"context"

	"github.com/linskybing/docflow/internal/domain/notification"
	"github.com/linskybing/docflow/internal/repository"
)

// StoreNotifier persists notifications and pushes them to live subscribers.
type StoreNotifier struct {
	repo repository.NotificationRepo
	hub  *Hub
}

func NewStoreNotifier(repo repository.NotificationRepo, hub *Hub) *StoreNotifier {
	return &StoreNotifier{repo: repo, hub: hub}
}

func (s *StoreNotifier) Notify(ctx context.Context, n Notice) error {
	docID := n.DocumentID
	rec := notification.Notification{
		UserID:     n.Recipient.UserID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		DocumentID: &docID,
		ActionURL:  n.ActionURL,
	}
	if err := s.repo.CreateNotification(&rec); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Push(n)
	}
	return nil
}
