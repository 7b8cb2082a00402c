package handlers

import (
	"github.com/linskybing/docflow/internal/application"
	"github.com/linskybing/docflow/internal/notify"
)

type Handlers struct {
	User         *UserHandler
	Document     *DocumentHandler
	Template     *TemplateHandler
	Notification *NotificationHandler
	Signing      *SigningHandler
	Stream       *NotificationStream
}

func New(svc *application.Services, hub *notify.Hub) *Handlers {
	h := &Handlers{
		User:         NewUserHandler(svc.User),
		Document:     NewDocumentHandler(svc.Workflow),
		Template:     NewTemplateHandler(svc.Template, svc.Folder),
		Notification: NewNotificationHandler(svc.Notification),
		Signing:      NewSigningHandler(svc.Workflow),
		Stream:       NewNotificationStream(hub),
	}
	return h
}
