package application

import (
	"github.com/linskybing/docflow/internal/repository"
)

type Services struct {
	User         *UserService
	Workflow     *WorkflowService
	Template     *TemplateService
	Folder       *FolderService
	Notification *NotificationService
}

func New(repos *repository.Repos, events Publisher) *Services {
	users := NewUserService(repos)
	return &Services{
		User:         users,
		Workflow:     NewWorkflowService(repos, users, events),
		Template:     NewTemplateService(repos),
		Folder:       NewFolderService(repos),
		Notification: NewNotificationService(repos),
	}
}
