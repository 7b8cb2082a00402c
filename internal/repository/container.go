package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repos struct {
	Document     DocumentRepo
	Role         RoleRepo
	StatusLog    StatusLogRepo
	Template     TemplateRepo
	Folder       FolderRepo
	User         UserRepo
	Notification NotificationRepo
	SigningToken SigningTokenRepo
	Mail         MailRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Document:     NewDocumentRepo(db),
		Role:         NewRoleRepo(db),
		StatusLog:    NewStatusLogRepo(db),
		Template:     NewTemplateRepo(db),
		Folder:       NewFolderRepo(db),
		User:         NewUserRepo(db),
		Notification: NewNotificationRepo(db),
		SigningToken: NewSigningTokenRepo(db),
		Mail:         NewMailRepo(db),
		db:           db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Document:     r.Document.WithTx(tx),
		Role:         r.Role.WithTx(tx),
		StatusLog:    r.StatusLog.WithTx(tx),
		Template:     r.Template.WithTx(tx),
		Folder:       r.Folder.WithTx(tx),
		User:         r.User.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		SigningToken: r.SigningToken.WithTx(tx),
		Mail:         r.Mail.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn in a transaction. Called on transaction-scoped Repos it
// opens a savepoint, so a failing fn only rolls back its own writes.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
