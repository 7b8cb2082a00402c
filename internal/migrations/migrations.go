package migrations

import (
	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/mail"
	"github.com/linskybing/docflow/internal/domain/notification"
	"github.com/linskybing/docflow/internal/domain/signing"
	"github.com/linskybing/docflow/internal/domain/template"
	"github.com/linskybing/docflow/internal/domain/user"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&template.Folder{},
		&template.Template{},
		&document.Document{},
		&document.Role{},
		&document.StatusLog{},
		&notification.Notification{},
		&signing.Token{},
		&mail.OutboundMail{},
	}
}

func Run(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
