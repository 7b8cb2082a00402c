package repository

import (
	"github.com/linskybing/docflow/internal/domain/mail"
	"gorm.io/gorm"
)

type MailRepo interface {
	QueueMail(m *mail.OutboundMail) error
	ListMailsByRecipient(recipient string) ([]mail.OutboundMail, error)
	WithTx(tx *gorm.DB) MailRepo
}

type DBMailRepo struct {
	db *gorm.DB
}

func NewMailRepo(db *gorm.DB) *DBMailRepo {
	return &DBMailRepo{
		db: db,
	}
}

func (r *DBMailRepo) QueueMail(m *mail.OutboundMail) error {
	if m.Status == "" {
		m.Status = "queued"
	}
	return r.db.Create(m).Error
}

func (r *DBMailRepo) ListMailsByRecipient(recipient string) ([]mail.OutboundMail, error) {
	var list []mail.OutboundMail
	err := r.db.Where("recipient = ?", recipient).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *DBMailRepo) WithTx(tx *gorm.DB) MailRepo {
	if tx == nil {
		return r
	}
	return &DBMailRepo{
		db: tx,
	}
}
