package repository

import (
	"github.com/linskybing/docflow/internal/domain/document"
	"gorm.io/gorm"
)

type StatusLogRepo interface {
	AppendStatusLog(entry *document.StatusLog) error
	ListStatusLogs(documentID uint) ([]document.StatusLog, error)
	DeleteStatusLogsByDocument(documentID uint) error
	WithTx(tx *gorm.DB) StatusLogRepo
}

type DBStatusLogRepo struct {
	db *gorm.DB
}

func NewStatusLogRepo(db *gorm.DB) *DBStatusLogRepo {
	return &DBStatusLogRepo{
		db: db,
	}
}

func (r *DBStatusLogRepo) AppendStatusLog(entry *document.StatusLog) error {
	return r.db.Create(entry).Error
}

// ListStatusLogs returns the history oldest first.
func (r *DBStatusLogRepo) ListStatusLogs(documentID uint) ([]document.StatusLog, error) {
	var logs []document.StatusLog
	err := r.db.Where("document_id = ?", documentID).
		Order("created_at ASC, id ASC").
		Find(&logs).Error
	return logs, err
}

func (r *DBStatusLogRepo) DeleteStatusLogsByDocument(documentID uint) error {
	return r.db.Where("document_id = ?", documentID).Delete(&document.StatusLog{}).Error
}

func (r *DBStatusLogRepo) WithTx(tx *gorm.DB) StatusLogRepo {
	if tx == nil {
		return r
	}
	return &DBStatusLogRepo{
		db: tx,
	}
}
