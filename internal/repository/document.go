package repository

import (
	"errors"
	"time"

	"github.com/linskybing/docflow/internal/domain/document"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStaleDocument is returned when an update loses an optimistic version race.
var ErrStaleDocument = errors.New("document was modified concurrently")

type DocumentRepo interface {
	CreateDocument(doc *document.Document) error
	GetDocumentByID(id uint) (document.Document, error)
	GetDocumentForUpdate(id uint) (document.Document, error)
	UpdateDocument(doc *document.Document) error
	ListDocuments() ([]document.Document, error)
	ListDocumentsByIDs(ids []uint) ([]document.Document, error)
	ListDocumentsByTemplate(templateID uint, ids []uint) ([]document.Document, error)
	ListOpenDocumentsDueBetween(from, to time.Time) ([]document.Document, error)
	CountDocumentsByTemplate(templateID uint) (int64, error)
	DeleteDocument(id uint) error
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{
		db: db,
	}
}

func (r *DBDocumentRepo) CreateDocument(doc *document.Document) error {
	return r.db.Create(doc).Error
}

func (r *DBDocumentRepo) GetDocumentByID(id uint) (document.Document, error) {
	var d document.Document
	if err := r.db.First(&d, id).Error; err != nil {
		return d, err
	}
	return d, nil
}

// GetDocumentForUpdate reads the row under SELECT ... FOR UPDATE where the
// dialect supports row locks.
func (r *DBDocumentRepo) GetDocumentForUpdate(id uint) (document.Document, error) {
	var d document.Document
	q := r.db
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&d, id).Error; err != nil {
		return d, err
	}
	return d, nil
}

// UpdateDocument writes the mutable columns guarded by the version the
// caller loaded, then bumps doc.Version.
func (r *DBDocumentRepo) UpdateDocument(doc *document.Document) error {
	res := r.db.Model(&document.Document{}).
		Where("id = ? AND version = ?", doc.ID, doc.Version).
		Updates(map[string]any{
			"title":       doc.Title,
			"data":        doc.Data,
			"status":      doc.Status,
			"deadline":    doc.Deadline,
			"is_rejected": doc.IsRejected,
			"folder_id":   doc.FolderID,
			"version":     doc.Version + 1,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleDocument
	}
	doc.Version++
	return nil
}

func (r *DBDocumentRepo) ListDocuments() ([]document.Document, error) {
	var docs []document.Document
	err := r.db.Order("created_at DESC, id DESC").Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) ListDocumentsByIDs(ids []uint) ([]document.Document, error) {
	var docs []document.Document
	if len(ids) == 0 {
		return docs, nil
	}
	err := r.db.Where("id IN ?", ids).Order("created_at DESC, id DESC").Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) ListDocumentsByTemplate(templateID uint, ids []uint) ([]document.Document, error) {
	var docs []document.Document
	if len(ids) == 0 {
		return docs, nil
	}
	err := r.db.Where("template_id = ? AND id IN ?", templateID, ids).
		Order("created_at DESC, id DESC").
		Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) ListOpenDocumentsDueBetween(from, to time.Time) ([]document.Document, error) {
	var docs []document.Document
	err := r.db.Where("status <> ? AND deadline >= ? AND deadline < ?", document.StatusCompleted, from, to).
		Order("deadline ASC").
		Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) CountDocumentsByTemplate(templateID uint) (int64, error) {
	var n int64
	err := r.db.Model(&document.Document{}).Where("template_id = ?", templateID).Count(&n).Error
	return n, err
}

func (r *DBDocumentRepo) DeleteDocument(id uint) error {
	return r.db.Delete(&document.Document{}, id).Error
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{
		db: tx,
	}
}
