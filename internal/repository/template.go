package repository

import (
	"github.com/linskybing/docflow/internal/domain/template"
	"gorm.io/gorm"
)

type TemplateRepo interface {
	CreateTemplate(t *template.Template) error
	GetTemplateByID(id uint) (template.Template, error)
	ListTemplatesVisibleTo(userID uint) ([]template.Template, error)
	SaveTemplate(t *template.Template) error
	DeleteTemplate(id uint) error
	WithTx(tx *gorm.DB) TemplateRepo
}

type DBTemplateRepo struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) *DBTemplateRepo {
	return &DBTemplateRepo{
		db: db,
	}
}

func (r *DBTemplateRepo) CreateTemplate(t *template.Template) error {
	return r.db.Create(t).Error
}

func (r *DBTemplateRepo) GetTemplateByID(id uint) (template.Template, error) {
	var t template.Template
	if err := r.db.First(&t, id).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTemplateRepo) ListTemplatesVisibleTo(userID uint) ([]template.Template, error) {
	var list []template.Template
	err := r.db.Where("is_public = ? OR created_by_id = ?", true, userID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *DBTemplateRepo) SaveTemplate(t *template.Template) error {
	return r.db.Save(t).Error
}

func (r *DBTemplateRepo) DeleteTemplate(id uint) error {
	return r.db.Delete(&template.Template{}, id).Error
}

func (r *DBTemplateRepo) WithTx(tx *gorm.DB) TemplateRepo {
	if tx == nil {
		return r
	}
	return &DBTemplateRepo{
		db: tx,
	}
}
