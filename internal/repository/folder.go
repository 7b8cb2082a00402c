package repository

import (
	"github.com/linskybing/docflow/internal/domain/template"
	"gorm.io/gorm"
)

type FolderRepo interface {
	CreateFolder(f *template.Folder) error
	GetFolderByID(id uint) (template.Folder, error)
	ListFolders() ([]template.Folder, error)
	WithTx(tx *gorm.DB) FolderRepo
}

type DBFolderRepo struct {
	db *gorm.DB
}

func NewFolderRepo(db *gorm.DB) *DBFolderRepo {
	return &DBFolderRepo{
		db: db,
	}
}

func (r *DBFolderRepo) CreateFolder(f *template.Folder) error {
	return r.db.Create(f).Error
}

func (r *DBFolderRepo) GetFolderByID(id uint) (template.Folder, error) {
	var f template.Folder
	if err := r.db.First(&f, id).Error; err != nil {
		return f, err
	}
	return f, nil
}

func (r *DBFolderRepo) ListFolders() ([]template.Folder, error) {
	var folders []template.Folder
	err := r.db.Order("name ASC").Find(&folders).Error
	return folders, err
}

func (r *DBFolderRepo) WithTx(tx *gorm.DB) FolderRepo {
	if tx == nil {
		return r
	}
	return &DBFolderRepo{
		db: tx,
	}
}
