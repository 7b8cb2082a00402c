package template

import (
	"time"

	"github.com/linskybing/docflow/internal/domain/document"
	"gorm.io/datatypes"
)

type Template struct {
	ID               uint                                 `gorm:"primaryKey" json:"id"`
	Name             string                               `gorm:"size:255;not null" json:"name"`
	Description      string                               `gorm:"type:text" json:"description"`
	IsPublic         bool                                 `gorm:"not null" json:"is_public"`
	CreatedByID      uint                                 `gorm:"index;not null" json:"created_by_id"`
	Deadline         *time.Time                           `json:"deadline"`
	DefaultFolderID  *uint                                `json:"default_folder_id"`
	CoordinateFields datatypes.JSONType[[]document.Field] `json:"coordinate_fields"`
	CreatedAt        time.Time                            `json:"created_at"`
	UpdatedAt        time.Time                            `json:"updated_at"`
}

// Schema is the field layout copied into new documents.
func (t *Template) Schema() []document.Field {
	return t.CoordinateFields.Data()
}

func (t *Template) SetSchema(fields []document.Field) {
	t.CoordinateFields = datatypes.NewJSONType(fields)
}

type Folder struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type TemplateInput struct {
	Name             string           `json:"name" binding:"required,max=255" example:"TA agreement"`
	Description      string           `json:"description"`
	IsPublic         *bool            `json:"is_public"`
	Deadline         *time.Time       `json:"deadline"`
	DefaultFolderID  *uint            `json:"default_folder_id"`
	CoordinateFields []document.Field `json:"coordinate_fields"`
}

// DuplicateInput names the copy. Description and folder fall back to the
// source template's when omitted.
type DuplicateInput struct {
	Name            string  `json:"name" binding:"required,max=255" example:"TA agreement (2026)"`
	Description     *string `json:"description"`
	DefaultFolderID *uint   `json:"default_folder_id"`
}

type FolderInput struct {
	Name string `json:"name" binding:"required,max=255" example:"2025 Fall"`
}
