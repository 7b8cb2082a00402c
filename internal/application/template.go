package application

import (
	"errors"
	"strings"

	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/template"
	"github.com/linskybing/docflow/internal/domain/user"
	"github.com/linskybing/docflow/internal/repository"
	"github.com/linskybing/docflow/pkg/apperr"
	"gorm.io/gorm"
)

type TemplateService struct {
	Repos *repository.Repos
}

func NewTemplateService(repos *repository.Repos) *TemplateService {
	return &TemplateService{
		Repos: repos,
	}
}

func (s *TemplateService) CreateTemplate(actor user.Actor, input template.TemplateInput) (*template.Template, error) {
	if err := s.checkFolder(input.DefaultFolderID); err != nil {
		return nil, err
	}
	t := &template.Template{
		CreatedByID: actor.ID,
		IsPublic:    true,
	}
	applyTemplateInput(t, input)
	if err := s.Repos.Template.CreateTemplate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTemplate returns a template the actor can see: public ones, their own,
// or any for elevated users.
func (s *TemplateService) GetTemplate(actor user.Actor, id uint) (*template.Template, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !t.IsPublic && t.CreatedByID != actor.ID && !actor.HasElevatedAccess() {
		return nil, apperr.Forbidden("template %d is not available to you", id)
	}
	return t, nil
}

func (s *TemplateService) ListTemplates(actor user.Actor) ([]template.Template, error) {
	return s.Repos.Template.ListTemplatesVisibleTo(actor.ID)
}

func (s *TemplateService) UpdateTemplate(actor user.Actor, id uint, input template.TemplateInput) (*template.Template, error) {
	t, err := s.owned(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkFolder(input.DefaultFolderID); err != nil {
		return nil, err
	}
	applyTemplateInput(t, input)
	if err := s.Repos.Template.SaveTemplate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// DuplicateTemplate copies the field layout of a template the actor can see
// into a new template owned by the actor.
func (s *TemplateService) DuplicateTemplate(actor user.Actor, id uint, input template.DuplicateInput) (*template.Template, error) {
	src, err := s.GetTemplate(actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkFolder(input.DefaultFolderID); err != nil {
		return nil, err
	}
	t := &template.Template{
		Name:            strings.TrimSpace(input.Name),
		Description:     src.Description,
		IsPublic:        src.IsPublic,
		CreatedByID:     actor.ID,
		DefaultFolderID: src.DefaultFolderID,
	}
	if input.Description != nil {
		t.Description = strings.TrimSpace(*input.Description)
	}
	if input.DefaultFolderID != nil {
		t.DefaultFolderID = input.DefaultFolderID
	}
	t.SetSchema(document.Blank(src.Schema()).CoordinateFields)
	if err := s.Repos.Template.CreateTemplate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTemplate refuses to remove a template documents were created from.
func (s *TemplateService) DeleteTemplate(actor user.Actor, id uint) error {
	if _, err := s.owned(actor, id); err != nil {
		return err
	}
	n, err := s.Repos.Document.CountDocumentsByTemplate(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("template %d is used by %d documents", id, n)
	}
	return s.Repos.Template.DeleteTemplate(id)
}

func (s *TemplateService) find(id uint) (*template.Template, error) {
	t, err := s.Repos.Template.GetTemplateByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("template %d not found", id)
		}
		return nil, err
	}
	return &t, nil
}

func (s *TemplateService) owned(actor user.Actor, id uint) (*template.Template, error) {
	t, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if t.CreatedByID != actor.ID && !actor.HasElevatedAccess() {
		return nil, apperr.Forbidden("only the template creator may change template %d", id)
	}
	return t, nil
}

func (s *TemplateService) checkFolder(id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.Repos.Folder.GetFolderByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("folder %d not found", *id)
		}
		return err
	}
	return nil
}

func applyTemplateInput(t *template.Template, input template.TemplateInput) {
	t.Name = strings.TrimSpace(input.Name)
	t.Description = input.Description
	if input.IsPublic != nil {
		t.IsPublic = *input.IsPublic
	}
	t.Deadline = input.Deadline
	t.DefaultFolderID = input.DefaultFolderID
	if input.CoordinateFields != nil {
		t.SetSchema(input.CoordinateFields)
	}
}
